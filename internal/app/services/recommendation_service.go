package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/timeslot"
)

// Scoring weights for instructor recommendation
const (
	specialtyBonus  = 30
	onSiteBonus     = 10
	experienceBonus = 10
	ratingWeight    = 10

	// Matchings beyond the allowance subtract workloadPenaltyStep each.
	workloadAllowance   = 5
	workloadPenaltyStep = 5

	maxRecommendations = 10
)

// formatKeywords maps a program format to the specialty keywords that earn
// the specialty bonus.
var formatKeywords = map[models.ProgramFormat][]string{
	models.FormatWorkshop: {"workshop", "education", "business"},
	models.FormatSeminar:  {"seminar", "lecture", "business"},
	models.FormatCourse:   {"education", "course", "lecture"},
	models.FormatLecture:  {"lecture", "seminar"},
	models.FormatOther:    {},
}

// RecommendationService defines the interface for instructor candidate ranking
type RecommendationService interface {
	// Recommend scores every active instructor not in the exclusion set for
	// the given program (optionally narrowed to one round) and returns the
	// top candidates in deterministic order. An unresolvable program yields
	// an empty list, not an error.
	Recommend(ctx context.Context, programID int64, roundID *int64, excludeInstructorIDs []int64) ([]dto.CandidateResponse, error)
}

// recommendationServiceImpl implements the RecommendationService interface
type recommendationServiceImpl struct {
	programs    ProgramDirectory
	instructors InstructorDirectory
	workloads   WorkloadDirectory
	schedules   ScheduleDirectory
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(
	programs ProgramDirectory,
	instructors InstructorDirectory,
	workloads WorkloadDirectory,
	schedules ScheduleDirectory,
) RecommendationService {
	return &recommendationServiceImpl{
		programs:    programs,
		instructors: instructors,
		workloads:   workloads,
		schedules:   schedules,
	}
}

func (s *recommendationServiceImpl) Recommend(ctx context.Context, programID int64, roundID *int64, excludeInstructorIDs []int64) ([]dto.CandidateResponse, error) {
	program, err := s.programs.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgramNotFound) {
			return []dto.CandidateResponse{}, nil
		}
		return nil, err
	}

	programEntries, err := s.schedules.GetByProgram(ctx, programID, roundID)
	if err != nil {
		return nil, err
	}

	instructors, err := s.instructors.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	excluded := make(map[int64]struct{}, len(excludeInstructorIDs))
	for _, id := range excludeInstructorIDs {
		excluded[id] = struct{}{}
	}

	candidates := []dto.CandidateResponse{}
	for _, instructor := range instructors {
		if _, skip := excluded[instructor.ID]; skip {
			continue
		}

		candidate, err := s.scoreInstructor(ctx, program, programEntries, instructor)
		if err != nil {
			return nil, err
		}
		if candidate.Score <= 0 {
			continue
		}
		candidates = append(candidates, candidate)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Instructor.ID < candidates[j].Instructor.ID
	})

	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	return candidates, nil
}

func (s *recommendationServiceImpl) scoreInstructor(ctx context.Context, program *models.Program, programEntries []*models.ScheduleEntry, instructor *models.Instructor) (dto.CandidateResponse, error) {
	score := 0
	reasons := []string{}

	if matchesFormat(instructor.Specialties, program.Format) {
		score += specialtyBonus
		reasons = append(reasons, fmt.Sprintf("specialty matches the %s format", program.Format))
	}

	if program.Type == models.ProgramOffline || program.Type == models.ProgramHybrid {
		score += onSiteBonus
		reasons = append(reasons, "program includes on-site delivery")
	}

	if instructor.Rating != nil {
		score += int(math.Round(*instructor.Rating * ratingWeight))
		reasons = append(reasons, fmt.Sprintf("rated %.1f", *instructor.Rating))
	}

	if instructor.HasExperience() {
		score += experienceBonus
		reasons = append(reasons, "has prior teaching experience")
	}

	workload, err := s.workloads.CountWorkload(ctx, instructor.ID)
	if err != nil {
		return dto.CandidateResponse{}, err
	}
	if workload > workloadAllowance {
		score -= (workload - workloadAllowance) * workloadPenaltyStep
	}
	if workload >= 1 {
		reasons = append(reasons, fmt.Sprintf("currently holds %d active or pending matchings", workload))
	}

	risky, err := s.hasScheduleRisk(ctx, programEntries, instructor.ID)
	if err != nil {
		return dto.CandidateResponse{}, err
	}
	if risky {
		reasons = append(reasons, "schedule conflict risk with existing sessions")
	}

	return dto.CandidateResponse{Instructor: instructor, Score: score, Reasons: reasons}, nil
}

// hasScheduleRisk reports whether any of the instructor's entries overlaps
// any of the program's entries. Risk never changes the score.
func (s *recommendationServiceImpl) hasScheduleRisk(ctx context.Context, programEntries []*models.ScheduleEntry, instructorID int64) (bool, error) {
	if len(programEntries) == 0 {
		return false, nil
	}

	instructorEntries, err := s.schedules.GetByInstructor(ctx, instructorID)
	if err != nil {
		return false, err
	}

	for _, mine := range instructorEntries {
		for _, theirs := range programEntries {
			if mine.ID == theirs.ID {
				continue
			}
			if timeslot.Overlaps(mine.Date, mine.StartTime, mine.EndTime,
				theirs.Date, theirs.StartTime, theirs.EndTime) {
				return true, nil
			}
		}
	}

	return false, nil
}

func matchesFormat(specialties []string, format models.ProgramFormat) bool {
	keywords := formatKeywords[format]
	if len(keywords) == 0 {
		return false
	}
	for _, specialty := range specialties {
		lowered := strings.ToLower(specialty)
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}
