package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulink/outreach-admin/internal/app/models"
)

func newRecommender(programs *memPrograms, instructors *memInstructors, workloads *memWorkloads, schedules *memSchedules) RecommendationService {
	if workloads.counts == nil {
		workloads.counts = map[int64]int{}
	}
	return NewRecommendationService(programs, instructors, workloads, schedules)
}

func offlineWorkshop(id int64) *models.Program {
	return &models.Program{
		ID: id, SponsorID: 1, Title: "STEM outreach",
		Type: models.ProgramOffline, Format: models.FormatWorkshop,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
		Status: models.ProgramActive,
	}
}

func TestRecommend_SpecialtyBonusDelta(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{1: offlineWorkshop(1)}}
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Matching", Specialties: []string{"workshop facilitation"}, Active: true},
		{ID: 2, Name: "Non-matching", Specialties: []string{"knitting"}, Active: true},
	}}
	svc := newRecommender(programs, instructors, &memWorkloads{}, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, int64(1), candidates[0].Instructor.ID)
	assert.Equal(t, int64(2), candidates[1].Instructor.ID)
	assert.Equal(t, 30, candidates[0].Score-candidates[1].Score)
	assert.Contains(t, candidates[0].Reasons, "specialty matches the workshop format")
}

func TestRecommend_RatingAndExperienceContribute(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{1: offlineWorkshop(1)}}
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Plain", Active: true},
		{ID: 2, Name: "Rated", Rating: floatPtr(4.5), Active: true},
		{ID: 3, Name: "Seasoned", Experience: "3 years of outreach teaching", Active: true},
	}}
	svc := newRecommender(programs, instructors, &memWorkloads{}, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	byID := map[int64]int{}
	for _, c := range candidates {
		byID[c.Instructor.ID] = c.Score
	}
	assert.Equal(t, 45, byID[2]-byID[1]) // 4.5 * 10
	assert.Equal(t, 10, byID[3]-byID[1])
}

func TestRecommend_RatingDeltaIsExactForAnyStoredValue(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{1: offlineWorkshop(1)}}
	// 4.1 * 10 lands just below 41 in float64; the delta must still be 41.
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Plain", Active: true},
		{ID: 2, Name: "Rated", Rating: floatPtr(4.1), Active: true},
	}}
	svc := newRecommender(programs, instructors, &memWorkloads{}, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	byID := map[int64]int{}
	for _, c := range candidates {
		byID[c.Instructor.ID] = c.Score
	}
	assert.Equal(t, 41, byID[2]-byID[1])
}

func TestRecommend_WorkloadPenaltyMonotonic(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{1: offlineWorkshop(1)}}
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Idle", Experience: "veteran", Active: true},
		{ID: 2, Name: "At allowance", Experience: "veteran", Active: true},
		{ID: 3, Name: "One over", Experience: "veteran", Active: true},
		{ID: 4, Name: "Two over", Experience: "veteran", Active: true},
	}}
	workloads := &memWorkloads{counts: map[int64]int{1: 0, 2: 5, 3: 6, 4: 7}}
	svc := newRecommender(programs, instructors, workloads, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 4)

	scores := map[int64]int{}
	reasons := map[int64][]string{}
	for _, c := range candidates {
		scores[c.Instructor.ID] = c.Score
		reasons[c.Instructor.ID] = c.Reasons
	}

	// Up to the allowance no penalty applies; each matching above it costs 5.
	assert.Equal(t, scores[1], scores[2])
	assert.Equal(t, 5, scores[2]-scores[3])
	assert.Equal(t, 5, scores[3]-scores[4])

	assert.NotContains(t, reasons[1], "currently holds 0 active or pending matchings")
	assert.Contains(t, reasons[2], "currently holds 5 active or pending matchings")
	assert.Contains(t, reasons[4], "currently holds 7 active or pending matchings")
}

func TestRecommend_ExcludesNonPositiveScores(t *testing.T) {
	// An online "other" format program grants no bonuses at all.
	programs := &memPrograms{programs: map[int64]*models.Program{1: {
		ID: 1, SponsorID: 1, Title: "Remote misc",
		Type: models.ProgramOnline, Format: models.FormatOther,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
		Status: models.ProgramActive,
	}}}
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Zero score", Specialties: []string{"workshop"}, Active: true},
		{ID: 2, Name: "Still positive", Rating: floatPtr(3.0), Active: true},
	}}
	svc := newRecommender(programs, instructors, &memWorkloads{}, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(2), candidates[0].Instructor.ID)
}

func TestRecommend_CapAndTiebreak(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{1: offlineWorkshop(1)}}
	pool := []*models.Instructor{}
	for i := int64(1); i <= 15; i++ {
		pool = append(pool, &models.Instructor{
			ID: i, Name: fmt.Sprintf("Instructor %d", i), Active: true,
		})
	}
	instructors := &memInstructors{instructors: pool}
	svc := newRecommender(programs, instructors, &memWorkloads{}, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, candidates, maxRecommendations)

	// All scores tie, so ordering falls back to instructor id ascending.
	for i, c := range candidates {
		assert.Equal(t, int64(i+1), c.Instructor.ID)
	}
}

func TestRecommend_ScheduleRiskIsAdvisoryOnly(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{1: offlineWorkshop(1)}}
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Busy", Active: true},
		{ID: 2, Name: "Free", Active: true},
	}}
	schedules := &memSchedules{entries: []*models.ScheduleEntry{
		{
			ID: 1, ProgramID: 1, Title: "Kickoff",
			Date: "2025-03-10", StartTime: "09:00", EndTime: "12:00",
			Location: "Hall",
		},
		{
			ID: 2, ProgramID: 9, Title: "Elsewhere",
			Date: "2025-03-10", StartTime: "10:00", EndTime: "11:00",
			InstructorID: int64Ptr(1), Location: "Room 1",
		},
	}}
	svc := newRecommender(programs, instructors, &memWorkloads{}, schedules)

	candidates, err := svc.Recommend(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	var busy, free int
	for i, c := range candidates {
		if c.Instructor.ID == 1 {
			busy = i
		} else {
			free = i
		}
	}
	assert.Contains(t, candidates[busy].Reasons, "schedule conflict risk with existing sessions")
	assert.NotContains(t, candidates[free].Reasons, "schedule conflict risk with existing sessions")
	assert.Equal(t, candidates[free].Score, candidates[busy].Score)
}

func TestRecommend_ExclusionSet(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{1: offlineWorkshop(1)}}
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Excluded", Active: true},
		{ID: 2, Name: "Included", Active: true},
		{ID: 3, Name: "Inactive", Active: false},
	}}
	svc := newRecommender(programs, instructors, &memWorkloads{}, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 1, nil, []int64{1})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(2), candidates[0].Instructor.ID)
}

func TestRecommend_UnknownProgramYieldsEmptyList(t *testing.T) {
	programs := &memPrograms{programs: map[int64]*models.Program{}}
	instructors := &memInstructors{instructors: []*models.Instructor{
		{ID: 1, Name: "Anyone", Active: true},
	}}
	svc := newRecommender(programs, instructors, &memWorkloads{}, &memSchedules{})

	candidates, err := svc.Recommend(context.Background(), 404, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
