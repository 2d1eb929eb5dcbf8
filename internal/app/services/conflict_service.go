package services

import (
	"context"
	"fmt"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/pkg/timeslot"
)

// ConflictService defines the interface for schedule conflict detection.
// Detection is advisory and side-effect-free: conflicts are reported, never
// enforced, and saving a conflicting entry stays possible.
type ConflictService interface {
	// CheckCandidate scans the candidate's instructor schedule for entries
	// overlapping the candidate slot. excludeScheduleID skips one persisted
	// entry, so re-validating an edit does not collide with itself.
	CheckCandidate(ctx context.Context, candidate *models.ScheduleEntry, excludeScheduleID *int64) ([]models.Conflict, error)
	// ConflictsForEntry re-runs detection for a persisted entry and resolves
	// each colliding entry to its full record for display.
	ConflictsForEntry(ctx context.Context, entryID int64) ([]dto.ResolvedConflict, error)
}

// conflictServiceImpl implements the ConflictService interface
type conflictServiceImpl struct {
	schedules ScheduleDirectory
}

// NewConflictService creates a new conflict service instance
func NewConflictService(schedules ScheduleDirectory) ConflictService {
	return &conflictServiceImpl{schedules: schedules}
}

func (s *conflictServiceImpl) CheckCandidate(ctx context.Context, candidate *models.ScheduleEntry, excludeScheduleID *int64) ([]models.Conflict, error) {
	conflicts := []models.Conflict{}
	if candidate == nil || candidate.InstructorID == nil {
		return conflicts, nil
	}

	entries, err := s.schedules.GetByInstructorOnDate(ctx, *candidate.InstructorID, candidate.Date)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if excludeScheduleID != nil && entry.ID == *excludeScheduleID {
			continue
		}
		if candidate.ID != 0 && entry.ID == candidate.ID {
			continue
		}
		if !timeslot.Overlaps(candidate.Date, candidate.StartTime, candidate.EndTime,
			entry.Date, entry.StartTime, entry.EndTime) {
			continue
		}
		conflicts = append(conflicts, models.Conflict{
			Kind:                  models.ConflictInstructor,
			ConflictingEntryID:    entry.ID,
			ConflictingEntryTitle: entry.Title,
			Message: fmt.Sprintf("instructor %d is already scheduled for %q on %s from %s to %s",
				*candidate.InstructorID, entry.Title, entry.Date, entry.StartTime, entry.EndTime),
		})
	}

	return conflicts, nil
}

func (s *conflictServiceImpl) ConflictsForEntry(ctx context.Context, entryID int64) ([]dto.ResolvedConflict, error) {
	entry, err := s.schedules.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.CheckCandidate(ctx, entry, &entry.ID)
	if err != nil {
		return nil, err
	}

	resolved := []dto.ResolvedConflict{}
	for _, conflict := range conflicts {
		colliding, err := s.schedules.GetByID(ctx, conflict.ConflictingEntryID)
		if err != nil {
			// The colliding entry disappeared between the scan and the
			// resolve; report the conflict without the full record.
			resolved = append(resolved, dto.ResolvedConflict{Conflict: conflict})
			continue
		}
		resolved = append(resolved, dto.ResolvedConflict{Conflict: conflict, Entry: colliding})
	}

	return resolved, nil
}
