package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulink/outreach-admin/internal/app/models"
)

func seedMorningEntries() *memSchedules {
	return &memSchedules{entries: []*models.ScheduleEntry{
		{
			ID: 1, ProgramID: 1, Title: "Robotics intro",
			Date: "2025-03-10", StartTime: "09:00", EndTime: "11:00",
			InstructorID: int64Ptr(7), Location: "Lab A",
		},
		{
			ID: 2, ProgramID: 2, Title: "Coding club",
			Date: "2025-03-10", StartTime: "13:00", EndTime: "15:00",
			InstructorID: int64Ptr(7), Location: "Room 2",
		},
		{
			ID: 3, ProgramID: 3, Title: "Other teacher's seminar",
			Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00",
			InstructorID: int64Ptr(8), Location: "Hall",
		},
	}}
}

func TestCheckCandidate_OverlappingSlot(t *testing.T) {
	svc := NewConflictService(seedMorningEntries())

	candidate := &models.ScheduleEntry{
		ProgramID: 5, Title: "New session",
		Date: "2025-03-10", StartTime: "10:30", EndTime: "12:00",
		InstructorID: int64Ptr(7), Location: "Lab B",
	}

	conflicts, err := svc.CheckCandidate(context.Background(), candidate, nil)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictInstructor, conflicts[0].Kind)
	assert.Equal(t, int64(1), conflicts[0].ConflictingEntryID)
	assert.Equal(t, "Robotics intro", conflicts[0].ConflictingEntryTitle)
	// The message names both the instructor and the colliding session.
	assert.Contains(t, conflicts[0].Message, "instructor 7")
	assert.Contains(t, conflicts[0].Message, `"Robotics intro"`)
}

func TestCheckCandidate_BackToBackSlotsDoNotConflict(t *testing.T) {
	svc := NewConflictService(seedMorningEntries())

	candidate := &models.ScheduleEntry{
		ProgramID: 5, Title: "Follow-up session",
		Date: "2025-03-10", StartTime: "11:00", EndTime: "13:00",
		InstructorID: int64Ptr(7), Location: "Lab B",
	}

	conflicts, err := svc.CheckCandidate(context.Background(), candidate, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckCandidate_DifferentDateNeverConflicts(t *testing.T) {
	svc := NewConflictService(seedMorningEntries())

	candidate := &models.ScheduleEntry{
		ProgramID: 5, Title: "Next-day session",
		Date: "2025-03-11", StartTime: "09:00", EndTime: "11:00",
		InstructorID: int64Ptr(7), Location: "Lab B",
	}

	conflicts, err := svc.CheckCandidate(context.Background(), candidate, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckCandidate_NoInstructorYieldsNoConflicts(t *testing.T) {
	svc := NewConflictService(seedMorningEntries())

	candidate := &models.ScheduleEntry{
		ProgramID: 5, Title: "Unassigned session",
		Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00",
		Location: "Lab B",
	}

	conflicts, err := svc.CheckCandidate(context.Background(), candidate, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckCandidate_SelfExclusion(t *testing.T) {
	svc := NewConflictService(seedMorningEntries())

	// Re-validating entry 1 with its own times must not collide with itself.
	candidate := &models.ScheduleEntry{
		ProgramID: 1, Title: "Robotics intro",
		Date: "2025-03-10", StartTime: "09:00", EndTime: "11:00",
		InstructorID: int64Ptr(7), Location: "Lab A",
	}

	conflicts, err := svc.CheckCandidate(context.Background(), candidate, int64Ptr(1))
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Without exclusion the same candidate collides with the stored entry.
	conflicts, err = svc.CheckCandidate(context.Background(), candidate, nil)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestCheckCandidate_OnlyScansTheCandidatesInstructor(t *testing.T) {
	svc := NewConflictService(seedMorningEntries())

	// Instructor 8 teaches all day, but instructor 9 is free.
	candidate := &models.ScheduleEntry{
		ProgramID: 5, Title: "Free instructor session",
		Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00",
		InstructorID: int64Ptr(9), Location: "Lab B",
	}

	conflicts, err := svc.CheckCandidate(context.Background(), candidate, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestConflictsForEntry_ResolvesCollidingEntries(t *testing.T) {
	schedules := seedMorningEntries()
	schedules.entries = append(schedules.entries, &models.ScheduleEntry{
		ID: 4, ProgramID: 6, Title: "Overbooked slot",
		Date: "2025-03-10", StartTime: "10:00", EndTime: "14:00",
		InstructorID: int64Ptr(7), Location: "Room 9",
	})
	svc := NewConflictService(schedules)

	resolved, err := svc.ConflictsForEntry(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	for _, rc := range resolved {
		require.NotNil(t, rc.Entry)
		assert.Equal(t, rc.Conflict.ConflictingEntryID, rc.Entry.ID)
		assert.NotEqual(t, int64(4), rc.Entry.ID)
	}
}

func TestConflictsForEntry_Deterministic(t *testing.T) {
	svc := NewConflictService(seedMorningEntries())

	first, err := svc.ConflictsForEntry(context.Background(), 3)
	require.NoError(t, err)
	second, err := svc.ConflictsForEntry(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
