package services

import (
	"context"

	"github.com/edulink/outreach-admin/internal/app/models"
)

// Narrow lookup interfaces consumed by the rules-engine services. The pgx
// repositories satisfy them; tests use in-memory fixtures.

// ProgramDirectory resolves programs by id
type ProgramDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Program, error)
}

// InstructorDirectory lists recommendable instructors
type InstructorDirectory interface {
	GetActive(ctx context.Context) ([]*models.Instructor, error)
}

// WorkloadDirectory counts an instructor's workload-bearing matchings
type WorkloadDirectory interface {
	CountWorkload(ctx context.Context, instructorID int64) (int, error)
}

// ScheduleDirectory resolves schedule entries for conflict and risk checks
type ScheduleDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.ScheduleEntry, error)
	GetByProgram(ctx context.Context, programID int64, roundID *int64) ([]*models.ScheduleEntry, error)
	GetByInstructor(ctx context.Context, instructorID int64) ([]*models.ScheduleEntry, error)
	GetByInstructorOnDate(ctx context.Context, instructorID int64, date string) ([]*models.ScheduleEntry, error)
}

// FileDirectory resolves uploaded proof files
type FileDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.StoredFile, error)
}
