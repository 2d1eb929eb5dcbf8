package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminUserRepository  *AdminUserRepository
	TokenRepository      *TokenRepository
	SponsorRepository    *SponsorRepository
	SchoolRepository     *SchoolRepository
	InstructorRepository *InstructorRepository
	ProgramRepository    *ProgramRepository
	ScheduleRepository   *ScheduleRepository
	MatchingRepository   *MatchingRepository
	SettlementRepository *SettlementRepository
	FileRepository       *FileRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminUserRepository:  NewAdminUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		SponsorRepository:    NewSponsorRepository(db),
		SchoolRepository:     NewSchoolRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		ProgramRepository:    NewProgramRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
		MatchingRepository:   NewMatchingRepository(db),
		SettlementRepository: NewSettlementRepository(db),
		FileRepository:       NewFileRepository(db),
	}
}
