package services

import (
	"context"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

// In-memory directory fixtures backing the rules-engine service tests.

type memSchedules struct {
	entries []*models.ScheduleEntry
}

func (m *memSchedules) GetByID(_ context.Context, id int64) (*models.ScheduleEntry, error) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrScheduleNotFound
}

func (m *memSchedules) GetByProgram(_ context.Context, programID int64, roundID *int64) ([]*models.ScheduleEntry, error) {
	out := []*models.ScheduleEntry{}
	for _, e := range m.entries {
		if e.ProgramID != programID {
			continue
		}
		if roundID != nil && (e.RoundID == nil || *e.RoundID != *roundID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memSchedules) GetByInstructor(_ context.Context, instructorID int64) ([]*models.ScheduleEntry, error) {
	out := []*models.ScheduleEntry{}
	for _, e := range m.entries {
		if e.InstructorID != nil && *e.InstructorID == instructorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memSchedules) GetByInstructorOnDate(_ context.Context, instructorID int64, date string) ([]*models.ScheduleEntry, error) {
	out := []*models.ScheduleEntry{}
	for _, e := range m.entries {
		if e.InstructorID != nil && *e.InstructorID == instructorID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

type memPrograms struct {
	programs map[int64]*models.Program
}

func (m *memPrograms) GetByID(_ context.Context, id int64) (*models.Program, error) {
	if p, ok := m.programs[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrProgramNotFound
}

type memInstructors struct {
	instructors []*models.Instructor
}

func (m *memInstructors) GetActive(_ context.Context) ([]*models.Instructor, error) {
	out := []*models.Instructor{}
	for _, i := range m.instructors {
		if i.Active {
			out = append(out, i)
		}
	}
	return out, nil
}

type memWorkloads struct {
	counts map[int64]int
}

func (m *memWorkloads) CountWorkload(_ context.Context, instructorID int64) (int, error) {
	return m.counts[instructorID], nil
}

type memSettlements struct {
	byID   map[int64]*models.Settlement
	nextID int64
}

func newMemSettlements() *memSettlements {
	return &memSettlements{byID: map[int64]*models.Settlement{}, nextID: 1}
}

func (m *memSettlements) Create(_ context.Context, settlement *models.Settlement) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *settlement
	stored.ID = id
	m.byID[id] = &stored
	return id, nil
}

func (m *memSettlements) GetByID(_ context.Context, id int64) (*models.Settlement, error) {
	if s, ok := m.byID[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, apperrors.ErrSettlementNotFound
}

func (m *memSettlements) GetAll(_ context.Context, filter dto.SettlementListFilter) ([]*models.Settlement, error) {
	out := []*models.Settlement{}
	for _, s := range m.byID {
		if filter.ProgramID != nil && s.ProgramID != *filter.ProgramID {
			continue
		}
		if filter.InstructorID != nil && s.InstructorID != *filter.InstructorID {
			continue
		}
		if filter.Period != "" && s.Period != filter.Period {
			continue
		}
		if filter.Status != "" && string(s.Status) != filter.Status {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memSettlements) Update(_ context.Context, settlement *models.Settlement) error {
	if _, ok := m.byID[settlement.ID]; !ok {
		return apperrors.ErrSettlementNotFound
	}
	stored := *settlement
	m.byID[settlement.ID] = &stored
	return nil
}

func (m *memSettlements) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return apperrors.ErrSettlementNotFound
	}
	delete(m.byID, id)
	return nil
}

type memFiles struct {
	files map[int64]*models.StoredFile
}

func (m *memFiles) GetByID(_ context.Context, id int64) (*models.StoredFile, error) {
	if f, ok := m.files[id]; ok {
		return f, nil
	}
	return nil, apperrors.ErrFileNotFound
}

func (m *memFiles) GetBySettlement(_ context.Context, settlementID int64) ([]*models.StoredFile, error) {
	out := []*models.StoredFile{}
	for _, f := range m.files {
		if f.SettlementID != nil && *f.SettlementID == settlementID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFiles) AttachToSettlement(_ context.Context, fileIDs []int64, settlementID int64) error {
	for _, id := range fileIDs {
		f, ok := m.files[id]
		if !ok {
			return apperrors.ErrFileNotFound
		}
		sid := settlementID
		f.SettlementID = &sid
	}
	return nil
}

func (m *memFiles) Delete(_ context.Context, id int64) error {
	if _, ok := m.files[id]; !ok {
		return apperrors.ErrFileNotFound
	}
	delete(m.files, id)
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }
