package usecase

import (
	"context"
	"time"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"

	"github.com/google/uuid"
)

// --- doctors ---

type mockDoctorRepo struct {
	store     map[string]entity.DoctorRecord
	err       error
	findCalls int
	inserted  []entity.DoctorRecord
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{store: make(map[string]entity.DoctorRecord)}
}

func (m *mockDoctorRepo) Insert(_ context.Context, d entity.DoctorRecord) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, d)
	m.store[d.Base().ID] = d
	return nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d entity.DoctorRecord) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.store[d.Base().ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	m.store[d.Base().ID] = d
	return nil
}

func (m *mockDoctorRepo) FindAll(_ context.Context) ([]entity.DoctorRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entity.DoctorRecord
	for _, d := range m.store {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDoctorRepo) FindByID(_ context.Context, id string) (entity.DoctorRecord, error) {
	m.findCalls++
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.store[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(m.store, id)
	return nil
}

// --- patients ---

type mockPatientRepo struct {
	store    map[string]entity.PatientRecord
	err      error
	inserted int
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{store: make(map[string]entity.PatientRecord)}
}

func (m *mockPatientRepo) Insert(_ context.Context, p entity.PatientRecord) error {
	if m.err != nil {
		return m.err
	}
	m.inserted++
	m.store[p.Base().ID] = p
	return nil
}

func (m *mockPatientRepo) Update(_ context.Context, p entity.PatientRecord) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.store[p.Base().ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	m.store[p.Base().ID] = p
	return nil
}

func (m *mockPatientRepo) FindAll(_ context.Context) ([]entity.PatientRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entity.PatientRecord
	for _, p := range m.store {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPatientRepo) FindByID(_ context.Context, id string) (entity.PatientRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.store, id)
	return nil
}

// --- flat tables ---

// mockTable serves every flat-table repository interface.
type mockTable[T any] struct {
	store     map[string]T
	idOf      func(*T) string
	err       error
	findCalls int
	created   int
}

func newMockTable[T any](idOf func(*T) string) *mockTable[T] {
	return &mockTable[T]{store: make(map[string]T), idOf: idOf}
}

func (m *mockTable[T]) Create(_ context.Context, rec *T) error {
	if m.err != nil {
		return m.err
	}
	m.created++
	m.store[m.idOf(rec)] = *rec
	return nil
}

func (m *mockTable[T]) FindAll(_ context.Context) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []T
	for _, rec := range m.store {
		out = append(out, rec)
	}
	return out, nil
}

func (m *mockTable[T]) FindByID(_ context.Context, id string) (*T, error) {
	m.findCalls++
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *mockTable[T]) Update(_ context.Context, rec *T) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.store[m.idOf(rec)]; !ok {
		return repository.ErrNoRowsAffected
	}
	m.store[m.idOf(rec)] = *rec
	return nil
}

func (m *mockTable[T]) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.store[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(m.store, id)
	return nil
}

func drugID(d *entity.Drug) string                 { return d.ID }
func insuranceID(i *entity.Insurance) string       { return i.ID }
func prescriptionID(p *entity.Prescription) string { return p.ID }
func visitID(v *entity.Visit) string               { return v.ID }

// --- operators ---

type mockUserRepo struct {
	byEmail map[string]*entity.User
	err     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type mockRoleRepo struct{}

func (mockRoleRepo) FindByName(_ context.Context, name string) (*entity.Role, error) {
	switch name {
	case entity.RoleAdmin:
		return &entity.Role{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin}, nil
	case entity.RoleClerk:
		return &entity.Role{ID: entity.RoleIDClerk, RoleName: entity.RoleClerk}, nil
	}
	return nil, nil
}

type mockTokens struct {
	live map[string]bool
}

func newMockTokens() *mockTokens {
	return &mockTokens{live: make(map[string]bool)}
}

func tokenKey(kind string, userID uuid.UUID, tokenID string) string {
	return kind + ":" + userID.String() + ":" + tokenID
}

func (m *mockTokens) Register(_ context.Context, kind string, userID uuid.UUID, tokenID string, _ time.Duration) error {
	m.live[tokenKey(kind, userID, tokenID)] = true
	return nil
}

func (m *mockTokens) Exists(_ context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	return m.live[tokenKey(kind, userID, tokenID)], nil
}

func (m *mockTokens) Revoke(_ context.Context, kind string, userID uuid.UUID, tokenID string) error {
	delete(m.live, tokenKey(kind, userID, tokenID))
	return nil
}
