package screen

import (
	"context"
	"sort"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/usecase"
)

type fakeDoctors struct {
	store map[string]entity.DoctorRecord
	saved int
}

func newFakeDoctors() *fakeDoctors {
	return &fakeDoctors{store: make(map[string]entity.DoctorRecord)}
}

func (f *fakeDoctors) Add(_ context.Context, d entity.DoctorRecord) error {
	if _, ok := f.store[d.Base().ID]; ok {
		return &usecase.ValidationError{Field: "id", Message: "doctor already exists"}
	}
	f.saved++
	f.store[d.Base().ID] = d
	return nil
}

func (f *fakeDoctors) GetAll(context.Context) []entity.DoctorRecord {
	ids := make([]string, 0, len(f.store))
	for id := range f.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]entity.DoctorRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.store[id])
	}
	return out
}

func (f *fakeDoctors) GetByID(_ context.Context, id string) entity.DoctorRecord {
	return f.store[id]
}

func (f *fakeDoctors) Find(ctx context.Context, id string) (entity.DoctorRecord, error) {
	return f.GetByID(ctx, id), nil
}

func (f *fakeDoctors) Update(_ context.Context, d entity.DoctorRecord) error {
	if _, ok := f.store[d.Base().ID]; !ok {
		return usecase.ErrNotFound
	}
	f.saved++
	f.store[d.Base().ID] = d
	return nil
}

func (f *fakeDoctors) Delete(_ context.Context, id string) error {
	if _, ok := f.store[id]; !ok {
		return usecase.ErrNotFound
	}
	delete(f.store, id)
	return nil
}

// fakeTable backs any of the flat-table usecases.
type fakeTable[E any] struct {
	store  map[string]E
	idOf   func(*E) string
	assign func(*E)
}

func newFakeTable[E any](idOf func(*E) string) *fakeTable[E] {
	return &fakeTable[E]{store: make(map[string]E), idOf: idOf}
}

func (f *fakeTable[E]) Add(_ context.Context, rec *E) error {
	if f.assign != nil {
		f.assign(rec)
	}
	f.store[f.idOf(rec)] = *rec
	return nil
}

func (f *fakeTable[E]) GetAll(context.Context) []E {
	ids := make([]string, 0, len(f.store))
	for id := range f.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.store[id])
	}
	return out
}

func (f *fakeTable[E]) GetByID(_ context.Context, id string) *E {
	rec, ok := f.store[id]
	if !ok {
		return nil
	}
	return &rec
}

func (f *fakeTable[E]) Find(ctx context.Context, id string) (*E, error) {
	return f.GetByID(ctx, id), nil
}

func (f *fakeTable[E]) Update(_ context.Context, rec *E) error {
	if _, ok := f.store[f.idOf(rec)]; !ok {
		return usecase.ErrNotFound
	}
	f.store[f.idOf(rec)] = *rec
	return nil
}

func (f *fakeTable[E]) Delete(_ context.Context, id string) error {
	if _, ok := f.store[id]; !ok {
		return usecase.ErrNotFound
	}
	delete(f.store, id)
	return nil
}

type fakePatients struct {
	store map[string]entity.PatientRecord
}

func (f *fakePatients) Add(_ context.Context, p entity.PatientRecord) error {
	f.store[p.Base().ID] = p
	return nil
}

func (f *fakePatients) GetAll(context.Context) []entity.PatientRecord {
	out := make([]entity.PatientRecord, 0, len(f.store))
	for _, p := range f.store {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Base().ID < out[j].Base().ID })
	return out
}

func (f *fakePatients) GetByID(_ context.Context, id string) entity.PatientRecord {
	return f.store[id]
}

func (f *fakePatients) Find(ctx context.Context, id string) (entity.PatientRecord, error) {
	return f.GetByID(ctx, id), nil
}

func (f *fakePatients) Update(_ context.Context, p entity.PatientRecord) error {
	if _, ok := f.store[p.Base().ID]; !ok {
		return usecase.ErrNotFound
	}
	f.store[p.Base().ID] = p
	return nil
}

func (f *fakePatients) Delete(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}
