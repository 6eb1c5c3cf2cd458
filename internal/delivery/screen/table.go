package screen

import "context"

// tableUsecase is the shape of the flat-table services, which list values
// but add and fetch pointers.
type tableUsecase[E any] interface {
	Add(ctx context.Context, rec *E) error
	GetAll(ctx context.Context) []E
	GetByID(ctx context.Context, id string) *E
	Find(ctx context.Context, id string) (*E, error)
	Update(ctx context.Context, rec *E) error
	Delete(ctx context.Context, id string) error
}

// pointers adapts a tableUsecase to service[*E].
type pointers[E any] struct {
	tableUsecase[E]
}

func (p pointers[E]) GetAll(ctx context.Context) []*E {
	recs := p.tableUsecase.GetAll(ctx)
	out := make([]*E, len(recs))
	for i := range recs {
		out[i] = &recs[i]
	}
	return out
}
