package usecase_test

import (
	"context"

	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Devuelven copias para
// que los tests verifiquen lo persistido y no el puntero que mutó el caso
// de uso.

// ─────────────────────────────────────────────────────────────────────────────
// Sedes
// ─────────────────────────────────────────────────────────────────────────────

type fakeSedeRepo struct {
	items map[string]*entity.Sede
}

func newFakeSedeRepo() *fakeSedeRepo {
	return &fakeSedeRepo{items: map[string]*entity.Sede{}}
}

func (f *fakeSedeRepo) List(activa *bool) ([]*entity.Sede, error) {
	var out []*entity.Sede
	for _, s := range f.items {
		if activa != nil && s.Activa != *activa {
			continue
		}
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeSedeRepo) GetByID(id string) (*entity.Sede, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (f *fakeSedeRepo) Create(s *entity.Sede) error {
	for _, existing := range f.items {
		if existing.Codigo == s.Codigo {
			return domain.ErrDuplicate
		}
	}
	c := *s
	f.items[s.ID] = &c
	return nil
}

func (f *fakeSedeRepo) Update(s *entity.Sede) error {
	for id, existing := range f.items {
		if id != s.ID && existing.Codigo == s.Codigo {
			return domain.ErrDuplicate
		}
	}
	if _, ok := f.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *s
	f.items[s.ID] = &c
	return nil
}

func (f *fakeSedeRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Recursos
// ─────────────────────────────────────────────────────────────────────────────

type fakeResourceRepo struct {
	items map[string]*entity.Resource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{items: map[string]*entity.Resource{}}
}

func (f *fakeResourceRepo) List(sedeID, resourceType *string) ([]*entity.Resource, error) {
	var out []*entity.Resource
	for _, r := range f.items {
		if sedeID != nil && !r.IsPhase() && (r.SedeID == nil || *r.SedeID != *sedeID) {
			continue
		}
		if resourceType != nil && r.Type != *resourceType {
			continue
		}
		c := *r
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeResourceRepo) GetByID(id string) (*entity.Resource, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (f *fakeResourceRepo) Create(r *entity.Resource) error {
	c := *r
	f.items[r.ID] = &c
	return nil
}

func (f *fakeResourceRepo) Update(r *entity.Resource) error {
	if _, ok := f.items[r.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *r
	f.items[r.ID] = &c
	return nil
}

func (f *fakeResourceRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// fakeResourceTx ejecuta el callback directo contra el fake, sin transacción.
type fakeResourceTx struct {
	repo *fakeResourceRepo
}

func (f *fakeResourceTx) RunResource(_ context.Context, fn func(repository.ResourceRepository) error) error {
	return fn(f.repo)
}

// ─────────────────────────────────────────────────────────────────────────────
// Entradas de servicio
// ─────────────────────────────────────────────────────────────────────────────

type fakeServiceEntryRepo struct {
	items map[string]*entity.ServiceEntry
}

func newFakeServiceEntryRepo() *fakeServiceEntryRepo {
	return &fakeServiceEntryRepo{items: map[string]*entity.ServiceEntry{}}
}

func (f *fakeServiceEntryRepo) List(sedeID, estado *string) ([]*entity.ServiceEntry, error) {
	var out []*entity.ServiceEntry
	for _, e := range f.items {
		if sedeID != nil && (e.SedeID == nil || *e.SedeID != *sedeID) {
			continue
		}
		if estado != nil && e.Estado != *estado {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeServiceEntryRepo) GetByID(id string) (*entity.ServiceEntry, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (f *fakeServiceEntryRepo) Create(e *entity.ServiceEntry) error {
	c := *e
	f.items[e.ID] = &c
	return nil
}

func (f *fakeServiceEntryRepo) Update(e *entity.ServiceEntry) error {
	if _, ok := f.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *e
	f.items[e.ID] = &c
	return nil
}

func (f *fakeServiceEntryRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Cotizaciones
// ─────────────────────────────────────────────────────────────────────────────

type fakeQuoteEntryRepo struct {
	items map[string]*entity.QuoteEntry
}

func newFakeQuoteEntryRepo() *fakeQuoteEntryRepo {
	return &fakeQuoteEntryRepo{items: map[string]*entity.QuoteEntry{}}
}

func (f *fakeQuoteEntryRepo) List(sedeID, estado *string) ([]*entity.QuoteEntry, error) {
	var out []*entity.QuoteEntry
	for _, q := range f.items {
		if sedeID != nil && (q.SedeID == nil || *q.SedeID != *sedeID) {
			continue
		}
		if estado != nil && q.Estado != *estado {
			continue
		}
		c := *q
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeQuoteEntryRepo) GetByID(id string) (*entity.QuoteEntry, error) {
	q, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	c := *q
	return &c, nil
}

func (f *fakeQuoteEntryRepo) Create(q *entity.QuoteEntry) error {
	c := *q
	f.items[q.ID] = &c
	return nil
}

func (f *fakeQuoteEntryRepo) Update(q *entity.QuoteEntry) error {
	if _, ok := f.items[q.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *q
	f.items[q.ID] = &c
	return nil
}

func (f *fakeQuoteEntryRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Asignaciones
// ─────────────────────────────────────────────────────────────────────────────

type fakeAssignmentRepo struct {
	items map[string]*entity.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{items: map[string]*entity.Assignment{}}
}

func (f *fakeAssignmentRepo) List(filter repository.AssignmentFilter) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range f.items {
		if filter.ServiceEntryID != nil && a.ServiceEntryID != *filter.ServiceEntryID {
			continue
		}
		if filter.ResourceID != nil && a.ResourceID != *filter.ResourceID {
			continue
		}
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		if filter.From != nil && a.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && filter.To.Before(a.Date) {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Create(a *entity.Assignment) error {
	for _, existing := range f.items {
		if existing.ServiceEntryID == a.ServiceEntryID &&
			existing.ResourceID == a.ResourceID &&
			existing.Date == a.Date {
			return domain.ErrDuplicate
		}
	}
	c := *a
	f.items[a.ID] = &c
	return nil
}

func (f *fakeAssignmentRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Asignaciones de cotización
// ─────────────────────────────────────────────────────────────────────────────

type fakeQuoteAssignmentRepo struct {
	items map[string]*entity.QuoteAssignment
}

func newFakeQuoteAssignmentRepo() *fakeQuoteAssignmentRepo {
	return &fakeQuoteAssignmentRepo{items: map[string]*entity.QuoteAssignment{}}
}

func (f *fakeQuoteAssignmentRepo) List(filter repository.QuoteAssignmentFilter) ([]*entity.QuoteAssignment, error) {
	var out []*entity.QuoteAssignment
	for _, a := range f.items {
		if filter.QuoteEntryID != nil && a.QuoteEntryID != *filter.QuoteEntryID {
			continue
		}
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.From != nil && a.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && filter.To.Before(a.Date) {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeQuoteAssignmentRepo) Upsert(a *entity.QuoteAssignment) error {
	for _, existing := range f.items {
		if existing.QuoteEntryID == a.QuoteEntryID && existing.Date == a.Date {
			existing.Status = a.Status
			existing.UpdatedAt = a.UpdatedAt
			*a = *existing
			return nil
		}
	}
	c := *a
	f.items[a.ID] = &c
	return nil
}

func (f *fakeQuoteAssignmentRepo) UpdateStatus(id, status string) (*entity.QuoteAssignment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	a.Status = status
	c := *a
	return &c, nil
}

func (f *fakeQuoteAssignmentRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func strPtr(s string) *string { return &s }
