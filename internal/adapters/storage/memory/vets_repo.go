package memory

import (
	"context"
	"sync"

	"vet-clinic/internal/domain/vets"
)

// VetRepo es una lista en memoria. Se expone el tipo concreto porque el
// modo dev y los tests cargan datos con Add; el router solo usa la
// interfaz de lectura.
type VetRepo struct {
	mu    sync.RWMutex
	items []vets.Vet
}

func NewVetRepo() *VetRepo {
	return &VetRepo{items: make([]vets.Vet, 0)}
}

// Add agrega un vet tal cual viene, con su id ya asignado.
func (r *VetRepo) Add(v vets.Vet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, cloneVet(v))
}

func (r *VetRepo) FindAll(ctx context.Context) ([]vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Vet, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, cloneVet(v))
	}
	return out, nil
}

func (r *VetRepo) FindPage(ctx context.Context, page, size int) (vets.VetPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.items)
	pageCount := (total + size - 1) / size

	start := (page - 1) * size
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	out := make([]vets.Vet, 0, end-start)
	for _, v := range r.items[start:end] {
		out = append(out, cloneVet(v))
	}

	return vets.VetPage{
		Items:      out,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: pageCount,
	}, nil
}

func cloneVet(v vets.Vet) vets.Vet {
	out := v
	out.Specialties = make([]vets.Specialty, len(v.Specialties))
	copy(out.Specialties, v.Specialties)
	return out
}
