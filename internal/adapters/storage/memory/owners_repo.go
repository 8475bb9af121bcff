package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/domain/owners"
)

// ownerRepo guarda el aggregate completo (owner + pets + visits) en un map
// protegido por RWMutex. Todo entra y sale clonado para evitar aliasing con
// el caller; el commit es el reemplazo del valor en el map, así un Save que
// falla a mitad no deja estado parcial.
type ownerRepo struct {
	mu        sync.RWMutex
	byID      map[int64]owners.Owner
	types     []owners.PetType
	nextOwner int64
	nextPet   int64
	nextVisit int64
}

// NewOwnerRepo crea el repo in-memory con los tipos de mascota clásicos ya
// cargados (en Postgres los carga seed.sql).
func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID: make(map[int64]owners.Owner),
		types: []owners.PetType{
			{ID: entity.NewID(1), Named: entity.Named{Name: "cat"}},
			{ID: entity.NewID(2), Named: entity.Named{Name: "dog"}},
			{ID: entity.NewID(3), Named: entity.Named{Name: "lizard"}},
			{ID: entity.NewID(4), Named: entity.Named{Name: "snake"}},
			{ID: entity.NewID(5), Named: entity.Named{Name: "bird"}},
			{ID: entity.NewID(6), Named: entity.Named{Name: "hamster"}},
		},
	}
}

func (r *ownerRepo) Save(ctx context.Context, o *owners.Owner) error {
	if err := checkConstraints(o); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !o.ID.IsNew() {
		if _, ok := r.byID[o.ID.Int64()]; !ok {
			return owners.ErrNotFound
		}
	}
	for i := range o.Pets {
		if !r.typeExists(o.Pets[i].Type.ID) {
			// FK análogo: el tipo tiene que existir en la tabla de tipos
			return owners.ErrConstraint
		}
	}

	saved := cloneOwner(*o)
	if saved.ID.IsNew() {
		r.nextOwner++
		saved.ID = entity.NewID(r.nextOwner)
	}
	for i := range saved.Pets {
		p := &saved.Pets[i]
		if p.ID.IsNew() {
			r.nextPet++
			p.ID = entity.NewID(r.nextPet)
		}
		for j := range p.Visits {
			v := &p.Visits[j]
			if v.ID.IsNew() {
				r.nextVisit++
				v.ID = entity.NewID(r.nextVisit)
			}
		}
	}

	r.byID[saved.ID.Int64()] = saved

	// El caller se queda con los ids ya asignados, igual que con RETURNING.
	*o = cloneOwner(saved)
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}

	out := cloneOwner(o)
	sortGraph(&out)
	return out, nil
}

func (r *ownerRepo) FindByLastNamePrefix(ctx context.Context, prefix string, page, size int) (owners.OwnerPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if strings.HasPrefix(o.LastName, prefix) {
			matched = append(matched, cloneOwner(o))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].LastName != matched[j].LastName {
			return matched[i].LastName < matched[j].LastName
		}
		return matched[i].ID.Int64() < matched[j].ID.Int64()
	})

	total := len(matched)
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

	items := matched[start:end]
	for i := range items {
		sortGraph(&items[i])
	}

	return owners.OwnerPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: pageCount,
	}, nil
}

func (r *ownerRepo) PetTypes(ctx context.Context) ([]owners.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.PetType, len(r.types))
	copy(out, r.types)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ownerRepo) typeExists(id entity.ID) bool {
	n, ok := id.Value()
	if !ok {
		return false
	}
	for _, t := range r.types {
		if t.ID.Int64() == n {
			return true
		}
	}
	return false
}

// checkConstraints replica los NOT NULL del schema. Es la misma clase de
// falla que un integrity violation de Postgres y mapea al mismo sentinel.
func checkConstraints(o *owners.Owner) error {
	if blank(o.FirstName) || blank(o.LastName) || blank(o.Address) || blank(o.City) || blank(o.Telephone) {
		return owners.ErrConstraint
	}
	for _, p := range o.Pets {
		if blank(p.Name) || p.BirthDate.IsZero() {
			return owners.ErrConstraint
		}
		for _, v := range p.Visits {
			if blank(v.Description) || v.Date.IsZero() {
				return owners.ErrConstraint
			}
		}
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// cloneOwner copia el grafo completo; los campos son valores, basta con
// re-crear los slices.
func cloneOwner(o owners.Owner) owners.Owner {
	out := o
	out.Pets = make([]owners.Pet, len(o.Pets))
	for i, p := range o.Pets {
		cp := p
		cp.Visits = make([]owners.Visit, len(p.Visits))
		copy(cp.Visits, p.Visits)
		out.Pets[i] = cp
	}
	return out
}

// sortGraph deja pets por nombre asc y visits por fecha asc, el mismo orden
// que el ORDER BY del adapter de Postgres.
func sortGraph(o *owners.Owner) {
	sort.Slice(o.Pets, func(i, j int) bool {
		if o.Pets[i].Name != o.Pets[j].Name {
			return o.Pets[i].Name < o.Pets[j].Name
		}
		return o.Pets[i].ID.Int64() < o.Pets[j].ID.Int64()
	})
	for i := range o.Pets {
		vs := o.Pets[i].Visits
		sort.Slice(vs, func(a, b int) bool {
			if !vs[a].Date.Equal(vs[b].Date) {
				return vs[a].Date.Before(vs[b].Date)
			}
			return vs[a].ID.Int64() < vs[b].ID.Int64()
		})
	}
}
