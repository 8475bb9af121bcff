package vets

import (
	"context"

	"vet-clinic/internal/platform/cache"
)

// PageSize es el tamaño fijo de página del listado html.
const PageSize = 5

// Service sirve el listado de vets a través del cache read-through: una
// clave para la colección completa y una clave por parámetros de página.
// No hay invalidación porque no hay camino de mutación de vets; el dato
// queda stale hasta reinicio del proceso.
type Service struct {
	repo  Repository
	list  *cache.Region[[]Vet]
	pages *cache.Region[VetPage]
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		list:  cache.NewRegion[[]Vet](),
		pages: cache.NewRegion[VetPage](),
	}
}

// List devuelve todos los vets, especialidades ordenadas por nombre asc.
func (s *Service) List(ctx context.Context) ([]Vet, error) {
	return s.list.GetOrFetch(ctx, cache.Key("FindAll"), func(ctx context.Context) ([]Vet, error) {
		items, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		sortSpecialties(items)
		return items, nil
	})
}

// Page devuelve la página pedida (1-based, tamaño fijo) con totales.
func (s *Service) Page(ctx context.Context, page int) (VetPage, error) {
	if page < 1 {
		page = 1
	}
	key := cache.Key("FindPage", page, PageSize)
	return s.pages.GetOrFetch(ctx, key, func(ctx context.Context) (VetPage, error) {
		vp, err := s.repo.FindPage(ctx, page, PageSize)
		if err != nil {
			return VetPage{}, err
		}
		sortSpecialties(vp.Items)
		return vp, nil
	})
}
