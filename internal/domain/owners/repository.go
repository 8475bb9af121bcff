package owners

import "context"

// Repository es el contrato de persistencia del agregado Owner más el
// lookup de PetTypes. Lo implementan los adapters postgres y memory.
type Repository interface {
	// Save inserta si la identidad es nueva, actualiza si no. Cascadea el
	// grafo completo (Owner -> Pets -> Visits) en una unidad atómica:
	// o se persiste todo o nada. Asigna identidades sobre el puntero.
	// Campos requeridos en blanco a nivel storage => ErrConstraint.
	Save(ctx context.Context, o *Owner) error

	// GetByID carga el Owner con su grafo completo. ErrNotFound si no hay fila.
	GetByID(ctx context.Context, id int64) (Owner, error)

	// FindByLastNamePrefix pagina owners cuyo apellido empieza con prefix
	// (case-sensitive según collation). page es 1-based en el borde del
	// handler; el adapter lo convierte a offset 0-based. Página vacía (no
	// error) cuando no hay matches.
	FindByLastNamePrefix(ctx context.Context, prefix string, page, size int) (OwnerPage, error)

	// PetTypes devuelve el lookup completo ordenado por nombre asc.
	PetTypes(ctx context.Context) ([]PetType, error)
}

// OwnerPage es una página de resultados de búsqueda con sus totales.
type OwnerPage struct {
	Items      []Owner
	Page       int // 1-based
	Size       int
	TotalItems int
	TotalPages int // ceil(TotalItems/Size)
}
