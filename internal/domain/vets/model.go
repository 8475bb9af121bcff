package vets

import (
	"sort"

	"vet-clinic/internal/domain/entity"
)

// Vet es un veterinario de la clínica. No hay camino de mutación expuesto:
// el dato es de referencia, se seedea por script.
type Vet struct {
	ID entity.ID
	entity.Person

	// Specialties puede venir vacío. El storage no garantiza orden; se
	// presenta siempre ordenado por nombre asc (ver Service).
	Specialties []Specialty
}

// Specialty es un lookup compartido entre vets (relación many-to-many).
type Specialty struct {
	ID entity.ID
	entity.Named
}

// sortSpecialties ordena in-place las especialidades de cada vet.
func sortSpecialties(items []Vet) {
	for i := range items {
		sort.Slice(items[i].Specialties, func(a, b int) bool {
			return items[i].Specialties[a].Name < items[i].Specialties[b].Name
		})
	}
}
