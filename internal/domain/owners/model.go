package owners

import (
	"strings"
	"time"

	"vet-clinic/internal/domain/entity"
)

// Owner es la raíz del agregado: guardar un Owner persiste también sus Pets
// y, transitivamente, sus Visits, en una sola unidad de trabajo.
type Owner struct {
	ID entity.ID
	entity.Person

	Address   string
	City      string
	Telephone string // exactamente 10 dígitos

	// Pets viene siempre completo al cargar (no hay vista parcial/lazy).
	// Orden: nombre asc, case-sensitive según collation del storage.
	Pets []Pet
}

// Pet pertenece a un Owner y referencia exactamente un PetType.
type Pet struct {
	ID entity.ID
	entity.Named

	BirthDate time.Time // zero = sin setear; nunca en el futuro
	Type      PetType

	// Visits orden: fecha asc. Append-only desde los handlers.
	Visits []Visit
}

// PetType es un lookup chico y cerrado (cat, dog, lizard, ...), pre-seedeado.
type PetType struct {
	ID entity.ID
	entity.Named
}

// Visit es una consulta registrada para un Pet.
type Visit struct {
	ID entity.ID

	Date        time.Time // default: el día de creación
	Description string
}

// AddPet agrega la mascota a la colección en memoria (se persiste recién
// con el Save del Owner).
func (o *Owner) AddPet(p Pet) {
	o.Pets = append(o.Pets, p)
}

// Pet busca por identidad dentro de la colección. nil si no está.
func (o *Owner) Pet(id int64) *Pet {
	for i := range o.Pets {
		if !o.Pets[i].ID.IsNew() && o.Pets[i].ID.Int64() == id {
			return &o.Pets[i]
		}
	}
	return nil
}

// PetByName busca por nombre (case-insensitive). Con ignoreNew=true solo
// considera mascotas ya persistidas; se usa para el chequeo de duplicados
// en alta (una mascota en edición no colisiona consigo misma).
func (o *Owner) PetByName(name string, ignoreNew bool) *Pet {
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range o.Pets {
		p := &o.Pets[i]
		if ignoreNew && p.ID.IsNew() {
			continue
		}
		if strings.ToLower(p.Name) == want {
			return p
		}
	}
	return nil
}

// AddVisit agrega la visita a la mascota indicada. false si la mascota no
// está en la colección.
func (o *Owner) AddVisit(petID int64, v Visit) bool {
	p := o.Pet(petID)
	if p == nil {
		return false
	}
	p.Visits = append(p.Visits, v)
	return true
}
