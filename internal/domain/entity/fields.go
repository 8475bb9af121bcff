package entity

// Grupos de campos compartidos entre entidades. No hay jerarquía:
// cada record embebe el grupo que necesita.

// Named es el grupo de campos de entidades con nombre (PetType, Specialty, Pet).
type Named struct {
	Name string
}

// Person es el grupo de campos de personas (Owner, Vet).
type Person struct {
	FirstName string
	LastName  string
}
