package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/validation"
)

var (
	// ErrNotFound: identidad referenciada por path ausente en storage.
	ErrNotFound = errors.New("owner not found")
	// ErrConstraint: rechazo de integridad a nivel storage (inesperado si
	// la validación hizo su trabajo).
	ErrConstraint = errors.New("constraint violation")
)

// PageSize es el tamaño fijo de página de la búsqueda por apellido.
const PageSize = 5

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type OwnerInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

type PetInput struct {
	Name      string
	BirthDate time.Time // zero = no vino en el form
	Type      string    // nombre del tipo (el form postea el nombre, no el id)
}

type VisitInput struct {
	Date        time.Time // zero = default hoy
	Description string
}

// Create valida (reglas declarativas solamente) y persiste un Owner nuevo.
// Si hay errores de campo devuelve validation.Errors y no toca el storage.
func (s *Service) Create(ctx context.Context, in OwnerInput) (Owner, error) {
	o := ownerFromInput(in)

	if errs := validateOwner(o); errs.Any() {
		return Owner{}, errs
	}

	if err := s.repo.Save(ctx, &o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// Update carga el Owner del path (ErrNotFound si no existe), aplica los
// campos del form y guarda. La identidad del path manda: lo que venga en el
// payload no puede re-apuntar la entidad (anti-tampering de ids ocultos).
func (s *Service) Update(ctx context.Context, id int64, in OwnerInput) (Owner, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	updated := ownerFromInput(in)
	if errs := validateOwner(updated); errs.Any() {
		return Owner{}, errs
	}

	current.Person = updated.Person
	current.Address = updated.Address
	current.City = updated.City
	current.Telephone = updated.Telephone
	current.ID = entity.NewID(id) // identidad inmutable, siempre la del path

	if err := s.repo.Save(ctx, &current); err != nil {
		return Owner{}, err
	}
	return current, nil
}

// Get carga el Owner con su grafo completo (pets + visits).
func (s *Service) Get(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByLastName pagina owners cuyo apellido empieza con prefix.
// prefix vacío lista todos. page es 1-based; fuera de rango devuelve la
// página vacía con sus totales (no es error).
func (s *Service) FindByLastName(ctx context.Context, prefix string, page int) (OwnerPage, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.FindByLastNamePrefix(ctx, strings.TrimSpace(prefix), page, PageSize)
}

// PetTypes expone el lookup ordenado por nombre (para armar el form).
func (s *Service) PetTypes(ctx context.Context) ([]PetType, error) {
	return s.repo.PetTypes(ctx)
}

// AddPet valida la mascota nueva (reglas del validador + duplicado +
// fecha futura), la agrega a la colección del Owner y re-guarda el agregado
// completo (save cascadeado).
func (s *Service) AddPet(ctx context.Context, ownerID int64, in PetInput) (Owner, error) {
	owner, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return Owner{}, err
	}

	pet := Pet{
		Named:     entity.Named{Name: strings.TrimSpace(in.Name)},
		BirthDate: in.BirthDate,
	}

	errs := validatePet(pet, in.Type, true)

	if typeName := strings.TrimSpace(in.Type); typeName != "" {
		pt, err := s.petTypeByName(ctx, typeName)
		switch {
		case errors.Is(err, ErrNotFound):
			errs.Add("type", validation.CodeNotFound, "unknown pet type")
		case err != nil:
			return Owner{}, err
		default:
			pet.Type = pt
		}
	}

	// Duplicado: solo contra mascotas ya persistidas del mismo owner.
	if pet.Name != "" && owner.PetByName(pet.Name, true) != nil {
		errs.Add("name", validation.CodeDuplicate, "already in use")
	}

	if !pet.BirthDate.IsZero() && pet.BirthDate.After(s.today()) {
		errs.Add("birthDate", validation.CodeFutureDate, "must not be in the future")
	}

	if errs.Any() {
		return Owner{}, errs
	}

	owner.AddPet(pet)
	if err := s.repo.Save(ctx, &owner); err != nil {
		return Owner{}, err
	}
	return owner, nil
}

// UpdatePet aplica el form sobre una mascota existente del Owner y
// re-guarda el agregado. La mascota editada no colisiona consigo misma en
// el chequeo de duplicados.
func (s *Service) UpdatePet(ctx context.Context, ownerID, petID int64, in PetInput) (Owner, error) {
	owner, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return Owner{}, err
	}

	pet := owner.Pet(petID)
	if pet == nil {
		return Owner{}, ErrNotFound
	}

	name := strings.TrimSpace(in.Name)
	next := Pet{
		ID:        pet.ID,
		Named:     entity.Named{Name: name},
		BirthDate: in.BirthDate,
		Type:      pet.Type, // si el form no manda tipo, se conserva
		Visits:    pet.Visits,
	}

	errs := validatePet(next, in.Type, false)

	if typeName := strings.TrimSpace(in.Type); typeName != "" {
		pt, err := s.petTypeByName(ctx, typeName)
		switch {
		case errors.Is(err, ErrNotFound):
			errs.Add("type", validation.CodeNotFound, "unknown pet type")
		case err != nil:
			return Owner{}, err
		default:
			next.Type = pt
		}
	}

	if name != "" {
		if dup := owner.PetByName(name, false); dup != nil && dup.ID != next.ID {
			errs.Add("name", validation.CodeDuplicate, "already in use")
		}
	}

	if !next.BirthDate.IsZero() && next.BirthDate.After(s.today()) {
		errs.Add("birthDate", validation.CodeFutureDate, "must not be in the future")
	}

	if errs.Any() {
		return Owner{}, errs
	}

	*pet = next
	if err := s.repo.Save(ctx, &owner); err != nil {
		return Owner{}, err
	}
	return owner, nil
}

// AddVisit agenda una visita para la mascota indicada del Owner y
// re-guarda el agregado. La fecha default es hoy.
func (s *Service) AddVisit(ctx context.Context, ownerID, petID int64, in VisitInput) (Owner, error) {
	owner, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return Owner{}, err
	}

	if owner.Pet(petID) == nil {
		return Owner{}, ErrNotFound
	}

	v := Visit{
		Date:        in.Date,
		Description: strings.TrimSpace(in.Description),
	}
	if v.Date.IsZero() {
		v.Date = s.today()
	}

	if errs := validateVisit(v); errs.Any() {
		return Owner{}, errs
	}

	owner.AddVisit(petID, v)
	if err := s.repo.Save(ctx, &owner); err != nil {
		return Owner{}, err
	}
	return owner, nil
}

// Today expone el "hoy" del servicio (los forms lo usan como fecha default).
func (s *Service) Today() time.Time {
	return s.today()
}

// today normaliza "hoy" a medianoche UTC, igual que las fechas parseadas
// de los forms (YYYY-MM-DD), para que la comparación de futuro sea por día.
func (s *Service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// petTypeByName resuelve el tipo por nombre contra el lookup completo
// (case-insensitive; el set es chico y cerrado, el scan lineal alcanza).
func (s *Service) petTypeByName(ctx context.Context, name string) (PetType, error) {
	types, err := s.repo.PetTypes(ctx)
	if err != nil {
		return PetType{}, err
	}
	for _, t := range types {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return PetType{}, ErrNotFound
}

func ownerFromInput(in OwnerInput) Owner {
	return Owner{
		Person: entity.Person{
			FirstName: strings.TrimSpace(in.FirstName),
			LastName:  strings.TrimSpace(in.LastName),
		},
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Telephone: strings.TrimSpace(in.Telephone),
	}
}
