package owners

import (
	"regexp"
	"strings"

	"vet-clinic/internal/validation"
)

var telephoneRx = regexp.MustCompile(`^[0-9]{10}$`)

// validateOwner aplica las reglas declarativas por campo del Owner.
func validateOwner(o Owner) validation.Errors {
	var errs validation.Errors

	errs.Required("firstName", o.FirstName)
	errs.Required("lastName", o.LastName)
	errs.Required("address", o.Address)
	errs.Required("city", o.City)

	if strings.TrimSpace(o.Telephone) == "" {
		errs.Add("telephone", validation.CodeRequired, "must not be blank")
	} else if !telephoneRx.MatchString(o.Telephone) {
		errs.Add("telephone", validation.CodeInvalidFormat, "must be exactly 10 digits")
	}

	return errs
}

// validatePet aplica la regla cross-field del alta de mascotas:
// nombre requerido, tipo requerido solo si la mascota es transitoria,
// fecha de nacimiento requerida. Duplicados y fecha futura se chequean
// en el Service (camino de request, no del validador).
func validatePet(p Pet, typeName string, isNew bool) validation.Errors {
	var errs validation.Errors

	errs.Required("name", p.Name)

	if isNew && strings.TrimSpace(typeName) == "" {
		errs.Add("type", validation.CodeRequired, "must be selected")
	}

	if p.BirthDate.IsZero() {
		errs.Add("birthDate", validation.CodeRequired, "must be set")
	}

	return errs
}

// validateVisit: descripción requerida.
func validateVisit(v Visit) validation.Errors {
	var errs validation.Errors
	errs.Required("description", v.Description)
	return errs
}
