package owners

import (
	"encoding/json"
	"net/http"

	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/platform/flash"
)

type petRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	Type      string `json:"type"`      // nombre del tipo, como lo postea el select del form
}

type petResponse struct {
	ID        entity.ID       `json:"id"`
	Name      string          `json:"name"`
	BirthDate string          `json:"birthDate"`
	Type      petTypeResponse `json:"type"`
	Visits    []visitResponse `json:"visits"`
}

type petTypeResponse struct {
	ID   entity.ID `json:"id"`
	Name string    `json:"name"`
}

// petFormResponse es el modelo del form de alta/edición: el owner dueño,
// la mascota (vacía o precargada) y el lookup de tipos para el select.
type petFormResponse struct {
	Owner ownerResponse     `json:"owner"`
	Pet   petResponse       `json:"pet"`
	Types []petTypeResponse `json:"types"`
}

func newPetFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(r, "ownerID")
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		o, err := svc.Get(r.Context(), ownerID)
		if err != nil {
			writeError(w, err)
			return
		}
		types, err := svc.PetTypes(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, petFormResponse{
			Owner: toOwnerResponse(o),
			Pet:   toPetResponse(Pet{}),
			Types: toTypeResponses(types),
		})
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(r, "ownerID")
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		in, ok := decodePetRequest(w, r)
		if !ok {
			return
		}

		o, err := svc.AddPet(r.Context(), ownerID, in)
		if err != nil {
			writeError(w, err)
			return
		}

		flash.Set(w, "New Pet has been Added")
		http.Redirect(w, r, ownerPath(o.ID), http.StatusFound)
	}
}

func editPetFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, pet, ok := ownerPetFromPath(w, r, svc)
		if !ok {
			return
		}
		types, err := svc.PetTypes(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, petFormResponse{
			Owner: toOwnerResponse(o),
			Pet:   toPetResponse(*pet),
			Types: toTypeResponses(types),
		})
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(r, "ownerID")
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		petID, ok := pathID(r, "petID")
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		in, ok := decodePetRequest(w, r)
		if !ok {
			return
		}

		o, err := svc.UpdatePet(r.Context(), ownerID, petID, in)
		if err != nil {
			writeError(w, err)
			return
		}

		flash.Set(w, "Pet details has been edited")
		http.Redirect(w, r, ownerPath(o.ID), http.StatusFound)
	}
}

// decodePetRequest decodifica y parsea la fecha del form. Escribe la
// respuesta de error y devuelve ok=false si el body no sirve.
func decodePetRequest(w http.ResponseWriter, r *http.Request) (PetInput, bool) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return PetInput{}, false
	}

	bd, err := parseDate(req.BirthDate)
	if err != nil {
		http.Error(w, "birthDate must be YYYY-MM-DD", http.StatusBadRequest)
		return PetInput{}, false
	}

	return PetInput{
		Name:      req.Name,
		BirthDate: bd,
		Type:      req.Type,
	}, true
}

// ownerPetFromPath resuelve owner + pet del path, cuidando que la mascota
// pertenezca de verdad a ese owner (si no, 404).
func ownerPetFromPath(w http.ResponseWriter, r *http.Request, svc *Service) (Owner, *Pet, bool) {
	ownerID, ok := pathID(r, "ownerID")
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return Owner{}, nil, false
	}
	petID, ok := pathID(r, "petID")
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return Owner{}, nil, false
	}

	o, err := svc.Get(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return Owner{}, nil, false
	}

	pet := o.Pet(petID)
	if pet == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return Owner{}, nil, false
	}
	return o, pet, true
}

func toPetResponse(p Pet) petResponse {
	visits := make([]visitResponse, 0, len(p.Visits))
	for _, v := range p.Visits {
		visits = append(visits, toVisitResponse(v))
	}
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: formatDate(p.BirthDate),
		Type:      petTypeResponse{ID: p.Type.ID, Name: p.Type.Name},
		Visits:    visits,
	}
}

func toTypeResponses(types []PetType) []petTypeResponse {
	out := make([]petTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, petTypeResponse{ID: t.ID, Name: t.Name})
	}
	return out
}
