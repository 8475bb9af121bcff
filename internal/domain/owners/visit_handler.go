package owners

import (
	"encoding/json"
	"net/http"

	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/platform/flash"
)

type visitRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD, vacío = hoy
	Description string `json:"description"`
}

type visitResponse struct {
	ID          entity.ID `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
}

// visitFormResponse trae la mascota con su historial (el form muestra las
// visitas previas) y la visita nueva con la fecha ya defaulteada a hoy.
type visitFormResponse struct {
	Pet   petResponse   `json:"pet"`
	Visit visitResponse `json:"visit"`
}

func newVisitFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, pet, ok := ownerPetFromPath(w, r, svc)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, visitFormResponse{
			Pet:   toPetResponse(*pet),
			Visit: visitResponse{Date: formatDate(svc.Today())},
		})
	}
}

// createVisitHandler godoc
// @Summary Agendar una visita
// @Description Agrega una visita a la mascota del owner del path. La descripción es obligatoria; sin fecha se usa hoy. Redirige al detalle del owner con flash "Your visit has been booked".
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Param payload body visitRequest true "Visita; date en formato YYYY-MM-DD"
// @Success 302 {string} string "Location: /owners/{id}"
// @Failure 400 {string} string "invalid json / date inválida"
// @Failure 404 {string} string "not found"
// @Failure 422 {object} errorListResponse
// @Router /owners/{ownerID}/pets/{petID}/visits/new [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
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

		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		o, err := svc.AddVisit(r.Context(), ownerID, petID, VisitInput{
			Date:        date,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		flash.Set(w, "Your visit has been booked")
		http.Redirect(w, r, ownerPath(o.ID), http.StatusFound)
	}
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:          v.ID,
		Date:        formatDate(v.Date),
		Description: v.Description,
	}
}
