package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/platform/flash"
	"vet-clinic/internal/validation"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", searchOwnersHandler(svc))
		or.Get("/new", newOwnerFormHandler())
		or.Post("/new", createOwnerHandler(svc))
		or.Get("/find", findOwnerFormHandler())

		or.Route("/{ownerID}", func(od chi.Router) {
			od.Get("/", ownerDetailHandler(svc))
			od.Get("/edit", editOwnerFormHandler(svc))
			od.Post("/edit", updateOwnerHandler(svc))

			// pets y visitas del owner (pet_handler.go / visit_handler.go)
			od.Get("/pets/new", newPetFormHandler(svc))
			od.Post("/pets/new", createPetHandler(svc))
			od.Get("/pets/{petID}/edit", editPetFormHandler(svc))
			od.Post("/pets/{petID}/edit", updatePetHandler(svc))
			od.Get("/pets/{petID}/visits/new", newVisitFormHandler(svc))
			od.Post("/pets/{petID}/visits/new", createVisitHandler(svc))
		})
	})
}

type ownerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

type ownerResponse struct {
	ID        entity.ID     `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Telephone string        `json:"telephone"`
	Pets      []petResponse `json:"pets"`
}

// ownerDetailResponse agrega el flash one-shot del redirect anterior.
type ownerDetailResponse struct {
	ownerResponse
	Message string `json:"message,omitempty"`
}

type ownerPageResponse struct {
	Items      []ownerResponse `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
}

type findOwnerFormResponse struct {
	LastName string `json:"lastName"`
}

type errorListResponse struct {
	Errors validation.Errors `json:"errors"`
}

// newOwnerFormHandler godoc
// @Summary Form de alta de owner
// @Description Devuelve el modelo vacío del form de creación.
// @Tags owners
// @Produce json
// @Success 200 {object} ownerResponse
// @Router /owners/new [get]
func newOwnerFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toOwnerResponse(Owner{}))
	}
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Description Valida las reglas declarativas y persiste. Con errores de campo responde 422 y no guarda nada; si crea, redirige al detalle con flash "New Owner Created".
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del owner"
// @Success 302 {string} string "Location: /owners/{id}"
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} errorListResponse
// @Router /owners/new [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}

		flash.Set(w, "New Owner Created")
		http.Redirect(w, r, ownerPath(o.ID), http.StatusFound)
	}
}

// findOwnerFormHandler godoc
// @Summary Form de búsqueda de owners
// @Tags owners
// @Produce json
// @Success 200 {object} findOwnerFormResponse
// @Router /owners/find [get]
func findOwnerFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, findOwnerFormResponse{})
	}
}

// searchOwnersHandler godoc
// @Summary Buscar owners por prefijo de apellido
// @Description Sin matches responde 422 con error not-found sobre lastName. Con exactamente un match redirige directo al detalle. Con varios devuelve la página pedida con totales.
// @Tags owners
// @Produce json
// @Param lastName query string false "Prefijo de apellido (vacío lista todos)"
// @Param page query int false "Página 1-based, tamaño fijo 5"
// @Success 200 {object} ownerPageResponse
// @Success 302 {string} string "match único: Location al detalle"
// @Failure 400 {string} string "page inválida"
// @Failure 422 {object} errorListResponse
// @Router /owners [get]
func searchOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastName := r.URL.Query().Get("lastName")

		page := 1
		if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
			p, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "page must be a number", http.StatusBadRequest)
				return
			}
			page = p
		}

		result, err := svc.FindByLastName(r.Context(), lastName, page)
		if err != nil {
			writeError(w, err)
			return
		}

		switch {
		case result.TotalItems == 0:
			var errs validation.Errors
			errs.Add("lastName", validation.CodeNotFound, "not found")
			writeJSON(w, http.StatusUnprocessableEntity, errorListResponse{Errors: errs})
		case result.TotalItems == 1 && len(result.Items) == 1:
			http.Redirect(w, r, ownerPath(result.Items[0].ID), http.StatusFound)
		default:
			writeJSON(w, http.StatusOK, toOwnerPageResponse(result))
		}
	}
}

// ownerDetailHandler godoc
// @Summary Detalle de un owner
// @Description Devuelve el grafo completo (pets con sus visitas) y consume el flash pendiente si lo hay.
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {object} ownerDetailResponse
// @Failure 404 {string} string "not found"
// @Router /owners/{ownerID} [get]
func ownerDetailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerID")
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		o, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := ownerDetailResponse{ownerResponse: toOwnerResponse(o)}
		resp.Message = flash.Take(w, r)
		writeJSON(w, http.StatusOK, resp)
	}
}

// editOwnerFormHandler godoc
// @Summary Form de edición de owner
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string "not found"
// @Router /owners/{ownerID}/edit [get]
func editOwnerFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerID")
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		o, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar owner
// @Description La identidad la fija el path; un id distinto en el payload se ignora. Redirige al detalle con flash "Owner Values Updated".
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param payload body ownerRequest true "Datos del owner"
// @Success 302 {string} string "Location: /owners/{id}"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "not found"
// @Failure 422 {object} errorListResponse
// @Router /owners/{ownerID}/edit [post]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerID")
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}

		flash.Set(w, "Owner Values Updated")
		http.Redirect(w, r, ownerPath(o.ID), http.StatusFound)
	}
}

func (req ownerRequest) toInput() OwnerInput {
	return OwnerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Telephone: req.Telephone,
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	pets := make([]petResponse, 0, len(o.Pets))
	for _, p := range o.Pets {
		pets = append(pets, toPetResponse(p))
	}
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      pets,
	}
}

func toOwnerPageResponse(p OwnerPage) ownerPageResponse {
	items := make([]ownerResponse, 0, len(p.Items))
	for _, o := range p.Items {
		items = append(items, toOwnerResponse(o))
	}
	return ownerPageResponse{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

func ownerPath(id entity.ID) string {
	return "/owners/" + strconv.FormatInt(id.Int64(), 10)
}

// pathID parsea un id numérico del path. Cualquier cosa que no sea un
// entero positivo cuenta como identidad ausente (404), no como 400.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// writeError mapea errores del dominio a status:
// validation.Errors => 422 con la lista por campo, ErrNotFound => 404,
// todo lo demás (incluido ErrConstraint) => 500 genérico.
func writeError(w http.ResponseWriter, err error) {
	var errs validation.Errors
	switch {
	case errors.As(err, &errs):
		writeJSON(w, http.StatusUnprocessableEntity, errorListResponse{Errors: errs})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// parseDate interpreta fechas del form (YYYY-MM-DD). Vacío = zero time.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

// writeJSON está duplicado a propósito en los handlers de cada módulo para
// no inventar un paquete compartido antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
