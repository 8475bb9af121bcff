package vets

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"vet-clinic/internal/domain/entity"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/vets.html", vetPageHandler(svc))
	r.Get("/vets", vetListHandler(svc))
}

type vetResponse struct {
	ID          entity.ID           `json:"id"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Specialties []specialtyResponse `json:"specialties"`
}

type specialtyResponse struct {
	ID   entity.ID `json:"id"`
	Name string    `json:"name"`
}

type vetListResponse struct {
	VetList []vetResponse `json:"vetList"`
}

type vetPageResponse struct {
	Items      []vetResponse `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalItems int           `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
}

func vetPageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
			p, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "page must be a number", http.StatusBadRequest)
				return
			}
			page = p
		}

		vp, err := svc.Page(r.Context(), page)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, vetPageResponse{
			Items:      toVetResponses(vp.Items),
			Page:       vp.Page,
			PageSize:   vp.Size,
			TotalItems: vp.TotalItems,
			TotalPages: vp.TotalPages,
		})
	}
}

// vetListHandler godoc
// @Summary Listar todos los vets
// @Description Lista completa de veterinarios con sus especialidades, servida desde el cache read-through (sin TTL, se refresca con el proceso).
// @Tags vets
// @Produce json
// @Success 200 {object} vetListResponse
// @Failure 500 {string} string "internal error"
// @Router /vets [get]
func vetListHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, vetListResponse{VetList: toVetResponses(items)})
	}
}

func toVetResponses(items []Vet) []vetResponse {
	out := make([]vetResponse, 0, len(items))
	for _, v := range items {
		sp := make([]specialtyResponse, 0, len(v.Specialties))
		for _, s := range v.Specialties {
			sp = append(sp, specialtyResponse{ID: s.ID, Name: s.Name})
		}
		out = append(out, vetResponse{
			ID:          v.ID,
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			Specialties: sp,
		})
	}
	return out
}

// writeJSON está duplicado a propósito en los handlers de cada módulo para
// no inventar un paquete compartido antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
