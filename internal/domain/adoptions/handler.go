package adoptions

import (
	"net/http"
	"time"

	"pet-adoptions/internal/platform/apperr"
	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Get("/{aid}", getAdoptionHandler(svc))
		ar.Post("/{uid}/{pid}", adoptHandler(svc))
	})
}

type adoptionResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Pet       string    `json:"pet"`
	CreatedAt time.Time `json:"created_at"`
}

func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			web.Err(w, err)
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}
		web.Payload(w, out)
	}
}

func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aid := chi.URLParam(r, "aid")
		if !web.IsValidID(aid) {
			web.Err(w, apperr.BadRequest("Invalid ID format"))
			return
		}

		a, err := svc.GetByID(r.Context(), aid)
		if err != nil {
			web.Err(w, err)
			return
		}
		web.Payload(w, toAdoptionResponse(a))
	}
}

func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		pid := chi.URLParam(r, "pid")

		// Formato primero, en orden user -> pet, antes de cualquier lookup.
		if !web.IsValidID(uid) || !web.IsValidID(pid) {
			web.Err(w, apperr.BadRequest("Invalid ID format"))
			return
		}

		if _, err := svc.Adopt(r.Context(), uid, pid); err != nil {
			web.Err(w, err)
			return
		}
		web.Message(w, "Pet adopted")
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		Owner:     a.Owner,
		Pet:       a.Pet,
		CreatedAt: a.CreatedAt,
	}
}
