package mocks

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/apperr"
	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPetsQuantity  = 100
	defaultUsersQuantity = 50
)

func RegisterRoutes(r chi.Router, g *Generator, usersSvc *users.Service, petsSvc *pets.Service) {
	r.Route("/mocks", func(mr chi.Router) {
		mr.Get("/mockingpets", mockingPetsHandler(g))
		mr.Get("/mockingusers", mockingUsersHandler(g))
		mr.Post("/generateData", generateDataHandler(g, usersSvc, petsSvc))
	})
}

// Los previews exponen el registro completo, hash de password incluido
// (es fake), a diferencia de las respuestas del CRUD de users.
type mockUser struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Pets      []string `json:"pets"`
}

type mockPet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	BirthDate time.Time `json:"birth_date"`
	Adopted   bool      `json:"adopted"`
	Image     string    `json:"image"`
}

type generateDataRequest struct {
	Users int `json:"users"`
	Pets  int `json:"pets"`
}

type generateDataResult struct {
	UsersCreated int `json:"usersCreated"`
	PetsCreated  int `json:"petsCreated"`
}

func mockingPetsHandler(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quantity := parseQuantity(r.URL.Query().Get("quantity"), defaultPetsQuantity)

		out := make([]mockPet, 0, quantity)
		for _, p := range g.Pets(quantity) {
			out = append(out, mockPet{
				ID:        p.ID,
				Name:      p.Name,
				Species:   p.Species,
				BirthDate: p.BirthDate,
				Adopted:   p.Adopted,
				Image:     p.Image,
			})
		}
		web.PayloadCount(w, out, len(out))
	}
}

func mockingUsersHandler(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quantity := parseQuantity(r.URL.Query().Get("quantity"), defaultUsersQuantity)

		out := make([]mockUser, 0, quantity)
		for _, u := range g.Users(quantity) {
			out = append(out, mockUser{
				ID:        u.ID,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
				Password:  u.Password,
				Role:      string(u.Role),
				Pets:      u.Pets,
			})
		}
		web.PayloadCount(w, out, len(out))
	}
}

// generateDataHandler inserta secuencialmente por el mismo camino de
// create que el CRUD plano (validadores incluidos). Cantidades cero o
// negativas producen contadores en cero, no error.
func generateDataHandler(g *Generator, usersSvc *users.Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Err(w, apperr.BadRequest("invalid json"))
			return
		}

		results := generateDataResult{}

		for _, u := range g.Users(req.Users) {
			if _, err := usersSvc.Create(r.Context(), u); err != nil {
				web.Fail(w, http.StatusInternalServerError, err.Error())
				return
			}
			results.UsersCreated++
		}

		for _, p := range g.Pets(req.Pets) {
			if _, err := petsSvc.Create(r.Context(), pets.CreateInput{
				Name:      p.Name,
				Species:   p.Species,
				BirthDate: p.BirthDate,
				Image:     p.Image,
			}); err != nil {
				web.Fail(w, http.StatusInternalServerError, err.Error())
				return
			}
			results.PetsCreated++
		}

		web.MessagePayload(w, "Data generated successfully", results)
	}
}

func parseQuantity(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
