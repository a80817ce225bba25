package users

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-adoptions/internal/platform/apperr"
	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{uid}", getUserHandler(svc))
		ur.Put("/{uid}", updateUserHandler(svc))
		ur.Delete("/{uid}", deleteUserHandler(svc))
	})
}

// userResponse no expone el hash de password.
type userResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Pets      []string  `json:"pets"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type updateUserRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			web.Err(w, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		web.Payload(w, out)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		if !web.IsValidID(uid) {
			web.Err(w, apperr.BadRequest("Invalid user ID format"))
			return
		}

		u, err := svc.GetByID(r.Context(), uid)
		if err != nil {
			web.Err(w, err)
			return
		}
		web.Payload(w, toUserResponse(u))
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		if !web.IsValidID(uid) {
			web.Err(w, apperr.BadRequest("Invalid user ID format"))
			return
		}

		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Err(w, apperr.BadRequest("invalid json"))
			return
		}

		if _, err := svc.Update(r.Context(), uid, UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
			Role:      req.Role,
		}); err != nil {
			web.Err(w, err)
			return
		}
		web.Message(w, "User updated")
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		if !web.IsValidID(uid) {
			web.Err(w, apperr.BadRequest("Invalid user ID format"))
			return
		}

		if err := svc.Delete(r.Context(), uid); err != nil {
			web.Err(w, err)
			return
		}
		web.Message(w, "User deleted")
	}
}

func toUserResponse(u User) userResponse {
	pets := u.Pets
	if pets == nil {
		pets = []string{}
	}
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		Pets:      pets,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
