package pets

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pet-adoptions/internal/platform/apperr"
	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Post("/withimage", createPetWithImageHandler(svc))
		pr.Get("/{pid}", getPetHandler(svc))
		pr.Put("/{pid}", updatePetHandler(svc))
		pr.Delete("/{pid}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

type updatePetRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Name      *string `json:"name"`
	Species   *string `json:"species"`
	BirthDate *string `json:"birth_date"` // YYYY-MM-DD
	Adopted   *bool   `json:"adopted"`
	Owner     *string `json:"owner"`
	Image     *string `json:"image"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	BirthDate time.Time `json:"birth_date"`
	Adopted   bool      `json:"adopted"`
	Owner     string    `json:"owner,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			web.Err(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		web.Payload(w, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pid := chi.URLParam(r, "pid")
		if !web.IsValidID(pid) {
			web.Err(w, apperr.BadRequest("Invalid pet ID format"))
			return
		}

		p, err := svc.GetByID(r.Context(), pid)
		if err != nil {
			web.Err(w, err)
			return
		}
		web.Payload(w, toPetResponse(p))
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Err(w, apperr.BadRequest("invalid json"))
			return
		}

		bd, ok := parseBirthDate(req.BirthDate)
		if !ok {
			web.Err(w, apperr.BadRequest("Incomplete values"))
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			BirthDate: bd,
		})
		if err != nil {
			web.Err(w, err)
			return
		}
		web.Payload(w, toPetResponse(p))
	}
}

// createPetWithImageHandler acepta multipart/form-data: campos name,
// species, birth_date y el archivo "image". El archivo se guarda bajo
// IMG_DIR y la mascota queda con la referencia relativa.
func createPetWithImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			web.Err(w, apperr.BadRequest("invalid multipart form"))
			return
		}

		bd, ok := parseBirthDate(r.FormValue("birth_date"))
		if !ok {
			web.Err(w, apperr.BadRequest("Incomplete values"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			web.Err(w, apperr.BadRequest("Incomplete values"))
			return
		}
		defer file.Close()

		ref, err := saveImage(file, header.Filename)
		if err != nil {
			web.Err(w, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      r.FormValue("name"),
			Species:   r.FormValue("species"),
			BirthDate: bd,
			Image:     ref,
		})
		if err != nil {
			web.Err(w, err)
			return
		}
		web.Payload(w, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pid := chi.URLParam(r, "pid")
		if !web.IsValidID(pid) {
			web.Err(w, apperr.BadRequest("Invalid pet ID format"))
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Err(w, apperr.BadRequest("invalid json"))
			return
		}

		var bd *time.Time
		if req.BirthDate != nil {
			t, ok := parseBirthDate(*req.BirthDate)
			if !ok {
				web.Err(w, apperr.BadRequest("birth_date must be YYYY-MM-DD"))
				return
			}
			bd = &t
		}

		if _, err := svc.Update(r.Context(), pid, UpdateInput{
			Name:      req.Name,
			Species:   req.Species,
			BirthDate: bd,
			Adopted:   req.Adopted,
			Owner:     req.Owner,
			Image:     req.Image,
		}); err != nil {
			web.Err(w, err)
			return
		}
		web.Message(w, "pet updated")
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pid := chi.URLParam(r, "pid")
		if !web.IsValidID(pid) {
			web.Err(w, apperr.BadRequest("Invalid pet ID format"))
			return
		}

		if err := svc.Delete(r.Context(), pid); err != nil {
			web.Err(w, err)
			return
		}
		web.Message(w, "pet deleted")
	}
}

func parseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func saveImage(file io.Reader, original string) (string, error) {
	dir := os.Getenv("IMG_DIR")
	if dir == "" {
		dir = filepath.Join("public", "img")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(original)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/img/" + name, nil
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		BirthDate: p.BirthDate,
		Adopted:   p.Adopted,
		Owner:     p.Owner,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
