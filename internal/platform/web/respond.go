package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"pet-adoptions/internal/platform/apperr"

	"github.com/google/uuid"
)

// envelope es la forma uniforme de toda respuesta:
// {status, payload|message|error[, name|details|count]}.
type envelope struct {
	Status  string `json:"status"`
	Payload any    `json:"payload,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
	Name    string `json:"name,omitempty"`
	Details string `json:"details,omitempty"`
	Path    string `json:"path,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Payload responde 200 con {status:success,payload}.
func Payload(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, envelope{Status: "success", Payload: payload})
}

// PayloadCount es Payload más un count explícito (endpoints de mocking).
func PayloadCount(w http.ResponseWriter, payload any, count int) {
	writeJSON(w, http.StatusOK, envelope{Status: "success", Payload: payload, Count: &count})
}

// Message responde 200 con {status:success,message}.
func Message(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, envelope{Status: "success", Message: msg})
}

// MessagePayload responde 200 con message y payload (generateData).
func MessagePayload(w http.ResponseWriter, msg string, payload any) {
	writeJSON(w, http.StatusOK, envelope{Status: "success", Message: msg, Payload: payload})
}

// Fail responde un error plano sin pasar por la taxonomía.
func Fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Status: "error", Error: msg})
}

// NotFoundRoute es el handler para rutas no registradas.
func NotFoundRoute(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, envelope{
		Status: "error",
		Error:  "Route not found",
		Path:   r.URL.Path,
	})
}

// Err mapea un error a su envelope. Los *apperr.Error llevan status y name
// propios; cualquier otro error es un 500 cuyo detalle solo se expone con
// APP_ENV=development.
func Err(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		writeJSON(w, ae.Status, envelope{Status: "error", Error: ae.Message, Name: ae.Name})
		return
	}

	details := "Something went wrong"
	if os.Getenv("APP_ENV") == "development" {
		details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, envelope{
		Status:  "error",
		Error:   "Internal server error",
		Details: details,
	})
}

// IsValidID valida el formato de un id de path antes de tocar el store,
// para distinguir 400 (malformado) de 404 (ausente).
func IsValidID(id string) bool {
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	// uuid.Parse acepta variantes (urn:, llaves); exigimos la forma canónica.
	return u.String() == id
}
