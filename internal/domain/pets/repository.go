package pets

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("pet not found")

	// ErrAlreadyAdopted lo devuelve AdoptIfAvailable cuando la mascota
	// ya estaba adoptada al momento del write condicional.
	ErrAlreadyAdopted = errors.New("pet already adopted")
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetAll(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error

	// AdoptIfAvailable es el update condicional que cierra la carrera
	// check-then-act: pasa adopted false->true y setea owner en un solo
	// write atómico por documento. Exactamente un caller concurrente gana;
	// el resto recibe ErrAlreadyAdopted.
	AdoptIfAvailable(ctx context.Context, petID, ownerID string, at time.Time) error

	// Release revierte una adopción (compensación si el update del
	// usuario falla después de adoptar).
	Release(ctx context.Context, petID string, at time.Time) error
}
