package adoptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/apperr"

	"github.com/google/uuid"
)

// Service implementa el workflow de adopción: la única operación del
// sistema que muta dos registros juntos. El orden de chequeos es parte
// del contrato (user antes que pet, existencia antes que regla de negocio)
// y ningún write ocurre antes de que todos pasen.
type Service struct {
	repo  Repository
	users users.Repository
	pets  pets.Repository
	now   func() time.Time
}

func NewService(repo Repository, usersRepo users.Repository, petsRepo pets.Repository) *Service {
	return &Service{
		repo:  repo,
		users: usersRepo,
		pets:  petsRepo,
		now:   time.Now,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]Adoption, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Adoption{}, apperr.NotFound("Adoption not found")
		}
		return Adoption{}, err
	}
	return a, nil
}

// Adopt empareja un user con un pet:
//  1. user debe existir
//  2. pet debe existir
//  3. pet no puede estar ya adoptado
//  4. write condicional sobre el pet (adopted false->true + owner);
//     perder la carrera contra otro request concurrente reporta el
//     mismo conflicto que el chequeo previo
//  5. append del pet al set Pets del user; si falla, se libera el pet
//     (compensación best-effort) y la adopción no queda registrada
//  6. inserta el registro Adoption (log del evento)
func (s *Service) Adopt(ctx context.Context, userID, petID string) (Adoption, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Adoption{}, apperr.NotFound("user Not found")
		}
		return Adoption{}, err
	}

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Adoption{}, apperr.NotFound("Pet not found")
		}
		return Adoption{}, err
	}

	if pet.Adopted {
		return Adoption{}, apperr.Conflict("Pet is already adopted")
	}

	now := s.now()

	if err := s.pets.AdoptIfAvailable(ctx, petID, user.ID, now); err != nil {
		switch {
		case errors.Is(err, pets.ErrAlreadyAdopted):
			return Adoption{}, apperr.Conflict("Pet is already adopted")
		case errors.Is(err, pets.ErrNotFound):
			return Adoption{}, apperr.NotFound("Pet not found")
		default:
			return Adoption{}, err
		}
	}

	if err := s.users.AppendPet(ctx, user.ID, petID); err != nil {
		// El pet ya quedó marcado como adoptado: revertir antes de fallar.
		_ = s.pets.Release(ctx, petID, s.now())
		return Adoption{}, fmt.Errorf("append pet to user: %w", err)
	}

	a := Adoption{
		ID:        uuid.NewString(),
		Owner:     user.ID,
		Pet:       petID,
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, fmt.Errorf("record adoption: %w", err)
	}
	return a, nil
}
