package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoptions/internal/platform/apperr"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	BirthDate time.Time
	Image     string
}

// Create valida y persiste una mascota nueva.
// Adopted y Owner se fuerzan a sus defaults: el create plano nunca
// los toma del request.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Species) == "" ||
		in.BirthDate.IsZero() {
		return Pet{}, apperr.BadRequest("Incomplete values")
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		BirthDate: in.BirthDate,
		Adopted:   false,
		Owner:     "",
		Image:     strings.TrimSpace(in.Image),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Pet, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, apperr.NotFound("Pet not found")
		}
		return Pet{}, err
	}
	return p, nil
}

// UpdateInput usa punteros para merge parcial: nil = no tocar.
// El update genérico sí permite tocar Adopted/Owner directamente
// (a diferencia del create).
type UpdateInput struct {
	Name      *string
	Species   *string
	BirthDate *time.Time
	Adopted   *bool
	Owner     *string
	Image     *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		current.Species = strings.TrimSpace(*in.Species)
	}
	if in.BirthDate != nil {
		current.BirthDate = *in.BirthDate
	}
	if in.Adopted != nil {
		current.Adopted = *in.Adopted
	}
	if in.Owner != nil {
		current.Owner = strings.TrimSpace(*in.Owner)
	}
	if in.Image != nil {
		current.Image = strings.TrimSpace(*in.Image)
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, apperr.NotFound("Pet not found")
		}
		return Pet{}, err
	}
	return current, nil
}

// Delete es incondicional una vez confirmada la existencia:
// no hay chequeo de integridad contra users ni adoptions.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("Pet not found")
		}
		return err
	}
	return nil
}
