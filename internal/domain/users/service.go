package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoptions/internal/platform/apperr"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
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

// Create valida y persiste un usuario. El password llega ya hasheado
// (el generador de mocks precalcula el hash; no hay signup público).
// Role vacío defaultea a "user"; Pets arranca vacío.
func (s *Service) Create(ctx context.Context, u User) (User, error) {
	if strings.TrimSpace(u.FirstName) == "" ||
		strings.TrimSpace(u.LastName) == "" ||
		strings.TrimSpace(u.Email) == "" ||
		strings.TrimSpace(u.Password) == "" {
		return User{}, apperr.BadRequest("Incomplete values")
	}

	if strings.TrimSpace(u.ID) == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Pets == nil {
		u.Pets = []string{}
	}

	now := s.now()
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.TrimSpace(u.Email)
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, apperr.NotFound("User not found")
		}
		return User{}, err
	}
	return u, nil
}

// UpdateInput usa punteros para merge parcial: nil = no tocar.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string // plaintext; se re-hashea acá
	Role      *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.FirstName != nil {
		current.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		current.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		current.Email = strings.TrimSpace(*in.Email)
	}
	if in.Role != nil {
		r := Role(strings.TrimSpace(*in.Role))
		if r != RoleUser && r != RoleAdmin {
			return User{}, apperr.BadRequest("Invalid role")
		}
		current.Role = r
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		current.Password = string(hash)
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, apperr.NotFound("User not found")
		}
		return User{}, err
	}
	return current, nil
}

// Delete borra sin cascada: las mascotas del usuario quedan como están.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	return nil
}
