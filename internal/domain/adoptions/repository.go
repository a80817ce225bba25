package adoptions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("adoption not found")

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	GetAll(ctx context.Context) ([]Adoption, error)
	GetByID(ctx context.Context, id string) (Adoption, error)
}
