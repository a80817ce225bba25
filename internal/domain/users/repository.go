package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) error
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error

	// AppendPet agrega petID al set Pets del usuario.
	AppendPet(ctx context.Context, userID, petID string) error
}
