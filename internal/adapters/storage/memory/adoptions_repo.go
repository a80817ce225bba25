package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoptions/internal/domain/adoptions"
)

type adoptionsRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.Adoption
}

func NewAdoptionsRepo() adoptions.Repository {
	return &adoptionsRepo{
		byID: make(map[string]adoptions.Adoption),
	}
}

func (r *adoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("adoption already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *adoptionsRepo) GetAll(ctx context.Context) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *adoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}
