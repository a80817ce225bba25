package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-adoptions/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, species, birth_date,
			adopted, owner, image,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Species,
		p.BirthDate,
		p.Adopted,
		toNullString(p.Owner),
		toNullString(p.Image),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, species, birth_date,
			adopted, owner, image,
			created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, species, birth_date,
			adopted, owner, image,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			birth_date = $4,
			adopted = $5,
			owner = $6,
			image = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.BirthDate,
		p.Adopted,
		toNullString(p.Owner),
		toNullString(p.Image),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// AdoptIfAvailable es el update condicional: el WHERE adopted = FALSE
// garantiza que exactamente un caller concurrente afecta la fila.
func (r *PetsRepo) AdoptIfAvailable(ctx context.Context, petID, ownerID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted = TRUE, owner = $2, updated_at = $3
		WHERE id = $1 AND adopted = FALSE
	`, petID, ownerID, at)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 1 {
		return nil
	}

	// 0 filas: o no existe, o ya estaba adoptada. Desambiguar releyendo.
	if _, err := r.GetByID(ctx, petID); err != nil {
		return err
	}
	return pets.ErrAlreadyAdopted
}

func (r *PetsRepo) Release(ctx context.Context, petID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted = FALSE, owner = NULL, updated_at = $2
		WHERE id = $1
	`, petID, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func scanPet(scan func(dest ...any) error) (pets.Pet, error) {
	var p pets.Pet
	var owner, image sql.NullString
	if err := scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.BirthDate,
		&p.Adopted,
		&owner,
		&image,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Owner = fromNullString(owner)
	p.Image = fromNullString(image)
	return p, nil
}
