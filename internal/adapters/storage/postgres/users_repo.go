package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-adoptions/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	pets, err := json.Marshal(u.Pets)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email,
			password, role, pets,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		pets,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) GetAll(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, first_name, last_name, email,
			password, role, pets,
			created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	return out, rows.Err()
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, first_name, last_name, email,
			password, role, pets,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	pets, err := json.Marshal(u.Pets)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			password = $5,
			role = $6,
			pets = $7,
			updated_at = $8
		WHERE id = $1
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		pets,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

// AppendPet agrega el pet id al array JSONB en un solo statement,
// sin read-modify-write del lado Go.
func (r *UsersRepo) AppendPet(ctx context.Context, userID, petID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET pets = pets || jsonb_build_array($2::text), updated_at = now()
		WHERE id = $1
	`, userID, petID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func scanUser(scan func(dest ...any) error) (users.User, error) {
	var u users.User
	var role string
	var petsRaw []byte
	if err := scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		&petsRaw,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}

	u.Role = users.Role(role)
	if len(petsRaw) > 0 {
		if err := json.Unmarshal(petsRaw, &u.Pets); err != nil {
			return users.User{}, err
		}
	}
	if u.Pets == nil {
		u.Pets = []string{}
	}
	return u, nil
}
