package users

import "time"

// Role define los roles soportados.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User representa una cuenta registrada en el sistema.
// Password guarda siempre el hash opaco, nunca el plaintext.
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role

	// Pets: ids de las mascotas de las que este usuario es owner.
	Pets []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
