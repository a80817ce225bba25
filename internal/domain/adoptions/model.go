package adoptions

import "time"

// Adoption registra un evento de emparejamiento user/pet.
// Es un log secundario: la fuente de verdad del vínculo son los campos
// denormalizados Pet.Owner y User.Pets.
type Adoption struct {
	ID    string
	Owner string // user id
	Pet   string // pet id

	CreatedAt time.Time
}
