package pets

import "time"

// Species define las cinco especies soportadas por el generador de mocks.
// El create plano acepta cualquier string no vacío.
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
)

// Pet representa una mascota en adopción.
// Owner queda vacío hasta que el Adoption Workflow la asigna;
// el invariante es: Adopted=true implica Owner != "".
type Pet struct {
	ID string

	Name      string
	Species   string
	BirthDate time.Time

	Adopted bool
	Owner   string // user id, vacío = sin adoptar

	Image string // path o URL, opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
