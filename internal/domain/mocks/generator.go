package mocks

import (
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Species son las cinco categorías fijas que produce el generador.
var Species = []string{"dog", "cat", "bird", "rabbit", "hamster"}

const defaultPassword = "coder123"

// Config se pasa explícitamente al construir el generador; no hay estado
// ambiente. Seed != 0 hace la salida determinística (tests).
type Config struct {
	Seed          uint64
	PlainPassword string
}

// Generator fabrica users y pets sintéticos. El hash del password se
// calcula una sola vez acá, no por registro.
type Generator struct {
	faker  *gofakeit.Faker
	hashed string
}

func NewGenerator(cfg Config) *Generator {
	plain := cfg.PlainPassword
	if plain == "" {
		plain = defaultPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt solo falla con un cost inválido; acá es error de programación
		panic(err)
	}

	return &Generator{
		faker:  gofakeit.New(cfg.Seed),
		hashed: string(hash),
	}
}

// HashedPassword expone el hash compartido (para asserts en tests).
func (g *Generator) HashedPassword() string { return g.hashed }

func (g *Generator) User() users.User {
	return users.User{
		ID:        uuid.NewString(),
		FirstName: g.faker.FirstName(),
		LastName:  g.faker.LastName(),
		Email:     g.faker.Email(),
		Password:  g.hashed,
		Role:      users.Role(g.faker.RandomString([]string{"user", "admin"})),
		Pets:      []string{},
	}
}

func (g *Generator) Users(quantity int) []users.User {
	out := make([]users.User, 0, max(quantity, 0))
	for i := 0; i < quantity; i++ {
		out = append(out, g.User())
	}
	return out
}

func (g *Generator) Pet() pets.Pet {
	now := time.Now()
	return pets.Pet{
		ID:        uuid.NewString(),
		Name:      g.faker.PetName(),
		Species:   g.faker.RandomString(Species),
		BirthDate: g.faker.DateRange(now.AddDate(-10, 0, 0), now),
		Adopted:   false,
		Image:     g.faker.ImageURL(640, 480),
	}
}

func (g *Generator) Pets(quantity int) []pets.Pet {
	out := make([]pets.Pet, 0, max(quantity, 0))
	for i := 0; i < quantity; i++ {
		out = append(out, g.Pet())
	}
	return out
}
