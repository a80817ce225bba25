package mocks

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestUsers_SharedPrecomputedHash(t *testing.T) {
	g := NewGenerator(Config{Seed: 1})

	out := g.Users(5)
	if len(out) != 5 {
		t.Fatalf("expected 5 users, got %d", len(out))
	}

	// Un solo hash para todos los registros, calculado en NewGenerator.
	for _, u := range out {
		if u.Password != g.HashedPassword() {
			t.Fatal("expected every user to share the precomputed hash")
		}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(g.HashedPassword()), []byte("coder123")); err != nil {
		t.Fatalf("expected hash of default password: %v", err)
	}
}

func TestNewGenerator_CustomPassword(t *testing.T) {
	g := NewGenerator(Config{Seed: 1, PlainPassword: "otherpass"})

	if err := bcrypt.CompareHashAndPassword([]byte(g.HashedPassword()), []byte("otherpass")); err != nil {
		t.Fatalf("expected hash of configured password: %v", err)
	}
}

func TestUsers_FieldsPopulated(t *testing.T) {
	g := NewGenerator(Config{Seed: 7})

	for _, u := range g.Users(20) {
		if u.ID == "" || u.FirstName == "" || u.LastName == "" || u.Email == "" {
			t.Fatalf("expected populated identity fields, got %+v", u)
		}
		if u.Role != "user" && u.Role != "admin" {
			t.Fatalf("unexpected role %q", u.Role)
		}
		if u.Pets == nil || len(u.Pets) != 0 {
			t.Fatalf("expected empty pets set, got %v", u.Pets)
		}
	}
}

func TestPets_FixedSpeciesAndDefaults(t *testing.T) {
	g := NewGenerator(Config{Seed: 7})

	allowed := map[string]bool{}
	for _, s := range Species {
		allowed[s] = true
	}

	out := g.Pets(25)
	if len(out) != 25 {
		t.Fatalf("expected 25 pets, got %d", len(out))
	}
	for _, p := range out {
		if !allowed[p.Species] {
			t.Fatalf("unexpected species %q", p.Species)
		}
		if p.Adopted {
			t.Fatal("expected adopted = false")
		}
		if p.Owner != "" {
			t.Fatalf("expected no owner, got %q", p.Owner)
		}
		if p.Name == "" || p.Image == "" {
			t.Fatalf("expected populated name/image, got %+v", p)
		}
		if p.BirthDate.IsZero() {
			t.Fatal("expected birth date set")
		}
	}
}

func TestQuantities_ZeroAndNegative(t *testing.T) {
	g := NewGenerator(Config{Seed: 1})

	if got := len(g.Users(0)); got != 0 {
		t.Fatalf("expected 0 users, got %d", got)
	}
	if got := len(g.Pets(-3)); got != 0 {
		t.Fatalf("expected 0 pets, got %d", got)
	}
}
