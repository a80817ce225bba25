package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "pet-adoptions/internal/adapters/storage/memory"
	pg "pet-adoptions/internal/adapters/storage/postgres"
	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/mocks"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/middleware"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/platform/web"

	_ "pet-adoptions/docs" // Swagger docs

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger // nil => NewFromEnv

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Password en claro para el hash compartido del generador de mocks.
	// Vacío => default del generador.
	MockPassword string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		usersRepo     users.Repository
		petsRepo      pets.Repository
		adoptionsRepo adoptions.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, falling back to in-memory", map[string]any{"err": err.Error()})
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		adoptionsRepo = pg.NewAdoptionsRepo(db)
	} else {
		usersRepo = mem.NewUsersRepo()
		petsRepo = mem.NewPetsRepo()
		adoptionsRepo = mem.NewAdoptionsRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	petsSvc := pets.NewService(petsRepo)
	adoptionsSvc := adoptions.NewService(adoptionsRepo, usersRepo, petsRepo)
	generator := mocks.NewGenerator(mocks.Config{PlainPassword: opts.MockPassword})

	// Rutas por módulo, todas bajo /api
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc)
		pets.RegisterRoutes(api, petsSvc)
		adoptions.RegisterRoutes(api, adoptionsSvc)
		mocks.RegisterRoutes(api, generator, usersSvc, petsSvc)

		api.Get("/docs/*", httpSwagger.Handler())
	})

	r.NotFound(web.NotFoundRoute)

	return r
}
