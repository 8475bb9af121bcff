package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "vet-clinic/internal/adapters/storage/memory"
	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/vets"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/logger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory con datos demo.
	DB *sql.DB

	// Opcional: si no viene se arma desde env.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/", welcomeHandler())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Ruta diagnóstica: revienta a propósito para mostrar el recover.
	r.Get("/oups", func(http.ResponseWriter, *http.Request) {
		panic("expected: route used to showcase what happens when a handler blows up")
	})

	var (
		ownerRepo owners.Repository
		vetRepo   vets.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres no disponible, sigo in-memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		ownerRepo = pg.NewOwnersRepo(db)
		vetRepo = pg.NewVetsRepo(db)
	} else {
		ownerRepo = mem.NewOwnerRepo()
		seeded := mem.NewVetRepo()
		mem.SeedVets(seeded)
		vetRepo = seeded
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo)
	vetsSvc := vets.NewService(vetRepo)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc)
	vets.RegisterRoutes(r, vetsSvc)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func welcomeHandler() http.HandlerFunc {
	type welcomeResponse struct {
		Message string `json:"message"`
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(welcomeResponse{Message: "Welcome"})
	}
}
