package router

import (
	"net/http"

	_ "barangay-animal-tracking/docs"
	"barangay-animal-tracking/internal/adapters/auth/local"
	blobmem "barangay-animal-tracking/internal/adapters/blob/memory"
	mem "barangay-animal-tracking/internal/adapters/storage/memory"
	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/domain/listing"
	"barangay-animal-tracking/internal/domain/visits"
	"barangay-animal-tracking/internal/middleware"
	"barangay-animal-tracking/internal/platform/logger"
	"barangay-animal-tracking/internal/platform/metrics"
	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/blobstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
)

// FilesPrefix es donde se sirve el blob store en memoria.
const FilesPrefix = "/files"

type Options struct {
	Logger  logger.Logger     // nil => nop
	Metrics *metrics.Registry // nil => registry propio

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Provisiona credenciales al crear cuentas. nil => proveedor local en
	// memoria (solo dev/tests).
	Identity auth.IdentityProvider

	// Si viene, monta POST /auth/login.
	LocalAuth *local.Provider

	// Repos; los nil se reemplazan por in-memory.
	Animals  animals.Repository
	Visits   visits.Repository
	Accounts accounts.Repository

	// nil => blob store en memoria servido en /files.
	Blobs        blobstore.Store
	FilesHandler http.Handler
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	reg := opts.Metrics
	if reg == nil {
		reg = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(reg))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", reg.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	animalRepo := opts.Animals
	if animalRepo == nil {
		animalRepo = mem.NewAnimalRepo()
	}
	visitRepo := opts.Visits
	if visitRepo == nil {
		visitRepo = mem.NewVisitRepo()
	}
	accountRepo := opts.Accounts
	if accountRepo == nil {
		accountRepo = mem.NewAccountRepo()
	}

	blobs, files := opts.Blobs, opts.FilesHandler
	if blobs == nil {
		store := blobmem.New(FilesPrefix)
		blobs, files = store, store.Handler()
	}
	if files != nil {
		r.Handle(FilesPrefix+"/*", http.StripPrefix(FilesPrefix, files))
	}

	idp := opts.Identity
	if idp == nil {
		devIdP, err := local.New(mem.NewCredentialRepo(), local.Config{Secret: uuid.NewString()})
		if err != nil {
			panic(err)
		}
		idp = devIdP
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo, blobs)
	visitsSvc := visits.NewService(visitRepo, animalsSvc, reg)
	accountsSvc := accounts.NewService(accountRepo, idp)

	// Rutas por módulo
	if opts.LocalAuth != nil {
		local.RegisterRoutes(r, opts.LocalAuth)
	}
	animals.RegisterRoutes(r, animalsSvc, listing.Refine)
	visits.RegisterRoutes(r, visitsSvc)
	listing.RegisterRoutes(r, animalsSvc)
	accounts.RegisterRoutes(r, accountsSvc)

	return r
}
