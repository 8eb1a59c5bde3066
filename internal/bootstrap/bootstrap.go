// Package bootstrap arma las dependencias del servicio a partir de la config.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"barangay-animal-tracking/internal/adapters/auth/identity"
	"barangay-animal-tracking/internal/adapters/auth/local"
	blobmem "barangay-animal-tracking/internal/adapters/blob/memory"
	blobs3 "barangay-animal-tracking/internal/adapters/blob/s3"
	mem "barangay-animal-tracking/internal/adapters/storage/memory"
	"barangay-animal-tracking/internal/adapters/storage/postgres"
	"barangay-animal-tracking/internal/adapters/storage/sqlite"
	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/domain/visits"
	"barangay-animal-tracking/internal/platform/config"
	"barangay-animal-tracking/internal/platform/logger"
	"barangay-animal-tracking/internal/platform/metrics"
	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/blobstore"
	"barangay-animal-tracking/internal/router"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Deps agrupa repos, blobs y auth elegidos por config.
type Deps struct {
	Animals     animals.Repository
	Visits      visits.Repository
	Accounts    accounts.Repository
	Credentials auth.CredentialRepository

	Blobs        blobstore.Store
	FilesHandler http.Handler

	Verifier  auth.AuthVerifier
	Identity  auth.IdentityProvider
	LocalAuth *local.Provider

	closers []func() error
}

// Build abre los backends. Ante un error cierra lo que ya había abierto.
func Build(ctx context.Context, cfg config.Config, log logger.Logger) (_ *Deps, err error) {
	if log == nil {
		log = logger.NewNop()
	}
	d := &Deps{}
	defer func() {
		if err != nil {
			_ = d.Close()
		}
	}()

	if err := d.openStore(ctx, cfg, log); err != nil {
		return nil, err
	}
	if err := d.openBlobs(ctx, cfg.Blob, log); err != nil {
		return nil, err
	}
	if err := d.setupAuth(cfg.Auth, log); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deps) openStore(ctx context.Context, cfg config.Config, log logger.Logger) error {
	driver := strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch driver {
	case "", "memory":
		d.Animals = mem.NewAnimalRepo()
		d.Visits = mem.NewVisitRepo()
		d.Accounts = mem.NewAccountRepo()
		d.Credentials = mem.NewCredentialRepo()

	case "sqlite":
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		d.closers = append(d.closers, store.Close)
		d.Animals = store.Animals()
		d.Visits = store.Visits()
		d.Accounts = store.Accounts()
		d.Credentials = store.Credentials()

	case "postgres":
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		d.closers = append(d.closers, db.Close)
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		d.Animals = postgres.NewAnimalsRepo(db)
		d.Visits = postgres.NewVisitsRepo(db)
		d.Accounts = postgres.NewAccountsRepo(db)
		d.Credentials = postgres.NewCredentialsRepo(db)

	default:
		return fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	log.Info("record store ready", map[string]any{"driver": lo.Ternary(driver == "", "memory", driver)})
	return nil
}

func (d *Deps) openBlobs(ctx context.Context, cfg config.BlobConfig, log logger.Logger) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "memory":
		base := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/") + router.FilesPrefix
		store := blobmem.New(base)
		d.Blobs, d.FilesHandler = store, store.Handler()
		log.Info("blob store ready", map[string]any{"driver": "memory", "base": base})

	case "s3":
		store, err := blobs3.New(ctx, blobs3.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("open s3: %w", err)
		}
		d.Blobs = store
		log.Info("blob store ready", map[string]any{"driver": "s3", "bucket": cfg.S3Bucket})

	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", cfg.Driver)
	}
	return nil
}

func (d *Deps) setupAuth(cfg config.AuthConfig, log logger.Logger) error {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	switch mode {
	case "", "dev":
		// sin verifier: el usuario sale de X-Debug-User-ID
		p, err := local.New(d.Credentials, local.Config{Secret: uuid.NewString(), TokenTTL: cfg.TokenTTL})
		if err != nil {
			return err
		}
		d.Identity = p
		log.Warn("auth in dev mode, X-Debug-User-ID is trusted", nil)

	case "local":
		p, err := local.New(d.Credentials, local.Config{Secret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL})
		if err != nil {
			return err
		}
		d.Verifier, d.Identity, d.LocalAuth = p, p, p

	case "identity":
		client, err := identity.NewClient(identity.Config{
			BaseURL: cfg.IdentityBaseURL,
			APIKey:  cfg.IdentityAPIKey,
			Timeout: cfg.IdentityTimeout,
		})
		if err != nil {
			return err
		}
		d.Verifier, d.Identity = identity.NewVerifier(client), client

	default:
		return fmt.Errorf("unknown AUTH_MODE %q", cfg.Mode)
	}

	log.Info("auth ready", map[string]any{"mode": lo.Ternary(mode == "", "dev", mode)})
	return nil
}

// RouterOptions pasa las dependencias al router.
func (d *Deps) RouterOptions(log logger.Logger, reg *metrics.Registry) router.Options {
	return router.Options{
		Logger:       log,
		Metrics:      reg,
		AuthVerifier: d.Verifier,
		Identity:     d.Identity,
		LocalAuth:    d.LocalAuth,
		Animals:      d.Animals,
		Visits:       d.Visits,
		Accounts:     d.Accounts,
		Blobs:        d.Blobs,
		FilesHandler: d.FilesHandler,
	}
}

// AccountsService y AnimalsService sirven a comandos fuera del router (seed).
func (d *Deps) AccountsService() *accounts.Service {
	return accounts.NewService(d.Accounts, d.Identity)
}

func (d *Deps) AnimalsService() *animals.Service {
	return animals.NewService(d.Animals, d.Blobs)
}

// Close cierra en orden inverso.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	d.closers = nil
	return errors.Join(errs...)
}
