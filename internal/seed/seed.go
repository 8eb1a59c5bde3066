// Package seed carga las cuentas demo y un set inicial de animales.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

// CreatedBy marca los animales cargados por el seed.
const CreatedBy = "seed-script"

const DefaultPassword = "password123"

//go:embed fixtures.yaml
var fixturesYAML []byte

type AccountFixture struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"fullName"`
	Role     string `yaml:"role"`
}

type AnimalFixture struct {
	TagID        string `yaml:"tagId"`
	Name         string `yaml:"name"`
	Species      string `yaml:"species"`
	Sex          string `yaml:"sex"`
	Location     string `yaml:"location"`
	HealthStatus string `yaml:"healthStatus"`
	Vaccinated   bool   `yaml:"vaccinated"`
	Neutered     bool   `yaml:"neutered"`
	Color        string `yaml:"color"`
}

type Fixtures struct {
	Accounts []AccountFixture `yaml:"accounts"`
	Animals  []AnimalFixture  `yaml:"animals"`
}

// Load parsea los fixtures embebidos.
func Load() (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	return f, nil
}

type Report struct {
	AccountsCreated []string
	AccountsSkipped []string
	AccountsFailed  []string

	AnimalsCreated int
	AnimalsSkipped bool
}

type Seeder struct {
	Accounts *accounts.Service
	Animals  *animals.Service
	Log      logger.Logger

	// Password para todas las cuentas demo.
	Password string
}

// Run es idempotente: cuentas existentes (por email) se dejan como están y
// los animales solo se cargan si la colección está vacía.
func (s *Seeder) Run(ctx context.Context, f Fixtures) (Report, error) {
	log := s.Log
	if log == nil {
		log = logger.NewNop()
	}
	password := s.Password
	if password == "" {
		password = DefaultPassword
	}

	var rep Report
	for _, a := range f.Accounts {
		_, err := s.Accounts.GetByEmail(ctx, a.Email)
		if err == nil {
			rep.AccountsSkipped = append(rep.AccountsSkipped, a.Email)
			log.Info("seed account exists", map[string]any{"email": a.Email})
			continue
		}
		if !errors.Is(err, accounts.ErrNotFound) {
			return rep, err
		}

		if _, err := s.Accounts.Register(ctx, accounts.RegisterInput{
			Email:    a.Email,
			Password: password,
			FullName: a.FullName,
			Role:     a.Role,
		}); err != nil {
			// una cuenta fallida no frena al resto
			rep.AccountsFailed = append(rep.AccountsFailed, a.Email)
			log.Error("seed account failed", map[string]any{"email": a.Email, "error": err.Error()})
			continue
		}
		rep.AccountsCreated = append(rep.AccountsCreated, a.Email)
		log.Info("seed account created", map[string]any{"email": a.Email})
	}

	existing, err := s.Animals.List(ctx, animals.ListFilter{})
	if err != nil {
		return rep, err
	}
	if len(existing) > 0 {
		rep.AnimalsSkipped = true
		log.Warn("animals already exist, skipping", map[string]any{"count": len(existing)})
		return rep, nil
	}

	for _, a := range f.Animals {
		if _, err := s.Animals.Add(ctx, CreatedBy, animals.CreateInput{
			TagID:        a.TagID,
			Name:         a.Name,
			Species:      a.Species,
			Sex:          a.Sex,
			Location:     a.Location,
			HealthStatus: a.HealthStatus,
			Vaccinated:   a.Vaccinated,
			Neutered:     a.Neutered,
			Color:        a.Color,
		}); err != nil {
			return rep, fmt.Errorf("seed animal %s: %w", a.Name, err)
		}
		rep.AnimalsCreated++
	}
	log.Info("seed animals created", map[string]any{"count": rep.AnimalsCreated})

	return rep, nil
}
