package visits

import (
	"context"
	"errors"
	"strings"

	"barangay-animal-tracking/internal/domain/animals"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "barangay-animal-tracking/internal/domain/visits"

// AnimalUpdater es la operación de update del registro de animales.
type AnimalUpdater interface {
	Update(ctx context.Context, id string, p animals.Patch) (animals.Animal, error)
}

// FailureRecorder cuenta propagaciones fallidas (metrics.Registry).
type FailureRecorder interface {
	PropagationFailed()
}

type Service struct {
	repo     Repository
	animals  AnimalUpdater
	failures FailureRecorder
	tracer   trace.Tracer
}

func NewService(repo Repository, animals AnimalUpdater, failures FailureRecorder) *Service {
	return &Service{
		repo:     repo,
		animals:  animals,
		failures: failures,
		tracer:   otel.Tracer(tracerName),
	}
}

type CreateInput struct {
	AnimalID   string
	VisitType  string
	Diagnosis  string
	Treatment  string
	Notes      string
	Vaccinated bool
	Neutered   bool
}

// Add guarda la visita y después propaga vaccinated/neutered=true al animal.
//
// Son dos escrituras sin transacción. Si la segunda falla se devuelve la
// visita persistida junto con un *PropagationError.
func (s *Service) Add(ctx context.Context, recordedBy string, in CreateInput) (Visit, error) {
	animalID := strings.TrimSpace(in.AnimalID)
	ctx, span := s.tracer.Start(ctx, "visits.add", trace.WithAttributes(
		attribute.String("animal.id", animalID),
	))
	defer span.End()

	if animalID == "" {
		span.SetStatus(codes.Error, ErrMissingAnimalID.Error())
		return Visit{}, ErrMissingAnimalID
	}

	vt := TypeCheckup
	if t := strings.TrimSpace(in.VisitType); t != "" {
		vt = VisitType(strings.ToLower(t))
		if !vt.Valid() {
			span.SetStatus(codes.Error, ErrInvalidInput.Error())
			return Visit{}, ErrInvalidInput
		}
	}

	v, err := s.repo.Create(ctx, Visit{
		AnimalID:   animalID,
		VisitType:  vt,
		Diagnosis:  strings.TrimSpace(in.Diagnosis),
		Treatment:  strings.TrimSpace(in.Treatment),
		Notes:      strings.TrimSpace(in.Notes),
		Vaccinated: in.Vaccinated,
		Neutered:   in.Neutered,
		RecordedBy: strings.TrimSpace(recordedBy),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Visit{}, err
	}
	span.SetAttributes(attribute.String("visit.id", v.ID))

	if err := s.propagate(ctx, v); err != nil {
		if s.failures != nil {
			s.failures.PropagationFailed()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "propagation failed")
		return v, &PropagationError{VisitID: v.ID, AnimalID: v.AnimalID, Err: err}
	}
	return v, nil
}

// FlagPatch arma el patch de propagación: solo flags en true, nunca false.
func FlagPatch(v Visit) animals.Patch {
	var p animals.Patch
	if v.Vaccinated {
		yes := true
		p.Vaccinated = &yes
	}
	if v.Neutered {
		yes := true
		p.Neutered = &yes
	}
	return p
}

func (s *Service) propagate(ctx context.Context, v Visit) error {
	p := FlagPatch(v)
	if p.IsEmpty() {
		return nil
	}
	if s.animals == nil {
		return errors.New("animal registry not configured")
	}

	ctx, span := s.tracer.Start(ctx, "visits.propagate", trace.WithAttributes(
		attribute.String("animal.id", v.AnimalID),
		attribute.Bool("vaccinated", v.Vaccinated),
		attribute.Bool("neutered", v.Neutered),
	))
	defer span.End()

	if _, err := s.animals.Update(ctx, v.AnimalID, p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// ListByAnimal devuelve las visitas más recientes primero. Incluye las de
// animales ya borrados.
func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]Visit, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, ErrMissingAnimalID
	}
	return s.repo.ListByAnimal(ctx, animalID)
}
