package visits

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/ports/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testVisitRepo struct {
	items   []Visit
	now     time.Time
	fixedAt bool
	err     error
}

func newTestVisitRepo() *testVisitRepo {
	return &testVisitRepo{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (r *testVisitRepo) Create(ctx context.Context, v Visit) (Visit, error) {
	if r.err != nil {
		return Visit{}, r.err
	}
	if !r.fixedAt {
		r.now = r.now.Add(time.Minute)
	}
	v.ID = fmt.Sprintf("v-%d", len(r.items)+1)
	v.CreatedAt = r.now
	r.items = append(r.items, v)
	return v, nil
}

func (r *testVisitRepo) ListByAnimal(ctx context.Context, animalID string) ([]Visit, error) {
	out := make([]Visit, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].AnimalID == animalID {
			out = append(out, r.items[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type testAnimalRepo struct {
	byID      map[string]animals.Animal
	seq       int
	updateErr error
	updates   int
}

func newTestAnimalRepo() *testAnimalRepo {
	return &testAnimalRepo{byID: map[string]animals.Animal{}}
}

func (r *testAnimalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.seq++
	a.ID = fmt.Sprintf("a-%d", r.seq)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.byID[a.ID] = a
	return a, nil
}

func (r *testAnimalRepo) Update(ctx context.Context, id string, p animals.Patch) (animals.Animal, error) {
	r.updates++
	if r.updateErr != nil {
		return animals.Animal{}, r.updateErr
	}
	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, recordstore.ErrNotFound
	}
	p.Apply(&a)
	a.UpdatedAt = time.Now()
	r.byID[id] = a
	return a, nil
}

func (r *testAnimalRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return recordstore.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testAnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, recordstore.ErrNotFound
	}
	return a, nil
}

func (r *testAnimalRepo) List(ctx context.Context, where *recordstore.Where) ([]animals.Animal, error) {
	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

type countingRecorder struct{ n int }

func (c *countingRecorder) PropagationFailed() { c.n++ }

type fixture struct {
	visits     *testVisitRepo
	animalRepo *testAnimalRepo
	registry   *animals.Service
	failures   *countingRecorder
	svc        *Service
}

func newFixture() fixture {
	f := fixture{
		visits:     newTestVisitRepo(),
		animalRepo: newTestAnimalRepo(),
		failures:   &countingRecorder{},
	}
	f.registry = animals.NewService(f.animalRepo, nil)
	f.svc = NewService(f.visits, f.registry, f.failures)
	return f
}

func (f fixture) addTom(t *testing.T) animals.Animal {
	t.Helper()
	a, err := f.registry.Add(context.Background(), "u1", animals.CreateInput{
		Name:         "Tom",
		Species:      "cat",
		HealthStatus: "healthy",
	})
	require.NoError(t, err)
	require.False(t, a.Vaccinated)
	return a
}

// -------------------------
// Tests
// -------------------------

func TestAdd_VaccinationVisitPropagatesFlag(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tom := f.addTom(t)

	v, err := f.svc.Add(ctx, "vet-1", CreateInput{
		AnimalID:   tom.ID,
		VisitType:  "vaccination",
		Vaccinated: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.False(t, v.CreatedAt.IsZero())
	assert.Equal(t, "vet-1", v.RecordedBy)

	got, found, err := f.registry.Get(ctx, tom.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Vaccinated)
	assert.False(t, got.Neutered)
	assert.Equal(t, animals.HealthHealthy, got.HealthStatus)
}

func TestAdd_FalseFlagsNeverTurnOff(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tom := f.addTom(t)

	yes := true
	_, err := f.registry.Update(ctx, tom.ID, animals.Patch{Vaccinated: &yes, Neutered: &yes})
	require.NoError(t, err)
	updatesBefore := f.animalRepo.updates

	_, err = f.svc.Add(ctx, "vet-1", CreateInput{AnimalID: tom.ID, VisitType: "checkup"})
	require.NoError(t, err)

	got, _, _ := f.registry.Get(ctx, tom.ID)
	assert.True(t, got.Vaccinated)
	assert.True(t, got.Neutered)
	assert.Equal(t, updatesBefore, f.animalRepo.updates, "no flags => no animal update")
}

func TestAdd_MissingAnimalID(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Add(context.Background(), "vet-1", CreateInput{AnimalID: "  ", Vaccinated: true})
	assert.ErrorIs(t, err, ErrMissingAnimalID)
	assert.Empty(t, f.visits.items)
}

func TestAdd_VisitTypeDefaultsAndValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	v, err := f.svc.Add(ctx, "vet-1", CreateInput{AnimalID: "a-x"})
	require.NoError(t, err)
	assert.Equal(t, TypeCheckup, v.VisitType)

	_, err = f.svc.Add(ctx, "vet-1", CreateInput{AnimalID: "a-x", VisitType: "grooming"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdd_PropagationFailureKeepsVisit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tom := f.addTom(t)

	boom := errors.New("permission denied")
	f.animalRepo.updateErr = boom

	v, err := f.svc.Add(ctx, "vet-1", CreateInput{AnimalID: tom.ID, VisitType: "neutering", Neutered: true})
	require.Error(t, err)

	var perr *PropagationError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, v.ID, perr.VisitID)
	assert.Equal(t, tom.ID, perr.AnimalID)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, f.failures.n)

	// La visita ya quedó persistida (sin rollback).
	list, err := f.svc.ListByAnimal(ctx, tom.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, v.ID, list[0].ID)
}

func TestAdd_UnknownAnimalSurfacesAsPropagationError(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Add(context.Background(), "vet-1", CreateInput{AnimalID: "ghost", Vaccinated: true})

	var perr *PropagationError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, recordstore.ErrNotFound)
}

func TestAdd_InsertFailureIsReturnedUnchanged(t *testing.T) {
	f := newFixture()
	boom := errors.New("quota exceeded")
	f.visits.err = boom

	_, err := f.svc.Add(context.Background(), "vet-1", CreateInput{AnimalID: "a-1", Vaccinated: true})
	assert.Equal(t, boom, err)
	assert.Equal(t, 0, f.animalRepo.updates)
}

func TestListByAnimal_NewestFirstAndOrphans(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tom := f.addTom(t)

	for _, vt := range []string{"checkup", "vaccination", "followup"} {
		_, err := f.svc.Add(ctx, "vet-1", CreateInput{AnimalID: tom.ID, VisitType: vt})
		require.NoError(t, err)
	}
	_, err := f.svc.Add(ctx, "vet-1", CreateInput{AnimalID: "other"})
	require.NoError(t, err)

	require.NoError(t, f.registry.Delete(ctx, tom.ID))

	list, err := f.svc.ListByAnimal(ctx, tom.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, TypeFollowup, list[0].VisitType)
	assert.Equal(t, TypeCheckup, list[2].VisitType)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}
}

func TestAdd_RecordsSpans(t *testing.T) {
	f := newFixture()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	f.svc.tracer = tp.Tracer("test")

	tom := f.addTom(t)
	_, err := f.svc.Add(context.Background(), "vet-1", CreateInput{AnimalID: tom.ID, Vaccinated: true})
	require.NoError(t, err)

	names := make([]string, 0)
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{"visits.add", "visits.propagate"}, names)
}

func TestAdd_SpanUsesTrimmedAnimalID(t *testing.T) {
	f := newFixture()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	f.svc.tracer = tp.Tracer("test")

	tom := f.addTom(t)
	v, err := f.svc.Add(context.Background(), "vet-1", CreateInput{AnimalID: "  " + tom.ID + " "})
	require.NoError(t, err)
	assert.Equal(t, tom.ID, v.AnimalID)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "visits.add", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("animal.id", tom.ID))
}

func TestFlagPatch(t *testing.T) {
	assert.True(t, FlagPatch(Visit{}).IsEmpty())

	p := FlagPatch(Visit{Vaccinated: true})
	require.NotNil(t, p.Vaccinated)
	assert.True(t, *p.Vaccinated)
	assert.Nil(t, p.Neutered)
}
