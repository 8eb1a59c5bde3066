package listing

import (
	"context"
	"errors"
	"testing"

	"barangay-animal-tracking/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLoader struct {
	items []animals.Animal
	calls []animals.ListFilter
	err   error
}

func (l *testLoader) List(ctx context.Context, f animals.ListFilter) ([]animals.Animal, error) {
	l.calls = append(l.calls, f)
	if l.err != nil {
		return nil, l.err
	}
	return l.items, nil
}

func TestView_LoadReplacesCache(t *testing.T) {
	l := &testLoader{items: fixtures()}
	v := NewView()

	v.SetAnimals([]animals.Animal{{ID: "stale"}})
	require.NoError(t, v.Load(context.Background(), l))
	assert.Equal(t, ids(fixtures()), ids(v.Animals()))

	require.Len(t, l.calls, 1)
	assert.Equal(t, animals.ListFilter{Species: All, HealthStatus: All}, l.calls[0])
}

func TestView_FilterLifecycle(t *testing.T) {
	v := NewView()
	v.SetAnimals(fixtures())

	dog := "dog"
	crit := "critical"
	v.SetFilter(FilterUpdate{Species: &dog})
	v.SetFilter(FilterUpdate{HealthStatus: &crit})
	assert.Equal(t, []string{"2", "5"}, ids(v.Visible()))

	v.ResetFilter()
	assert.Equal(t, DefaultFilter(), v.Filter())
	assert.Equal(t, ids(fixtures()), ids(v.Visible()))
}

func TestView_LoadErrorKeepsPreviousList(t *testing.T) {
	boom := errors.New("unavailable")
	v := NewView()
	v.SetAnimals(fixtures())

	err := v.Load(context.Background(), &testLoader{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, v.Animals(), len(fixtures()))
}

func TestView_SetAnimalsCopiesInput(t *testing.T) {
	in := fixtures()
	v := NewView()
	v.SetAnimals(in)

	in[0].Name = "changed"
	assert.Equal(t, "CAT-01", v.Animals()[0].Name)
}
