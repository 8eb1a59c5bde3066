package animals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())

	yes := true
	assert.False(t, Patch{Vaccinated: &yes}.IsEmpty())
	assert.False(t, Patch{Weight: ClearNumber()}.IsEmpty())
	assert.False(t, Patch{LastSeen: OptionalTime{Set: true}}.IsEmpty())
}

func TestPatch_ApplyLeavesUnsetFields(t *testing.T) {
	age := 2.0
	seen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := Animal{
		ID:           "a-1",
		Name:         "Tom",
		Species:      SpeciesCat,
		HealthStatus: HealthHealthy,
		EstimatedAge: &age,
		LastSeen:     &seen,
		CreatedBy:    "u1",
	}

	yes := true
	name := "  Tommy "
	Patch{Name: &name, Neutered: &yes, LastSeen: OptionalTime{Set: true}}.Apply(&a)

	assert.Equal(t, "Tommy", a.Name)
	assert.True(t, a.Neutered)
	assert.False(t, a.Vaccinated)
	assert.Nil(t, a.LastSeen)
	assert.Equal(t, &age, a.EstimatedAge)
	assert.Equal(t, HealthHealthy, a.HealthStatus)
	assert.Equal(t, "a-1", a.ID)
	assert.Equal(t, "u1", a.CreatedBy)
}

func TestPatch_ApplyCopiesNumbers(t *testing.T) {
	var a Animal
	p := Patch{Weight: SetNumber(4)}
	p.Apply(&a)

	*p.Weight.Value = 99
	assert.Equal(t, 4.0, *a.Weight)
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber("")
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseNumber(" 0 ")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, *v)

	_, err = ParseNumber("NaN")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseNumber("-0.5")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
