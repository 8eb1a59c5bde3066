package animals

import (
	"math"
	"strings"
	"time"
)

// OptionalNumber distingue "no enviado" de "enviado como desconocido (null)".
type OptionalNumber struct {
	Set   bool
	Value *float64
}

// SetNumber marca el campo como enviado con valor v.
func SetNumber(v float64) OptionalNumber {
	return OptionalNumber{Set: true, Value: &v}
}

// ClearNumber marca el campo como enviado y desconocido.
func ClearNumber() OptionalNumber {
	return OptionalNumber{Set: true}
}

type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// Patch es un update parcial tipado: nil / Set=false = no tocar.
type Patch struct {
	TagID        *string
	Name         *string
	Species      *Species
	Sex          *Sex
	Location     *string
	HealthStatus *HealthStatus
	Vaccinated   *bool
	Neutered     *bool
	EstimatedAge OptionalNumber
	Weight       OptionalNumber
	Color        *string
	Notes        *string
	PhotoURL     *string
	LastSeen     OptionalTime
}

// Validate se llama antes del merge.
func (p Patch) Validate() error {
	if p.TagID != nil && strings.TrimSpace(*p.TagID) == "" {
		return ErrInvalidInput
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrInvalidInput
	}
	if p.Species != nil && !p.Species.Valid() {
		return ErrInvalidInput
	}
	if p.Sex != nil && !p.Sex.Valid() {
		return ErrInvalidInput
	}
	if p.HealthStatus != nil && !p.HealthStatus.Valid() {
		return ErrInvalidInput
	}
	if !validNumber(p.EstimatedAge.Value) || !validNumber(p.Weight.Value) {
		return ErrInvalidInput
	}
	return nil
}

func (p Patch) IsEmpty() bool {
	return p.TagID == nil &&
		p.Name == nil &&
		p.Species == nil &&
		p.Sex == nil &&
		p.Location == nil &&
		p.HealthStatus == nil &&
		p.Vaccinated == nil &&
		p.Neutered == nil &&
		!p.EstimatedAge.Set &&
		!p.Weight.Set &&
		p.Color == nil &&
		p.Notes == nil &&
		p.PhotoURL == nil &&
		!p.LastSeen.Set
}

// Apply mergea el patch sobre a. No toca ID, CreatedAt, CreatedBy ni UpdatedAt
// (updated_at lo refresca el repositorio).
func (p Patch) Apply(a *Animal) {
	if p.TagID != nil {
		a.TagID = strings.TrimSpace(*p.TagID)
	}
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Species != nil {
		a.Species = *p.Species
	}
	if p.Sex != nil {
		a.Sex = *p.Sex
	}
	if p.Location != nil {
		a.Location = strings.TrimSpace(*p.Location)
	}
	if p.HealthStatus != nil {
		a.HealthStatus = *p.HealthStatus
	}
	if p.Vaccinated != nil {
		a.Vaccinated = *p.Vaccinated
	}
	if p.Neutered != nil {
		a.Neutered = *p.Neutered
	}
	if p.EstimatedAge.Set {
		a.EstimatedAge = copyFloat(p.EstimatedAge.Value)
	}
	if p.Weight.Set {
		a.Weight = copyFloat(p.Weight.Value)
	}
	if p.Color != nil {
		a.Color = strings.TrimSpace(*p.Color)
	}
	if p.Notes != nil {
		a.Notes = strings.TrimSpace(*p.Notes)
	}
	if p.PhotoURL != nil {
		a.PhotoURL = strings.TrimSpace(*p.PhotoURL)
	}
	if p.LastSeen.Set {
		if p.LastSeen.Value == nil {
			a.LastSeen = nil
		} else {
			t := p.LastSeen.Value.UTC()
			a.LastSeen = &t
		}
	}
}

func validNumber(v *float64) bool {
	if v == nil {
		return true
	}
	return !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v >= 0
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
