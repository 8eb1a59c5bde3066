// Package listing calcula en memoria el subconjunto visible de una lista de
// animales ya cargada (sin round-trips al store por cada cambio de filtro).
package listing

import (
	"net/url"
	"strings"

	"barangay-animal-tracking/internal/domain/animals"

	"github.com/samber/lo"
)

// All es el valor centinela "sin restricción".
const All = "all"

type Filter struct {
	Species      string // all | cat | dog
	HealthStatus string // all | healthy | sick | injured | critical
	Search       string
}

func DefaultFilter() Filter {
	return Filter{Species: All, HealthStatus: All}
}

// FilterUpdate: nil = no cambiar.
type FilterUpdate struct {
	Species      *string
	HealthStatus *string
	Search       *string
}

// Merge devuelve una copia con solo los campos enviados cambiados.
func (f Filter) Merge(u FilterUpdate) Filter {
	if u.Species != nil {
		f.Species = *u.Species
	}
	if u.HealthStatus != nil {
		f.HealthStatus = *u.HealthStatus
	}
	if u.Search != nil {
		f.Search = *u.Search
	}
	return f
}

// FromQuery lee species / healthStatus / search de la query string.
func FromQuery(q url.Values) Filter {
	u := FilterUpdate{}
	if q.Has("species") {
		u.Species = lo.ToPtr(q.Get("species"))
	}
	if q.Has("healthStatus") {
		u.HealthStatus = lo.ToPtr(q.Get("healthStatus"))
	}
	if q.Has("search") {
		u.Search = lo.ToPtr(q.Get("search"))
	}
	return DefaultFilter().Merge(u)
}

// Matches: conjunción de species, health y search (nombre o tag, sin
// distinguir mayúsculas).
func (f Filter) Matches(a animals.Animal) bool {
	if !unrestricted(f.Species) && !strings.EqualFold(string(a.Species), strings.TrimSpace(f.Species)) {
		return false
	}
	if !unrestricted(f.HealthStatus) && !strings.EqualFold(string(a.HealthStatus), strings.TrimSpace(f.HealthStatus)) {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(a.Name), needle) ||
		strings.Contains(strings.ToLower(a.TagID), needle)
}

// Apply devuelve la subsecuencia de items que cumple f, en el mismo orden.
func Apply(items []animals.Animal, f Filter) []animals.Animal {
	return lo.Filter(items, func(a animals.Animal, _ int) bool {
		return f.Matches(a)
	})
}

// Refine es el animals.Refiner que usa GET /animals.
func Refine(items []animals.Animal, q url.Values) []animals.Animal {
	return Apply(items, FromQuery(q))
}

func unrestricted(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}
