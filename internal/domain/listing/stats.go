package listing

import (
	"context"

	"barangay-animal-tracking/internal/domain/animals"

	"github.com/samber/lo"
)

const recentLimit = 5

type Summary struct {
	Total      int `json:"total"`
	Healthy    int `json:"healthy"`
	Vaccinated int `json:"vaccinated"`
	AtRisk     int `json:"atRisk"`
	Cats       int `json:"cats"`
	Dogs       int `json:"dogs"`
}

func Summarize(items []animals.Animal) Summary {
	return Summary{
		Total:      len(items),
		Healthy:    lo.CountBy(items, func(a animals.Animal) bool { return a.HealthStatus == animals.HealthHealthy }),
		Vaccinated: lo.CountBy(items, func(a animals.Animal) bool { return a.Vaccinated }),
		AtRisk:     lo.CountBy(items, func(a animals.Animal) bool { return a.HealthStatus.AtRisk() }),
		Cats:       lo.CountBy(items, func(a animals.Animal) bool { return a.Species == animals.SpeciesCat }),
		Dogs:       lo.CountBy(items, func(a animals.Animal) bool { return a.Species == animals.SpeciesDog }),
	}
}

type Dashboard struct {
	Summary      Summary
	Recent       []animals.Animal
	AtRisk       []animals.Animal
	Unvaccinated []animals.Animal
}

// BuildDashboard asume items en orden updated_at desc (como devuelve List).
func BuildDashboard(items []animals.Animal) Dashboard {
	return Dashboard{
		Summary: Summarize(items),
		Recent:  items[:min(recentLimit, len(items))],
		AtRisk: lo.Filter(items, func(a animals.Animal, _ int) bool {
			return a.HealthStatus.AtRisk()
		}),
		Unvaccinated: lo.Reject(items, func(a animals.Animal, _ int) bool {
			return a.Vaccinated
		}),
	}
}

// LoadDashboard trae la colección completa y arma el tablero.
func LoadDashboard(ctx context.Context, l Loader) (Dashboard, error) {
	v := NewView()
	if err := v.Load(ctx, l); err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(v.Animals()), nil
}
