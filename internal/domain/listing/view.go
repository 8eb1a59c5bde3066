package listing

import (
	"context"

	"barangay-animal-tracking/internal/domain/animals"
)

// Loader es la lectura remota del registro (animals.Service.List).
type Loader interface {
	List(ctx context.Context, f animals.ListFilter) ([]animals.Animal, error)
}

// View es el estado de una vista: lista cacheada + filtro.
// Tiene un solo dueño por ciclo de carga; no es seguro para uso concurrente.
type View struct {
	items  []animals.Animal
	filter Filter
}

func NewView() *View {
	return &View{filter: DefaultFilter()}
}

// Load reemplaza la lista completa. Al store solo viaja un predicado
// (species gana sobre healthStatus); Visible aplica el resto.
func (v *View) Load(ctx context.Context, l Loader) error {
	items, err := l.List(ctx, animals.ListFilter{
		Species:      v.filter.Species,
		HealthStatus: v.filter.HealthStatus,
	})
	if err != nil {
		return err
	}
	v.SetAnimals(items)
	return nil
}

func (v *View) SetAnimals(items []animals.Animal) {
	v.items = append([]animals.Animal(nil), items...)
}

func (v *View) Animals() []animals.Animal {
	return v.items
}

func (v *View) Filter() Filter {
	return v.filter
}

func (v *View) SetFilter(u FilterUpdate) {
	v.filter = v.filter.Merge(u)
}

func (v *View) ResetFilter() {
	v.filter = DefaultFilter()
}

func (v *View) Visible() []animals.Animal {
	return Apply(v.items, v.filter)
}
