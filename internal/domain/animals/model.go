package animals

import "time"

// Species define las especies soportadas.
// @Enum cat, dog
type Species string

const (
	SpeciesCat Species = "cat"
	SpeciesDog Species = "dog"
)

func (s Species) Valid() bool {
	return s == SpeciesCat || s == SpeciesDog
}

// Sex define el sexo del animal.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}

// HealthStatus define el estado de salud.
// @Enum healthy, sick, injured, critical
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthSick     HealthStatus = "sick"
	HealthInjured  HealthStatus = "injured"
	HealthCritical HealthStatus = "critical"
)

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthHealthy, HealthSick, HealthInjured, HealthCritical:
		return true
	}
	return false
}

// AtRisk: sick, injured o critical.
func (h HealthStatus) AtRisk() bool {
	return h == HealthSick || h == HealthInjured || h == HealthCritical
}

// Animal representa un animal callejero registrado.
type Animal struct {
	ID    string
	TagID string // CAT-123456 / DOG-123456, único por convención (no se valida)
	Name  string

	Species Species
	Sex     Sex

	Location     string
	HealthStatus HealthStatus

	Vaccinated bool
	Neutered   bool

	// nil = desconocido (nunca 0 por defecto)
	EstimatedAge *float64 // años
	Weight       *float64 // kg

	Color    string
	Notes    string
	PhotoURL string

	LastSeen *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
}
