package visits

import "time"

// VisitType define los tipos de visita.
// @Enum checkup, vaccination, neutering, treatment, followup, sighting
type VisitType string

const (
	TypeCheckup     VisitType = "checkup"
	TypeVaccination VisitType = "vaccination"
	TypeNeutering   VisitType = "neutering"
	TypeTreatment   VisitType = "treatment"
	TypeFollowup    VisitType = "followup"
	TypeSighting    VisitType = "sighting"
)

func (t VisitType) Valid() bool {
	switch t {
	case TypeCheckup, TypeVaccination, TypeNeutering, TypeTreatment, TypeFollowup, TypeSighting:
		return true
	}
	return false
}

// Visit es append-only: no existe update ni delete.
// AnimalID es una referencia no-owner (borrar el animal no borra sus visitas).
type Visit struct {
	ID       string
	AnimalID string

	VisitType VisitType
	Diagnosis string
	Treatment string
	Notes     string

	// Solo true se propaga al animal.
	Vaccinated bool
	Neutered   bool

	RecordedBy string
	CreatedAt  time.Time
}
