package visits

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingAnimalID = errors.New("animal id is required")
)

// PropagationError: la visita quedó guardada pero el update del animal falló.
// No hay rollback; VisitID identifica el registro ya persistido.
type PropagationError struct {
	VisitID  string
	AnimalID string
	Err      error
}

func (e *PropagationError) Error() string {
	return fmt.Sprintf("visit %s saved but animal %s was not updated: %v", e.VisitID, e.AnimalID, e.Err)
}

func (e *PropagationError) Unwrap() error {
	return e.Err
}
