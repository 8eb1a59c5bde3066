package accounts

import (
	"context"

	"barangay-animal-tracking/internal/ports/recordstore"
)

const FieldRole = "role"

// Repository: el ID lo trae el caller (id del proveedor de auth); el store
// asigna created_at / updated_at. Los misses devuelven recordstore.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, a Account) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	List(ctx context.Context, where *recordstore.Where) ([]Account, error)
	Update(ctx context.Context, id string, p Patch) (Account, error)
	Delete(ctx context.Context, id string) error
}
