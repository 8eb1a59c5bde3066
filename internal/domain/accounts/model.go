package accounts

import "time"

// Role define el alcance de autorización.
// @Enum admin, staff, veterinarian
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleStaff        Role = "staff"
	RoleVeterinarian Role = "veterinarian"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleVeterinarian:
		return true
	}
	return false
}

// Account es el perfil de un usuario. ID = id del proveedor de auth, inmutable.
type Account struct {
	ID       string
	Email    string
	FullName string
	Role     Role

	AnimalsManaged int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Patch: nil = no tocar.
type Patch struct {
	FullName       *string
	Role           *Role
	AnimalsManaged *int
}

func (p Patch) Validate() error {
	if p.FullName != nil && *p.FullName == "" {
		return ErrInvalidInput
	}
	if p.Role != nil && !p.Role.Valid() {
		return ErrInvalidInput
	}
	if p.AnimalsManaged != nil && *p.AnimalsManaged < 0 {
		return ErrInvalidInput
	}
	return nil
}

func (p Patch) Apply(a *Account) {
	if p.FullName != nil {
		a.FullName = *p.FullName
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.AnimalsManaged != nil {
		a.AnimalsManaged = *p.AnimalsManaged
	}
}
