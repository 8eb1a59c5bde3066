// Package storagetest tiene la suite común que corre cada backend de storage.
package storagetest

import (
	"context"
	"testing"
	"time"

	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/domain/visits"
	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// RunAnimalRepo espera un repo vacío por llamada.
func RunAnimalRepo(t *testing.T, newRepo func(t *testing.T) animals.Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		seen := time.Date(2024, 4, 30, 17, 0, 0, 0, time.UTC)

		a, err := repo.Create(ctx, animals.Animal{
			TagID:        "CAT-152980",
			Name:         "Tom",
			Species:      animals.SpeciesCat,
			Sex:          animals.SexMale,
			Location:     "Barangay Hall",
			HealthStatus: animals.HealthHealthy,
			Weight:       ptr(3.5),
			Color:        "Orange tabby",
			LastSeen:     &seen,
			CreatedBy:    "u1",
		})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
		assert.Equal(t, a.CreatedAt, a.UpdatedAt)

		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "CAT-152980", got.TagID)
		assert.Equal(t, animals.SexMale, got.Sex)
		assert.Nil(t, got.EstimatedAge)
		require.NotNil(t, got.Weight)
		assert.Equal(t, 3.5, *got.Weight)
		require.NotNil(t, got.LastSeen)
		assert.True(t, got.LastSeen.Equal(seen))
		assert.True(t, got.CreatedAt.Equal(a.CreatedAt))
		assert.Equal(t, "u1", got.CreatedBy)
	})

	t.Run("get missing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, recordstore.ErrNotFound)
	})

	t.Run("update merges and refreshes updated_at", func(t *testing.T) {
		repo := newRepo(t)
		a, err := repo.Create(ctx, animals.Animal{
			TagID: "DOG-329140", Name: "Bantay", Species: animals.SpeciesDog,
			Sex: animals.SexFemale, HealthStatus: animals.HealthHealthy, EstimatedAge: ptr(2.0),
		})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, a.ID, animals.Patch{
			Vaccinated:   ptr(true),
			EstimatedAge: animals.ClearNumber(),
		})
		require.NoError(t, err)
		assert.True(t, updated.Vaccinated)
		assert.Nil(t, updated.EstimatedAge)
		assert.Equal(t, "Bantay", updated.Name)
		assert.True(t, updated.UpdatedAt.After(a.UpdatedAt))
		assert.True(t, updated.CreatedAt.Equal(a.CreatedAt))

		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, got.Vaccinated)
		assert.Nil(t, got.EstimatedAge)
	})

	t.Run("update missing is not a blind write", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Update(ctx, "00000000-0000-0000-0000-000000000000", animals.Patch{Vaccinated: ptr(true)})
		assert.ErrorIs(t, err, recordstore.ErrNotFound)

		list, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)
		a, err := repo.Create(ctx, animals.Animal{Name: "X", Species: animals.SpeciesCat, Sex: animals.SexUnknown, HealthStatus: animals.HealthSick})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, a.ID))
		_, err = repo.GetByID(ctx, a.ID)
		assert.ErrorIs(t, err, recordstore.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, a.ID), recordstore.ErrNotFound)
	})

	t.Run("list filters by one field and orders by updated_at desc", func(t *testing.T) {
		repo := newRepo(t)
		mk := func(name string, s animals.Species, h animals.HealthStatus) animals.Animal {
			a, err := repo.Create(ctx, animals.Animal{Name: name, Species: s, Sex: animals.SexUnknown, HealthStatus: h})
			require.NoError(t, err)
			return a
		}
		cat1 := mk("cat1", animals.SpeciesCat, animals.HealthHealthy)
		dog1 := mk("dog1", animals.SpeciesDog, animals.HealthCritical)
		dog2 := mk("dog2", animals.SpeciesDog, animals.HealthHealthy)
		cat2 := mk("cat2", animals.SpeciesCat, animals.HealthCritical)

		// cat1 pasa a ser el más reciente
		_, err := repo.Update(ctx, cat1.ID, animals.Patch{Notes: ptr("seen today")})
		require.NoError(t, err)

		all, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{cat1.ID, cat2.ID, dog2.ID, dog1.ID}, animalIDs(all))

		dogs, err := repo.List(ctx, &recordstore.Where{Field: animals.FieldSpecies, Value: "dog"})
		require.NoError(t, err)
		assert.Equal(t, []string{dog2.ID, dog1.ID}, animalIDs(dogs))

		critical, err := repo.List(ctx, &recordstore.Where{Field: animals.FieldHealthStatus, Value: "critical"})
		require.NoError(t, err)
		assert.Equal(t, []string{cat2.ID, dog1.ID}, animalIDs(critical))
	})

	t.Run("list rejects unknown field", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.List(ctx, &recordstore.Where{Field: "name; DROP TABLE animals", Value: "x"})
		assert.Error(t, err)
	})
}

func animalIDs(items []animals.Animal) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

// RunVisitRepo espera un repo vacío por llamada.
func RunVisitRepo(t *testing.T, newRepo func(t *testing.T) visits.Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("create assigns id and created_at", func(t *testing.T) {
		repo := newRepo(t)
		v, err := repo.Create(ctx, visits.Visit{
			AnimalID:   "a-1",
			VisitType:  visits.TypeVaccination,
			Diagnosis:  "none",
			Vaccinated: true,
			RecordedBy: "vet-1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, v.ID)
		assert.False(t, v.CreatedAt.IsZero())

		list, err := repo.ListByAnimal(ctx, "a-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, v.ID, list[0].ID)
		assert.Equal(t, visits.TypeVaccination, list[0].VisitType)
		assert.True(t, list[0].Vaccinated)
		assert.False(t, list[0].Neutered)
		assert.Equal(t, "vet-1", list[0].RecordedBy)
		assert.True(t, list[0].CreatedAt.Equal(v.CreatedAt))
	})

	t.Run("list is scoped and newest first", func(t *testing.T) {
		repo := newRepo(t)
		var want []string
		for _, vt := range []visits.VisitType{visits.TypeCheckup, visits.TypeTreatment, visits.TypeFollowup} {
			v, err := repo.Create(ctx, visits.Visit{AnimalID: "a-1", VisitType: vt})
			require.NoError(t, err)
			want = append([]string{v.ID}, want...)
		}
		_, err := repo.Create(ctx, visits.Visit{AnimalID: "a-2", VisitType: visits.TypeSighting})
		require.NoError(t, err)

		list, err := repo.ListByAnimal(ctx, "a-1")
		require.NoError(t, err)

		got := make([]string, 0, len(list))
		for i, v := range list {
			got = append(got, v.ID)
			if i > 0 {
				assert.False(t, v.CreatedAt.After(list[i-1].CreatedAt))
			}
		}
		assert.Equal(t, want, got)

		none, err := repo.ListByAnimal(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

// RunAccountRepo espera un repo vacío por llamada.
func RunAccountRepo(t *testing.T, newRepo func(t *testing.T) accounts.Repository) {
	t.Helper()
	ctx := context.Background()

	seed := func(t *testing.T, repo accounts.Repository) {
		for _, a := range []accounts.Account{
			{ID: "uid-admin", Email: "admin@barangay.com", FullName: "Administrator", Role: accounts.RoleAdmin},
			{ID: "uid-staff", Email: "staff@barangay.com", FullName: "Barangay Staff", Role: accounts.RoleStaff},
			{ID: "uid-vet", Email: "vet@barangay.com", FullName: "Dr. Veterinarian", Role: accounts.RoleVeterinarian},
		} {
			_, err := repo.Create(ctx, a)
			require.NoError(t, err)
		}
	}

	t.Run("create and lookups", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		a, err := repo.GetByID(ctx, "uid-vet")
		require.NoError(t, err)
		assert.Equal(t, "vet@barangay.com", a.Email)
		assert.Equal(t, accounts.RoleVeterinarian, a.Role)
		assert.Equal(t, 0, a.AnimalsManaged)
		assert.False(t, a.CreatedAt.IsZero())

		b, err := repo.GetByEmail(ctx, "staff@barangay.com")
		require.NoError(t, err)
		assert.Equal(t, "uid-staff", b.ID)

		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, recordstore.ErrNotFound)
		_, err = repo.GetByEmail(ctx, "ghost@barangay.com")
		assert.ErrorIs(t, err, recordstore.ErrNotFound)
	})

	t.Run("list by role", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		all, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		admins, err := repo.List(ctx, &recordstore.Where{Field: accounts.FieldRole, Value: "admin"})
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, "uid-admin", admins[0].ID)
	})

	t.Run("update and delete", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		before, err := repo.GetByID(ctx, "uid-staff")
		require.NoError(t, err)

		updated, err := repo.Update(ctx, "uid-staff", accounts.Patch{
			Role:           ptr(accounts.RoleVeterinarian),
			AnimalsManaged: ptr(4),
		})
		require.NoError(t, err)
		assert.Equal(t, accounts.RoleVeterinarian, updated.Role)
		assert.Equal(t, 4, updated.AnimalsManaged)
		assert.Equal(t, "Barangay Staff", updated.FullName)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))

		_, err = repo.Update(ctx, "ghost", accounts.Patch{FullName: ptr("x")})
		assert.ErrorIs(t, err, recordstore.ErrNotFound)

		require.NoError(t, repo.Delete(ctx, "uid-staff"))
		assert.ErrorIs(t, repo.Delete(ctx, "uid-staff"), recordstore.ErrNotFound)
	})
}

// RunCredentialRepo espera un repo vacío por llamada.
func RunCredentialRepo(t *testing.T, newRepo func(t *testing.T) auth.CredentialRepository) {
	t.Helper()
	ctx := context.Background()

	repo := newRepo(t)
	c := auth.Credential{
		UserID:       "uid-1",
		Email:        "staff@barangay.com",
		DisplayName:  "Barangay Staff",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Put(ctx, c))
	assert.ErrorIs(t, repo.Put(ctx, auth.Credential{UserID: "uid-2", Email: c.Email}), auth.ErrEmailExists)

	got, err := repo.GetByEmail(ctx, c.Email)
	require.NoError(t, err)
	assert.Equal(t, c.UserID, got.UserID)
	assert.Equal(t, c.PasswordHash, got.PasswordHash)

	_, err = repo.GetByEmail(ctx, "ghost@barangay.com")
	assert.ErrorIs(t, err, recordstore.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "uid-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "uid-1"), recordstore.ErrNotFound)
}
