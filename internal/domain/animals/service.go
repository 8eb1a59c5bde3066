package animals

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"barangay-animal-tracking/internal/ports/blobstore"
	"barangay-animal-tracking/internal/ports/recordstore"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = recordstore.ErrNotFound
	ErrNoBlobStore  = errors.New("photo storage not configured")
)

type Service struct {
	repo  Repository
	blobs blobstore.Store

	now       func() time.Time
	tagNumber func() int
}

func NewService(repo Repository, blobs blobstore.Store) *Service {
	return &Service{
		repo:      repo,
		blobs:     blobs,
		now:       time.Now,
		tagNumber: randomTagNumber,
	}
}

// NewTagID genera un tag para poblar el formulario de alta.
// No se verifica colisión contra tags existentes.
func (s *Service) NewTagID(species Species) string {
	return GenerateTagID(species, s.tagNumber())
}

// CreateInput viene del formulario; los números llegan como texto y
// vacío significa "desconocido".
type CreateInput struct {
	TagID        string
	Name         string
	Species      string
	Sex          string
	Location     string
	HealthStatus string
	Vaccinated   bool
	Neutered     bool
	EstimatedAge string
	Weight       string
	Color        string
	Notes        string
	PhotoURL     string
	LastSeen     *time.Time
}

func (s *Service) Add(ctx context.Context, createdBy string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(createdBy) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}

	species := Species(strings.ToLower(strings.TrimSpace(in.Species)))
	if !species.Valid() {
		return Animal{}, ErrInvalidInput
	}

	sex := SexUnknown
	if v := strings.TrimSpace(in.Sex); v != "" {
		sex = Sex(strings.ToLower(v))
		if !sex.Valid() {
			return Animal{}, ErrInvalidInput
		}
	}

	health := HealthHealthy
	if v := strings.TrimSpace(in.HealthStatus); v != "" {
		health = HealthStatus(strings.ToLower(v))
		if !health.Valid() {
			return Animal{}, ErrInvalidInput
		}
	}

	age, err := ParseNumber(in.EstimatedAge)
	if err != nil {
		return Animal{}, err
	}
	weight, err := ParseNumber(in.Weight)
	if err != nil {
		return Animal{}, err
	}

	tag := strings.TrimSpace(in.TagID)
	if tag == "" {
		tag = s.NewTagID(species)
	}

	a := Animal{
		TagID:        tag,
		Name:         strings.TrimSpace(in.Name),
		Species:      species,
		Sex:          sex,
		Location:     strings.TrimSpace(in.Location),
		HealthStatus: health,
		Vaccinated:   in.Vaccinated,
		Neutered:     in.Neutered,
		EstimatedAge: age,
		Weight:       weight,
		Color:        strings.TrimSpace(in.Color),
		Notes:        strings.TrimSpace(in.Notes),
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		LastSeen:     in.LastSeen,
		CreatedBy:    createdBy,
	}

	return s.repo.Create(ctx, a)
}

// ParseNumber: vacío => nil (desconocido). Negativo o no numérico => ErrInvalidInput.
func ParseNumber(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || !validNumber(&f) {
		return nil, ErrInvalidInput
	}
	return &f, nil
}

// Update valida y delega el merge al repositorio. ErrNotFound si no existe.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Animal, error) {
	if strings.TrimSpace(id) == "" {
		return Animal{}, ErrInvalidInput
	}
	if err := p.Validate(); err != nil {
		return Animal{}, err
	}
	return s.repo.Update(ctx, id, p)
}

// Delete es hard delete. Las visitas del animal NO se borran.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// Get devuelve found=false (sin error) si el id no existe.
func (s *Service) Get(ctx context.Context, id string) (Animal, bool, error) {
	if strings.TrimSpace(id) == "" {
		return Animal{}, false, nil
	}
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Animal{}, false, nil
	}
	if err != nil {
		return Animal{}, false, err
	}
	return a, true, nil
}

// ListFilter: vacío o "all" = sin restricción.
type ListFilter struct {
	Species      string
	HealthStatus string
}

// RemoteWhere elige el único predicado que se manda al store.
// Si vienen species y healthStatus, gana species; el resto lo filtra listing.
func (f ListFilter) RemoteWhere() *recordstore.Where {
	if w := recordstore.Eq(FieldSpecies, strings.ToLower(f.Species)); w != nil {
		return w
	}
	return recordstore.Eq(FieldHealthStatus, strings.ToLower(f.HealthStatus))
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Animal, error) {
	return s.repo.List(ctx, f.RemoteWhere())
}

type PhotoUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// PhotoKey: animals/{animalId}/{epochMillis}-{fileName}
func PhotoKey(animalID string, at time.Time, fileName string) string {
	return fmt.Sprintf("animals/%s/%d-%s", animalID, at.UnixMilli(), fileName)
}

// AttachPhoto sube la foto y devuelve su URL pública. No modifica el
// registro del animal: el caller guarda la URL con Update (PhotoURL).
func (s *Service) AttachPhoto(ctx context.Context, animalID string, up PhotoUpload) (string, error) {
	if s.blobs == nil {
		return "", ErrNoBlobStore
	}
	animalID = strings.TrimSpace(animalID)
	if animalID == "" || up.Body == nil {
		return "", ErrInvalidInput
	}

	name := path.Base(strings.ReplaceAll(strings.TrimSpace(up.FileName), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "", ErrInvalidInput
	}

	key := PhotoKey(animalID, s.now(), name)
	if _, err := s.blobs.Put(ctx, key, up.Body, up.ContentType); err != nil {
		return "", err
	}
	return s.blobs.URL(ctx, key)
}
