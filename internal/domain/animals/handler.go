package animals

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"barangay-animal-tracking/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const maxPhotoBytes = 10 << 20 // 10MB

// Refiner completa en memoria el filtrado que el store no hace
// (segundo predicado + search). nil = devolver lo que trae el store.
type Refiner func(items []Animal, q url.Values) []Animal

func RegisterRoutes(r chi.Router, svc *Service, refine Refiner) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc, refine))

		// Tag sugerido para el formulario de alta
		ar.Get("/tag", newTagHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))

		ar.Post("/{animalID}/photo", uploadPhotoHandler(svc))
	})
}

// formNumber acepta número JSON, string ("" = desconocido) o null.
type formNumber string

func (n *formNumber) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		*n = ""
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*n = formNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return err
	}
	*n = formNumber(num.String())
	return nil
}

type createAnimalRequest struct {
	TagID        string     `json:"tagId"`
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	Sex          string     `json:"sex"`
	Location     string     `json:"location"`
	HealthStatus string     `json:"healthStatus"`
	Vaccinated   bool       `json:"vaccinated"`
	Neutered     bool       `json:"neutered"`
	EstimatedAge formNumber `json:"estimatedAge" swaggertype:"string"`
	Weight       formNumber `json:"weight" swaggertype:"string"`
	Color        string     `json:"color"`
	Notes        string     `json:"notes"`
	PhotoURL     string     `json:"photoUrl"`
	LastSeen     *time.Time `json:"lastSeen"`
}

type updateAnimalRequest struct {
	TagID        *string `json:"tagId"`
	Name         *string `json:"name"`
	Species      *string `json:"species"`
	Sex          *string `json:"sex"`
	Location     *string `json:"location"`
	HealthStatus *string `json:"healthStatus"`
	Vaccinated   *bool   `json:"vaccinated"`
	Neutered     *bool   `json:"neutered"`
	Color        *string `json:"color"`
	Notes        *string `json:"notes"`
	PhotoURL     *string `json:"photoUrl"`

	// Se leen aparte para distinguir null de "no enviado".
	EstimatedAge json.RawMessage `json:"estimatedAge" swaggertype:"string"`
	Weight       json.RawMessage `json:"weight" swaggertype:"string"`
	LastSeen     json.RawMessage `json:"lastSeen" swaggertype:"string"`
}

// AnimalResponse es el JSON público de un Animal.
type AnimalResponse struct {
	ID           string     `json:"id"`
	TagID        string     `json:"tagId"`
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	Sex          string     `json:"sex"`
	Location     string     `json:"location"`
	HealthStatus string     `json:"healthStatus"`
	Vaccinated   bool       `json:"vaccinated"`
	Neutered     bool       `json:"neutered"`
	EstimatedAge *float64   `json:"estimatedAge"`
	Weight       *float64   `json:"weight"`
	Color        string     `json:"color"`
	Notes        string     `json:"notes"`
	PhotoURL     string     `json:"photoUrl,omitempty"`
	LastSeen     *time.Time `json:"lastSeen,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	CreatedBy    string     `json:"createdBy"`
}

type tagResponse struct {
	TagID string `json:"tagId"`
}

type photoResponse struct {
	URL string `json:"url"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal callejero. estimatedAge y weight aceptan número, string o null; vacío = desconocido. Si tagId viene vacío se genera uno (CAT-/DOG- + 6 dígitos). No se valida unicidad del tag.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} AnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "error del store"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Add(r.Context(), claims.UserID, CreateInput{
			TagID:        req.TagID,
			Name:         req.Name,
			Species:      req.Species,
			Sex:          req.Sex,
			Location:     req.Location,
			HealthStatus: req.HealthStatus,
			Vaccinated:   req.Vaccinated,
			Neutered:     req.Neutered,
			EstimatedAge: string(req.EstimatedAge),
			Weight:       string(req.Weight),
			Color:        req.Color,
			Notes:        req.Notes,
			PhotoURL:     req.PhotoURL,
			LastSeen:     req.LastSeen,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista animales ordenados por updatedAt desc. El store aplica un solo filtro (species tiene prioridad sobre healthStatus); el resto de la combinación (y search) se aplica en memoria.
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param species query string false "all | cat | dog"
// @Param healthStatus query string false "all | healthy | sick | injured | critical"
// @Param search query string false "Texto sobre nombre o tag (case-insensitive)"
// @Success 200 {array} AnimalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "error del store"
// @Router /animals [get]
func listAnimalsHandler(svc *Service, refine Refiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Species:      q.Get("species"),
			HealthStatus: q.Get("healthStatus"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		if refine != nil {
			items = refine(items, q)
		}

		out := make([]AnimalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, ToResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// newTagHandler godoc
// @Summary Generar tag
// @Description Devuelve un tag nuevo (DOG-###### si species=dog, si no CAT-######) para poblar el formulario.
// @Tags animals
// @Produce json
// @Param species query string false "cat | dog"
// @Success 200 {object} tagResponse
// @Router /animals/tag [get]
func newTagHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		species := Species(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("species"))))
		writeJSON(w, http.StatusOK, tagResponse{TagID: svc.NewTagID(species)})
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Success 200 {object} AnimalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, found, err := svc.Get(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal (PATCH)
// @Description Merge parcial: solo cambian los campos enviados. estimatedAge, weight y lastSeen aceptan null para limpiar. Para guardar la foto subida, enviar photoUrl.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a cambiar"
// @Success 200 {object} AnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := req.toPatch()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), p)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(updated))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal
// @Description Hard delete. Las visitas del animal no se eliminan.
// @Tags animals
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadPhotoHandler godoc
// @Summary Subir foto
// @Description Sube la foto a animals/{animalID}/{epochMillis}-{nombre} y devuelve la URL pública. No actualiza el animal.
// @Tags animals
// @Accept mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Param file formData file true "Imagen"
// @Success 201 {object} photoResponse
// @Failure 400 {string} string "file requerido"
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "photo storage not configured"
// @Router /animals/{animalID}/photo [post]
func uploadPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
		if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		photoURL, err := svc.AttachPhoto(r.Context(), chi.URLParam(r, "animalID"), PhotoUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, photoResponse{URL: photoURL})
	}
}

func (req updateAnimalRequest) toPatch() (Patch, error) {
	p := Patch{
		TagID:      req.TagID,
		Name:       req.Name,
		Location:   req.Location,
		Vaccinated: req.Vaccinated,
		Neutered:   req.Neutered,
		Color:      req.Color,
		Notes:      req.Notes,
		PhotoURL:   req.PhotoURL,
	}
	if req.Species != nil {
		s := Species(strings.ToLower(strings.TrimSpace(*req.Species)))
		p.Species = &s
	}
	if req.Sex != nil {
		s := Sex(strings.ToLower(strings.TrimSpace(*req.Sex)))
		p.Sex = &s
	}
	if req.HealthStatus != nil {
		h := HealthStatus(strings.ToLower(strings.TrimSpace(*req.HealthStatus)))
		p.HealthStatus = &h
	}

	var err error
	if p.EstimatedAge, err = patchNumber(req.EstimatedAge); err != nil {
		return Patch{}, errors.New("estimatedAge must be a non-negative number or null")
	}
	if p.Weight, err = patchNumber(req.Weight); err != nil {
		return Patch{}, errors.New("weight must be a non-negative number or null")
	}

	// encoding/json deja RawMessage en "null" cuando el campo viene null,
	// y vacío cuando no viene.
	if len(req.LastSeen) > 0 {
		p.LastSeen.Set = true
		if string(req.LastSeen) != "null" {
			var t time.Time
			if err := json.Unmarshal(req.LastSeen, &t); err != nil {
				return Patch{}, errors.New("lastSeen must be RFC3339 or null")
			}
			p.LastSeen.Value = &t
		}
	}
	return p, nil
}

func patchNumber(raw json.RawMessage) (OptionalNumber, error) {
	if len(raw) == 0 {
		return OptionalNumber{}, nil
	}
	var n formNumber
	if err := json.Unmarshal(raw, &n); err != nil {
		return OptionalNumber{}, err
	}
	v, err := ParseNumber(string(n))
	if err != nil {
		return OptionalNumber{}, err
	}
	return OptionalNumber{Set: true, Value: v}, nil
}

// ToResponse también lo usa el dashboard.
func ToResponse(a Animal) AnimalResponse {
	return AnimalResponse{
		ID:           a.ID,
		TagID:        a.TagID,
		Name:         a.Name,
		Species:      string(a.Species),
		Sex:          string(a.Sex),
		Location:     a.Location,
		HealthStatus: string(a.HealthStatus),
		Vaccinated:   a.Vaccinated,
		Neutered:     a.Neutered,
		EstimatedAge: a.EstimatedAge,
		Weight:       a.Weight,
		Color:        a.Color,
		Notes:        a.Notes,
		PhotoURL:     a.PhotoURL,
		LastSeen:     a.LastSeen,
		CreatedAt:    timePtr(a.CreatedAt),
		UpdatedAt:    timePtr(a.UpdatedAt),
		CreatedBy:    a.CreatedBy,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrNoBlobStore):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		// Sin traducción: el caller muestra el mensaje crudo del backend.
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
