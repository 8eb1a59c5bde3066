package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"barangay-animal-tracking/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals/{animalID}/visits", func(vr chi.Router) {
		vr.Post("/", createVisitHandler(svc))
		vr.Get("/", listVisitsHandler(svc))
	})
}

// createVisitRequest es el cuerpo para registrar una visita.
type createVisitRequest struct {
	VisitType  string `json:"visitType" enums:"checkup,vaccination,neutering,treatment,followup,sighting"`
	Diagnosis  string `json:"diagnosis"`
	Treatment  string `json:"treatment"`
	Notes      string `json:"notes"`
	Vaccinated bool   `json:"vaccinated"`
	Neutered   bool   `json:"neutered"`
}

type visitResponse struct {
	ID         string    `json:"id"`
	AnimalID   string    `json:"animalId"`
	VisitType  VisitType `json:"visitType"`
	Diagnosis  string    `json:"diagnosis"`
	Treatment  string    `json:"treatment"`
	Notes      string    `json:"notes"`
	Vaccinated bool      `json:"vaccinated"`
	Neutered   bool      `json:"neutered"`
	RecordedBy string    `json:"recordedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// partialVisitResponse: la visita se guardó pero el animal no se actualizó.
type partialVisitResponse struct {
	Visit            visitResponse `json:"visit"`
	PropagationError string        `json:"propagationError"`
}

// createVisitHandler godoc
// @Summary Registrar visita
// @Description Registra una visita para el animal. Si vaccinated/neutered vienen en true, se marcan en el animal (nunca se vuelven a false). Si la visita se guarda pero el update del animal falla, responde 207 con la visita y el error; no hay rollback.
// @Tags visits
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Param payload body createVisitRequest true "Datos de la visita"
// @Success 201 {object} visitResponse
// @Success 207 {object} partialVisitResponse
// @Failure 400 {string} string "invalid json / visit type inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "error del store"
// @Router /animals/{animalID}/visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Add(r.Context(), claims.UserID, CreateInput{
			AnimalID:   chi.URLParam(r, "animalID"),
			VisitType:  req.VisitType,
			Diagnosis:  req.Diagnosis,
			Treatment:  req.Treatment,
			Notes:      req.Notes,
			Vaccinated: req.Vaccinated,
			Neutered:   req.Neutered,
		})

		var perr *PropagationError
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, toVisitResponse(v))
		case errors.As(err, &perr):
			writeJSON(w, http.StatusMultiStatus, partialVisitResponse{
				Visit:            toVisitResponse(v),
				PropagationError: perr.Error(),
			})
		case errors.Is(err, ErrMissingAnimalID), errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// listVisitsHandler godoc
// @Summary Listar visitas de un animal
// @Description Visitas del animal, la más reciente primero. Incluye visitas de animales eliminados.
// @Tags visits
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Success 200 {array} visitResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "error del store"
// @Router /animals/{animalID}/visits [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrMissingAnimalID) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:         v.ID,
		AnimalID:   v.AnimalID,
		VisitType:  v.VisitType,
		Diagnosis:  v.Diagnosis,
		Treatment:  v.Treatment,
		Notes:      v.Notes,
		Vaccinated: v.Vaccinated,
		Neutered:   v.Neutered,
		RecordedBy: v.RecordedBy,
		CreatedAt:  v.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
