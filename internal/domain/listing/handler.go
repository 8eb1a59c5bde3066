package listing

import (
	"encoding/json"
	"net/http"
	"strings"

	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, loader Loader) {
	r.Get("/dashboard", dashboardHandler(loader))
}

type dashboardResponse struct {
	Summary      Summary                  `json:"summary"`
	Recent       []animals.AnimalResponse `json:"recent"`
	AtRisk       []animals.AnimalResponse `json:"atRisk"`
	Unvaccinated []animals.AnimalResponse `json:"unvaccinated"`
}

// dashboardHandler godoc
// @Summary Tablero
// @Description Totales (total, healthy, vaccinated, atRisk, cats, dogs), los 5 animales actualizados más recientemente, los animales en riesgo (sick/injured/critical) y los no vacunados.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} dashboardResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "error del store"
// @Router /dashboard [get]
func dashboardHandler(loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		d, err := LoadDashboard(r.Context(), loader)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, dashboardResponse{
			Summary:      d.Summary,
			Recent:       toResponses(d.Recent),
			AtRisk:       toResponses(d.AtRisk),
			Unvaccinated: toResponses(d.Unvaccinated),
		})
	}
}

func toResponses(items []animals.Animal) []animals.AnimalResponse {
	out := make([]animals.AnimalResponse, 0, len(items))
	for _, a := range items {
		out = append(out, animals.ToResponse(a))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
