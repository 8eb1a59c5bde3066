package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"barangay-animal-tracking/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Perfil propio
	r.Get("/me", getMeHandler(svc))
	r.Patch("/me", updateMeHandler(svc))

	// Administración de usuarios (solo admin)
	r.Route("/accounts", func(ar chi.Router) {
		ar.Use(middleware.RequireRole(svc.RoleOf, string(RoleAdmin)))

		ar.Get("/", listAccountsHandler(svc))
		ar.Post("/", createAccountHandler(svc))
		ar.Get("/{accountID}", getAccountHandler(svc))
		ar.Patch("/{accountID}", updateAccountHandler(svc))
		ar.Delete("/{accountID}", deleteAccountHandler(svc))
	})
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role" enums:"admin,staff,veterinarian"`
}

type updateAccountRequest struct {
	FullName       *string `json:"fullName"`
	Role           *string `json:"role"`
	AnimalsManaged *int    `json:"animalsManaged"`
}

type updateMeRequest struct {
	FullName *string `json:"fullName"`
}

type accountResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	Role           Role      `json:"role"`
	AnimalsManaged int       `json:"animalsManaged"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// getMeHandler godoc
// @Summary Mi perfil
// @Tags accounts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} accountResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "account not found"
// @Router /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

// updateMeHandler godoc
// @Summary Actualizar mi perfil
// @Description Solo permite cambiar fullName; el rol lo cambia un admin.
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body updateMeRequest true "Campos a cambiar"
// @Success 200 {object} accountResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "account not found"
// @Router /me [patch]
func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req updateMeRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), claims.UserID, Patch{FullName: req.FullName})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

// listAccountsHandler godoc
// @Summary Listar cuentas (admin)
// @Tags accounts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param role query string false "admin | staff | veterinarian"
// @Success 200 {array} accountResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /accounts [get]
func listAccountsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("role"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]accountResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAccountResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createAccountHandler godoc
// @Summary Registrar cuenta (admin)
// @Description Crea la credencial en el proveedor de auth y después el perfil. role vacío = staff.
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body createAccountRequest true "Datos de la cuenta"
// @Success 201 {object} accountResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 409 {string} string "email already registered"
// @Router /accounts [post]
func createAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Register(r.Context(), RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Role:     req.Role,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAccountResponse(a))
	}
}

// getAccountHandler godoc
// @Summary Obtener cuenta (admin)
// @Tags accounts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param accountID path string true "ID de la cuenta"
// @Success 200 {object} accountResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "account not found"
// @Router /accounts/{accountID} [get]
func getAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "accountID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

// updateAccountHandler godoc
// @Summary Actualizar cuenta (admin)
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param accountID path string true "ID de la cuenta"
// @Param payload body updateAccountRequest true "Campos a cambiar"
// @Success 200 {object} accountResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "account not found"
// @Router /accounts/{accountID} [patch]
func updateAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req updateAccountRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := Patch{FullName: req.FullName, AnimalsManaged: req.AnimalsManaged}
		if req.Role != nil {
			role := Role(strings.ToLower(strings.TrimSpace(*req.Role)))
			p.Role = &role
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "accountID"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

// deleteAccountHandler godoc
// @Summary Eliminar cuenta (admin)
// @Description Borra el perfil y revoca la credencial. Un admin no puede borrarse a sí mismo.
// @Tags accounts
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param accountID path string true "ID de la cuenta"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "account not found"
// @Router /accounts/{accountID} [delete]
func deleteAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "accountID")
		if claims, ok := middleware.GetClaims(r.Context()); ok && claims.UserID == id {
			writeError(w, fmt.Errorf("%w: cannot delete own account", ErrForbidden))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAccountResponse(a Account) accountResponse {
	return accountResponse{
		ID:             a.ID,
		Email:          a.Email,
		FullName:       a.FullName,
		Role:           a.Role,
		AnimalsManaged: a.AnimalsManaged,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
