package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mem "barangay-animal-tracking/internal/adapters/storage/memory"
	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/router"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

const (
	staffID = "staff-1"
	adminID = "admin-1"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	accountRepo := mem.NewAccountRepo()
	_, err := accountRepo.Create(context.Background(), accounts.Account{
		ID: adminID, Email: "admin@barangay.com", FullName: "Administrator", Role: accounts.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil, Accounts: accountRepo}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_VisitPropagation(t *testing.T) {
	ts := newTestServer(t)

	// 1) Staff registra un gato sin tag: el server lo genera
	animal := createAnimal(t, ts.URL, staffID, map[string]any{
		"name":         "Tom",
		"species":      "cat",
		"sex":          "male",
		"location":     "Barangay Hall",
		"healthStatus": "healthy",
		"estimatedAge": "2",
		"weight":       "",
	})
	animalID := animal["id"].(string)
	if tag, _ := animal["tagId"].(string); !strings.HasPrefix(tag, "CAT-") || len(tag) != len("CAT-123456") {
		t.Fatalf("expected generated CAT tag, got %q", tag)
	}
	if animal["weight"] != nil {
		t.Fatalf("expected unknown weight to be null, got %v", animal["weight"])
	}

	// 2) Visita de vacunación propaga vaccinated=true
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/visits", staffID, map[string]any{
			"visitType":  "vaccination",
			"diagnosis":  "healthy",
			"vaccinated": true,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID, staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		if got["vaccinated"] != true || got["neutered"] != false {
			t.Fatalf("expected vaccinated only, got vaccinated=%v neutered=%v", got["vaccinated"], got["neutered"])
		}
	}

	// 3) Una visita con vaccinated=false no revierte el flag
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/visits", staffID, map[string]any{
			"visitType":  "followup",
			"vaccinated": false,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 followup, got %d body=%s", st, string(body))
		}
		_, body = doReq(t, ts.URL, "GET", "/animals/"+animalID, staffID, nil)
		var got map[string]any
		mustJSON(t, body, &got)
		if got["vaccinated"] != true {
			t.Fatalf("vaccinated flag was reverted")
		}
	}

	// 4) Listado de visitas: más nueva primero
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID+"/visits", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list visits, got %d", st)
		}
		var list []map[string]any
		mustJSON(t, body, &list)
		if len(list) != 2 || list[0]["visitType"] != "followup" || list[1]["visitType"] != "vaccination" {
			t.Fatalf("unexpected visits order: %s", string(body))
		}
		if list[0]["recordedBy"] != staffID {
			t.Fatalf("expected recordedBy=%s, got %v", staffID, list[0]["recordedBy"])
		}
	}

	// 5) Borrar el animal deja las visitas huérfanas legibles
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+animalID, staffID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete animal, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/animals/"+animalID, staffID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID+"/visits", staffID, nil)
		var list []map[string]any
		mustJSON(t, body, &list)
		if st != http.StatusOK || len(list) != 2 {
			t.Fatalf("expected orphan visits to remain, got %d body=%s", st, string(body))
		}
	}

	// 6) Visita con flag sobre un animal borrado: se guarda pero la propagación falla
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/visits", staffID, map[string]any{
			"visitType": "neutering",
			"neutered":  true,
		})
		if st != http.StatusMultiStatus {
			t.Fatalf("expected 207 partial visit, got %d body=%s", st, string(body))
		}
		var partial struct {
			Visit            map[string]any `json:"visit"`
			PropagationError string         `json:"propagationError"`
		}
		mustJSON(t, body, &partial)
		if partial.Visit["id"] == "" || partial.PropagationError == "" {
			t.Fatalf("expected visit and propagation error, got %s", string(body))
		}
	}

	// 7) La falla quedó contada en /metrics
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		if !strings.Contains(string(body), "visit_propagation_failures_total 1") {
			t.Fatalf("expected propagation failure counter in metrics")
		}
	}
}

func TestHTTP_ListFiltersAndDashboard(t *testing.T) {
	ts := newTestServer(t)

	for _, a := range []map[string]any{
		{"name": "Tom", "species": "cat", "healthStatus": "healthy", "vaccinated": true, "location": "Barangay Hall"},
		{"name": "Bantay", "species": "dog", "healthStatus": "critical", "location": "Market"},
		{"name": "Whiskers", "species": "cat", "healthStatus": "sick", "location": "Church"},
	} {
		createAnimal(t, ts.URL, staffID, a)
	}

	names := func(path string) []string {
		st, body := doReq(t, ts.URL, "GET", path, staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 %s, got %d body=%s", path, st, string(body))
		}
		var list []map[string]any
		mustJSON(t, body, &list)
		out := make([]string, 0, len(list))
		for _, a := range list {
			out = append(out, a["name"].(string))
		}
		return out
	}

	if got := names("/animals"); strings.Join(got, ",") != "Whiskers,Bantay,Tom" {
		t.Fatalf("expected updated-desc order, got %v", got)
	}
	if got := names("/animals?species=cat"); strings.Join(got, ",") != "Whiskers,Tom" {
		t.Fatalf("species filter: got %v", got)
	}
	if got := names("/animals?species=cat&healthStatus=sick"); strings.Join(got, ",") != "Whiskers" {
		t.Fatalf("species+health filter: got %v", got)
	}
	if got := names("/animals?species=all&search=BANT"); strings.Join(got, ",") != "Bantay" {
		t.Fatalf("search by name: got %v", got)
	}

	st, body := doReq(t, ts.URL, "GET", "/dashboard", staffID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d", st)
	}
	var dash struct {
		Summary struct {
			Total, Healthy, Vaccinated, AtRisk, Cats, Dogs int
		} `json:"summary"`
		Recent       []map[string]any `json:"recent"`
		AtRisk       []map[string]any `json:"atRisk"`
		Unvaccinated []map[string]any `json:"unvaccinated"`
	}
	mustJSON(t, body, &dash)
	s := dash.Summary
	if s.Total != 3 || s.Healthy != 1 || s.Vaccinated != 1 || s.AtRisk != 2 || s.Cats != 2 || s.Dogs != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(dash.Recent) != 3 || len(dash.AtRisk) != 2 || len(dash.Unvaccinated) != 2 {
		t.Fatalf("unexpected dashboard sections: %s", string(body))
	}
}

func TestHTTP_AnimalValidation(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{"species": "cat"}},
		{"bad species", map[string]any{"name": "X", "species": "bird"}},
		{"bad weight", map[string]any{"name": "X", "species": "dog", "weight": "heavy"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/animals", staffID, tc.payload)
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", st, string(body))
			}
		})
	}

	st, _ := doReq(t, ts.URL, "GET", "/animals", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}
}

func TestHTTP_PhotoUploadServedFromFiles(t *testing.T) {
	ts := newTestServer(t)
	animalID := createAnimal(t, ts.URL, staffID, map[string]any{"name": "Tom", "species": "cat"})["id"].(string)

	var buf bytes.Buffer
	mw := newMultipart(t, &buf, "file", "tom.jpg", []byte("jpegbytes"))

	req, err := http.NewRequest("POST", ts.URL+"/animals/"+animalID+"/photo", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw)
	req.Header.Set("X-Debug-User-ID", staffID)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 upload, got %d body=%s", resp.StatusCode, string(body))
	}

	var out struct {
		URL string `json:"url"`
	}
	mustJSON(t, body, &out)
	if !strings.HasPrefix(out.URL, router.FilesPrefix+"/animals/"+animalID+"/") || !strings.HasSuffix(out.URL, "-tom.jpg") {
		t.Fatalf("unexpected photo url %q", out.URL)
	}

	st, got := doReq(t, ts.URL, "GET", out.URL, "", nil)
	if st != http.StatusOK || string(got) != "jpegbytes" {
		t.Fatalf("expected stored photo, got %d %q", st, string(got))
	}
}

func TestHTTP_AccountsAdminOnly(t *testing.T) {
	ts := newTestServer(t)

	// Staff sin perfil no entra a /accounts
	if st, _ := doReq(t, ts.URL, "GET", "/accounts", staffID, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for non admin, got %d", st)
	}

	// Admin crea una veterinaria
	st, body := doReq(t, ts.URL, "POST", "/accounts", adminID, map[string]any{
		"email":    "Vet@Barangay.com",
		"password": "password123",
		"fullName": "Dr. Veterinarian",
		"role":     "veterinarian",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create account, got %d body=%s", st, string(body))
	}
	var vet map[string]any
	mustJSON(t, body, &vet)
	vetID := vet["id"].(string)
	if vet["email"] != "vet@barangay.com" {
		t.Fatalf("expected lower-cased email, got %v", vet["email"])
	}

	// Email repetido
	st, _ = doReq(t, ts.URL, "POST", "/accounts", adminID, map[string]any{
		"email": "vet@barangay.com", "password": "password123", "fullName": "Dup",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate email, got %d", st)
	}

	// La veterinaria ve su perfil pero no la administración
	st, body = doReq(t, ts.URL, "GET", "/me", vetID, nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"role":"veterinarian"`) {
		t.Fatalf("expected own profile, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "GET", "/accounts", vetID, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for veterinarian, got %d", st)
	}

	// Listado por rol
	st, body = doReq(t, ts.URL, "GET", "/accounts?role=veterinarian", adminID, nil)
	var list []map[string]any
	mustJSON(t, body, &list)
	if st != http.StatusOK || len(list) != 1 {
		t.Fatalf("expected one veterinarian, got %d body=%s", st, string(body))
	}

	// Admin no se borra a sí mismo; sí a otros
	if st, _ := doReq(t, ts.URL, "DELETE", "/accounts/"+adminID, adminID, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 self delete, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/accounts/"+vetID, adminID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete vet, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/accounts/"+vetID, adminID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := newTestServer(t)

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected ok health, got %d %q", st, string(body))
	}
	if st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil); st != http.StatusOK || !strings.Contains(string(body), "/animals") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

// helpers

func createAnimal(t *testing.T, baseURL, userID string, payload map[string]any) map[string]any {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/animals", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}
	var out map[string]any
	mustJSON(t, body, &out)
	if id, _ := out["id"].(string); id == "" {
		t.Fatalf("missing animal id in response: %s", string(body))
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

// newMultipart escribe un form con un solo archivo y devuelve el Content-Type.
func newMultipart(t *testing.T, buf *bytes.Buffer, field, fileName string, content []byte) string {
	t.Helper()
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return mw.FormDataContentType()
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("invalid json %q: %v", string(b), err)
	}
}
