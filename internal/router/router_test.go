package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/router"

	"github.com/google/uuid"
)

type envelope struct {
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"payload"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Error   string          `json:"error"`
	Name    string          `json:"name"`
	Path    string          `json:"path"`
}

type userPayload struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Pets      []string `json:"pets"`
}

type petPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	BirthDate string `json:"birth_date"`
	Adopted   bool   `json:"adopted"`
	Owner     string `json:"owner"`
	Image     string `json:"image"`
}

type adoptionPayload struct {
	ID    string `json:"id"`
	Owner string `json:"owner"`
	Pet   string `json:"pet"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("DB_DSN", "") // siempre in-memory en tests

	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop{}}))
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, string(raw))
	}
	return res.StatusCode, env
}

func createUser(t *testing.T, baseURL string) userPayload {
	t.Helper()

	st, _ := doReq(t, baseURL, "POST", "/api/mocks/generateData", map[string]int{"users": 1})
	if st != http.StatusOK {
		t.Fatalf("expected 200 generateData, got %d", st)
	}

	st, env := doReq(t, baseURL, "GET", "/api/users", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list users, got %d", st)
	}
	var items []userPayload
	if err := json.Unmarshal(env.Payload, &items); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected at least one user")
	}
	return items[len(items)-1]
}

func createPet(t *testing.T, baseURL string) petPayload {
	t.Helper()

	st, env := doReq(t, baseURL, "POST", "/api/pets", map[string]any{
		"name":       "Milo",
		"species":    "dog",
		"birth_date": "2020-05-01",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 create pet, got %d", st)
	}
	var p petPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		t.Fatalf("decode pet: %v", err)
	}
	if p.ID == "" {
		t.Fatal("create pet: missing id")
	}
	return p
}

func getPet(t *testing.T, baseURL, id string) petPayload {
	t.Helper()

	st, env := doReq(t, baseURL, "GET", "/api/pets/"+id, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pet, got %d", st)
	}
	var p petPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		t.Fatalf("decode pet: %v", err)
	}
	return p
}

func getUser(t *testing.T, baseURL, id string) userPayload {
	t.Helper()

	st, env := doReq(t, baseURL, "GET", "/api/users/"+id, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get user, got %d", st)
	}
	var u userPayload
	if err := json.Unmarshal(env.Payload, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return u
}

func TestHTTP_MalformedIDsReturn400(t *testing.T) {
	ts := newServer(t)

	cases := []struct {
		method, path, wantErr string
	}{
		{"GET", "/api/users/abc", "Invalid user ID format"},
		{"PUT", "/api/users/abc", "Invalid user ID format"},
		{"DELETE", "/api/users/abc", "Invalid user ID format"},
		{"GET", "/api/pets/123", "Invalid pet ID format"},
		{"PUT", "/api/pets/123", "Invalid pet ID format"},
		{"DELETE", "/api/pets/123", "Invalid pet ID format"},
		{"GET", "/api/adoptions/not-an-id", "Invalid ID format"},
		{"POST", "/api/adoptions/bad/worse", "Invalid ID format"},
	}

	for _, tc := range cases {
		var body any
		if tc.method == "PUT" {
			body = map[string]any{}
		}
		st, env := doReq(t, ts.URL, tc.method, tc.path, body)
		if st != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d", tc.method, tc.path, st)
		}
		if env.Status != "error" || env.Error != tc.wantErr {
			t.Fatalf("%s %s: expected error %q, got %q", tc.method, tc.path, tc.wantErr, env.Error)
		}
	}
}

func TestHTTP_AbsentIDsReturn404(t *testing.T) {
	ts := newServer(t)
	missing := uuid.NewString()

	cases := []struct {
		method, path, wantErr string
	}{
		{"GET", "/api/users/" + missing, "User not found"},
		{"PUT", "/api/users/" + missing, "User not found"},
		{"DELETE", "/api/users/" + missing, "User not found"},
		{"GET", "/api/pets/" + missing, "Pet not found"},
		{"GET", "/api/adoptions/" + missing, "Adoption not found"},
	}

	for _, tc := range cases {
		var body any
		if tc.method == "PUT" {
			body = map[string]any{}
		}
		st, env := doReq(t, ts.URL, tc.method, tc.path, body)
		if st != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", tc.method, tc.path, st)
		}
		if env.Error != tc.wantErr {
			t.Fatalf("%s %s: expected error %q, got %q", tc.method, tc.path, tc.wantErr, env.Error)
		}
	}
}

func TestHTTP_PetCreate_IncompleteValues(t *testing.T) {
	ts := newServer(t)

	cases := []map[string]any{
		{"species": "dog", "birth_date": "2020-05-01"}, // sin name
		{"name": "Milo", "birth_date": "2020-05-01"},   // sin species
		{"name": "Milo", "species": "dog"},             // sin birth_date
	}

	for i, body := range cases {
		st, env := doReq(t, ts.URL, "POST", "/api/pets", body)
		if st != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d", i, st)
		}
		if env.Error != "Incomplete values" {
			t.Fatalf("case %d: expected Incomplete values, got %q", i, env.Error)
		}
	}
}

func TestHTTP_PetCreate_IgnoresAdoptedAndOwnerFromCaller(t *testing.T) {
	ts := newServer(t)

	st, env := doReq(t, ts.URL, "POST", "/api/pets", map[string]any{
		"name":       "Milo",
		"species":    "dog",
		"birth_date": "2020-05-01",
		"adopted":    true,
		"owner":      uuid.NewString(),
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	var p petPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		t.Fatalf("decode pet: %v", err)
	}
	if p.Adopted {
		t.Fatal("expected adopted = false regardless of request body")
	}
	if p.Owner != "" {
		t.Fatalf("expected no owner, got %q", p.Owner)
	}
}

func TestHTTP_PetCreate_RoundTrip(t *testing.T) {
	ts := newServer(t)

	created := createPet(t, ts.URL)
	fetched := getPet(t, ts.URL, created.ID)

	if fetched.Name != created.Name ||
		fetched.Species != created.Species ||
		fetched.BirthDate != created.BirthDate ||
		fetched.Adopted != created.Adopted {
		t.Fatalf("round trip mismatch: created=%+v fetched=%+v", created, fetched)
	}
	if !strings.HasPrefix(fetched.BirthDate, "2020-05-01") {
		t.Fatalf("unexpected birth date %q", fetched.BirthDate)
	}
}

func TestHTTP_PetUpdateAndDelete(t *testing.T) {
	ts := newServer(t)
	p := createPet(t, ts.URL)

	st, env := doReq(t, ts.URL, "PUT", "/api/pets/"+p.ID, map[string]any{"name": "Toby"})
	if st != http.StatusOK || env.Message != "pet updated" {
		t.Fatalf("expected pet updated, got %d %q", st, env.Message)
	}

	fetched := getPet(t, ts.URL, p.ID)
	if fetched.Name != "Toby" || fetched.Species != "dog" {
		t.Fatalf("partial update mismatch: %+v", fetched)
	}

	st, env = doReq(t, ts.URL, "DELETE", "/api/pets/"+p.ID, nil)
	if st != http.StatusOK || env.Message != "pet deleted" {
		t.Fatalf("expected pet deleted, got %d %q", st, env.Message)
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/pets/"+p.ID, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_PetCreateWithImage(t *testing.T) {
	ts := newServer(t)
	t.Setenv("IMG_DIR", t.TempDir())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "Nina")
	_ = mw.WriteField("species", "cat")
	_ = mw.WriteField("birth_date", "2021-03-15")
	fw, err := mw.CreateFormFile("image", "nina.jpg")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write([]byte("fake-jpeg-bytes"))
	_ = mw.Close()

	res, err := http.Post(ts.URL+"/api/pets/withimage", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var p petPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		t.Fatalf("decode pet: %v", err)
	}
	if !strings.HasPrefix(p.Image, "/img/") {
		t.Fatalf("expected stored image ref, got %q", p.Image)
	}
}

func TestHTTP_UserPartialUpdate(t *testing.T) {
	ts := newServer(t)
	u := createUser(t, ts.URL)

	st, env := doReq(t, ts.URL, "PUT", "/api/users/"+u.ID, map[string]any{"last_name": "Smith"})
	if st != http.StatusOK || env.Message != "User updated" {
		t.Fatalf("expected User updated, got %d %q", st, env.Message)
	}

	after := getUser(t, ts.URL, u.ID)
	if after.LastName != "Smith" {
		t.Fatalf("expected last name Smith, got %q", after.LastName)
	}
	// Campos no enviados retienen su valor previo.
	if after.FirstName != u.FirstName {
		t.Fatalf("expected first name unchanged (%q), got %q", u.FirstName, after.FirstName)
	}
	if after.Email != u.Email {
		t.Fatalf("expected email unchanged, got %q", after.Email)
	}
}

func TestHTTP_UserDelete(t *testing.T) {
	ts := newServer(t)
	u := createUser(t, ts.URL)

	st, env := doReq(t, ts.URL, "DELETE", "/api/users/"+u.ID, nil)
	if st != http.StatusOK || env.Message != "User deleted" {
		t.Fatalf("expected User deleted, got %d %q", st, env.Message)
	}

	st, env = doReq(t, ts.URL, "GET", "/api/users/"+u.ID, nil)
	if st != http.StatusNotFound || env.Error != "User not found" {
		t.Fatalf("expected 404 User not found, got %d %q", st, env.Error)
	}
}

func TestHTTP_AdoptionWorkflow_EndToEnd(t *testing.T) {
	ts := newServer(t)

	// Sin adopciones: lista vacía, nunca error.
	st, env := doReq(t, ts.URL, "GET", "/api/adoptions", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var list []adoptionPayload
	if err := json.Unmarshal(env.Payload, &list); err != nil {
		t.Fatalf("decode adoptions: %v payload=%s", err, string(env.Payload))
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	u := createUser(t, ts.URL)
	p := createPet(t, ts.URL)

	st, env = doReq(t, ts.URL, "POST", "/api/adoptions/"+u.ID+"/"+p.ID, nil)
	if st != http.StatusOK || env.Message != "Pet adopted" {
		t.Fatalf("expected Pet adopted, got %d %q (%q)", st, env.Message, env.Error)
	}

	// Pet marcado como adoptado con owner asignado.
	pet := getPet(t, ts.URL, p.ID)
	if !pet.Adopted {
		t.Fatal("expected pet.adopted = true")
	}
	if pet.Owner != u.ID {
		t.Fatalf("expected owner %s, got %q", u.ID, pet.Owner)
	}

	// El pet quedó en el set del user.
	user := getUser(t, ts.URL, u.ID)
	if len(user.Pets) != 1 || user.Pets[0] != p.ID {
		t.Fatalf("expected user.pets = [%s], got %v", p.ID, user.Pets)
	}

	// Registro de adopción consultable.
	st, env = doReq(t, ts.URL, "GET", "/api/adoptions", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if err := json.Unmarshal(env.Payload, &list); err != nil {
		t.Fatalf("decode adoptions: %v", err)
	}
	if len(list) != 1 || list[0].Owner != u.ID || list[0].Pet != p.ID {
		t.Fatalf("unexpected adoption records: %+v", list)
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/adoptions/"+list[0].ID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get adoption, got %d", st)
	}

	// Segundo intento sobre el mismo pet: conflicto, sin mutación extra.
	u2 := createUser(t, ts.URL)
	st, env = doReq(t, ts.URL, "POST", "/api/adoptions/"+u2.ID+"/"+p.ID, nil)
	if st != http.StatusBadRequest || env.Error != "Pet is already adopted" {
		t.Fatalf("expected 400 Pet is already adopted, got %d %q", st, env.Error)
	}
	if owner := getPet(t, ts.URL, p.ID).Owner; owner != u.ID {
		t.Fatalf("expected original owner kept, got %q", owner)
	}
}

func TestHTTP_Adoption_UserCheckedBeforePet(t *testing.T) {
	ts := newServer(t)

	// Ambos bien formados y ausentes: el 404 reporta al user.
	st, env := doReq(t, ts.URL, "POST", "/api/adoptions/"+uuid.NewString()+"/"+uuid.NewString(), nil)
	if st != http.StatusNotFound || env.Error != "user Not found" {
		t.Fatalf("expected 404 user Not found, got %d %q", st, env.Error)
	}

	// User existente, pet ausente.
	u := createUser(t, ts.URL)
	st, env = doReq(t, ts.URL, "POST", "/api/adoptions/"+u.ID+"/"+uuid.NewString(), nil)
	if st != http.StatusNotFound || env.Error != "Pet not found" {
		t.Fatalf("expected 404 Pet not found, got %d %q", st, env.Error)
	}
}

func TestHTTP_MockingPets_PreviewDoesNotPersist(t *testing.T) {
	ts := newServer(t)

	st, env := doReq(t, ts.URL, "GET", "/api/mocks/mockingpets?quantity=25", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if env.Count != 25 {
		t.Fatalf("expected count 25, got %d", env.Count)
	}
	var items []petPayload
	if err := json.Unmarshal(env.Payload, &items); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(items) != 25 {
		t.Fatalf("expected 25 items, got %d", len(items))
	}

	// Nada persistido.
	st, env = doReq(t, ts.URL, "GET", "/api/pets", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var stored []petPayload
	if err := json.Unmarshal(env.Payload, &stored); err != nil {
		t.Fatalf("decode pets: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no pets persisted, got %d", len(stored))
	}
}

func TestHTTP_MockingUsers_DefaultQuantity(t *testing.T) {
	ts := newServer(t)

	st, env := doReq(t, ts.URL, "GET", "/api/mocks/mockingusers", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if env.Count != 50 {
		t.Fatalf("expected default count 50, got %d", env.Count)
	}
}

func TestHTTP_GenerateData_ZeroCountsWriteNothing(t *testing.T) {
	ts := newServer(t)

	st, env := doReq(t, ts.URL, "POST", "/api/mocks/generateData", map[string]int{"users": 0, "pets": 0})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	var results struct {
		UsersCreated int `json:"usersCreated"`
		PetsCreated  int `json:"petsCreated"`
	}
	if err := json.Unmarshal(env.Payload, &results); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if results.UsersCreated != 0 || results.PetsCreated != 0 {
		t.Fatalf("expected zero counters, got %+v", results)
	}

	st, env = doReq(t, ts.URL, "GET", "/api/users", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var us []userPayload
	if err := json.Unmarshal(env.Payload, &us); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(us) != 0 {
		t.Fatalf("expected no users, got %d", len(us))
	}
}

func TestHTTP_GenerateData_Counters(t *testing.T) {
	ts := newServer(t)

	st, env := doReq(t, ts.URL, "POST", "/api/mocks/generateData", map[string]int{"users": 3, "pets": 5})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	var results struct {
		UsersCreated int `json:"usersCreated"`
		PetsCreated  int `json:"petsCreated"`
	}
	if err := json.Unmarshal(env.Payload, &results); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if results.UsersCreated != 3 || results.PetsCreated != 5 {
		t.Fatalf("expected 3/5, got %+v", results)
	}
}

func TestHTTP_RouteNotFound(t *testing.T) {
	ts := newServer(t)

	st, env := doReq(t, ts.URL, "GET", "/api/nope", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
	if env.Status != "error" || env.Error != "Route not found" {
		t.Fatalf("expected Route not found, got %q", env.Error)
	}
	if env.Path != "/api/nope" {
		t.Fatalf("expected path echoed, got %q", env.Path)
	}
}
