package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"vet-clinic/internal/router"
)

type ownerDetail struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
	Message   string `json:"message"`
	Pets      []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		BirthDate string `json:"birthDate"`
		Type      struct {
			Name string `json:"name"`
		} `json:"type"`
		Visits []struct {
			Date        string `json:"date"`
			Description string `json:"description"`
		} `json:"visits"`
	} `json:"pets"`
}

func TestHTTP_EndToEnd_OwnerPetVisit(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	// 1) Alta de owner: 302 al detalle con flash
	st, hdr, _ := doReq(t, c, "POST", ts.URL+"/owners/new", map[string]any{
		"firstName": "Jean",
		"lastName":  "Dupont",
		"address":   "1 Rue A",
		"city":      "Paris",
		"telephone": "0102030405",
	})
	if st != http.StatusFound {
		t.Fatalf("expected 302 creating owner, got %d", st)
	}
	loc := hdr.Get("Location")
	if !strings.HasPrefix(loc, "/owners/") {
		t.Fatalf("location = %q", loc)
	}

	// 2) El detalle trae el owner y consume el flash
	var detail ownerDetail
	{
		st, _, body := doReq(t, c, "GET", ts.URL+loc, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on detail, got %d body=%s", st, body)
		}
		mustDecode(t, body, &detail)
		if detail.FirstName != "Jean" || detail.LastName != "Dupont" {
			t.Fatalf("detail = %+v", detail)
		}
		if detail.Message != "New Owner Created" {
			t.Fatalf("flash = %q", detail.Message)
		}
	}

	// 3) Segundo GET: el flash era one-shot
	{
		st, _, body := doReq(t, c, "GET", ts.URL+loc, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on detail, got %d", st)
		}
		var again ownerDetail
		mustDecode(t, body, &again)
		if again.Message != "" {
			t.Fatalf("flash not consumed: %q", again.Message)
		}
	}

	// 4) Alta de mascota bajo el owner
	{
		st, hdr, body := doReq(t, c, "POST", ts.URL+loc+"/pets/new", map[string]any{
			"name":      "Rex",
			"birthDate": "2020-01-01",
			"type":      "dog",
		})
		if st != http.StatusFound {
			t.Fatalf("expected 302 creating pet, got %d body=%s", st, body)
		}
		if hdr.Get("Location") != loc {
			t.Fatalf("pet create redirect = %q", hdr.Get("Location"))
		}
	}

	// 5) El detalle muestra la mascota con su tipo resuelto
	{
		st, _, body := doReq(t, c, "GET", ts.URL+loc, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on detail, got %d", st)
		}
		mustDecode(t, body, &detail)
		if len(detail.Pets) != 1 || detail.Pets[0].Name != "Rex" || detail.Pets[0].Type.Name != "dog" {
			t.Fatalf("pets = %+v", detail.Pets)
		}
		if detail.Message != "New Pet has been Added" {
			t.Fatalf("flash = %q", detail.Message)
		}
	}

	// 6) Agendar visita para Rex
	petID := detail.Pets[0].ID
	{
		st, _, body := doReq(t, c, "POST", ts.URL+loc+"/pets/"+itoa(petID)+"/visits/new", map[string]any{
			"description": "checkup",
		})
		if st != http.StatusFound {
			t.Fatalf("expected 302 booking visit, got %d body=%s", st, body)
		}
	}

	// 7) El detalle final: un pet Rex con una visita checkup
	{
		st, _, body := doReq(t, c, "GET", ts.URL+loc, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on detail, got %d", st)
		}
		mustDecode(t, body, &detail)
		if len(detail.Pets) != 1 || len(detail.Pets[0].Visits) != 1 {
			t.Fatalf("graph = %+v", detail.Pets)
		}
		if detail.Pets[0].Visits[0].Description != "checkup" {
			t.Fatalf("visit = %+v", detail.Pets[0].Visits[0])
		}
		if detail.Pets[0].Visits[0].Date == "" {
			t.Fatal("visit date not defaulted")
		}
	}
}

func TestHTTP_CreateOwner_FieldErrors(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	st, _, body := doReq(t, c, "POST", ts.URL+"/owners/new", map[string]any{
		"firstName": "Jean",
		"lastName":  "Dupont",
		"address":   "1 Rue A",
		"city":      "Paris",
		"telephone": "12345",
	})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", st, body)
	}

	var resp struct {
		Errors []struct {
			Field string `json:"field"`
			Code  string `json:"code"`
		} `json:"errors"`
	}
	mustDecode(t, body, &resp)
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "telephone" || resp.Errors[0].Code != "invalid-format" {
		t.Fatalf("errors = %+v", resp.Errors)
	}

	// nada quedó persistido
	st, _, _ = doReq(t, c, "GET", ts.URL+"/owners?lastName=Dupont", nil)
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 searching, got %d", st)
	}
}

func TestHTTP_SearchOwners(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	for _, in := range []map[string]any{
		{"firstName": "Betty", "lastName": "Davis", "address": "638 Cardinal Ave.", "city": "Sun Prairie", "telephone": "6085551749"},
		{"firstName": "Harold", "lastName": "Davis", "address": "563 Friendly St.", "city": "Windsor", "telephone": "6085553198"},
		{"firstName": "George", "lastName": "Franklin", "address": "110 W. Liberty St.", "city": "Madison", "telephone": "6085551023"},
	} {
		st, _, body := doReq(t, c, "POST", ts.URL+"/owners/new", in)
		if st != http.StatusFound {
			t.Fatalf("seed owner: %d body=%s", st, body)
		}
	}

	// 1) N>1 matches: lista paginada con totales
	{
		st, _, body := doReq(t, c, "GET", ts.URL+"/owners?lastName=Davis", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, body)
		}
		var page struct {
			Items      []ownerDetail `json:"items"`
			Page       int           `json:"page"`
			PageSize   int           `json:"pageSize"`
			TotalItems int           `json:"totalItems"`
			TotalPages int           `json:"totalPages"`
		}
		mustDecode(t, body, &page)
		if page.TotalItems != 2 || page.TotalPages != 1 || page.PageSize != 5 || len(page.Items) != 2 {
			t.Fatalf("page = %+v", page)
		}
	}

	// 2) match único: redirect directo al detalle
	{
		st, hdr, _ := doReq(t, c, "GET", ts.URL+"/owners?lastName=Franklin", nil)
		if st != http.StatusFound {
			t.Fatalf("expected 302, got %d", st)
		}
		if !strings.HasPrefix(hdr.Get("Location"), "/owners/") {
			t.Fatalf("location = %q", hdr.Get("Location"))
		}
	}

	// 3) cero matches: error de campo sobre lastName
	{
		st, _, body := doReq(t, c, "GET", ts.URL+"/owners?lastName=Zzz", nil)
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", st)
		}
		var resp struct {
			Errors []struct {
				Field string `json:"field"`
				Code  string `json:"code"`
			} `json:"errors"`
		}
		mustDecode(t, body, &resp)
		if len(resp.Errors) != 1 || resp.Errors[0].Field != "lastName" || resp.Errors[0].Code != "not-found" {
			t.Fatalf("errors = %+v", resp.Errors)
		}
	}

	// 4) prefijo vacío lista todo
	{
		st, _, body := doReq(t, c, "GET", ts.URL+"/owners", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var page struct {
			TotalItems int `json:"totalItems"`
		}
		mustDecode(t, body, &page)
		if page.TotalItems != 3 {
			t.Fatalf("totalItems = %d", page.TotalItems)
		}
	}
}

func TestHTTP_VetList_CachedAndPaged(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	// dos lecturas consecutivas devuelven exactamente lo mismo
	st, _, first := doReq(t, c, "GET", ts.URL+"/vets", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	st, _, second := doReq(t, c, "GET", ts.URL+"/vets", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("vet list not stable:\n%s\n%s", first, second)
	}

	var list struct {
		VetList []struct {
			LastName    string `json:"lastName"`
			Specialties []struct {
				Name string `json:"name"`
			} `json:"specialties"`
		} `json:"vetList"`
	}
	mustDecode(t, first, &list)
	if len(list.VetList) != 6 {
		t.Fatalf("vets = %d", len(list.VetList))
	}

	// Douglas viene con las especialidades ordenadas por nombre
	for _, v := range list.VetList {
		if v.LastName != "Douglas" {
			continue
		}
		if len(v.Specialties) != 2 || v.Specialties[0].Name != "dentistry" || v.Specialties[1].Name != "surgery" {
			t.Fatalf("douglas specialties = %+v", v.Specialties)
		}
	}

	// paginado de a 5: 6 vets => 2 páginas
	{
		st, _, body := doReq(t, c, "GET", ts.URL+"/vets.html?page=2", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var page struct {
			Items      []json.RawMessage `json:"items"`
			TotalItems int               `json:"totalItems"`
			TotalPages int               `json:"totalPages"`
		}
		mustDecode(t, body, &page)
		if page.TotalItems != 6 || page.TotalPages != 2 || len(page.Items) != 1 {
			t.Fatalf("page = %+v", page)
		}
	}
}

func TestHTTP_OupsRendersGeneric500(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	st, _, body := doReq(t, c, "GET", ts.URL+"/oups", nil)
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", st)
	}
	if strings.TrimSpace(string(body)) != "internal error" {
		t.Fatalf("body = %q, must not leak panic detail", body)
	}
}

func TestHTTP_NotFoundPaths(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	// owner inexistente, id no numérico, y pet ajeno al owner
	for _, path := range []string{"/owners/999", "/owners/abc", "/owners/999/edit"} {
		st, _, _ := doReq(t, c, "GET", ts.URL+path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("GET %s = %d, expected 404", path, st)
		}
	}

	st, hdr, _ := doReq(t, c, "POST", ts.URL+"/owners/new", map[string]any{
		"firstName": "Jean", "lastName": "Dupont", "address": "1 Rue A", "city": "Paris", "telephone": "0102030405",
	})
	if st != http.StatusFound {
		t.Fatalf("seed owner: %d", st)
	}
	loc := hdr.Get("Location")

	st, _, _ = doReq(t, c, "GET", ts.URL+loc+"/pets/123/edit", nil)
	if st != http.StatusNotFound {
		t.Fatalf("foreign pet = %d, expected 404", st)
	}
}

func TestHTTP_MalformedBody(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	req, err := http.NewRequest("POST", ts.URL+"/owners/new", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestHTTP_WelcomeAndHealth(t *testing.T) {
	ts, c := newServer(t)
	defer ts.Close()

	st, _, body := doReq(t, c, "GET", ts.URL+"/", nil)
	if st != http.StatusOK {
		t.Fatalf("welcome = %d", st)
	}
	var welcome struct {
		Message string `json:"message"`
	}
	mustDecode(t, body, &welcome)
	if welcome.Message != "Welcome" {
		t.Fatalf("message = %q", welcome.Message)
	}

	st, _, body = doReq(t, c, "GET", ts.URL+"/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health = %d %q", st, body)
	}
}

// -------------------------
// Helpers
// -------------------------

// newServer levanta el router en modo in-memory con un client que no sigue
// redirects (los 302 se verifican a mano) y con jar para el flash cookie.
func newServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	t.Setenv("DB_DSN", "")

	ts := httptest.NewServer(router.NewRouter(router.Options{}))

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	c := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return ts, c
}

func doReq(t *testing.T, c *http.Client, method, url string, body any) (int, http.Header, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, res.Header, respBody
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json decode: %v body=%s", err, body)
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
