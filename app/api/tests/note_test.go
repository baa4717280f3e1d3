package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ribgsilva/note-app/app/api/handlers"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/persistence/v1/schema"
	"github.com/ribgsilva/note-app/platform/cache"
	"github.com/ribgsilva/note-app/platform/database"
	"github.com/ribgsilva/note-app/platform/env"
	"github.com/ribgsilva/note-app/platform/logger"
	"github.com/ribgsilva/note-app/sys"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	app   http.Handler
	cache *miniredis.Miniredis
	alice string
	bob   string
}

func TestNote(t *testing.T) {
	log, err := logger.New("Note-API-Tests")
	if err != nil {
		t.Fatal(err)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// ramsql
	db, err := database.Open("ramsql", "NoteApiTest", sys.Configs.Database.PingTimeout)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	rdb, err := cache.Open(sys.Configs.Cache.ConnectionURL, "", "", sys.Configs.Cache.PingTimeout)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background())

	// =======================================================================================================
	// Setup router
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	handlers.MapDefaults(engine)
	handlers.MapApi(engine)

	tests := NoteTests{
		app:   engine,
		cache: s,
		alice: sign(t, "alice-sub", "alice"),
		bob:   sign(t, "bob-sub", "bob"),
	}

	// =======================================================================================================
	// Run tests

	tests.health200(t)
	tests.missingToken401(t)
	tests.invalidToken401(t)
	tests.createEmpty400(t)
	tests.createNote201(t)
	tests.getNote200(t)
	if !s.Exists("notes.1") {
		t.Fatalf("notes 1 not in cache")
	}
	tests.getNote200(t)
	tests.getOtherUsersNote404(t)
	tests.listScopedByUser(t)
	tests.invalidId400(t)
	tests.toggleCompleted200(t)
	tests.deleteOtherUsersNote404(t)
	tests.deleteNote200(t)
}

func sign(t *testing.T, sub, username string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                sub,
		"preferred_username": username,
		"exp":                time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("keycloak"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func (nt *NoteTests) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	r := httptest.NewRequest(method, path, reader)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) health200(t *testing.T) {
	w := nt.do(http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test health200: Should receive a status code of 200 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) missingToken401(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test missingToken401: Should receive a status code of 401 for the response : %v", w.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if resp["message"] != "Token is missing" {
		t.Fatalf("Test missingToken401: Should have received \"Token is missing\" as message: %v", resp)
	}
}

func (nt *NoteTests) invalidToken401(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes", "garbage", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test invalidToken401: Should receive a status code of 401 for the response : %v", w.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if resp["message"] != "Token is invalid" {
		t.Fatalf("Test invalidToken401: Should have received \"Token is invalid\" as message: %v", resp)
	}
}

func (nt *NoteTests) createEmpty400(t *testing.T) {
	w := nt.do(http.MethodPost, "/api/notes", nt.alice, note.NewNote{Title: "only a title"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test createEmpty400: Should receive a status code of 400 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) createNote201(t *testing.T) {
	w := nt.do(http.MethodPost, "/api/notes", nt.alice, note.NewNote{Title: "my notes", Content: "my notes text"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test createNote201: Should receive a status code of 201 for the response : %v", w.Code)
	}
	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test createNote201: Should be able to unmarshal the response : %v", err)
	}
	if resp.Id != 1 || resp.UserId != "alice-sub" || resp.Completed {
		t.Fatalf("Test createNote201: Should have created note 1 for alice-sub: %v", resp)
	}
}

func (nt *NoteTests) getNote200(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes/1", nt.alice, nil)

	var resp note.Note
	if w.Code != http.StatusOK {
		t.Fatalf("Test getNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test getNote200: Should be able to unmarshal the response : %v", err)
	}

	if resp.Id != 1 {
		t.Fatalf("Test getNote200: Should have received \"1\" as id in the response: %v", resp)
	}
	if resp.Title != "my notes" {
		t.Fatalf("Test getNote200: Should have received \"my notes\" as title in the response: %v", resp)
	}
	if resp.Content != "my notes text" {
		t.Fatalf("Test getNote200: Should have received \"my notes text\" as content in the response: %v", resp)
	}
}

func (nt *NoteTests) getOtherUsersNote404(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes/1", nt.bob, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test getOtherUsersNote404: Should receive a status code of 404 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) listScopedByUser(t *testing.T) {
	for token, want := range map[string]int{nt.alice: 1, nt.bob: 0} {
		w := nt.do(http.MethodGet, "/api/notes", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Test listScopedByUser: Should receive a status code of 200 for the response : %v", w.Code)
		}
		var resp []note.Note
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Test listScopedByUser: Should be able to unmarshal the response : %v", err)
		}
		if resp == nil || len(resp) != want {
			t.Fatalf("Test listScopedByUser: Should have received %d notes: %v", want, resp)
		}
	}
}

func (nt *NoteTests) invalidId400(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/notes/abc", nt.alice, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test invalidId400: Should receive a status code of 400 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) toggleCompleted200(t *testing.T) {
	completed := true
	w := nt.do(http.MethodPut, "/api/notes/1", nt.alice, note.UpdateNote{Completed: &completed})
	if w.Code != http.StatusOK {
		t.Fatalf("Test toggleCompleted200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	if nt.cache.Exists("notes.1") {
		t.Fatalf("Test toggleCompleted200: notes 1 should have been evicted from cache")
	}

	w = nt.do(http.MethodGet, "/api/notes/1", nt.alice, nil)
	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test toggleCompleted200: Should be able to unmarshal the response : %v", err)
	}
	if !resp.Completed || resp.Title != "my notes" {
		t.Fatalf("Test toggleCompleted200: Should have kept the title and completed the note: %v", resp)
	}
}

func (nt *NoteTests) deleteOtherUsersNote404(t *testing.T) {
	w := nt.do(http.MethodDelete, "/api/notes/1", nt.bob, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test deleteOtherUsersNote404: Should receive a status code of 404 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) deleteNote200(t *testing.T) {
	w := nt.do(http.MethodDelete, "/api/notes/1", nt.alice, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test deleteNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	w = nt.do(http.MethodGet, "/api/notes/1", nt.alice, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test deleteNote200: Should receive a status code of 404 after deleting : %v", fmt.Sprint(w.Code))
	}
}
