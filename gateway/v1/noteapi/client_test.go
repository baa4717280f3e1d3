package noteapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ribgsilva/note-app/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	sys.Configs.NotesAPI.URL = srv.URL + "/"
	sys.Configs.NotesAPI.Timeout = time.Second
	sys.R.HTTP = srv.Client()
}

func TestList(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]Note{{Id: 1, Title: "a", Content: "b", Completed: true}})
	})

	notes, err := List(context.Background(), "tkn")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, Note{Id: 1, Title: "a", Content: "b", Completed: true}, notes[0])
}

func TestCreate(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "t", "content": "c", "completed": false}, body)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Note{Id: 4, Title: "t", Content: "c"})
	})

	created, err := Create(context.Background(), "tkn", NewNote{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), created.Id)
}

func TestDeleteNotFound(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/9", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Note not found"}`))
	})

	err := Delete(context.Background(), "tkn", 9)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Equal(t, "Note not found", se.Message)
}

func TestSetCompleted(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/2", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["completed"])
		_ = json.NewEncoder(w).Encode(Note{Id: 2, Completed: true})
	})

	updated, err := SetCompleted(context.Background(), "tkn", 2, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
}

func TestMalformedResponse(t *testing.T) {
	serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	})

	_, err := List(context.Background(), "tkn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}
