package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestServer_Health(t *testing.T) {
	server := NewServer(":0")

	for _, path := range []string{"/", "/healthz"} {
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		if recorder.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, recorder.Code, http.StatusOK)
		}

		if recorder.Body.String() != "Bot is running" {
			t.Errorf("GET %s body = %q", path, recorder.Body.String())
		}
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	server := NewServer(":0")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want %d", recorder.Code, http.StatusNotFound)
	}
}
