package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User registered successfully"))
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tok"))
	})
	mux.HandleFunc("GET /auth/hello", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("Hello, World!"))
	})
	mux.HandleFunc("POST /main/addCars", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"make":"Toyota","model":"Corolla"}]`))
	})
	mux.HandleFunc("DELETE /main/deletePersonById/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			w.WriteHeader(http.StatusNotFound)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	srv := newFakeServer(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "register", args: []string{"register"}, want: "User registered successfully\n"},
		{name: "login", args: []string{"login"}, want: "tok\n"},
		{name: "hello", args: []string{"hello"}, want: "Hello, World!\n"},
		{name: "add", args: []string{"add", "Toyota", "Corolla"}, want: "[\n  {\n    \"id\": 1,\n    \"make\": \"Toyota\",\n    \"model\": \"Corolla\"\n  }\n]\n"},
		{name: "delete", args: []string{"delete", "1"}, want: "Car Deleted\n"},
		{name: "delete missing", args: []string{"delete", "2"}, wantErr: true},
		{name: "bad id", args: []string{"get", "x"}, wantErr: true},
		{name: "unknown command", args: []string{"fly"}, wantErr: true},
		{name: "no command", args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			args := append([]string{"-a", srv.URL, "-u", "alice", "-p", "secret"}, tt.args...)

			err := run(context.Background(), args, &out, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
