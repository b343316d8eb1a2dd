package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("payload"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("success", func(t *testing.T) {
		data, err := Fetch(context.Background(), srv.URL+"/ok", FetchOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "payload" {
			t.Errorf("Fetch() = %q", data)
		}
		if !strings.HasPrefix(gotAgent, "wallhue/") {
			t.Errorf("User-Agent = %q", gotAgent)
		}
	})

	t.Run("non-200", func(t *testing.T) {
		_, err := Fetch(context.Background(), srv.URL+"/missing", FetchOptions{Client: srv.Client()})
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Errorf("expected 404 error, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := Fetch(ctx, srv.URL+"/ok", FetchOptions{}); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}
