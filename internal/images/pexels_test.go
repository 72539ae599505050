package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/presentwallah/engine/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

func TestSearchWithoutKeyMissesEverything(t *testing.T) {
	c := NewClient("")
	for _, q := range []string{"alpha", "beta", ""} {
		if _, ok := c.Search(context.Background(), q, "landscape"); ok {
			t.Fatalf("expected miss for query %q without api key", q)
		}
	}
}

func TestSearchReturnsFirstPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "px-key", r.Header.Get("Authorization"))
		require.Equal(t, "office teamwork", r.URL.Query().Get("query"))
		require.Equal(t, "1", r.URL.Query().Get("per_page"))
		w.Write([]byte(`{"photos":[{"src":{"large":"https://img.example/1.jpg"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("px-key", WithBaseURL(srv.URL))
	url, ok := c.Search(context.Background(), "office teamwork", "landscape")
	require.True(t, ok)
	require.Equal(t, "https://img.example/1.jpg", url)
}

func TestSearchSoftFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}},
		{"empty result set", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"photos":[]}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"photos":`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient("px-key", WithBaseURL(srv.URL))
			if _, ok := c.Search(context.Background(), "anything", "landscape"); ok {
				t.Fatal("expected soft miss")
			}
		})
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xFF, 0xD8, 0xFF})
	}))
	defer srv.Close()

	c := NewClient("px-key")
	data, ok := c.Download(context.Background(), srv.URL)
	require.True(t, ok)
	require.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
}

func TestDownloadNon200IsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("px-key")
	if _, ok := c.Download(context.Background(), srv.URL); ok {
		t.Fatal("expected miss on 404")
	}
}
