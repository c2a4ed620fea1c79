package connector

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderRemote(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	part := NewLoader().Load(context.Background(), srv.URL+"/img.png")
	if part == nil || part.InlineData == nil {
		t.Fatal("expected inline attachment, got none")
	}
	if part.InlineData.MimeType != "image/png" {
		t.Fatalf("media type = %q, want image/png", part.InlineData.MimeType)
	}
	if want := base64.StdEncoding.EncodeToString(payload); part.InlineData.Data != want {
		t.Fatalf("data = %q, want %q", part.InlineData.Data, want)
	}
}

func TestLoaderRemoteContentTypeOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extension says png, server says webp; the server wins.
		w.Header().Set("Content-Type", "image/webp; charset=binary")
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	part := NewLoader().Load(context.Background(), srv.URL+"/img.png")
	if part == nil || part.InlineData == nil {
		t.Fatal("expected inline attachment, got none")
	}
	if part.InlineData.MimeType != "image/webp" {
		t.Fatalf("media type = %q, want image/webp", part.InlineData.MimeType)
	}
}

func TestLoaderRemoteEmptyContentTypeKeepsGuess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	part := NewLoader().Load(context.Background(), srv.URL+"/img.png")
	if part == nil || part.InlineData == nil {
		t.Fatal("expected inline attachment, got none")
	}
	if part.InlineData.MimeType != "image/png" {
		t.Fatalf("media type = %q, want extension-based image/png", part.InlineData.MimeType)
	}
}

func TestLoaderRemoteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if part := NewLoader().Load(context.Background(), srv.URL+"/img.png"); part != nil {
		t.Fatalf("expected no attachment for 404, got %+v", part)
	}
}

func TestLoaderLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	payload := []byte("%PDF-1.4 fake")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	part := NewLoader().Load(context.Background(), path)
	if part == nil || part.InlineData == nil {
		t.Fatal("expected inline attachment, got none")
	}
	if part.InlineData.MimeType != "application/pdf" {
		t.Fatalf("media type = %q, want application/pdf", part.InlineData.MimeType)
	}
	if want := base64.StdEncoding.EncodeToString(payload); part.InlineData.Data != want {
		t.Fatalf("data = %q, want %q", part.InlineData.Data, want)
	}
}

func TestLoaderFileURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	part := NewLoader().Load(context.Background(), "file://"+filepath.ToSlash(path))
	if part == nil || part.InlineData == nil {
		t.Fatal("expected inline attachment, got none")
	}
	if part.InlineData.MimeType != "image/png" {
		t.Fatalf("media type = %q, want image/png", part.InlineData.MimeType)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")
	if part := NewLoader().Load(context.Background(), path); part != nil {
		t.Fatalf("expected no attachment for missing file, got %+v", part)
	}
}

func TestDeclaredMediaType(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "image/png", "image/png"},
		{"with charset", "image/webp; charset=binary", "image/webp"},
		{"padded", "  application/pdf  ", "application/pdf"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := declaredMediaType(tc.input); got != tc.want {
				t.Fatalf("declaredMediaType(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
