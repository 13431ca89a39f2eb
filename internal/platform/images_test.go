package platform

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fromenjn/boca-recettes/internal/api"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestResolve(t *testing.T) {
	tempDir := t.TempDir()
	localFile := filepath.Join(tempDir, "local.png")
	if err := os.WriteFile(localFile, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	loader := NewImageLoader("http://backend:8080/", 200)

	tests := []struct {
		input    string
		expected string
	}{
		{"https://cdn.example.org/a.webp", "https://cdn.example.org/a.webp"},
		{"/images/batter.png", "http://backend:8080/images/batter.png"},
		{"images/batter.png", "http://backend:8080/images/batter.png"},
		{localFile, localFile},
		{"file://" + localFile, localFile},
	}

	for _, test := range tests {
		result, err := loader.Resolve(test.input)
		if err != nil {
			t.Errorf("Resolve(%s) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("Resolve(%s) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestResolve_Errors(t *testing.T) {
	loader := NewImageLoader("", 200)

	if _, err := loader.Resolve(""); err == nil {
		t.Error("Expected error for empty path")
	}
	if _, err := loader.Resolve("images/missing.png"); err == nil {
		t.Error("Expected error for relative path without base URL")
	}
	if _, err := loader.Resolve("ftp://host/a.png"); err == nil {
		t.Error("Expected error for unsupported scheme")
	}
}

func TestLoad_RemoteDownsizes(t *testing.T) {
	data := encodePNG(t, 400, 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/wide.png" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get(api.RequestIDHeader) == "" {
			t.Error("Expected request id header")
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	loader := NewImageLoader(srv.URL, 200)
	img, err := loader.Load(context.Background(), "/images/wide.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 50 {
		t.Errorf("Expected 200x50 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoad_LocalSmallImageUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	if err := os.WriteFile(path, encodePNG(t, 80, 40), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	img, err := NewImageLoader("", 200).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 40 {
		t.Errorf("Expected 80x40 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoad_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewImageLoader(srv.URL, 200).Load(context.Background(), "missing.png")
	if err == nil {
		t.Fatal("Expected error for missing image")
	}
	if !strings.Contains(err.Error(), "Not Found") {
		t.Errorf("Error should mention status text, got: %v", err)
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := NewImageLoader("", 200).Load(context.Background(), path); err == nil {
		t.Error("Expected decode error, got nil")
	}
}
