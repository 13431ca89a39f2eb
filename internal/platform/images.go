package platform

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	// Register decoders for the formats illustrations come in
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"

	"github.com/fromenjn/boca-recettes/internal/api"
)

// MaxImageBytes caps the size of a decoded illustration
const MaxImageBytes = 10 << 20

// URL schemes accepted for remote illustrations
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeFile  = "file"
)

// ImageLoader fetches step illustrations and downsizes them for display
type ImageLoader struct {
	baseURL  string
	maxWidth uint
	client   *http.Client
}

// NewImageLoader creates a loader resolving relative paths against baseURL.
// Images wider than maxWidth are scaled down, keeping their aspect ratio.
func NewImageLoader(baseURL string, maxWidth int) *ImageLoader {
	if maxWidth < 0 {
		maxWidth = 0
	}
	return &ImageLoader{
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxWidth: uint(maxWidth),
		client:   &http.Client{},
	}
}

// SetHTTPClient replaces the http.Client used for remote images
func (l *ImageLoader) SetHTTPClient(c *http.Client) {
	if c != nil {
		l.client = c
	}
}

// Resolve turns an illustration filepath into something Load can open:
// absolute http(s) URLs are kept, existing local files are returned as paths,
// everything else is resolved against the base URL.
func (l *ImageLoader) Resolve(filepath string) (string, error) {
	filepath = strings.TrimSpace(filepath)
	if filepath == "" {
		return "", fmt.Errorf("empty illustration path")
	}

	if u, err := url.Parse(filepath); err == nil && u.Scheme != "" {
		switch u.Scheme {
		case SchemeHTTP, SchemeHTTPS:
			return filepath, nil
		case SchemeFile:
			return u.Path, nil
		}
		// Windows drive letters parse as a one-letter scheme
		if len(u.Scheme) > 1 {
			return "", fmt.Errorf("unsupported illustration scheme: %s", u.Scheme)
		}
	}

	if _, err := os.Stat(filepath); err == nil {
		return filepath, nil
	}

	if l.baseURL == "" {
		return "", fmt.Errorf("cannot resolve %q without a base URL", filepath)
	}
	return l.baseURL + "/" + strings.TrimLeft(filepath, "/"), nil
}

// Load fetches and decodes an illustration, then downsizes it
func (l *ImageLoader) Load(ctx context.Context, filepath string) (image.Image, error) {
	location, err := l.Resolve(filepath)
	if err != nil {
		return nil, err
	}

	var rc io.ReadCloser
	if strings.HasPrefix(location, SchemeHTTP+"://") || strings.HasPrefix(location, SchemeHTTPS+"://") {
		rc, err = l.fetch(ctx, location)
	} else {
		rc, err = os.Open(location)
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, format, err := image.Decode(io.LimitReader(rc, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode illustration %s: %w", location, err)
	}
	log.Printf("Loaded illustration %s (%s, %dx%d)", location, format, img.Bounds().Dx(), img.Bounds().Dy())

	return l.fit(img), nil
}

// fit scales img down to maxWidth; smaller images are returned unchanged
func (l *ImageLoader) fit(img image.Image) image.Image {
	if l.maxWidth == 0 || uint(img.Bounds().Dx()) <= l.maxWidth {
		return img
	}
	return resize.Resize(l.maxWidth, 0, img, resize.Lanczos3)
}

func (l *ImageLoader) fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(api.RequestIDHeader, uuid.NewString())

	res, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch illustration %s: %w", location, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		res.Body.Close()
		return nil, fmt.Errorf("failed to fetch illustration %s: %s", location, http.StatusText(res.StatusCode))
	}

	return res.Body, nil
}
