package uploader

import (
	"context"
	"errors"
)

var (
	// ErrNoCredential means no persisted token exists and the
	// interactive login flow is unavailable (batch execution).
	ErrNoCredential = errors.New("no upload credential: run 'meeting auth' first")

	// ErrAuthExpired marks authorization failures that require the
	// operator to re-authenticate.
	ErrAuthExpired = errors.New("upload authorization expired")
)

// Uploader publishes a finished video to the hosting service.
type Uploader interface {
	Upload(ctx context.Context, req Request) (*Result, error)
	Authorize(ctx context.Context) error
}

// Request describes one video to publish.
type Request struct {
	VideoPath   string
	Title       string
	Description string
	Tags        []string
	Privacy     string
	CategoryID  string
}

// Result carries the published video identity.
type Result struct {
	VideoID string
	URL     string
}
