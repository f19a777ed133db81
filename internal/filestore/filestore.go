// Package filestore names the fake upload integration point. The original
// storefront only pretended to upload card PDFs; the stub keeps that contract
// explicit instead of burying it in the catalog service.
package filestore

import (
	"context"
	"fmt"
)

// FileStore resolves an uploaded file to a URL the catalog can reference.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// StubStore never persists bytes; it fabricates a stable URL from the name.
type StubStore struct {
	BaseURL string
}

func NewStubStore() *StubStore {
	return &StubStore{BaseURL: "https://files.invalid"}
}

func (s *StubStore) Save(_ context.Context, name string, _ []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("file name required")
	}
	return fmt.Sprintf("%s/%s", s.BaseURL, name), nil
}
