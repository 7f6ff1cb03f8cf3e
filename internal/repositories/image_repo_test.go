package repositories

import (
	"errors"
	"testing"
)

func TestImageRepoRejectsMalformedID(t *testing.T) {
	// The guard fires before any query, so no database is needed.
	repo := NewImageRepo(nil)

	_, err := repo.GetByID("not-a-uuid")
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}
