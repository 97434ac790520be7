package intake

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"tasmeem/internal/storage"
	"tasmeem/pkg/types"
)

type fakeSubmitter struct {
	mu      sync.Mutex
	inserts []*types.Submission
	err     error
}

func (f *fakeSubmitter) CreateSubmission(ctx context.Context, s *types.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inserts = append(f.inserts, s)
	return f.err
}

var errRemote = errors.New("remote table unavailable")

func newTestWizard(submitter Submitter) (*Wizard, *storage.MemoryStorage) {
	blobs := storage.NewMemoryStorage()
	return NewWizard("draft-1", submitter, blobs, "staging"), blobs
}

func imageUpload(name string, size int64) Upload {
	return upload(name, "image/jpeg", size)
}

func upload(name, contentType string, size int64) Upload {
	return Upload{
		Name:        name,
		ContentType: contentType,
		Size:        size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(name)), nil
		},
	}
}

func validIdentity() Identity {
	return Identity{
		FullName: "Sara Ali",
		Email:    "sara@example.com",
		Phone:    "0501234567",
		City:     "Riyadh",
	}
}
