package intake

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"tasmeem/internal/utils"
)

const (
	MaxStagedFiles = 5
	MaxFileSize    = 10 * 1024 * 1024
)

type ImageCategory string

const (
	CategoryInspiration  ImageCategory = "inspiration"
	CategoryCurrentSpace ImageCategory = "current_space"
)

func ParseImageCategory(s string) (ImageCategory, bool) {
	switch ImageCategory(s) {
	case CategoryInspiration, CategoryCurrentSpace:
		return ImageCategory(s), true
	}
	return "", false
}

// BlobStore keeps the bytes of staged images between requests.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}

// Upload is one file picked by the visitor. Open is only called for files
// that pass the type and size checks.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type StagedFile struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
	Key         string
}

func acceptable(u Upload) bool {
	return strings.HasPrefix(u.ContentType, "image/") && u.Size <= MaxFileSize
}

func (w *Wizard) staged(category ImageCategory) *[]StagedFile {
	if category == CategoryCurrentSpace {
		return &w.Data.CurrentSpacePhotos
	}
	return &w.Data.InspirationImages
}

// StagedFiles returns the files currently staged for category.
func (w *Wizard) StagedFiles(category ImageCategory) []StagedFile {
	return *w.staged(category)
}

// Stage filters a batch of uploads and appends as many as fit under
// MaxStagedFiles. Rejected and overflowing files are dropped silently.
func (w *Wizard) Stage(ctx context.Context, category ImageCategory, uploads []Upload) error {
	files := w.staged(category)

	valid := make([]Upload, 0, len(uploads))
	for _, u := range uploads {
		if acceptable(u) {
			valid = append(valid, u)
		}
	}

	slots := MaxStagedFiles - len(*files)
	if slots <= 0 {
		return nil
	}
	if len(valid) > slots {
		valid = valid[:slots]
	}

	for _, u := range valid {
		id := utils.NanoIDSize(16)
		key := path.Join(w.blobPrefix, w.ID, id)

		if err := w.putBlob(ctx, key, u); err != nil {
			return fmt.Errorf("stage %s: %w", u.Name, err)
		}

		*files = append(*files, StagedFile{
			ID:          id,
			Name:        u.Name,
			ContentType: u.ContentType,
			Size:        u.Size,
			Key:         key,
		})
	}

	return nil
}

func (w *Wizard) putBlob(ctx context.Context, key string, u Upload) error {
	body, err := u.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer body.Close()

	return w.blobs.Put(ctx, key, u.ContentType, io.LimitReader(body, MaxFileSize), u.Size)
}

// Remove drops the file at index, keeping the others in order. An index
// outside the list is ignored.
func (w *Wizard) Remove(ctx context.Context, category ImageCategory, index int) error {
	files := w.staged(category)
	if index < 0 || index >= len(*files) {
		return nil
	}

	removed := (*files)[index]
	*files = append((*files)[:index:index], (*files)[index+1:]...)

	if err := w.blobs.Delete(ctx, removed.Key); err != nil {
		return fmt.Errorf("delete staged file %s: %w", removed.ID, err)
	}
	return nil
}

// Discard deletes every staged blob and empties both lists.
func (w *Wizard) Discard(ctx context.Context) error {
	var firstErr error
	for _, category := range []ImageCategory{CategoryInspiration, CategoryCurrentSpace} {
		files := w.staged(category)
		for _, f := range *files {
			if err := w.blobs.Delete(ctx, f.Key); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("delete staged file %s: %w", f.ID, err)
			}
		}
		*files = nil
	}
	return firstErr
}

// OpenStaged streams the blob of the file at index for previews.
func (w *Wizard) OpenStaged(ctx context.Context, category ImageCategory, index int) (io.ReadCloser, StagedFile, error) {
	files := *w.staged(category)
	if index < 0 || index >= len(files) {
		return nil, StagedFile{}, ErrFileNotStaged
	}

	f := files[index]
	body, _, err := w.blobs.Get(ctx, f.Key)
	if err != nil {
		return nil, StagedFile{}, fmt.Errorf("open staged file %s: %w", f.ID, err)
	}
	return body, f, nil
}
