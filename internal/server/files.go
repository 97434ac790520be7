package server

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"tasmeem/internal/intake"
)

func uploadsFrom(headers []*multipart.FileHeader) []intake.Upload {
	uploads := make([]intake.Upload, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, intake.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return uploads
}

func (s *Service) handlePostRegisterFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	maxBytes := s.config.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.logger.WithError(err).Warn("failed to parse image upload")
		http.Error(w, "upload too large or malformed", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			s.logger.WithError(err).Warn("failed to remove multipart temp files")
		}
	}()

	category, ok := intake.ParseImageCategory(r.FormValue("category"))
	if !ok {
		http.Error(w, "unknown image category", http.StatusBadRequest)
		return
	}

	uploads := uploadsFrom(r.MultipartForm.File["files"])

	id, err := s.drafts.With(ctx, s.wizardID(r), func(wz *intake.Wizard) error {
		return wz.Stage(ctx, category, uploads)
	})
	s.setWizardID(w, r, id)
	if err != nil {
		s.logger.WithError(err).WithField("draft_id", id).Error("failed to stage images")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

func (s *Service) handlePostRegisterFilesRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category, ok := intake.ParseImageCategory(r.FormValue("category"))
	if !ok {
		http.Error(w, "unknown image category", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}

	id, err := s.drafts.With(ctx, s.wizardID(r), func(wz *intake.Wizard) error {
		return wz.Remove(ctx, category, index)
	})
	s.setWizardID(w, r, id)
	if err != nil {
		s.logger.WithError(err).WithField("draft_id", id).Error("failed to remove staged image")
	}

	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

// handleGetRegisterFile streams a staged image back for its preview.
func (s *Service) handleGetRegisterFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category, ok := intake.ParseImageCategory(r.PathValue("category"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	wizardID := s.wizardID(r)
	if !s.drafts.Exists(wizardID) {
		http.NotFound(w, r)
		return
	}

	var (
		body io.ReadCloser
		file intake.StagedFile
	)
	_, err = s.drafts.With(ctx, wizardID, func(wz *intake.Wizard) error {
		body, file, err = wz.OpenStaged(ctx, category, index)
		return err
	})
	if errors.Is(err, intake.ErrFileNotStaged) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.WithError(err).Error("failed to open staged image")
		s.internalServerError(w)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Cache-Control", "private, no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := io.Copy(w, body); err != nil {
		s.logger.WithError(err).Warn("failed to stream staged image")
	}
}
