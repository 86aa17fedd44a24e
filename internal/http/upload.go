package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"algotrace/internal/upload"
	"algotrace/pkg/metrics"
	"algotrace/pkg/traceerrors"
)

const (
	msgNoFileField    = "No file field named 'file'."
	msgNoSelectedFile = "No selected file."
	msgNoNumbers      = "No numbers found in file."
	msgInvalidNumber  = "Invalid number in file."
	msgUploadTooLarge = "Uploaded file is too large."
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.cfg.Limits.MaxUploadBytes {
		s.writeError(w, "upload", http.StatusRequestEntityTooLarge, msgUploadTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Limits.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.Limits.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, "upload", http.StatusRequestEntityTooLarge, msgUploadTooLarge)
			return
		}
		s.writeError(w, "upload", http.StatusBadRequest, msgNoFileField)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			slog.Warn("Failed to remove multipart temp files", "error", err)
		}
	}()

	// A part sent with an empty filename is parsed as a plain form value.
	if _, ok := r.MultipartForm.Value["file"]; ok {
		s.writeError(w, "upload", http.StatusBadRequest, msgNoSelectedFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, "upload", http.StatusBadRequest, msgNoFileField)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.writeError(w, "upload", http.StatusBadRequest, msgNoSelectedFile)
		return
	}

	numbers, err := upload.Parse(file)
	switch {
	case errors.Is(err, traceerrors.ErrNoNumbers):
		s.writeError(w, "upload", http.StatusBadRequest, msgNoNumbers)
		return
	case errors.Is(err, traceerrors.ErrInvalidNumber):
		s.writeError(w, "upload", http.StatusBadRequest, msgInvalidNumber)
		return
	case err != nil:
		s.writeError(w, "upload", http.StatusBadRequest, err.Error())
		return
	}

	if len(numbers) > s.cfg.Limits.MaxSequenceLen {
		s.writeError(w, "upload", http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File must hold at most %d numbers.", s.cfg.Limits.MaxSequenceLen))
		return
	}

	s.metrics.SetGauge(metrics.InputLength, map[string]string{"route": "upload"}, float64(len(numbers)))
	slog.Info("numbers uploaded", "file", header.Filename, "count", len(numbers))

	s.writeJSON(w, http.StatusOK, UploadResponse{
		Message: fmt.Sprintf("Upload successful. %d numbers loaded.", len(numbers)),
		Array:   numbers,
	})
}
