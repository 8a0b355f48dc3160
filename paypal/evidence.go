package paypal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Dispute evidence limits enforced by PayPal: up to 50 MB per request,
// individual files under 10 MB, JPG/JPEG/GIF/PNG/PDF only.
const (
	maxEvidenceFileSize  = 10 * 1024 * 1024
	maxEvidenceTotalSize = 50 * 1024 * 1024
)

var evidenceFileTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

// ValidateEvidenceFiles checks the given files against PayPal's evidence
// policy before upload. It fails on the first violation found; an
// unsupported type is reported before any size check.
func ValidateEvidenceFiles(paths []string) error {
	var total int64

	for _, path := range paths {
		if _, ok := evidenceFileTypes[fileExt(path)]; !ok {
			return &EvidenceError{
				File:   path,
				Reason: "unsupported file type, must be one of JPG, JPEG, GIF, PNG, PDF",
			}
		}

		info, err := os.Stat(path)
		if err != nil {
			return &EvidenceError{File: path, Reason: err.Error()}
		}

		if info.Size() > maxEvidenceFileSize {
			return &EvidenceError{
				File:   path,
				Reason: fmt.Sprintf("file is %d bytes, individual files must be smaller than 10 MB", info.Size()),
			}
		}
		total += info.Size()
	}

	if total > maxEvidenceTotalSize {
		return &EvidenceError{
			Reason: fmt.Sprintf("files total %d bytes, at most 50 MB may be uploaded per request", total),
		}
	}

	return nil
}

// buildEvidenceBody assembles the multipart payload for an evidence
// upload: one part per file plus the evidence JSON as the "input" part.
func buildEvidenceBody(paths []string, evidence map[string]any) (*multipartBody, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for _, path := range paths {
		if err := writeEvidenceFile(writer, path); err != nil {
			return nil, err
		}
	}

	if evidence != nil {
		encoded, err := json.Marshal(evidence)
		if err != nil {
			return nil, fmt.Errorf("failed to encode evidence payload: %w", err)
		}
		if err := writer.WriteField("input", string(encoded)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return &multipartBody{
		contentType: writer.FormDataContentType(),
		body:        buf,
	}, nil
}

func writeEvidenceFile(writer *multipart.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &EvidenceError{File: path, Reason: err.Error()}
	}
	defer file.Close()

	part, err := writer.CreateFormFile("evidence-file", filepath.Base(path))
	if err != nil {
		return err
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read evidence file %s: %w", path, err)
	}
	return nil
}

func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
