package security_test

import (
	"testing"

	"careerboost-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 minimal content for testing")
	zipBytes := []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00}

	tests := []struct {
		name      string
		filename  string
		data      []byte
		mime      string
		wantValid bool
	}{
		{"Valid PDF", "resume.pdf", pdfBytes, "application/pdf", true},
		{"Valid DOCX as zip", "cv.docx", zipBytes, "application/zip", true},
		{"DOCX detected as octet-stream", "cv.docx", zipBytes, "application/octet-stream", true},
		{"Plain text", "notes.txt", []byte("just some text"), "text/plain; charset=utf-8", true},
		{"Text renamed to pdf", "fake.pdf", []byte("plain text pretending"), "text/plain", false},
		{"Octet-stream pdf rejected", "blob.pdf", pdfBytes, "application/octet-stream", false},
		{"Executable extension", "payload.exe", []byte("MZ..."), "application/octet-stream", false},
		{"No extension", "README", []byte("text"), "text/plain", false},
		{"Disallowed MIME", "resume.pdf", pdfBytes, "text/html", false},
		{"Tiny file", "small.pdf", []byte("%PD"), "application/pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := security.ValidateUpload(tt.filename, tt.data, tt.mime)
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Error)
			}
		})
	}
}

func TestValidateUploadNormalizesMIME(t *testing.T) {
	result := security.ValidateUpload("notes.txt", []byte("hello there"), "text/plain; charset=utf-8")
	assert.True(t, result.Valid)
	assert.Equal(t, "text/plain", result.DetectedMIME)
}
