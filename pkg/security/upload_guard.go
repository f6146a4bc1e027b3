package security

import (
	"bytes"
	"path/filepath"
	"strings"
)

// UploadValidationResult contains the result of CV upload validation
type UploadValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed document types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".docx": {{0x50, 0x4B, 0x03, 0x04}}, // ZIP (PK..)
	".txt":  {},                         // Text files have no magic bytes - rely on MIME detection
}

// Allowed document extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Strict MIME types - DO NOT include application/octet-stream
var strictMIMETypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateUpload performs 3-layer validation on an uploaded CV document:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. MIME type whitelist (application/octet-stream REJECTED)
func ValidateUpload(filename string, data []byte, detectedMIME string) UploadValidationResult {
	result := UploadValidationResult{
		DetectedMIME: normalizeMIME(detectedMIME),
	}

	// Sanitize and extract extension
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: Extension whitelist
	if !allowedExtensions[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	// Layer 2: Magic byte validation (skip for text files)
	if ext != ".txt" {
		if !validateMagicBytes(ext, data) {
			result.Error = "file content does not match extension (potential file spoofing detected)"
			return result
		}
	}

	// Layer 3: MIME type whitelist
	// CRITICAL: Reject application/octet-stream - it allows arbitrary binary uploads
	if result.DetectedMIME == "application/octet-stream" {
		// Special case: .docx files are sometimes detected as octet-stream.
		// Magic bytes already validated above, so allow them through.
		if ext != ".docx" {
			result.Error = "binary files not allowed; file type could not be determined"
			return result
		}
	} else if !strictMIMETypes[result.DetectedMIME] {
		result.Error = "MIME type not allowed: " + result.DetectedMIME
		return result
	}

	result.Valid = true
	return result
}

// normalizeMIME strips parameters like "; charset=utf-8" that
// http.DetectContentType appends to text types
func normalizeMIME(mime string) string {
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	return strings.TrimSpace(mime)
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false // Unknown extension
	}

	// Empty signatures array = no magic bytes to check (e.g., txt)
	if len(signatures) == 0 {
		return true
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}
