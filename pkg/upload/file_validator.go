package upload

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of résumé file validation
type FileValidationResult struct {
	Valid     bool   // Whether the file passed all validation checks
	Extension string // Detected file extension
	Error     string // Error message if validation failed
}

// Magic byte signatures for allowed résumé file types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// ValidateFile performs 2-layer résumé file validation:
// 1. Extension whitelist check (PDF/DOC/DOCX only)
// 2. Magic byte verification (content matches extension)
func ValidateFile(filename string, data []byte) FileValidationResult {
	result := FileValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	signatures, ok := magicBytes[ext]
	if !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			result.Valid = true
			return result
		}
	}

	result.Error = "file content does not match extension (potential file spoofing detected)"
	return result
}
