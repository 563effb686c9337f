package services

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// MaxFileSizeBytes caps a decoded image payload at 5 MiB.
const MaxFileSizeBytes = 5 * 1024 * 1024

// fileNameInvalidChars are characters rejected in uploaded file names.
const fileNameInvalidChars = "<>:\"/\\|?*"

var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// FileValidator checks encoded image payloads and file names. All methods are
// pure functions over their input; decode failures fail closed.
type FileValidator struct{}

// NewFileValidator creates a FileValidator.
func NewFileValidator() *FileValidator {
	return &FileValidator{}
}

// IsValidBase64Image reports whether the payload decodes, fits within the
// size cap, and carries a recognized image signature.
func (v *FileValidator) IsValidBase64Image(base64Image string) bool {
	data, err := decodeBase64(base64Image)
	if err != nil {
		return false
	}
	if len(data) > MaxFileSizeBytes {
		return false
	}
	return hasValidImageHeader(data)
}

// IsValidFileName rejects blank names, names with path-illegal characters,
// and extensions outside the allowed image set (case-insensitive).
func (v *FileValidator) IsValidFileName(fileName string) bool {
	if strings.TrimSpace(fileName) == "" {
		return false
	}
	for _, r := range fileName {
		if r < 0x20 || strings.ContainsRune(fileNameInvalidChars, r) {
			return false
		}
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ContentTypeFromBase64 derives the MIME type from the payload's leading
// bytes. Payloads that decode but match no signature default to image/jpeg;
// payloads that fail to decode yield application/octet-stream.
func (v *FileValidator) ContentTypeFromBase64(base64Image string) string {
	data, err := decodeBase64(base64Image)
	if err != nil {
		return "application/octet-stream"
	}
	return contentTypeFromBytes(data)
}

// FileSizeFromBase64 returns the decoded byte length, or 0 when the payload
// does not decode.
func (v *FileValidator) FileSizeFromBase64(base64Image string) int64 {
	data, err := decodeBase64(base64Image)
	if err != nil {
		return 0
	}
	return int64(len(data))
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, base64.CorruptInputError(0)
	}
	return base64.StdEncoding.DecodeString(s)
}

func hasValidImageHeader(b []byte) bool {
	if len(b) < 4 {
		return false
	}

	// JPEG: FF D8 FF
	if b[0] == 0xFF && b[1] == 0xD8 && b[2] == 0xFF {
		return true
	}

	// PNG: 89 50 4E 47
	if b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 {
		return true
	}

	// GIF: 47 49 46
	if b[0] == 0x47 && b[1] == 0x49 && b[2] == 0x46 {
		return true
	}

	// WebP: RIFF....WEBP
	if len(b) >= 12 &&
		b[0] == 0x52 && b[1] == 0x49 && b[2] == 0x46 && b[3] == 0x46 &&
		b[8] == 0x57 && b[9] == 0x45 && b[10] == 0x42 && b[11] == 0x50 {
		return true
	}

	return false
}

func contentTypeFromBytes(b []byte) string {
	if len(b) < 4 {
		return "application/octet-stream"
	}

	if b[0] == 0xFF && b[1] == 0xD8 && b[2] == 0xFF {
		return "image/jpeg"
	}

	if b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 {
		return "image/png"
	}

	if b[0] == 0x47 && b[1] == 0x49 && b[2] == 0x46 {
		return "image/gif"
	}

	if len(b) >= 12 &&
		b[0] == 0x52 && b[1] == 0x49 && b[2] == 0x46 && b[3] == 0x46 &&
		b[8] == 0x57 && b[9] == 0x45 && b[10] == 0x42 && b[11] == 0x50 {
		return "image/webp"
	}

	// Recognizable-but-unknown payloads deliberately fall back to JPEG to
	// match the upstream behavior the gallery frontend expects.
	return "image/jpeg"
}
