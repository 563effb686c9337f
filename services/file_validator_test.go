package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func jpegPayload() []byte {
	return []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
}

func pngPayload() []byte {
	return []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
}

func gifPayload() []byte {
	return []byte("GIF89a\x01\x00")
}

func webpPayload() []byte {
	b := []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
	return b
}

func TestIsValidBase64Image(t *testing.T) {
	v := NewFileValidator()

	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"jpeg signature", b64(jpegPayload()), true},
		{"png signature", b64(pngPayload()), true},
		{"gif signature", b64(gifPayload()), true},
		{"webp signature", b64(webpPayload()), true},
		{"webp shorter than 12 bytes", b64([]byte("RIFF\x00\x00\x00")), false},
		{"riff without webp marker", b64([]byte("RIFF\x24\x00\x00\x00WAVEfmt ")), false},
		{"unknown signature", b64([]byte("BM\x00\x00\x00\x00\x00\x00")), false},
		{"shorter than four bytes", b64([]byte{0xFF, 0xD8, 0xFF}), false},
		{"not base64", "!!!not-base64!!!", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, v.IsValidBase64Image(tt.payload))
		})
	}
}

func TestIsValidBase64ImageSizeCap(t *testing.T) {
	v := NewFileValidator()

	atLimit := make([]byte, MaxFileSizeBytes)
	copy(atLimit, jpegPayload())
	require.True(t, v.IsValidBase64Image(b64(atLimit)))

	overLimit := make([]byte, MaxFileSizeBytes+1)
	copy(overLimit, jpegPayload())
	require.False(t, v.IsValidBase64Image(b64(overLimit)))
}

func TestContentTypeFromBase64(t *testing.T) {
	v := NewFileValidator()

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"jpeg", b64(jpegPayload()), "image/jpeg"},
		{"png", b64(pngPayload()), "image/png"},
		{"gif", b64(gifPayload()), "image/gif"},
		{"webp", b64(webpPayload()), "image/webp"},
		{"unknown signature falls back to jpeg", b64([]byte("BM\x00\x00\x00\x00\x00\x00")), "image/jpeg"},
		{"too short for any signature", b64([]byte{0x01, 0x02}), "application/octet-stream"},
		{"undecodable", "!!!not-base64!!!", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, v.ContentTypeFromBase64(tt.payload))
		})
	}
}

func TestFileSizeFromBase64(t *testing.T) {
	v := NewFileValidator()

	require.Equal(t, int64(len(jpegPayload())), v.FileSizeFromBase64(b64(jpegPayload())))
	require.Equal(t, int64(0), v.FileSizeFromBase64("!!!not-base64!!!"))
}

func TestIsValidFileName(t *testing.T) {
	v := NewFileValidator()

	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"jpg", "photo.jpg", true},
		{"jpeg", "photo.jpeg", true},
		{"png", "photo.png", true},
		{"gif", "animation.gif", true},
		{"webp", "modern.webp", true},
		{"uppercase extension", "PHOTO.JPG", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"no extension", "photo", false},
		{"disallowed extension", "document.pdf", false},
		{"path separator", "dir/photo.jpg", false},
		{"illegal character", "pho*to.jpg", false},
		{"control character", "pho\x00to.jpg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, v.IsValidFileName(tt.fileName))
		})
	}
}
