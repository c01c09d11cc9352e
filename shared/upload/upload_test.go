package upload_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/shared/upload"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name     string
		category upload.Category
		filename string
		ext      string
	}{
		{name: "user jpeg", category: upload.CategoryUser, filename: "photo.jpg", ext: ".jpg"},
		{name: "place png", category: upload.CategoryPlaces, filename: "beach.png", ext: ".png"},
		{name: "double extension keeps the last", category: upload.CategoryUser, filename: "archive.tar.gz", ext: ".gz"},
		{name: "no extension", category: upload.CategoryUser, filename: "README", ext: ""},
		{name: "hidden file", category: upload.CategoryUser, filename: ".profile", ext: ""},
		{name: "directory components dropped", category: upload.CategoryPlaces, filename: "../../etc/view.jpeg", ext: ".jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := upload.Path(tt.category, tt.filename)

			prefix := "uploads/" + string(tt.category) + "/"
			require.True(t, strings.HasPrefix(got, prefix), got)

			name := strings.TrimPrefix(got, prefix)
			assert.True(t, strings.HasSuffix(name, tt.ext))

			_, err := uuid.Parse(strings.TrimSuffix(name, tt.ext))
			assert.NoError(t, err)
		})
	}
}

func TestPathNeverLeaksOriginalName(t *testing.T) {
	got := upload.Path(upload.CategoryUser, "my-passport-scan.png")

	assert.NotContains(t, got, "passport")
}

func TestPathIsUnique(t *testing.T) {
	assert.NotEqual(t, upload.Path(upload.CategoryUser, "a.png"), upload.Path(upload.CategoryUser, "a.png"))
}

func TestFromDataURI(t *testing.T) {
	file, err := upload.FromDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, "image.png", file.Name)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, []byte("hello"), file.Data)
	assert.True(t, strings.HasSuffix(file.Key(upload.CategoryUser), ".png"))

	_, err = upload.FromDataURI("aGVsbG8=")
	assert.Error(t, err)
}

func TestFileValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    upload.File
		maxMB   float64
		wantErr bool
	}{
		{name: "valid", file: upload.File{ContentType: "image/jpeg", Data: []byte("x")}, maxMB: 1},
		{name: "empty", file: upload.File{ContentType: "image/jpeg"}, maxMB: 1, wantErr: true},
		{name: "not an image", file: upload.File{ContentType: "text/plain", Data: []byte("x")}, maxMB: 1, wantErr: true},
		{name: "too large", file: upload.File{ContentType: "image/png", Data: make([]byte, 2048)}, maxMB: 0.001, wantErr: true},
		{name: "no limit", file: upload.File{ContentType: "image/png", Data: make([]byte, 2048)}, maxMB: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate(tt.maxMB)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
