package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"tourism/shared/base64"
	"tourism/shared/constant"
	"tourism/shared/failure"
)

const bytesPerMB = 1024 * 1024

var imageTypes = []string{"image/png", "image/jpeg", "image/jpg", "image/gif", "image/webp"}

// File is an uploaded image held in memory until it is stored.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FromMultipart reads a multipart file part. The content type is sniffed when the part has none.
func FromMultipart(fileHeader *multipart.FileHeader) (File, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return File{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return File{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return File{Name: fileHeader.Filename, ContentType: contentType, Data: data}, nil
}

// FromDataURI decodes a "data:<type>;base64,<payload>" string.
func FromDataURI(uri string) (File, error) {
	contentType, data, err := base64.Decode(uri)
	if err != nil {
		return File{}, failure.BadRequestFromString("image must be a base64 data uri")
	}

	return File{Name: "image" + base64.Extension(contentType), ContentType: contentType, Data: data}, nil
}

// Validate accepts non-empty images up to maxSizeMB.
func (f File) Validate(maxSizeMB float64) error {
	if len(f.Data) == 0 {
		return failure.BadRequestFromString("image is empty")
	}

	if !slices.Contains(imageTypes, f.ContentType) {
		return failure.BadRequestFromString("image must be one of png, jpeg, gif, webp")
	}

	if maxSizeMB > 0 && float64(len(f.Data)) > maxSizeMB*bytesPerMB {
		return failure.BadRequestFromString(fmt.Sprintf("image must not exceed %g MB", maxSizeMB))
	}

	return nil
}

// Key is the storage path of f under category.
func (f File) Key(category Category) string {
	return Path(category, f.Name)
}
