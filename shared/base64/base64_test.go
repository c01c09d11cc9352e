package base64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/shared/base64"
)

const pixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: pixel, expected: "image/png"},
		{name: "plain text", input: "data:text/plain;base64,SGVsbG8=", expected: "text/plain"},
		{name: "missing marker", input: "data:image/png,abc", expected: ""},
		{name: "missing prefix", input: "image/png;base64,abc", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	contentType, data, err := base64.Decode(pixel)
	require.NoError(t, err)

	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	_, _, err = base64.Decode("data:image/png;base64,@@@")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)

	_, _, err = base64.Decode("plain string")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".png", base64.Extension("image/png"))
	assert.Equal(t, ".jpg", base64.Extension("image/jpeg"))
	assert.Equal(t, "", base64.Extension("application/pdf"))
}
