package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/internal/domains/user/model"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "John@EXAMPLE.com", want: "John@example.com"},
		{in: "  test@Example.COM ", want: "test@example.com"},
		{in: "no-at-sign", want: "no-at-sign"},
		{in: "a@b@C.org", want: "a@b@c.org"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizeEmail(tt.in))
		})
	}
}
