package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		address string
		valid   bool
	}{
		{"a@b.co", true},
		{"first.last+tag@statica.in", true},
		{"not-an-email", false},
		{"a@b", false},
		{"", false},
		{"a@b.c", false},
		{"a b@c.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.valid, Email(tt.address))
		})
	}
}

func TestStruct(t *testing.T) {
	type request struct {
		To   string `validate:"required,mailbox"`
		Type string `validate:"required"`
	}

	assert.NoError(t, Struct(&request{To: "a@b.co", Type: "welcome"}))
	assert.Error(t, Struct(&request{To: "a@b", Type: "welcome"}))
	assert.Error(t, Struct(&request{To: "a@b.co"}))
}
