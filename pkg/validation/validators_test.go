package validation_test

import (
	"testing"

	"careerboost-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestLinkedInURL(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"Profile URL", "https://www.linkedin.com/in/janedoe", true},
		{"Bare domain", "https://linkedin.com/in/janedoe", true},
		{"HTTP scheme", "http://linkedin.com/in/janedoe", true},
		{"Empty is allowed", "", true},
		{"Wrong host", "https://example.com/in/janedoe", false},
		{"Suffix spoof", "https://linkedin.com.evil.example/in/janedoe", false},
		{"Missing scheme", "www.linkedin.com/in/janedoe", false},
		{"FTP scheme", "ftp://linkedin.com/in/janedoe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "linkedin_url")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
