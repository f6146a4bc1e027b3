package validation

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("linkedin_url", LinkedInURL)
}

// LinkedInURL validates that a string is an http(s) URL on linkedin.com
// or one of its subdomains
func LinkedInURL(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}

	parsed, err := url.Parse(val)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}
