package domain

import (
	"context"

	"careerboost-backend/pkg/extract"
)

// Display placeholders. Extraction keeps "not found" as an empty value;
// these strings surface only at the rendering boundary.
const (
	PlaceholderName            = "Professional"
	PlaceholderExperienceTitle = "Professional Experience"
	PlaceholderExperienceDesc  = "See CV for details."
	PlaceholderEducation       = "Education details in CV"
)

// ExperienceEntry is one heuristically paired title/description pair
// from the experience section of a CV.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CandidateProfile is the structured career data extracted from a CV
// document or a fetched public profile page. It is constructed once and
// never mutated; derived operations return fresh values.
type CandidateProfile struct {
	RawText string `json:"raw_text"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	// Deduplicated, title-cased, lexicographically sorted
	Skills []string `json:"skills"`
	// Document order, length-bounded at render time
	Experience []ExperienceEntry `json:"experience"`
	// Context windows around matched degree keywords
	Education []string `json:"education"`
	// Provenance remark set by the LinkedIn fetch path
	Note string `json:"note,omitempty"`
}

// DisplayName returns the candidate name for rendering, falling back to
// the placeholder when extraction found none.
func (p *CandidateProfile) DisplayName() string {
	if p.Name == "" {
		return PlaceholderName
	}
	return p.Name
}

type ProfileUsecase interface {
	// Parse builds a profile from raw text. Total: absence of expected
	// patterns degrades to empty values, never an error.
	Parse(text string) *CandidateProfile
	// ParseDocument extracts text from a document blob and parses it.
	ParseDocument(data []byte, kind extract.Kind) (*CandidateProfile, error)
	// FetchPublicProfile builds a profile from a public LinkedIn page.
	FetchPublicProfile(ctx context.Context, url string) (*CandidateProfile, error)
	// Merge combines two profiles: scalar fields prefer primary,
	// skills are an order-preserving set union.
	Merge(primary, secondary *CandidateProfile) *CandidateProfile
}
