package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"careerboost-backend/internal/domain"
	"careerboost-backend/internal/vocab"
)

// Synthetic experience keyword: "5+ years", "3 years", etc.
var yearsRegex = regexp.MustCompile(`(\d+)\+?\s*years?`)

// Content-gap markers for the tip rules
var (
	achievementMarkers = []string{"increased", "improved", "reduced", "grew", "%"}
	strongVerbs        = []string{"developed", "led", "designed", "built", "implemented"}
)

const (
	neutralScore    = 50
	maxSkillGapTips = 4
	minSkillCount   = 6
)

type analysisUsecase struct {
	catalog *vocab.Catalog
}

func NewAnalysisUsecase(catalog *vocab.Catalog) domain.AnalysisUsecase {
	return &analysisUsecase{catalog: catalog}
}

// Score compares a profile against job-description text by keyword overlap.
// Total function: any well-formed profile and any job text yield a result.
func (u *analysisUsecase) Score(profile *domain.CandidateProfile, jobText string) *domain.CompatibilityResult {
	cvLower := strings.ToLower(profile.RawText)

	jobKeywords := u.extractJobKeywords(strings.ToLower(jobText))

	matched := []string{}
	missing := []string{}
	for _, kw := range jobKeywords {
		if strings.Contains(cvLower, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := neutralScore
	if len(jobKeywords) > 0 {
		score = int(math.Round(float64(len(matched)) / float64(len(jobKeywords)) * 100))
	}
	// The formula cannot exceed bounds today; the clamp protects future
	// formula changes.
	score = max(0, min(100, score))

	// The roadmap only ever sees the truncated list: it never covers more
	// than MaxMissingSkills gaps even when more exist.
	truncatedMissing := missing
	if len(truncatedMissing) > domain.MaxMissingSkills {
		truncatedMissing = truncatedMissing[:domain.MaxMissingSkills]
	}

	return &domain.CompatibilityResult{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: truncatedMissing,
		Tips:          u.generateTips(profile, truncatedMissing, cvLower),
	}
}

// extractJobKeywords pulls vocabulary terms out of lowercased job text in
// vocabulary order (not sorted: relevance order feeds matched/missing
// presentation), then appends one synthetic "<N>+ years experience" keyword
// per years-of-experience mention. Synthetic keywords classify exactly like
// vocabulary terms.
func (u *analysisUsecase) extractJobKeywords(jobLower string) []string {
	found := []string{}
	for _, term := range u.catalog.Skills {
		if strings.Contains(jobLower, term) {
			found = append(found, term)
		}
	}
	for _, m := range yearsRegex.FindAllStringSubmatch(jobLower, -1) {
		found = append(found, fmt.Sprintf("%s+ years experience", m[1]))
	}
	return found
}

// generateTips emits improvement tips in a fixed rule order. The order is
// load-bearing: the list is capped at MaxTips, so which tip gets dropped
// depends on it.
func (u *analysisUsecase) generateTips(profile *domain.CandidateProfile, missing []string, cvLower string) []string {
	tips := []string{}

	// Rule a: name the top skill gaps with a free learning resource
	for i, skill := range missing {
		if i >= maxSkillGapTips {
			break
		}
		tips = append(tips, fmt.Sprintf("Add %q — Learn via: %s (~2-4 hrs)", titleCase(skill), u.catalog.TipResource(skill)))
	}

	// Rules b-f: content-gap checks against the raw CV text
	if !strings.Contains(cvLower, "project") {
		tips = append(tips, "Add a 'Projects' section — concrete examples boost ATS and recruiter trust.")
	}
	if !containsAny(cvLower, achievementMarkers) {
		tips = append(tips, "Include quantifiable achievements (e.g., 'Reduced load time by 40%').")
	}
	if !strings.Contains(cvLower, "certification") && !strings.Contains(cvLower, "certified") {
		tips = append(tips, "Add certifications — even free ones (Google, AWS, Meta) add credibility.")
	}
	if !containsAny(cvLower, strongVerbs) {
		tips = append(tips, "Use strong action verbs: Developed, Led, Architected, Implemented.")
	}
	if len(profile.Skills) < minSkillCount {
		tips = append(tips, "Expand your Skills section — aim for 8-12 listed skills.")
	}

	if len(tips) > domain.MaxTips {
		tips = tips[:domain.MaxTips]
	}
	return tips
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
