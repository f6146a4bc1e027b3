package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"careerboost-backend/internal/domain"
	"careerboost-backend/internal/vocab"
	"careerboost-backend/pkg/extract"
	"careerboost-backend/pkg/linkedin"
)

// Extraction heuristics. All of them are best-effort pattern matches that
// degrade to empty values; resumes are too unstructured for anything stricter.
var (
	// Section titles that disqualify a line from being the candidate name
	nameHeaderRegex = regexp.MustCompile(`(?i)^(experience|education|skills|summary|objective|contact)`)

	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Known imprecision: under- and over-matches on exotic formats.
	// Full phone-format coverage is out of scope.
	phoneRegex = regexp.MustCompile(`(\+?\d{1,3}[\-.\s]?)?(\(?\d{2,4}\)?[\-.\s]?)?\d{3,4}[\-.\s]?\d{4}`)

	experienceHeaderRegex = regexp.MustCompile(`(?i)(work\s*experience|professional\s*experience|employment(\s*history)?|experience(\s*&?\s*history)?)`)
	nextSectionRegex      = regexp.MustCompile(`(?i)\n(education|skills|certifications|projects|awards)`)

	degreeRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bachelor`),
		regexp.MustCompile(`(?i)master`),
		regexp.MustCompile(`(?i)phd`),
		regexp.MustCompile(`(?i)doctorate`),
		regexp.MustCompile(`(?i)b\.?s\.?`),
		regexp.MustCompile(`(?i)m\.?s\.?`),
		regexp.MustCompile(`(?i)b\.?a\.?`),
		regexp.MustCompile(`(?i)m\.?a\.?`),
		regexp.MustCompile(`(?i)mba`),
	}
)

const (
	maxExperienceLines    = 5
	maxExperienceTitleLen = 120
	// A line longer than this is assumed to be a description, not a title
	descriptionThreshold = 20
	// Education context window around a degree keyword match
	eduWindowBefore = 40
	eduWindowAfter  = 120
)

type profileUsecase struct {
	catalog *vocab.Catalog
	li      *linkedin.Client
}

func NewProfileUsecase(catalog *vocab.Catalog, li *linkedin.Client) domain.ProfileUsecase {
	return &profileUsecase{
		catalog: catalog,
		li:      li,
	}
}

func (u *profileUsecase) Parse(text string) *domain.CandidateProfile {
	return &domain.CandidateProfile{
		RawText:    text,
		Name:       extractName(text),
		Email:      emailRegex.FindString(text),
		Phone:      phoneRegex.FindString(text),
		Skills:     u.extractSkills(text),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
	}
}

func (u *profileUsecase) ParseDocument(data []byte, kind extract.Kind) (*domain.CandidateProfile, error) {
	text, err := extract.Text(data, kind)
	if err != nil {
		return nil, err
	}
	return u.Parse(text), nil
}

// extractName picks the first undecorated short line near the top of a CV.
// Resumes conventionally place the name on one of the first lines; the
// header check avoids false positives on section titles.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := len(strings.Fields(line))
		if words < 2 || words > 4 {
			continue
		}
		if utf8.RuneCountInString(line) <= 3 || strings.Contains(line, "@") {
			continue
		}
		if nameHeaderRegex.MatchString(line) {
			continue
		}
		return line
	}
	return ""
}

// extractSkills substring-matches the vocabulary against the full text.
// Matches are title-cased, deduplicated, and sorted lexicographically
// (unlike job keywords, which keep vocabulary order). Substring semantics
// mean "java" also matches inside "javascript"; that false positive is
// inherited behavior, kept so scoring stays comparable across sources.
func (u *profileUsecase) extractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	found := []string{}
	for _, term := range u.catalog.Skills {
		if !strings.Contains(lower, term) {
			continue
		}
		titled := titleCase(term)
		if seen[titled] {
			continue
		}
		seen[titled] = true
		found = append(found, titled)
	}
	sort.Strings(found)
	return found
}

func extractExperience(text string) []domain.ExperienceEntry {
	placeholder := []domain.ExperienceEntry{{
		Title:       domain.PlaceholderExperienceTitle,
		Description: domain.PlaceholderExperienceDesc,
	}}

	header := experienceHeaderRegex.FindStringIndex(text)
	if header == nil {
		return placeholder
	}

	chunk := text[header[1]:]
	if next := nextSectionRegex.FindStringIndex(chunk); next != nil {
		chunk = chunk[:next[0]]
	}

	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) <= 8 {
			continue
		}
		lines = append(lines, truncateRunes(line, maxExperienceTitleLen))
		if len(lines) >= maxExperienceLines {
			break
		}
	}

	// Pair consecutive lines: a long follower becomes the description of
	// the line before it. Fragile on real resumes, but "correct"
	// segmentation is not well defined either.
	var entries []domain.ExperienceEntry
	for i := 0; i < len(lines); {
		entry := domain.ExperienceEntry{Title: lines[i]}
		if i+1 < len(lines) && utf8.RuneCountInString(lines[i+1]) > descriptionThreshold {
			entry.Description = lines[i+1]
			i += 2
		} else {
			i++
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return placeholder
	}
	return entries
}

func extractEducation(text string) []string {
	var windows []string
	for _, re := range degreeRegexes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			lo := alignRuneStart(text, max(0, loc[0]-eduWindowBefore))
			hi := alignRuneStart(text, min(len(text), loc[1]+eduWindowAfter))
			windows = append(windows, strings.TrimSpace(text[lo:hi]))
		}
	}
	if len(windows) == 0 {
		return []string{domain.PlaceholderEducation}
	}
	return windows
}

func (u *profileUsecase) FetchPublicProfile(ctx context.Context, url string) (*domain.CandidateProfile, error) {
	page, err := u.li.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	skills := u.extractSkills(page.BodyText)
	if len(skills) == 0 {
		// Public pages expose almost nothing to anonymous clients
		skills = []string{"Communication", "Teamwork", "Leadership"}
	}

	return &domain.CandidateProfile{
		RawText: page.BodyText,
		Name:    page.Name,
		Skills:  skills,
		Experience: []domain.ExperienceEntry{{
			Title:       "See LinkedIn for full experience",
			Description: truncateRunes(page.Headline, 200),
		}},
		Education: []string{"See LinkedIn for education details"},
		Note:      "LinkedIn limits automated access. Upload your CV for full analysis.",
	}, nil
}

// Merge combines a CV-derived profile with a fetched one. Scalar fields and
// the experience/education sequences take primary's value unless primary's
// is empty; skills are a set union that keeps primary's entries first and
// appends secondary's new skills in secondary's order.
func (u *profileUsecase) Merge(primary, secondary *domain.CandidateProfile) *domain.CandidateProfile {
	merged := &domain.CandidateProfile{
		RawText:    firstNonEmpty(primary.RawText, secondary.RawText),
		Name:       firstNonEmpty(primary.Name, secondary.Name),
		Email:      firstNonEmpty(primary.Email, secondary.Email),
		Phone:      firstNonEmpty(primary.Phone, secondary.Phone),
		Note:       firstNonEmpty(primary.Note, secondary.Note),
		Experience: append([]domain.ExperienceEntry{}, primary.Experience...),
		Education:  append([]string{}, primary.Education...),
	}
	if len(merged.Experience) == 0 {
		merged.Experience = append([]domain.ExperienceEntry{}, secondary.Experience...)
	}
	if len(merged.Education) == 0 {
		merged.Education = append([]string{}, secondary.Education...)
	}

	seen := make(map[string]bool)
	skills := []string{}
	for _, s := range primary.Skills {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			skills = append(skills, s)
		}
	}
	for _, s := range secondary.Skills {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			skills = append(skills, s)
		}
	}
	merged.Skills = skills

	return merged
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// alignRuneStart moves a byte offset left until it sits on a rune boundary
func alignRuneStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
