package domain

// Presentation caps for analysis output. Which tip is dropped at the cap
// depends on the stable emission order, so these are load-bearing.
const (
	MaxMissingSkills  = 10
	MaxTips           = 8
	MaxRoadmapEntries = 8
)

// CompatibilityResult is the outcome of scoring a profile against a job
// description. Derived fresh per request, never cached.
type CompatibilityResult struct {
	// Integer in [0,100]; 50 when the job text yields no keywords
	Score int `json:"score"`
	// Job-keyword (vocabulary) order, lowercase terms as extracted
	MatchedSkills []string `json:"matched_skills"`
	// Job-keyword order, capped at MaxMissingSkills
	MissingSkills []string `json:"missing_skills"`
	// Stable rule order, capped at MaxTips
	Tips []string `json:"tips"`
}

// RoadmapEntry is a per-skill self-study plan.
type RoadmapEntry struct {
	Skill         string   `json:"skill"`
	DurationWeeks string   `json:"duration_weeks"`
	Resources     []string `json:"resources"`
	ActionSteps   []string `json:"action_steps"`
}

type AnalysisUsecase interface {
	// Score is total over any well-formed profile and job text.
	Score(profile *CandidateProfile, jobText string) *CompatibilityResult
}

type RoadmapUsecase interface {
	// Entries plans at most MaxRoadmapEntries skills, in input order.
	Entries(missing []string) []RoadmapEntry
	// Markdown renders entries into the downloadable roadmap document.
	Markdown(entries []RoadmapEntry) string
	// Generate composes Entries and Markdown.
	Generate(missing []string) string
}

type ArtifactUsecase interface {
	// RenderCV produces the formatted PDF. jobText is accepted but does
	// not alter content yet; it is a future prioritization hook.
	RenderCV(profile *CandidateProfile, jobText string) (data []byte, filename string, err error)
	// RenderPortfolio produces the static site ZIP (index.html + README.md).
	RenderPortfolio(profile *CandidateProfile) (data []byte, filename string, err error)
}
