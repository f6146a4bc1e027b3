package usecase_test

import (
	"testing"

	"careerboost-backend/internal/domain"
	"careerboost-backend/internal/usecase"
	"careerboost-backend/internal/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T) domain.ProfileUsecase {
	t.Helper()
	catalog, err := vocab.Load()
	require.NoError(t, err)
	return usecase.NewProfileUsecase(catalog, nil)
}

func TestParseBasicProfile(t *testing.T) {
	uc := newParser(t)

	text := "Jane Doe\nSoftware Engineer\njane.doe@email.com\n555-123-4567\n\nSkills: Python, Docker, SQL"
	profile := uc.Parse(text)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane.doe@email.com", profile.Email)
	assert.Equal(t, "555-123-4567", profile.Phone)
	// Title-cased and lexicographically sorted
	assert.Equal(t, []string{"Docker", "Python", "Sql"}, profile.Skills)
	assert.Equal(t, text, profile.RawText)
}

func TestParseIsIdempotent(t *testing.T) {
	uc := newParser(t)

	text := "John Smith\nEngineer at Acme\njohn@acme.com\n\nWork Experience\nSenior Developer at Acme Corporation\nBuilt scalable data pipelines for analytics workloads"
	first := uc.Parse(text)
	second := uc.Parse(text)

	assert.Equal(t, first, second)
}

func TestSkillDedupCaseInsensitive(t *testing.T) {
	catalog := &vocab.Catalog{
		Skills:   []string{"python", "docker"},
		Fallback: vocab.RoadmapPlan{Weeks: "2-4", Resources: []string{"YouTube Tutorials"}},
	}
	uc := usecase.NewProfileUsecase(catalog, nil)

	profile := uc.Parse("Python PYTHON python Docker DOCKER")

	assert.Equal(t, []string{"Docker", "Python"}, profile.Skills)
}

func TestNameFallsBackToEmpty(t *testing.T) {
	uc := newParser(t)

	t.Run("Section headers are not names", func(t *testing.T) {
		profile := uc.Parse("Skills and Tools\nExperience History Overview\nx y")
		assert.Empty(t, profile.Name)
		assert.Equal(t, domain.PlaceholderName, profile.DisplayName())
	})

	t.Run("Lines with too many words are not names", func(t *testing.T) {
		profile := uc.Parse("one two three four five six seven")
		assert.Empty(t, profile.Name)
	})
}

func TestExperienceExtraction(t *testing.T) {
	uc := newParser(t)

	t.Run("Pairs titles with long follower lines", func(t *testing.T) {
		text := "John Smith\n\nWork Experience\nSenior Developer at Acme Corporation\nOwned the checkout platform and its on-call rotation end to end\nShort role\n\nEducation\nState University"
		profile := uc.Parse(text)

		require.Len(t, profile.Experience, 2)
		assert.Equal(t, "Senior Developer at Acme Corporation", profile.Experience[0].Title)
		assert.Equal(t, "Owned the checkout platform and its on-call rotation end to end", profile.Experience[0].Description)
		assert.Equal(t, "Short role", profile.Experience[1].Title)
		assert.Empty(t, profile.Experience[1].Description)
	})

	t.Run("Stops at the next section header", func(t *testing.T) {
		text := "Work Experience\nLead Engineer at Initech Industries\n\nSkills\nThis line belongs to the skills section"
		profile := uc.Parse(text)

		require.Len(t, profile.Experience, 1)
		assert.Equal(t, "Lead Engineer at Initech Industries", profile.Experience[0].Title)
	})

	t.Run("Collects at most five lines", func(t *testing.T) {
		text := "Professional Experience\nRole number one here\nRole number two here\nRole number three here\nRole number four here\nRole number five here\nRole number six here"
		profile := uc.Parse(text)

		total := 0
		for _, e := range profile.Experience {
			total++
			if e.Description != "" {
				total++
			}
		}
		assert.LessOrEqual(t, total, 5)
	})

	t.Run("Placeholder when no header exists", func(t *testing.T) {
		profile := uc.Parse("Jane Doe\nJust some text without any sections")
		require.Len(t, profile.Experience, 1)
		assert.Equal(t, domain.PlaceholderExperienceTitle, profile.Experience[0].Title)
		assert.Equal(t, domain.PlaceholderExperienceDesc, profile.Experience[0].Description)
	})
}

func TestEducationExtraction(t *testing.T) {
	uc := newParser(t)

	t.Run("Captures a context window around degree keywords", func(t *testing.T) {
		profile := uc.Parse("Completed a Bachelor of Science in Computer Science at State University in 2019")
		require.NotEmpty(t, profile.Education)
		assert.Contains(t, profile.Education[0], "Bachelor of Science")
	})

	t.Run("Placeholder when no degree keyword matches", func(t *testing.T) {
		profile := uc.Parse("worked on device firmware helping with testing")
		assert.Equal(t, []string{domain.PlaceholderEducation}, profile.Education)
	})
}

func TestMergeProfiles(t *testing.T) {
	uc := newParser(t)

	primary := &domain.CandidateProfile{
		RawText:    "primary raw",
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Skills:     []string{"Python", "Docker"},
		Experience: []domain.ExperienceEntry{{Title: "Engineer"}},
		Education:  []string{"BSc"},
	}
	secondary := &domain.CandidateProfile{
		RawText:   "secondary raw",
		Name:      "Someone Else",
		Phone:     "555-000-1111",
		Skills:    []string{"python", "Leadership", "Teamwork"},
		Education: []string{"ignored"},
	}

	merged := uc.Merge(primary, secondary)

	// Scalars prefer primary, secondary fills gaps
	assert.Equal(t, "Jane Doe", merged.Name)
	assert.Equal(t, "jane@example.com", merged.Email)
	assert.Equal(t, "555-000-1111", merged.Phone)
	assert.Equal(t, "primary raw", merged.RawText)
	assert.Equal(t, []string{"BSc"}, merged.Education)

	// Union keeps primary order first, then new skills in secondary order;
	// "python" is a case-insensitive duplicate of "Python"
	assert.Equal(t, []string{"Python", "Docker", "Leadership", "Teamwork"}, merged.Skills)

	// Inputs are not mutated
	assert.Equal(t, []string{"Python", "Docker"}, primary.Skills)
	assert.Equal(t, []string{"python", "Leadership", "Teamwork"}, secondary.Skills)
}
