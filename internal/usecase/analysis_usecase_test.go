package usecase_test

import (
	"fmt"
	"strings"
	"testing"

	"careerboost-backend/internal/domain"
	"careerboost-backend/internal/usecase"
	"careerboost-backend/internal/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) domain.AnalysisUsecase {
	t.Helper()
	catalog, err := vocab.Load()
	require.NoError(t, err)
	return usecase.NewAnalysisUsecase(catalog)
}

func TestScorePartialMatch(t *testing.T) {
	uc := newAnalyzer(t)

	profile := &domain.CandidateProfile{RawText: "I write Python services."}
	job := "Looking for a candidate with 5+ years Python and AWS experience"

	result := uc.Score(profile, job)

	// 1 of 3 keywords (python, aws, "5+ years experience") matches
	assert.Equal(t, 33, result.Score)
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"aws", "5+ years experience"}, result.MissingSkills)
}

func TestScoreNeutralWhenNoKeywords(t *testing.T) {
	uc := newAnalyzer(t)

	profile := &domain.CandidateProfile{RawText: "anything"}
	result := uc.Score(profile, "We need a friendly person")

	assert.Equal(t, 50, result.Score)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestScoreFullMatch(t *testing.T) {
	uc := newAnalyzer(t)

	profile := &domain.CandidateProfile{RawText: "Python and AWS, with Docker on the side"}
	result := uc.Score(profile, "Must know Python, AWS and Docker")

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.MissingSkills)
}

func TestScorePartitionPreservesVocabularyOrder(t *testing.T) {
	catalog := &vocab.Catalog{
		Skills:   []string{"python", "aws", "docker"},
		Fallback: vocab.RoadmapPlan{Weeks: "2-4", Resources: []string{"YouTube Tutorials"}},
	}
	uc := usecase.NewAnalysisUsecase(catalog)

	profile := &domain.CandidateProfile{RawText: "docker and python daily"}
	result := uc.Score(profile, "python, aws, docker, 3 years required")

	assert.Equal(t, []string{"python", "docker"}, result.MatchedSkills)
	assert.Equal(t, []string{"aws", "3+ years experience"}, result.MissingSkills)
	assert.Equal(t, 50, result.Score) // 2 of 4
}

func TestScoreMissingSkillsCapped(t *testing.T) {
	skills := make([]string, 15)
	for i := range skills {
		skills[i] = fmt.Sprintf("skillnum%d", i)
	}
	catalog := &vocab.Catalog{
		Skills:   skills,
		Fallback: vocab.RoadmapPlan{Weeks: "2-4", Resources: []string{"YouTube Tutorials"}},
	}
	uc := usecase.NewAnalysisUsecase(catalog)

	profile := &domain.CandidateProfile{RawText: "nothing relevant"}
	result := uc.Score(profile, strings.Join(skills, " "))

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.MatchedSkills)
	require.Len(t, result.MissingSkills, domain.MaxMissingSkills)
	assert.Equal(t, skills[:domain.MaxMissingSkills], result.MissingSkills)
}

func TestScoreTips(t *testing.T) {
	uc := newAnalyzer(t)

	t.Run("Orders rules and caps at eight", func(t *testing.T) {
		// A sparse profile trips every tip rule: 4 skill-gap tips plus the
		// projects, achievements, certifications and action-verb tips fill
		// the cap before the skill-count tip can fire.
		profile := &domain.CandidateProfile{
			RawText: "Jane Doe\nkotlin, swift, rust",
			Skills:  []string{"Kotlin", "Rust", "Swift"},
		}
		result := uc.Score(profile, "python javascript react sql docker required")

		require.Len(t, result.Tips, domain.MaxTips)
		assert.Contains(t, result.Tips[0], `Add "Python"`)
		assert.Contains(t, result.Tips[0], "Python.org Tutorial + freeCodeCamp")
		assert.Contains(t, result.Tips[1], `Add "Java"`)
		assert.Contains(t, result.Tips[1], "YouTube tutorials + freeCodeCamp")
		assert.Contains(t, result.Tips[2], `Add "Javascript"`)
		assert.Contains(t, result.Tips[3], `Add "React"`)
		assert.Contains(t, result.Tips[4], "'Projects' section")
		assert.Contains(t, result.Tips[5], "quantifiable achievements")
		assert.Contains(t, result.Tips[6], "certifications")
		assert.Contains(t, result.Tips[7], "action verbs")
		for _, tip := range result.Tips {
			assert.NotContains(t, tip, "Expand your Skills section")
		}
	})

	t.Run("Skips rules the profile already satisfies", func(t *testing.T) {
		profile := &domain.CandidateProfile{
			RawText: "Projects: Developed a tool that reduced costs by 30%. AWS Certified.",
			Skills:  []string{"A", "B", "C", "D", "E", "F", "G"},
		}
		result := uc.Score(profile, "python required")

		require.Len(t, result.Tips, 1)
		assert.Contains(t, result.Tips[0], `Add "Python"`)
	})
}
