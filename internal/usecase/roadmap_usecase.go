package usecase

import (
	"fmt"
	"strings"
	"time"

	"careerboost-backend/internal/domain"
	"careerboost-backend/internal/vocab"
)

type roadmapUsecase struct {
	catalog *vocab.Catalog
	// Injected for deterministic document dates in tests
	now func() time.Time
}

func NewRoadmapUsecase(catalog *vocab.Catalog) domain.RoadmapUsecase {
	return &roadmapUsecase{
		catalog: catalog,
		now:     time.Now,
	}
}

// Entries builds a self-study plan per missing skill, at most
// MaxRoadmapEntries, in input order. Curated skills get their table entry;
// everything else falls back to the generic plan.
func (u *roadmapUsecase) Entries(missing []string) []domain.RoadmapEntry {
	if len(missing) > domain.MaxRoadmapEntries {
		missing = missing[:domain.MaxRoadmapEntries]
	}

	entries := []domain.RoadmapEntry{}
	for _, skill := range missing {
		plan := u.catalog.Plan(skill)
		titled := titleCase(skill)
		entries = append(entries, domain.RoadmapEntry{
			Skill:         titled,
			DurationWeeks: plan.Weeks,
			Resources:     append([]string{}, plan.Resources...),
			// Fixed progression: learn, build, publish
			ActionSteps: []string{
				fmt.Sprintf("**Week 1** — Complete a beginner tutorial on %s", titled),
				fmt.Sprintf("**Week 2** — Build a small hands-on project using %s", titled),
				"**Week 3+** — Add the project to your GitHub & update your CV",
			},
		})
	}
	return entries
}

// Markdown renders entries into the downloadable roadmap document.
func (u *roadmapUsecase) Markdown(entries []domain.RoadmapEntry) string {
	var md strings.Builder
	md.WriteString("# 📚 Personalized Skills Roadmap\n\n")
	md.WriteString(fmt.Sprintf("*Generated on %s*\n\n", u.now().Format("January 2, 2006")))
	md.WriteString("---\n\n")

	for i, entry := range entries {
		md.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, entry.Skill))
		md.WriteString(fmt.Sprintf("⏱️ **Estimated Time:** %s weeks\n\n", entry.DurationWeeks))
		md.WriteString("📖 **Free Resources:**\n")
		for _, r := range entry.Resources {
			md.WriteString(fmt.Sprintf("  - %s\n", r))
		}
		md.WriteString("\n✅ **Action Plan:**\n")
		for j, step := range entry.ActionSteps {
			md.WriteString(fmt.Sprintf("  %d. %s\n", j+1, step))
		}
		md.WriteString("\n---\n\n")
	}

	md.WriteString("> 💡 **Tip:** Focus on 2-3 skills at a time. Consistency beats intensity.\n")
	return md.String()
}

func (u *roadmapUsecase) Generate(missing []string) string {
	return u.Markdown(u.Entries(missing))
}
