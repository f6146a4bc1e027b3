package usecase

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode"

	_ "embed"

	"careerboost-backend/internal/domain"

	"github.com/go-pdf/fpdf"
)

// Render caps. Rendering shows a bounded slice of the profile; the stat
// counters on the portfolio still use the full lengths.
const (
	maxRenderedSkills       = 16
	maxRenderedExperience   = 5
	maxCVEducation          = 3
	maxPortfolioEducation   = 4
	summarySkillCount       = 5
	defaultExperienceDetail = "Delivered impactful results in a professional setting."
)

//go:embed portfolio.gohtml
var portfolioHTML string

var portfolioTemplate = template.Must(template.New("portfolio").Parse(portfolioHTML))

type artifactUsecase struct {
	now func() time.Time
}

func NewArtifactUsecase() domain.ArtifactUsecase {
	return &artifactUsecase{now: time.Now}
}

// RenderCV produces the formatted one-page PDF. jobText does not change
// the output yet; it is the hook for matched-skill prioritization.
// fpdf escapes text into PDF string syntax itself, so extracted free text
// cannot inject document structure here.
func (u *artifactUsecase) RenderCV(profile *domain.CandidateProfile, jobText string) ([]byte, string, error) {
	_ = jobText

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(16.5, 14, 16.5)
	pdf.SetAutoPageBreak(true, 12.7)
	pdf.AddPage()

	// cp1252 translator maps the bullet and accented characters
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// House palette
	var (
		dark   = [3]int{26, 26, 46}  // #1a1a2e
		accent = [3]int{233, 69, 96} // #e94560
		grey   = [3]int{85, 85, 85}  // #555555
	)

	// Name header
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(dark[0], dark[1], dark[2])
	pdf.CellFormat(0, 11, tr(profile.DisplayName()), "", 1, "C", false, 0, "")

	// Contact line
	var contact []string
	if profile.Email != "" {
		contact = append(contact, profile.Email)
	}
	if profile.Phone != "" {
		contact = append(contact, profile.Phone)
	}
	if len(contact) > 0 {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(grey[0], grey[1], grey[2])
		pdf.CellFormat(0, 5, tr(strings.Join(contact, " • ")), "", 1, "C", false, 0, "")
	}

	// Accent rule under the header
	pdf.Ln(1)
	pageW, _ := pdf.GetPageSize()
	leftM, _, rightM, _ := pdf.GetMargins()
	pdf.SetDrawColor(accent[0], accent[1], accent[2])
	pdf.SetLineWidth(0.5)
	y := pdf.GetY()
	pdf.Line(leftM, y, pageW-rightM, y)
	pdf.Ln(3)

	sectionHeader := func(title string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(accent[0], accent[1], accent[2])
		pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	}
	bodyText := func(text string) {
		pdf.SetFont("Helvetica", "", 9.5)
		pdf.SetTextColor(dark[0], dark[1], dark[2])
		pdf.MultiCell(0, 5, tr(text), "", "L", false)
	}

	// Auto-generated summary interpolating the first skills
	skillsPreview := strings.Join(capStrings(profile.Skills, summarySkillCount), ", ")
	if skillsPreview == "" {
		skillsPreview = "diverse technologies"
	}
	sectionHeader("PROFESSIONAL SUMMARY")
	bodyText(fmt.Sprintf(
		"Results-driven professional with hands-on expertise in %s. "+
			"Passionate about delivering high-quality, scalable solutions and continuously expanding technical skills. "+
			"Proven track record of collaborating in fast-paced environments to meet and exceed project goals.",
		skillsPreview))

	if len(profile.Skills) > 0 {
		sectionHeader("SKILLS")
		bodyText(strings.Join(capStrings(profile.Skills, maxRenderedSkills), "  •  "))
	}

	sectionHeader("PROFESSIONAL EXPERIENCE")
	experience := profile.Experience
	if len(experience) > maxRenderedExperience {
		experience = experience[:maxRenderedExperience]
	}
	for _, exp := range experience {
		pdf.SetFont("Helvetica", "B", 9.5)
		pdf.SetTextColor(dark[0], dark[1], dark[2])
		pdf.MultiCell(0, 5, tr(exp.Title), "", "L", false)
		if exp.Description != "" {
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(grey[0], grey[1], grey[2])
			pdf.SetX(leftM + 5)
			pdf.MultiCell(pageW-leftM-rightM-5, 4.5, tr("• "+exp.Description), "", "L", false)
			pdf.SetX(leftM)
		}
	}

	if len(profile.Education) > 0 {
		sectionHeader("EDUCATION")
		for _, edu := range capStrings(profile.Education, maxCVEducation) {
			bodyText(edu)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("write cv pdf: %w", err)
	}
	return buf.Bytes(), "optimized_cv.pdf", nil
}

// portfolioView is the data fed to the portfolio page template. All free
// text passes through html/template auto-escaping: CV content is
// attacker-influenced, so unescaped interpolation would be an injection
// vector, not a cosmetic bug.
type portfolioView struct {
	Name        string
	Email       string
	Phone       string
	Skills      []portfolioSkill
	AboutSkills string
	Experience  []domain.ExperienceEntry
	Education   []string
	SkillCount  int
	RoleCount   int
	EduCount    int
	Year        int
}

type portfolioSkill struct {
	Initial string
	Name    string
}

func (u *artifactUsecase) RenderPortfolio(profile *domain.CandidateProfile) ([]byte, string, error) {
	skills := profile.Skills
	if len(skills) == 0 {
		skills = []string{"Software Development", "Problem Solving"}
	}

	view := portfolioView{
		Name:        profile.DisplayName(),
		Email:       firstNonEmpty(profile.Email, "contact@example.com"),
		Phone:       profile.Phone,
		AboutSkills: strings.Join(capStrings(skills, 3), ", "),
		Education:   capStrings(profile.Education, maxPortfolioEducation),
		SkillCount:  len(skills),
		RoleCount:   len(profile.Experience),
		EduCount:    len(profile.Education),
		Year:        u.now().Year(),
	}
	for _, s := range capStrings(skills, maxRenderedSkills) {
		view.Skills = append(view.Skills, portfolioSkill{Initial: initialOf(s), Name: s})
	}
	experience := profile.Experience
	if len(experience) > maxRenderedExperience {
		experience = experience[:maxRenderedExperience]
	}
	for _, exp := range experience {
		if exp.Description == "" {
			exp.Description = defaultExperienceDetail
		}
		view.Experience = append(view.Experience, exp)
	}

	var page bytes.Buffer
	if err := portfolioTemplate.Execute(&page, view); err != nil {
		return nil, "", fmt.Errorf("render portfolio page: %w", err)
	}

	readme := fmt.Sprintf(
		"# %s — Portfolio\n\n"+
			"Generated by CareerBoost AI on %s.\n\n"+
			"## Deploy (all free)\n"+
			"1. **GitHub Pages** — push to a repo, enable Pages\n"+
			"2. **Netlify** — drag & drop the folder\n"+
			"3. **Vercel** — connect your GitHub repo\n",
		profile.DisplayName(), u.now().Format("2006-01-02"))

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct {
		name string
		body []byte
	}{
		{"index.html", page.Bytes()},
		{"README.md", []byte(readme)},
	} {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, "", fmt.Errorf("create zip entry %s: %w", entry.name, err)
		}
		if _, err := w.Write(entry.body); err != nil {
			return nil, "", fmt.Errorf("write zip entry %s: %w", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize portfolio zip: %w", err)
	}

	return buf.Bytes(), "portfolio_website.zip", nil
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func initialOf(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return "?"
}
