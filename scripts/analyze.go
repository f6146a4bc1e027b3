package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"careerboost-backend/internal/usecase"
	"careerboost-backend/internal/vocab"
	"careerboost-backend/pkg/extract"
)

// One-shot CLI for local runs: parses a CV and, when a job description is
// supplied, prints the full analysis as JSON. Mirrors the /v1/analysis
// semantics without the HTTP layer.
func main() {
	cvPath := flag.String("cv", "", "path to a CV document (.pdf, .docx, .txt)")
	jobPath := flag.String("job", "", "optional path to a job description (.pdf, .txt)")
	flag.Parse()

	if *cvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -cv <path> [-job <path>]")
		os.Exit(2)
	}

	catalog := vocab.MustLoad()
	profileUC := usecase.NewProfileUsecase(catalog, nil)
	analysisUC := usecase.NewAnalysisUsecase(catalog)
	roadmapUC := usecase.NewRoadmapUsecase(catalog)

	profile, err := parseFile(profileUC.ParseDocument, *cvPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	out := map[string]any{"profile": profile}
	if *jobPath != "" {
		jobText, err := readText(*jobPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		compatibility := analysisUC.Score(profile, jobText)
		out["compatibility"] = compatibility
		out["roadmap"] = roadmapUC.Entries(compatibility.MissingSkills)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseFile[T any](parse func([]byte, extract.Kind) (T, error), path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, err
	}
	kind, err := extract.KindFromFilename(path)
	if err != nil {
		return zero, err
	}
	return parse(data, kind)
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	kind, err := extract.KindFromFilename(path)
	if err != nil {
		return "", err
	}
	return extract.Text(data, kind)
}
