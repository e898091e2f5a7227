package scheduler

import (
	"soulconnect-service/internal/catalog"
)

// Base hours per subject when an exam lists no subjects at all.
const emptySubjectBaseHours = 20

// Difficulty factors applied on top of the per-subject base. The exam type's
// own multiplier is already baked into its recommended hours.
const (
	highDifficultyFactor = 1.3
	lowDifficultyFactor  = 0.8
)

// EstimateSubjectHours converts an exam's subject list into the hours each
// subject needs. The type's recommended hours are split evenly across the
// subjects, then scaled by the subject's difficulty tier and truncated to
// whole hours. Every input subject gets an entry.
func EstimateSubjectHours(cat *catalog.Catalog, subjects []string, cfg catalog.ExamTypeConfig) *SubjectBudget {
	budget := NewSubjectBudget()

	baseHours := float64(emptySubjectBaseHours)
	if len(subjects) > 0 {
		baseHours = float64(cfg.RecommendedHours) / float64(len(subjects))
	}

	for _, subject := range subjects {
		profile := cat.Subject(subject)
		factor := 1.0
		switch profile.Difficulty {
		case "high":
			factor = highDifficultyFactor
		case "low":
			factor = lowDifficultyFactor
		}
		budget.Set(subject, int(baseHours*factor))
	}
	return budget
}

// StudyTechniques picks the recommended techniques for a subject from its
// profile: practice-heavy subjects add drills, high-difficulty ones add
// concept mapping.
func StudyTechniques(cat *catalog.Catalog, subject string) []string {
	profile := cat.Subject(subject)
	techniques := []string{"active_reading", "note_taking"}
	if profile.PracticeRatio > 0.5 {
		techniques = append(techniques, "practice_problems", "mock_tests")
	}
	if profile.Difficulty == "high" {
		techniques = append(techniques, "concept_mapping")
	}
	return techniques
}
