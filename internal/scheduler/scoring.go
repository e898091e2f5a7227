package scheduler

import (
	"math"

	"soulconnect-service/internal/models"
)

// DayMetrics are the derived wellness figures for one day plan.
type DayMetrics struct {
	WellnessScore float64
	StressLevel   string
}

// Scorer derives wellness and success figures from a produced plan. The
// default heuristic can be swapped for another model without touching the
// allocator.
type Scorer interface {
	ScoreDay(sessions, totalHours, breaks int) DayMetrics
	PredictStress(plan []models.DayPlan) string
	SuccessProbability(scheduledHours, recommendedHours int) float64
}

// Heuristic coefficients. These are tuning knobs, not calibrated statistics.
var (
	wellnessBase     = 50.0
	wellnessPerBreak = 8.0
	wellnessPerHour  = 4.0

	stressLowCutoff  = 2.5 // study hours per break, inclusive
	stressHighCutoff = 5.0

	successFloor = 0.30
	successScale = 0.65
)

// HeuristicScorer is the stock scoring model: breaks raise wellness, study
// hours lower it; stress follows the hours-per-break ratio; success
// probability follows the scheduled-vs-recommended hours ratio.
type HeuristicScorer struct{}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

func (s *HeuristicScorer) ScoreDay(sessions, totalHours, breaks int) DayMetrics {
	score := wellnessBase + wellnessPerBreak*float64(breaks) - wellnessPerHour*float64(totalHours)
	score = clamp(score, 0, 100)
	return DayMetrics{
		WellnessScore: math.Round(score*10) / 10,
		StressLevel:   stressLabel(totalHours, breaks),
	}
}

func (s *HeuristicScorer) PredictStress(plan []models.DayPlan) string {
	if len(plan) == 0 {
		return "low"
	}
	totalHours, totalBreaks := 0, 0
	for _, day := range plan {
		totalHours += day.TotalStudyHours
		totalBreaks += len(day.BreakActivities)
	}
	return stressLabel(totalHours, totalBreaks)
}

func (s *HeuristicScorer) SuccessProbability(scheduledHours, recommendedHours int) float64 {
	if recommendedHours <= 0 {
		return successFloor
	}
	ratio := float64(scheduledHours) / float64(recommendedHours)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	p := successFloor + successScale*ratio
	return math.Round(p*100) / 100
}

// stressLabel buckets the study-hours-per-break ratio. More hours with fewer
// breaks means higher stress.
func stressLabel(totalHours, breaks int) string {
	if totalHours == 0 {
		return "low"
	}
	ratio := float64(totalHours) / float64(breaks+1)
	switch {
	case ratio <= stressLowCutoff:
		return "low"
	case ratio <= stressHighCutoff:
		return "moderate"
	default:
		return "high"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
