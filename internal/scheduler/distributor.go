package scheduler

import (
	"fmt"
	"math/rand"

	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/models"
)

// The day's first session starts at 09:00.
const dayStartMinutes = 9 * 60

const minutesPerDay = 24 * 60

// Session and break bounds.
const (
	maxSessionHours        = 3
	shortBreakMinutes      = 15
	longBreakMinutes       = 30
	longSessionHoursCutoff = 2 // sessions this long or longer get movement breaks
)

// DayAllocation is the outcome of distributing one day's hours.
type DayAllocation struct {
	Sessions   []models.StudySession
	Breaks     []models.BreakActivity
	TotalHours int
}

// DistributeDay allocates study sessions for a single day against the
// remaining budget. Subjects with the most work left go first; each session
// runs 1-3 hours, followed by a break whose length depends on the session.
// The day stops at maxDailyHours, when the budget runs dry, or before any
// session or break that would cross midnight. The budget is not mutated.
//
// prefs.BreakInterval is accepted but not used to pace breaks; break length
// is keyed off session length only.
func DistributeDay(cat *catalog.Catalog, budget *SubjectBudget, prefs models.Preferences, rng *rand.Rand) DayAllocation {
	prefs = prefs.WithDefaults()
	alloc := DayAllocation{
		Sessions: []models.StudySession{},
		Breaks:   []models.BreakActivity{},
	}

	clock := dayStartMinutes
	for _, subject := range budget.ByRemaining() {
		if alloc.TotalHours >= prefs.MaxDailyHours {
			break
		}
		hoursLeft := budget.Hours(subject)
		if hoursLeft <= 0 {
			break
		}

		duration := minInt(maxSessionHours, hoursLeft, prefs.MaxDailyHours-alloc.TotalHours)
		if duration <= 0 {
			continue
		}
		if clock+duration*60 > minutesPerDay {
			break
		}

		alloc.Sessions = append(alloc.Sessions, models.StudySession{
			Subject:    subject,
			StartTime:  formatClock(clock),
			Duration:   duration,
			EndTime:    formatClock(clock + duration*60),
			Type:       "focused_study",
			Techniques: StudyTechniques(cat, subject),
		})
		alloc.TotalHours += duration
		clock += duration * 60

		if alloc.TotalHours < prefs.MaxDailyHours {
			breakDuration := longBreakMinutes
			if duration <= 1 {
				breakDuration = shortBreakMinutes
			}
			if clock+breakDuration > minutesPerDay {
				break
			}
			alloc.Breaks = append(alloc.Breaks, models.BreakActivity{
				StartTime: formatClock(clock),
				Duration:  breakDuration,
				Activity:  pickBreakActivity(cat, duration, rng),
				Type:      "wellness_break",
			})
			clock += breakDuration
		}
	}
	return alloc
}

// pickBreakActivity chooses a break activity biased by session length:
// longer sessions get movement, shorter ones get micro-resets.
func pickBreakActivity(cat *catalog.Catalog, sessionHours int, rng *rand.Rand) string {
	pool := cat.ShortSessionBreaks
	if sessionHours >= longSessionHoursCutoff {
		pool = cat.LongSessionBreaks
	}
	return pool[rng.Intn(len(pool))]
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
