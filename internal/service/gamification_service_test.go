package service

import (
	"math/rand"
	"testing"
	"time"

	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/models"
)

func TestCalculateLevel(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{9900, 100},
		{50000, 100},
	}
	for _, c := range cases {
		if got := CalculateLevel(c.points); got != c.want {
			t.Errorf("CalculateLevel(%d) = %d, want %d", c.points, got, c.want)
		}
	}
}

func TestUpdateStreak(t *testing.T) {
	t.Run("same day is a no-op", func(t *testing.T) {
		stats := &models.UserStats{CurrentStreak: 3, LongestStreak: 5, LastActivity: "2026-08-31"}
		UpdateStreak(stats, "2026-08-31")
		if stats.CurrentStreak != 3 {
			t.Errorf("streak changed on same day: %d", stats.CurrentStreak)
		}
	})

	t.Run("consecutive day extends", func(t *testing.T) {
		stats := &models.UserStats{CurrentStreak: 3, LongestStreak: 3, LastActivity: "2026-08-30"}
		UpdateStreak(stats, "2026-08-31")
		if stats.CurrentStreak != 4 {
			t.Errorf("CurrentStreak = %d, want 4", stats.CurrentStreak)
		}
		if stats.LongestStreak != 4 {
			t.Errorf("LongestStreak = %d, want 4", stats.LongestStreak)
		}
		if stats.LastActivity != "2026-08-31" {
			t.Errorf("LastActivity = %s", stats.LastActivity)
		}
	})

	t.Run("gap resets to one", func(t *testing.T) {
		stats := &models.UserStats{CurrentStreak: 9, LongestStreak: 9, LastActivity: "2026-08-20"}
		UpdateStreak(stats, "2026-08-31")
		if stats.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", stats.CurrentStreak)
		}
		if stats.LongestStreak != 9 {
			t.Errorf("LongestStreak = %d, want 9", stats.LongestStreak)
		}
	})

	t.Run("first activity starts at one", func(t *testing.T) {
		stats := &models.UserStats{}
		UpdateStreak(stats, "2026-08-31")
		if stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
			t.Errorf("streaks = %d/%d, want 1/1", stats.CurrentStreak, stats.LongestStreak)
		}
	})
}

func TestWeekendBonus(t *testing.T) {
	if got := WeekendBonus(10, time.Saturday); got != 15 {
		t.Errorf("saturday bonus = %d, want 15", got)
	}
	if got := WeekendBonus(10, time.Sunday); got != 15 {
		t.Errorf("sunday bonus = %d, want 15", got)
	}
	if got := WeekendBonus(10, time.Wednesday); got != 10 {
		t.Errorf("weekday points = %d, want 10", got)
	}
}

func TestCheckAchievements(t *testing.T) {
	t.Run("thresholds unlock once", func(t *testing.T) {
		stats := &models.UserStats{TotalPoints: 15, Achievements: []string{}}
		got := CheckAchievements(stats)
		if len(got) != 1 || got[0] != "first_chat" {
			t.Fatalf("new achievements = %v, want [first_chat]", got)
		}
		if again := CheckAchievements(stats); len(again) != 0 {
			t.Errorf("second check re-unlocked %v", again)
		}
	})

	t.Run("multiple thresholds at once", func(t *testing.T) {
		stats := &models.UserStats{
			TotalPoints:   1000,
			Level:         11,
			CurrentStreak: 8,
			StudySessions: 25,
			Achievements:  []string{},
		}
		got := CheckAchievements(stats)
		want := map[string]bool{"first_chat": true, "week_streak": true, "study_master": true, "wellness_guru": true}
		if len(got) != len(want) {
			t.Fatalf("new achievements = %v", got)
		}
		for _, id := range got {
			if !want[id] {
				t.Errorf("unexpected achievement %s", id)
			}
		}
	})

	t.Run("nothing below thresholds", func(t *testing.T) {
		stats := &models.UserStats{TotalPoints: 5}
		if got := CheckAchievements(stats); len(got) != 0 {
			t.Errorf("unlocked %v with empty stats", got)
		}
	})
}

func TestNextLevelRequirements(t *testing.T) {
	stats := &models.UserStats{Level: 1, TotalPoints: 40}
	req := NextLevelRequirements(stats)
	if req.NextLevel != 2 || req.PointsNeeded != 60 {
		t.Errorf("got %+v, want next level 2 at 60 points", req)
	}

	capped := &models.UserStats{Level: 100, TotalPoints: 99999}
	req = NextLevelRequirements(capped)
	if req.NextLevel != 100 || req.PointsNeeded != 0 {
		t.Errorf("got %+v at level cap", req)
	}
}

func testGamificationService(now time.Time) *GamificationService {
	clock := func() time.Time { return now }
	return NewGamificationService(nil, catalog.DefaultGamification(), catalog.DefaultResponses(), nil).
		WithClock(clock, rand.New(rand.NewSource(1)))
}

func TestDailyChallenge(t *testing.T) {
	// 2026-08-31 is a Monday.
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("offers an uncompleted challenge", func(t *testing.T) {
		svc := testGamificationService(monday)
		stats := &models.UserStats{DailyActivities: map[string]models.DayActivity{}}
		offer := svc.DailyChallenge(stats)
		if _, ok := svc.Catalog.ChallengeByID(offer.ID); !ok {
			t.Fatalf("offered unknown challenge %s", offer.ID)
		}
		if offer.WeekendBonus {
			t.Error("weekend bonus flagged on a Monday")
		}
		if offer.ExpiresAt != "2026-09-01 23:59:59" {
			t.Errorf("ExpiresAt = %s", offer.ExpiresAt)
		}
	})

	t.Run("weekend multiplies points", func(t *testing.T) {
		saturday := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
		svc := testGamificationService(saturday)
		stats := &models.UserStats{DailyActivities: map[string]models.DayActivity{}}
		offer := svc.DailyChallenge(stats)
		base, _ := svc.Catalog.ChallengeByID(offer.ID)
		if !offer.WeekendBonus {
			t.Fatal("weekend bonus not flagged on Saturday")
		}
		if offer.Points != int(float64(base.Points)*1.5) {
			t.Errorf("Points = %d, want 1.5x of %d", offer.Points, base.Points)
		}
	})

	t.Run("finished rotation earns bonus challenge", func(t *testing.T) {
		svc := testGamificationService(monday)
		done := []string{}
		for _, c := range svc.Catalog.Challenges {
			done = append(done, c.ID)
		}
		stats := &models.UserStats{DailyActivities: map[string]models.DayActivity{
			"2026-08-31": {Challenges: done},
		}}
		offer := svc.DailyChallenge(stats)
		if offer.ID != "bonus_challenge" {
			t.Errorf("offered %s, want bonus_challenge", offer.ID)
		}
		if offer.Points != 100 {
			t.Errorf("bonus points = %d, want 100", offer.Points)
		}
	})
}
