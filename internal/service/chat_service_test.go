package service

import (
	"math/rand"
	"strings"
	"testing"

	"soulconnect-service/internal/catalog"
)

func testChatService() *ChatService {
	return NewChatService(catalog.DefaultResponses(), catalog.Default(), nil).
		WithRNG(rand.New(rand.NewSource(1)))
}

func TestDetectLanguage(t *testing.T) {
	svc := testChatService()
	cases := []struct {
		text string
		want string
	}{
		{"yaar kya kar raha hai", "hinglish"},
		{"enna da, super busy today", "tanglish"},
		{"how are you doing today", "english_indian"},
		{"", "english_indian"},
	}
	for _, c := range cases {
		if got := svc.DetectLanguage(c.text); got != c.want {
			t.Errorf("DetectLanguage(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestAssess(t *testing.T) {
	svc := testChatService()
	cases := []struct {
		message   string
		concern   string
		urgency   string
		needsHelp bool
	}{
		{"I want to die", "crisis", "crisis", true},
		{"I'm so overwhelmed right now", "stress", "high", true},
		{"exam season is brutal", "academic", "normal", false},
		{"tell me a joke", "general", "normal", false},
		// crisis and stress words outrank academic ones
		{"overwhelmed by exam prep", "stress", "high", true},
		{"want to die before my exam", "crisis", "crisis", true},
	}
	for _, c := range cases {
		got := svc.Assess(c.message)
		if got.MainConcern != c.concern || got.Urgency != c.urgency || got.NeedsHelp != c.needsHelp {
			t.Errorf("Assess(%q) = %+v, want concern=%s urgency=%s needsHelp=%v",
				c.message, got, c.concern, c.urgency, c.needsHelp)
		}
	}
}

func TestSentiment(t *testing.T) {
	svc := testChatService()
	cases := []struct {
		text      string
		score     float64
		magnitude float64
	}{
		{"I am so sad and worried", -0.5, 0.7},
		{"feeling happy and excited", 0.5, 0.7},
		{"the weather is okay", 0, 0.5},
		{"happy but also stressed and worried", -0.5, 0.7},
	}
	for _, c := range cases {
		got := svc.Sentiment(c.text)
		if got.Score != c.score || got.Magnitude != c.magnitude {
			t.Errorf("Sentiment(%q) = %+v, want {%v %v}", c.text, got, c.score, c.magnitude)
		}
	}
}

func TestRespond(t *testing.T) {
	svc := testChatService()

	t.Run("crisis always gets helplines", func(t *testing.T) {
		message := "I want to end it all"
		reply := svc.Respond(message, svc.Assess(message))
		if reply.Response != svc.Responses.CrisisResponse {
			t.Error("crisis message did not get the crisis response")
		}
		if !reply.FollowUpNeeded {
			t.Error("crisis reply must flag follow-up")
		}
		if !strings.Contains(reply.AdditionalInfo, "24/7") {
			t.Errorf("helpline info missing: %q", reply.AdditionalInfo)
		}
		for _, h := range svc.Catalog.Helplines {
			if !strings.Contains(reply.AdditionalInfo, h.Number) {
				t.Errorf("helpline %s missing from %q", h.Name, reply.AdditionalInfo)
			}
		}
	})

	t.Run("greeting picks from the detected language pool", func(t *testing.T) {
		message := "hello yaar"
		assessment := svc.Assess(message)
		if assessment.Language != "hinglish" {
			t.Fatalf("language = %s, want hinglish", assessment.Language)
		}
		reply := svc.Respond(message, assessment)
		found := false
		for _, g := range svc.Responses.GreetingsFor("hinglish") {
			if reply.Response == g {
				found = true
			}
		}
		if !found {
			t.Errorf("reply %q not in hinglish greeting pool", reply.Response)
		}
	})

	t.Run("everything else gets the supportive fallback", func(t *testing.T) {
		message := "my life feels complicated"
		reply := svc.Respond(message, svc.Assess(message))
		if reply.Response != svc.Responses.SupportiveFallback {
			t.Errorf("got %q, want supportive fallback", reply.Response)
		}
		if reply.FollowUpNeeded {
			t.Error("non-crisis reply flagged follow-up")
		}
	})
}

func TestDeriveUserID(t *testing.T) {
	a := deriveUserID("hello there")
	b := deriveUserID("hello there")
	c := deriveUserID("different message")
	if a != b {
		t.Errorf("same message produced %s and %s", a, b)
	}
	if a == c {
		t.Error("different messages collided")
	}
	if !strings.HasPrefix(a, "user_") || len(a) != len("user_")+8 {
		t.Errorf("malformed derived id %s", a)
	}
}

func TestFallbackResult(t *testing.T) {
	r := FallbackResult()
	if r.Response == "" || r.FriendName != "Alex" {
		t.Errorf("fallback = %+v", r)
	}
}
