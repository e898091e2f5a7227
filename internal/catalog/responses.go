package catalog

// LanguageMarkers maps a code-mixed language variant to the tokens that hint
// at it. Order matters: on tied scores the earlier variant wins.
type LanguageMarkers struct {
	Variant string
	Markers []string
}

// ResponseCatalog holds the canned friend-style reply pools and the word
// lists the chat assessment runs on.
type ResponseCatalog struct {
	Languages []LanguageMarkers

	Greetings map[string][]string // by language variant

	LevelUp             []string
	AchievementUnlocked []string
	ChallengeComplete   []string
	ScheduleCreated     []string
	ScheduleReminder    []string

	CrisisResponse string
	SupportiveFallback string

	CrisisWords     []string
	HighStressWords []string
	AcademicWords   []string
	GreetingWords   []string

	NegativeWords []string
	PositiveWords []string
}

const DefaultLanguage = "english_indian"

// DefaultResponses returns the stock response pools.
func DefaultResponses() *ResponseCatalog {
	return &ResponseCatalog{
		Languages: []LanguageMarkers{
			{Variant: "hinglish", Markers: []string{"yaar", "bhai", "kya", "hai", "main", "aur", "but", "like", "actually", "really"}},
			{Variant: "tanglish", Markers: []string{"da", "anna", "enna", "but", "actually", "like", "really", "super", "vera level"}},
			{Variant: "english_indian", Markers: []string{"actually", "like", "really", "but", "you know", "right"}},
		},
		Greetings: map[string][]string{
			"hinglish": {
				"Hey! I'm Alex, your friend here. 😊 How's it going? What's up?",
				"Yo! Alex here. Sup? How are you feeling today?",
				"Hey there! I'm Alex. What's happening? How's your day?",
				"Hi! Alex here, ready to chat. Kya chal raha hai? What's on your mind?",
			},
			"english_indian": {
				"Hey! I'm Alex, here to chat. 😊 How's it going? What's up?",
				"Yo! Alex here. How are you doing today? What's on your mind?",
				"Hey there! I'm Alex, your supportive friend. How's everything?",
				"Hi! Alex here, ready to listen. What's happening in your life?",
			},
		},
		LevelUp: []string{
			"🎉 LEVEL UP! You just reached Level %d! Your mental wellness journey is inspiring! Keep crushing it! 💪",
			"🚀 Amazing! Level %d achieved! You're becoming a true wellness warrior! So proud of you! ⭐",
			"🔥 Level %d unlocked! Your consistency and self-care are paying off! You're unstoppable! 🌟",
		},
		AchievementUnlocked: []string{
			"🏆 ACHIEVEMENT UNLOCKED: %s! +%d points! You're absolutely smashing your wellness goals! 🎊",
			"✨ Woohoo! New achievement: %s! That's %d points added to your awesomeness! 🎉",
			"💎 %s achievement earned! +%d points! Your dedication is incredible! Keep going! 🚀",
		},
		ChallengeComplete: []string{
			"🌟 Daily challenge crushed! +%d points! You're building amazing habits one day at a time! 💪",
			"🎯 Challenge completed! That's %d points! Your commitment to wellness is inspiring! 🔥",
			"⚡ Daily challenge done! +%d points! You're proving that small steps lead to big changes! 🌈",
		},
		ScheduleCreated: []string{
			"📅 Your personalized exam schedule is ready! I've optimized it based on your goals and energy patterns. You've got this! 💪",
			"🎯 Perfect! Your smart study schedule is all set up. I made sure to include breaks and stress-busters. Ready to ace those exams? 📚",
			"⚡ Schedule locked and loaded! I've balanced study time with wellness breaks. Your success is inevitable! 🚀",
		},
		ScheduleReminder: []string{
			"⏰ Study session reminder! Time for %s. Remember, consistent effort beats cramming every time! You've got this! 📖",
			"🔔 Hey! Your %s session is starting. Take a deep breath, focus, and remember - I'm here if you need motivation! 💙",
			"📚 Study time! %s is up next. You're doing amazing by sticking to your schedule. Proud of you! ⭐",
		},
		CrisisResponse:     "Hey, I can tell you're going through something really tough right now. 💙 I'm here with you. Are you safe? Let's talk about what's happening.",
		SupportiveFallback: "I can hear that you're dealing with something tough. 💙 That takes courage to share. What would help most right now?",
		CrisisWords:        []string{"kill myself", "want to die", "suicide", "end it all", "hurt myself"},
		HighStressWords:    []string{"can't cope", "overwhelmed", "breaking down", "too much"},
		AcademicWords:      []string{"exam", "study", "grades", "college", "pressure", "competition"},
		GreetingWords:      []string{"hi", "hello", "hey", "sup", "yo"},
		NegativeWords:      []string{"sad", "angry", "stressed", "worried", "depressed", "anxious"},
		PositiveWords:      []string{"happy", "good", "great", "awesome", "excited", "love"},
	}
}

// GreetingsFor returns the greeting pool for a language variant, falling back
// to the english_indian pool.
func (r *ResponseCatalog) GreetingsFor(variant string) []string {
	if pool, ok := r.Greetings[variant]; ok {
		return pool
	}
	return r.Greetings[DefaultLanguage]
}
