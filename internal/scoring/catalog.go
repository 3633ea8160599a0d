package scoring

// The built-in playground tests. Definitions are package-level values loaded
// once and shared read-only; catalog_test.go validates every entry.

var moneyPersonality = Questionnaire{
	ID:    "money-personality",
	Title: "What's Your Money Personality?",
	Intro: "Twelve quick questions about how you earn, spend, and save.",
	Kind:  KindNumeric,
	Questions: []Question{
		{
			ID:     "mp-1",
			Prompt: "Payday just hit. What's your first move?",
			Options: []Choice{
				{Text: "Transfer a fixed amount to savings before anything else", Value: 5},
				{Text: "Pay bills, then see what's left", Value: 3},
				{Text: "Treat myself first, budget later", Value: 1},
				{Text: "Payday money is spending money", Value: 0},
			},
		},
		{
			ID:     "mp-2",
			Prompt: "Do you know roughly how much you spent last month?",
			Options: []Choice{
				{Text: "To the dollar — I track everything", Value: 5},
				{Text: "Within a hundred or so", Value: 3},
				{Text: "I could guess within a few hundred", Value: 2},
				{Text: "No idea, and I'd rather not know", Value: 0},
			},
		},
		{
			ID:     "mp-3",
			Prompt: "A friend invites you on a last-minute weekend trip. You...",
			Options: []Choice{
				{Text: "Check my travel fund — if it covers it, I'm in", Value: 5},
				{Text: "Go, but set a spending cap for the weekend", Value: 4},
				{Text: "Go and worry about the cost afterwards", Value: 1},
				{Text: "Put the whole thing on a credit card I can't pay off", Value: 0},
			},
		},
		{
			ID:     "mp-4",
			Prompt: "How many months could you cover expenses if your income stopped today?",
			Options: []Choice{
				{Text: "Six or more", Value: 5},
				{Text: "Three to five", Value: 4},
				{Text: "One or two", Value: 2},
				{Text: "I'd be in trouble by next week", Value: 0},
			},
		},
		{
			ID:     "mp-5",
			Prompt: "Your phone breaks. A new one costs more than you have spare. What do you do?",
			Options: []Choice{
				{Text: "Use my emergency fund and top it back up", Value: 5},
				{Text: "Buy a cheap replacement until I've saved for the one I want", Value: 4},
				{Text: "Finance it and stretch the payments", Value: 2},
				{Text: "Buy the flagship anyway — future me can deal with it", Value: 0},
			},
		},
		{
			ID:     "mp-6",
			Prompt: "When a sale banner says 70% off, you think...",
			Options: []Choice{
				{Text: "Do I actually need this? If not, it's 100% off by not buying", Value: 5},
				{Text: "I'll check if something on my list is included", Value: 4},
				{Text: "Worth a browse, might find something", Value: 2},
				{Text: "Sales exist to be used. Cart: full", Value: 0},
			},
		},
		{
			ID:     "mp-7",
			Prompt: "Do you have a written (or spreadsheet) budget?",
			Options: []Choice{
				{Text: "Yes, and I review it monthly", Value: 5},
				{Text: "Yes, though I drift from it", Value: 3},
				{Text: "I tried once. It didn't stick", Value: 1},
				{Text: "Budgets are for accountants", Value: 0},
			},
		},
		{
			ID:     "mp-8",
			Prompt: "How do you feel about investing?",
			Options: []Choice{
				{Text: "Already investing regularly with a plan", Value: 5},
				{Text: "Started small, still learning", Value: 4},
				{Text: "Interested but haven't begun", Value: 2},
				{Text: "Sounds like gambling with extra steps", Value: 0},
			},
		},
		{
			ID:     "mp-9",
			Prompt: "Your jar of coins and crumpled notes at home is...",
			Options: []Choice{
				{Text: "Counted, rolled, and deposited regularly", Value: 5},
				{Text: "Emptied into savings when it fills up", Value: 3},
				{Text: "Raided whenever I'm short", Value: 1},
				{Text: "What jar? I licked it clean long ago", Value: -2},
			},
		},
		{
			ID:     "mp-10",
			Prompt: "A subscription you forgot about charges you. You...",
			Options: []Choice{
				{Text: "Cancel it the same day and audit the rest", Value: 5},
				{Text: "Cancel it when I next remember", Value: 3},
				{Text: "Shrug — it's only a few dollars", Value: 1},
				{Text: "Forget again next month", Value: 0},
			},
		},
		{
			ID:     "mp-11",
			Prompt: "How do you split costs with friends?",
			Options: []Choice{
				{Text: "Settle up immediately, to the cent", Value: 5},
				{Text: "Keep a rough tally and even out over time", Value: 4},
				{Text: "Whoever has money pays — it averages out, right?", Value: 2},
				{Text: "I'm usually the one who 'forgot my wallet'", Value: 0},
			},
		},
		{
			ID:     "mp-12",
			Prompt: "Where do you want to be financially in five years?",
			Options: []Choice{
				{Text: "Clear goals with amounts and dates attached", Value: 5},
				{Text: "A general direction: save more, owe less", Value: 3},
				{Text: "Better off than now, somehow", Value: 1},
				{Text: "Five years? I'm thinking about Friday", Value: 0},
			},
		},
	},
	Bands: []ResultBand{
		{
			Label:       "Impulse Spender",
			Description: "Money flows through your hands the moment it arrives. The good news: small habits move this score fast.",
			Traits:      []string{"spontaneous", "present-focused", "generous"},
			Tips: []string{
				"Automate even a tiny transfer to savings on payday.",
				"Use a 24-hour rule before any non-essential purchase.",
				"Track one week of spending — just look, no judging.",
			},
			Range: ScoreRange{Low: 0, High: 24},
		},
		{
			Label:       "Casual Juggler",
			Description: "You keep the balls in the air most months, but one surprise expense can knock the whole routine over.",
			Traits:      []string{"adaptable", "optimistic", "reactive"},
			Tips: []string{
				"Build a starter emergency fund of one month's essentials.",
				"List your subscriptions — cancel anything you haven't used in 60 days.",
				"Give every bill a calendar reminder two days early.",
			},
			Range: ScoreRange{Low: 25, High: 49},
		},
		{
			Label:       "Steady Saver",
			Description: "You have real habits and a cushion. The next step is making your money work while you sleep.",
			Traits:      []string{"consistent", "patient", "pragmatic"},
			Tips: []string{
				"Move savings beyond checking — even a basic interest account helps.",
				"Set one concrete goal with a number and a date.",
				"Learn the basics of low-cost index investing.",
			},
			Range: ScoreRange{Low: 50, High: 74},
		},
		{
			Label:       "Money Strategist",
			Description: "Budgeted, funded, and forward-looking. You treat money as a tool and it shows.",
			Traits:      []string{"disciplined", "goal-driven", "analytical"},
			Tips: []string{
				"Review your plan quarterly instead of monthly — you've earned the slack.",
				"Check you're not over-saving at the cost of living now.",
				"Consider diversifying beyond your first investment vehicle.",
			},
			Range: ScoreRange{Low: 75, High: 89},
		},
		{
			Label:       "Financial Guru",
			Description: "Friends come to you for money advice, and they should. Your systems run themselves.",
			Traits:      []string{"strategic", "self-assured", "methodical"},
			Tips: []string{
				"Teach someone else — explaining sharpens your own plan.",
				"Stress-test your plan against a real income shock.",
				"Make sure spreadsheets serve your life, not the reverse.",
			},
			Range: ScoreRange{Low: 90, High: 100},
		},
	},
}

var learningStyle = Questionnaire{
	ID:    "learning-style",
	Title: "How Do You Learn Best?",
	Intro: "Twelve situations. Pick the answer closest to what you'd actually do.",
	Kind:  KindCategorical,
	Questions: []Question{
		{
			ID:     "ls-1",
			Prompt: "You need to assemble flat-pack furniture. You...",
			Options: []Choice{
				{Text: "Study the diagram until it makes sense", Tag: "visual"},
				{Text: "Watch or listen to someone talk through it", Tag: "auditory"},
				{Text: "Start bolting pieces together and learn by doing", Tag: "kinesthetic"},
				{Text: "Rope in a friend and figure it out together", Tag: "social"},
			},
		},
		{
			ID:     "ls-2",
			Prompt: "Before an exam, your best revision session looks like...",
			Options: []Choice{
				{Text: "Colour-coded notes and mind maps", Tag: "visual"},
				{Text: "Reciting key points out loud", Tag: "auditory"},
				{Text: "Working through past papers by hand", Tag: "kinesthetic"},
				{Text: "A study group firing questions at each other", Tag: "social"},
				{Text: "Alone in a quiet room with the door shut", Tag: "solitary"},
			},
		},
		{
			ID:     "ls-3",
			Prompt: "Someone gives you directions to a new building. You remember them by...",
			Options: []Choice{
				{Text: "Picturing the route as a map", Tag: "visual"},
				{Text: "Repeating the street names under your breath", Tag: "auditory"},
				{Text: "Walking it once — then it's in your feet", Tag: "kinesthetic"},
				{Text: "Asking someone to walk with you the first time", Tag: "social"},
			},
		},
		{
			ID:     "ls-4",
			Prompt: "A new app at work confuses everyone. You'd master it by...",
			Options: []Choice{
				{Text: "Reading the illustrated quick-start guide", Tag: "visual"},
				{Text: "Joining the walkthrough call", Tag: "auditory"},
				{Text: "Clicking every button until it behaves", Tag: "kinesthetic"},
				{Text: "Pairing with the colleague who already gets it", Tag: "social"},
				{Text: "Blocking an hour alone to explore it end to end", Tag: "solitary"},
			},
		},
		{
			ID:     "ls-5",
			Prompt: "Which note-taking style is most 'you'?",
			Options: []Choice{
				{Text: "Sketches, arrows, and highlighters", Tag: "visual"},
				{Text: "I barely write — I remember what was said", Tag: "auditory"},
				{Text: "Short bullet points I rewrite later by hand", Tag: "kinesthetic"},
				{Text: "Shared docs my group edits together", Tag: "social"},
				{Text: "Private notes nobody else could decipher", Tag: "solitary"},
			},
		},
		{
			ID:     "ls-6",
			Prompt: "To learn a new language you'd rather...",
			Options: []Choice{
				{Text: "Use flashcards with pictures", Tag: "visual"},
				{Text: "Listen to podcasts and mimic the sounds", Tag: "auditory"},
				{Text: "Cook from recipes written in that language", Tag: "kinesthetic"},
				{Text: "Join a conversation exchange", Tag: "social"},
			},
		},
		{
			ID:     "ls-7",
			Prompt: "In a lecture, you drift off unless...",
			Options: []Choice{
				{Text: "There are slides worth looking at", Tag: "visual"},
				{Text: "The speaker is genuinely good to listen to", Tag: "auditory"},
				{Text: "There's something to do — demos, clickers, anything", Tag: "kinesthetic"},
				{Text: "There's discussion, not monologue", Tag: "social"},
			},
		},
		{
			ID:     "ls-8",
			Prompt: "Your ideal place to finish a hard assignment is...",
			Options: []Choice{
				{Text: "Anywhere with a whiteboard", Tag: "visual"},
				{Text: "Somewhere I can talk it through, even to myself", Tag: "auditory"},
				{Text: "A standing desk where I can pace", Tag: "kinesthetic"},
				{Text: "A busy library table with coursemates", Tag: "social"},
				{Text: "My room, headphones in, phone off", Tag: "solitary"},
			},
		},
		{
			ID:     "ls-9",
			Prompt: "You remember people best by...",
			Options: []Choice{
				{Text: "Their face — names are hopeless", Tag: "visual"},
				{Text: "Their voice or the conversation you had", Tag: "auditory"},
				{Text: "What you did together", Tag: "kinesthetic"},
				{Text: "The group you met them in", Tag: "social"},
			},
		},
		{
			ID:     "ls-10",
			Prompt: "A tricky concept finally clicks when...",
			Options: []Choice{
				{Text: "Someone draws it", Tag: "visual"},
				{Text: "Someone explains it a different way", Tag: "auditory"},
				{Text: "You build or simulate it yourself", Tag: "kinesthetic"},
				{Text: "You explain it to someone else", Tag: "social"},
				{Text: "You sit with it alone until it yields", Tag: "solitary"},
			},
		},
		{
			ID:     "ls-11",
			Prompt: "Given a free evening to learn anything, you'd pick...",
			Options: []Choice{
				{Text: "A documentary with great visuals", Tag: "visual"},
				{Text: "An audiobook or lecture series", Tag: "auditory"},
				{Text: "A hands-on workshop", Tag: "kinesthetic"},
				{Text: "A meetup or club night", Tag: "social"},
				{Text: "A book and absolute silence", Tag: "solitary"},
			},
		},
		{
			ID:     "ls-12",
			Prompt: "When you get something wrong, what helps most?",
			Options: []Choice{
				{Text: "Seeing the correct worked example", Tag: "visual"},
				{Text: "Hearing where my reasoning went off", Tag: "auditory"},
				{Text: "Redoing it immediately myself", Tag: "kinesthetic"},
				{Text: "Comparing answers with others", Tag: "social"},
				{Text: "Reviewing it privately in my own time", Tag: "solitary"},
			},
		},
	},
	Bands: []ResultBand{
		{
			Tag:         "visual",
			DisplayName: "Visual",
			Label:       "Visual Learner",
			Description: "You think in pictures. Information sticks when you can see its shape — diagrams, maps, colour, and layout.",
			Traits:      []string{"observant", "imaginative", "detail-oriented"},
			Tips: []string{
				"Convert notes into mind maps and flowcharts.",
				"Sit where you can see the board and the speaker.",
				"Use colour consistently: one meaning per colour.",
			},
		},
		{
			Tag:         "auditory",
			DisplayName: "Auditory",
			Label:       "Auditory Learner",
			Description: "You learn through sound and speech. A good explanation beats a good diagram every time.",
			Traits:      []string{"articulate", "attentive", "story-driven"},
			Tips: []string{
				"Record lectures and replay the hard parts.",
				"Read difficult passages aloud.",
				"Turn facts into rhymes or rhythms — it works.",
			},
		},
		{
			Tag:         "kinesthetic",
			DisplayName: "Kinesthetic",
			Label:       "Kinesthetic Learner",
			Description: "You learn by doing. Abstract ideas stay abstract until your hands have been involved.",
			Traits:      []string{"practical", "energetic", "experimental"},
			Tips: []string{
				"Take breaks to move — short and often beats long and still.",
				"Rewrite notes by hand rather than re-reading them.",
				"Seek out labs, workshops, and simulations.",
			},
		},
		{
			Tag:         "social",
			DisplayName: "Social",
			Label:       "Social Learner",
			Description: "Ideas come alive for you in conversation. Groups aren't a distraction — they're your method.",
			Traits:      []string{"collaborative", "empathetic", "communicative"},
			Tips: []string{
				"Form a regular study group with clear goals.",
				"Teach what you've learned — it's your fastest review.",
				"Use discussion forums for courses without seminars.",
			},
		},
		{
			Tag:         "solitary",
			DisplayName: "Solitary",
			Label:       "Solitary Learner",
			Description: "You do your deepest work alone. Reflection and self-paced study are your superpowers.",
			Traits:      []string{"independent", "reflective", "self-motivated"},
			Tips: []string{
				"Guard blocks of uninterrupted time in your calendar.",
				"Keep a learning journal to track your own progress.",
				"Schedule occasional check-ins so solo doesn't become stuck.",
			},
		},
	},
}

var stressCheck = Questionnaire{
	ID:    "stress-check",
	Title: "Campus Stress Check",
	Intro: "Ten honest questions about how the semester is treating you.",
	Kind:  KindNumeric,
	Questions: []Question{
		{
			ID:     "sc-1",
			Prompt: "How often do you wake up already tired?",
			Options: []Choice{
				{Text: "Rarely — mornings are fine", Value: 0},
				{Text: "A couple of times a week", Value: 2},
				{Text: "Most days", Value: 4},
				{Text: "Every day, without fail", Value: 5},
			},
		},
		{
			ID:     "sc-2",
			Prompt: "Deadlines this semester feel...",
			Options: []Choice{
				{Text: "Manageable with my current routine", Value: 0},
				{Text: "Tight but survivable", Value: 2},
				{Text: "Like a wall I keep running into", Value: 4},
				{Text: "I've stopped looking at the calendar", Value: 5},
			},
		},
		{
			ID:     "sc-3",
			Prompt: "When did you last do something purely for fun?",
			Options: []Choice{
				{Text: "This week", Value: 0},
				{Text: "Sometime this month", Value: 2},
				{Text: "I genuinely can't remember", Value: 5},
				{Text: "Yesterday — I protect that time fiercely", Value: -2},
			},
		},
		{
			ID:     "sc-4",
			Prompt: "Your appetite lately is...",
			Options: []Choice{
				{Text: "Normal", Value: 0},
				{Text: "Occasionally off", Value: 2},
				{Text: "Noticeably up or down", Value: 4},
				{Text: "Meals happen when I remember them", Value: 5},
			},
		},
		{
			ID:     "sc-5",
			Prompt: "Small problems (a late bus, a misplaced key) make you...",
			Options: []Choice{
				{Text: "Shrug — it's a late bus", Value: 0},
				{Text: "Grumble and move on", Value: 1},
				{Text: "Snap at whoever's nearby", Value: 4},
				{Text: "Feel like the day is ruined", Value: 5},
			},
		},
		{
			ID:     "sc-6",
			Prompt: "How is your concentration during study sessions?",
			Options: []Choice{
				{Text: "Solid — I can go deep when I need to", Value: 0},
				{Text: "I drift but can pull myself back", Value: 2},
				{Text: "Ten minutes is a triumph", Value: 4},
				{Text: "I re-read the same paragraph all evening", Value: 5},
			},
		},
		{
			ID:     "sc-7",
			Prompt: "When friends invite you out, you...",
			Options: []Choice{
				{Text: "Usually go and enjoy it", Value: 0},
				{Text: "Go, but feel guilty about unfinished work", Value: 2},
				{Text: "Decline — there's always too much to do", Value: 4},
				{Text: "They've stopped asking", Value: 5},
			},
		},
		{
			ID:     "sc-8",
			Prompt: "Physically, stress shows up for you as...",
			Options: []Choice{
				{Text: "Nothing in particular", Value: 0},
				{Text: "Occasional tension headaches", Value: 2},
				{Text: "Frequent headaches, jaw, or shoulder tension", Value: 4},
				{Text: "My body is basically one clenched muscle", Value: 5},
			},
		},
		{
			ID:     "sc-9",
			Prompt: "Do you talk to anyone about how you're doing?",
			Options: []Choice{
				{Text: "Yes, regularly — friends, family, or a counsellor", Value: -2},
				{Text: "Sometimes, when it gets heavy", Value: 1},
				{Text: "Rarely — I don't want to burden people", Value: 4},
				{Text: "Never. It's nobody's business", Value: 5},
			},
		},
		{
			ID:     "sc-10",
			Prompt: "Thinking about the rest of the semester, you feel...",
			Options: []Choice{
				{Text: "Cautiously optimistic", Value: 0},
				{Text: "Nervous but coping", Value: 2},
				{Text: "Dread, mostly", Value: 4},
				{Text: "I avoid thinking about it entirely", Value: 5},
			},
		},
	},
	Bands: []ResultBand{
		{
			Label:       "Smooth Sailing",
			Description: "Your stress levels look healthy. Whatever you're doing — routines, boundaries, sleep — it's working.",
			Traits:      []string{"balanced", "resilient"},
			Tips: []string{
				"Keep the habits that got you here, especially through exam weeks.",
				"Check in on friends — you likely have capacity to spare.",
			},
			Range: ScoreRange{Low: 0, High: 29},
		},
		{
			Label:       "Weathering It",
			Description: "Normal semester turbulence. You're coping, but a rough fortnight could tip the balance.",
			Traits:      []string{"coping", "stretched"},
			Tips: []string{
				"Schedule downtime like it's a class — non-negotiable.",
				"Watch your sleep first; everything else follows it.",
				"Break big deadlines into visible, small steps.",
			},
			Range: ScoreRange{Low: 30, High: 59},
		},
		{
			Label:       "Running Hot",
			Description: "Stress is clearly affecting your sleep, focus, or mood. This is the point where small changes still work quickly.",
			Traits:      []string{"overloaded", "fatigued"},
			Tips: []string{
				"Cut one commitment this week. Just one. Notice the difference.",
				"Talk to someone — a friend counts, the counselling centre counts more.",
				"Move daily, even a 15-minute walk between classes.",
			},
			Range: ScoreRange{Low: 60, High: 84},
		},
		{
			Label:       "Red Zone",
			Description: "These answers describe someone carrying far too much alone. You deserve support, and it's available.",
			Traits:      []string{"exhausted", "isolated"},
			Tips: []string{
				"Contact student counselling this week — not after the next deadline.",
				"Tell one trusted person exactly how this semester has felt.",
				"Ask about extensions. Universities grant more of them than students think.",
			},
			Range: ScoreRange{Low: 85, High: 100},
		},
	},
}

// Catalog returns every built-in playground test, keyed by questionnaire id.
func Catalog() map[string]*Questionnaire {
	return map[string]*Questionnaire{
		moneyPersonality.ID: &moneyPersonality,
		learningStyle.ID:    &learningStyle,
		stressCheck.ID:      &stressCheck,
	}
}

// Lookup returns a catalog questionnaire by id.
func Lookup(id string) (*Questionnaire, bool) {
	q, ok := Catalog()[id]
	return q, ok
}
