package services

import "luminous/internal/models/response_models"

var fallbackQuotes = []response_models.Quote{
	{
		Content: "Mindfulness is about being fully awake in our lives. It is about perceiving the exquisite vividness of each moment.",
		Author:  "Jon Kabat-Zinn",
	},
	{
		Content: "The present moment is the only time over which we have dominion.",
		Author:  "Thích Nhất Hạnh",
	},
	{
		Content: "Wherever you are, be there totally. If you find your here and now intolerable and it makes you unhappy, you have three options: remove yourself from the situation, change it, or accept it totally.",
		Author:  "Eckhart Tolle",
	},
}

var sessionCatalog = []response_models.MeditationSession{
	{
		Title:       "Morning Mindfulness",
		Duration:    10,
		Description: "Start your day with intention and awareness",
		Category:    response_models.SessionMindfulness,
	},
	{
		Title:       "Breathing Space",
		Duration:    5,
		Description: "Quick breathing exercise for stress relief",
		Category:    response_models.SessionBreathing,
	},
	{
		Title:       "Evening Wind Down",
		Duration:    15,
		Description: "Gentle meditation to prepare for restful sleep",
		Category:    response_models.SessionSleep,
	},
	{
		Title:       "Focus Boost",
		Duration:    8,
		Description: "Enhance concentration and mental clarity",
		Category:    response_models.SessionFocus,
	},
}

var breathingCatalog = []response_models.BreathingExercise{
	{
		Name:     "4-7-8 Breathing",
		Duration: 4,
		Instructions: []string{
			"Exhale completely through your mouth",
			"Close your mouth and inhale through your nose for 4 counts",
			"Hold your breath for 7 counts",
			"Exhale through your mouth for 8 counts",
			"Repeat the cycle 3-4 times",
		},
	},
	{
		Name:     "Box Breathing",
		Duration: 5,
		Instructions: []string{
			"Sit comfortably with your back straight",
			"Inhale slowly for 4 counts",
			"Hold your breath for 4 counts",
			"Exhale slowly for 4 counts",
			"Hold empty for 4 counts",
			"Repeat for 5-10 cycles",
		},
	},
	{
		Name:     "Belly Breathing",
		Duration: 6,
		Instructions: []string{
			"Place one hand on your chest, one on your belly",
			"Breathe slowly through your nose",
			"Feel your belly rise more than your chest",
			"Exhale slowly through pursed lips",
			"Focus on the rhythm and sensation",
			"Continue for 5-10 minutes",
		},
	},
}

const defaultMood = "Take a moment to connect with the present moment"

var weatherMoods = map[string]string{
	"sunny":  "Perfect day for outdoor walking meditation",
	"rainy":  "Ideal weather for cozy indoor mindfulness practice",
	"cloudy": "Great time for reflection and gratitude exercises",
	"snowy":  "Beautiful day for winter mindfulness and warm tea meditation",
	"stormy": "Practice grounding techniques and calming breathwork",
}
