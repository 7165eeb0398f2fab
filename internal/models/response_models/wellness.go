package response_models

type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
	ID      string `json:"id,omitempty"`
}

const (
	SessionMindfulness = "mindfulness"
	SessionBreathing   = "breathing"
	SessionSleep       = "sleep"
	SessionFocus       = "focus"
)

type MeditationSession struct {
	Title       string `json:"title"`
	Duration    int    `json:"duration"` // minutes
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category"`
}

type BreathingExercise struct {
	Name         string   `json:"name"`
	Duration     int      `json:"duration"` // minutes
	Instructions []string `json:"instructions"`
}

type WellnessData struct {
	DailyQuote          Quote               `json:"dailyQuote"`
	RecommendedSessions []MeditationSession `json:"recommendedSessions"`
	BreathingExercise   BreathingExercise   `json:"breathingExercise"`
}

type MoodRecommendation struct {
	Weather        string `json:"weather"`
	Recommendation string `json:"recommendation"`
}
