package domain

// Question models an MCQ question with one correct option and a hint shown on demand.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Hint         string   `json:"hint"`
}

// Subject is an ordered set of questions identified by a stable key (e.g. "math").
type Subject struct {
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// AnswerRecord is the immutable log entry for one answered question within a run.
type AnswerRecord struct {
	QuestionText string `json:"questionText"`
	ChosenIndex  int    `json:"chosenIndex"`
	CorrectIndex int    `json:"correctIndex"`
	WasCorrect   bool   `json:"wasCorrect"`
}

// LastScoreEntry is the persisted summary of the most recent completed run for a subject.
type LastScoreEntry struct {
	Trophies   int `json:"trophies"`
	Percentage int `json:"percentage"`
	Correct    int `json:"correct"`
	Total      int `json:"total"`
}

// Phase is the lifecycle state of a quiz run.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
)

// QuestionView is the client-facing slice of a question. The correct index is
// only revealed through AnswerFeedback after the question has been answered.
type QuestionView struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// AnswerFeedback is returned immediately after an answer is scored.
type AnswerFeedback struct {
	Correct      bool `json:"correct"`
	Delta        int  `json:"delta"`
	TrophyPoints int  `json:"trophyPoints"`
	CorrectIndex int  `json:"correctIndex"`
}

// RunResult is the terminal summary of a finished run.
type RunResult struct {
	SubjectKey   string         `json:"subjectKey"`
	Correct      int            `json:"correct"`
	Total        int            `json:"total"`
	TrophyPoints int            `json:"trophyPoints"`
	Percentage   int            `json:"percentage"`
	Stars        int            `json:"stars"`
	Message      string         `json:"message"`
	History      []AnswerRecord `json:"history"`
}

// Snapshot carries enough state to render the quiz after any mutation.
// Event names the mutation that produced it ("question", "tick", "finished").
type Snapshot struct {
	Event            string        `json:"event"`
	Phase            Phase         `json:"phase"`
	SubjectKey       string        `json:"subjectKey,omitempty"`
	SubjectName      string        `json:"subjectName,omitempty"`
	QuestionIndex    int           `json:"questionIndex"`
	TotalQuestions   int           `json:"totalQuestions"`
	Question         *QuestionView `json:"question,omitempty"`
	RemainingSeconds int           `json:"remainingSeconds"`
	TimeDisplay      string        `json:"timeDisplay"`
	TrophyPoints     int           `json:"trophyPoints"`
	LastDelta        int           `json:"lastDelta"`
	CorrectCount     int           `json:"correctCount"`
	Result           *RunResult    `json:"result,omitempty"`
}

// SubjectSummary is a menu entry: subject metadata plus the last persisted score.
type SubjectSummary struct {
	Key           string          `json:"key"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	QuestionCount int             `json:"questionCount"`
	LastScore     *LastScoreEntry `json:"lastScore,omitempty"`
	Stars         int             `json:"stars"`
}

// UserProfile caches the current user's display fields, either from local
// registration or an external identity provider. It has no effect on scoring.
type UserProfile struct {
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Provider  string `json:"provider,omitempty"`
}

// AccessibilitySettings is the persisted accessibility preferences blob.
type AccessibilitySettings struct {
	TextScale    float64 `json:"textScale"`
	ZoomLevel    float64 `json:"zoomLevel"`
	DarkMode     bool    `json:"darkMode"`
	SoundEnabled bool    `json:"soundEnabled"`
}

// DefaultAccessibilitySettings returns the settings used before the user saves any.
func DefaultAccessibilitySettings() AccessibilitySettings {
	return AccessibilitySettings{TextScale: 1.0, ZoomLevel: 1.0, SoundEnabled: true}
}
