package models

import "time"

// AppState is the complete application snapshot: every user-facing
// collection plus settings, serialized as one JSON blob. The sync layer
// treats it as opaque — each remote write is a full-state overwrite, never
// a delta.
type AppState struct {
	Notes      []Note           `json:"notes"`
	Tasks      []Task           `json:"tasks"`
	Habits     []Habit          `json:"habits"`
	Journal    []JournalEntry   `json:"journal"`
	Flashcards []Flashcard      `json:"flashcards"`
	Sketches   []SketchItem     `json:"sketches"`
	Analyses   []MentorAnalysis `json:"analyses"`
	Settings   Settings         `json:"settings"`
}

// IsEmpty reports whether the snapshot contains no primary user content.
// Only notes, tasks, flashcards and journal entries count: these are the
// collections whose loss would be catastrophic. Sketches, analyses and
// settings are deliberately excluded so that a fresh-but-configured state
// still reads as empty.
func (s AppState) IsEmpty() bool {
	return len(s.Notes) == 0 &&
		len(s.Tasks) == 0 &&
		len(s.Flashcards) == 0 &&
		len(s.Journal) == 0
}

// Note is a single inbox note.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task is a kanban board card.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	Column    string    `json:"column"` // "todo", "doing", "done"
	Order     int       `json:"order"`
	DueDate   time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Habit is a tracked habit with its completion log.
type Habit struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Streak   int      `json:"streak"`
	DoneDays []string `json:"done_days"` // "2026-08-29" day stamps
}

// JournalEntry is a dated journal record.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // "2026-08-29"
	Body      string    `json:"body"`
	Mood      int       `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Flashcard is a spaced-repetition card.
type Flashcard struct {
	ID           string    `json:"id"`
	Deck         string    `json:"deck"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	IntervalDays int       `json:"interval_days"`
	NextReview   time.Time `json:"next_review,omitempty"`
}

// SketchItem is one element on the freeform sketchpad.
type SketchItem struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"` // "stroke", "text", "shape"
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Data   string  `json:"data,omitempty"`
	Color  string  `json:"color,omitempty"`
	ZIndex int     `json:"z_index"`
}

// MentorAnalysis is a stored AI-mentor reflection record.
type MentorAnalysis struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings holds per-user application configuration carried inside the
// synced snapshot.
type Settings struct {
	Theme          string `json:"theme,omitempty"`
	WeekStartsOn   string `json:"week_starts_on,omitempty"`
	MentorPersona  string `json:"mentor_persona,omitempty"`
	DailyCardGoal  int    `json:"daily_card_goal,omitempty"`
	ShowStreakBar  bool   `json:"show_streak_bar,omitempty"`
	JournalPrompts bool   `json:"journal_prompts,omitempty"`
}
