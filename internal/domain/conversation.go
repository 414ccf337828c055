package domain

import "time"

// Step identifies the current question of the report wizard
type Step string

const (
	StepChooseWeek     Step = "choose_week"
	StepAskRestingHR   Step = "ask_rhr"
	StepAskSleep       Step = "ask_sleep"
	StepAskMood        Step = "ask_mood"
	StepAskBody        Step = "ask_body"
	StepAskFood        Step = "ask_food"
	StepAskPain        Step = "ask_pain"
	StepAskWeekComment Step = "ask_week_comment"
	StepAskPlanEdits   Step = "ask_plan_edits"
	StepAskWishes      Step = "ask_wishes"
	StepAskQuestions   Step = "ask_questions"

	// StepDone is never persisted; reaching it deletes the conversation
	StepDone Step = "done"
)

// Conversation is one user's in-progress report
type Conversation struct {
	UserID    int64
	Step      Step
	Answers   Answers
	UpdatedAt time.Time
}

// Series holds a per-day metric for one week, or an explicit opt-out
type Series struct {
	NotTracked bool      `json:"not_tracked,omitempty"`
	Values     []float64 `json:"values,omitempty"`
}

// Answers accumulates the wizard answers. Fields are filled one per step
// and never overwritten; zero values mean "not answered yet" for the
// optional free-text fields.
type Answers struct {
	Range       WeekRange `json:"range"`
	RestingHR   *Series   `json:"rhr,omitempty"`
	Sleep       *Series   `json:"sleep,omitempty"`
	Mood        float64   `json:"mood,omitempty"`
	Body        float64   `json:"body,omitempty"`
	Food        string    `json:"food,omitempty"`
	Pain        string    `json:"pain,omitempty"`
	WeekComment string    `json:"week_comment,omitempty"`
	PlanEdits   string    `json:"plan_edits,omitempty"`
	Wishes      string    `json:"wishes,omitempty"`
	Questions   string    `json:"questions,omitempty"`
}
