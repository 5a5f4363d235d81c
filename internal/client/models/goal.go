package models

// Goal is a personal goal tracked by the backend. The client mostly cares
// about Progress.
type Goal struct {
	ID          int64  `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Progress    int    `json:"progress"`
	TargetDate  Date   `json:"targetDate,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   Date   `json:"createdAt,omitempty"`
}

// GoalDraft is the create/update payload for a goal.
type GoalDraft struct {
	UserID      string `json:"userId" validate:"required"`
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Progress    int    `json:"progress" validate:"min=0,max=100"`
	TargetDate  string `json:"targetDate,omitempty" validate:"omitempty,isodate"`
	Completed   bool   `json:"completed"`
}

func (d GoalDraft) Validate() error {
	return Validate(d)
}

// Draft returns the editable fields of g.
func (g Goal) Draft() GoalDraft {
	return GoalDraft{
		UserID:      g.UserID,
		Title:       g.Title,
		Description: g.Description,
		Progress:    g.Progress,
		TargetDate:  g.TargetDate.DateOnly(),
		Completed:   g.Completed,
	}
}

// CompletedGoals counts goals whose progress has reached 100.
func CompletedGoals(goals []Goal) int {
	n := 0
	for _, g := range goals {
		if g.Progress == 100 {
			n++
		}
	}
	return n
}
