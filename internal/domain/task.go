package domain

import "time"

// Priority is the importance/urgency block shared by tasks, areas and projects.
type Priority struct {
	ImportanceLevel     string `json:"importance_level" validate:"required,oneof=high intermediate low"`
	ImportanceMagnitude int    `json:"importance_magnitude" validate:"min=0,max=15"`
	UrgencyLevel        string `json:"urgency_level" validate:"required,oneof=high intermediate low"`
	UrgencyMagnitude    int    `json:"urgency_magnitude" validate:"min=0,max=15"`
}

type Task struct {
	ID          int64     `json:"task_id"`
	AccountID   int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority
	Deadline time.Time `json:"deadline"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}

type TaskInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Priority
	Deadline time.Time `json:"deadline" validate:"required"`
	Start    time.Time `json:"start" validate:"required"`
	End      time.Time `json:"end" validate:"required"`
	Status   string    `json:"status" validate:"required,oneof=to-do doing done"`
}

func (in TaskInput) CheckFields() map[string]string {
	if in.End.Before(in.Start) {
		return map[string]string{"end": "must not be before start"}
	}
	return nil
}

type Area struct {
	ID          int64  `json:"area_id"`
	AccountID   int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

type AreaInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=2000"`
	Priority
	Start  string `json:"start" validate:"required,datetime=2006-01-02"`
	End    string `json:"end" validate:"required,datetime=2006-01-02"`
	Status string `json:"status" validate:"required,oneof=to-do doing done"`
}

func (in AreaInput) CheckFields() map[string]string {
	return checkDateRange(in.Start, in.End)
}

type Project struct {
	ID          int64  `json:"project_id"`
	AccountID   int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority
	Deadline string `json:"deadline"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
}

type ProjectInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Priority
	Deadline string `json:"deadline" validate:"required,datetime=2006-01-02"`
	Start    string `json:"start" validate:"required,datetime=2006-01-02"`
	End      string `json:"end" validate:"required,datetime=2006-01-02"`
	Status   string `json:"status" validate:"required,oneof=to-do doing done"`
}

func (in ProjectInput) CheckFields() map[string]string {
	return checkDateRange(in.Start, in.End)
}

type Milestone struct {
	ID          int64  `json:"milestone_id"`
	AccountID   int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type MilestoneInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

type Lifestage struct {
	ID           int64  `json:"lifestage_id"`
	AccountID    int64  `json:"user_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Start        string `json:"start"`
	End          string `json:"end"`
	DurationDays int    `json:"duration_days"`
}

type LifestageInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Start       string `json:"start" validate:"required,datetime=2006-01-02"`
	End         string `json:"end" validate:"required,datetime=2006-01-02"`
}

func (in LifestageInput) CheckFields() map[string]string {
	return checkDateRange(in.Start, in.End)
}

type Resource struct {
	ID        int64  `json:"resource_id"`
	AccountID int64  `json:"user_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
}

type ResourceInput struct {
	Type     string `json:"type" validate:"required,resource_type"`
	Quantity int    `json:"quantity" validate:"min=0,max=100"`
}

// MilestoneRef and ResourceRef attach an existing row to a task.
type MilestoneRef struct {
	MilestoneID int64 `json:"milestone_id" validate:"required,gt=0"`
}

type ResourceRef struct {
	ResourceID int64 `json:"resource_id" validate:"required,gt=0"`
}

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

// ParseDate parses a date-only field. Inputs are validated before this runs.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func checkDateRange(start, end string) map[string]string {
	s, err := ParseDate(start)
	if err != nil {
		return nil
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil
	}
	if e.Before(s) {
		return map[string]string{"end": "must not be before start"}
	}
	return nil
}
