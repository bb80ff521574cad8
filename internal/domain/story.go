package domain

import "time"

type Story struct {
	ID        int64     `json:"story_id"`
	AccountID int64     `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type StoryInput struct {
	Title string `json:"title" validate:"required,max=255"`
}

type Incident struct {
	ID      int64     `json:"incident_id"`
	StoryID int64     `json:"story_id"`
	What    string    `json:"what"`
	Where   string    `json:"where"`
	When    time.Time `json:"when"`
}

type IncidentInput struct {
	What  string    `json:"what" validate:"required"`
	Where string    `json:"where" validate:"required,max=255"`
	When  time.Time `json:"when" validate:"required"`
}

// SensoryDetail records what a scene looked, sounded, smelled, tasted and felt like.
type SensoryDetail struct {
	ID      int64  `json:"sensory_detail_id"`
	StoryID int64  `json:"story_id"`
	Sight   string `json:"sight"`
	Hearing string `json:"hearing"`
	Smell   string `json:"smell"`
	Taste   string `json:"taste"`
	Touch   string `json:"touch"`
	Emotion string `json:"emotion"`
}

type SensoryDetailInput struct {
	Sight   string `json:"sight" validate:"required"`
	Hearing string `json:"hearing" validate:"required"`
	Smell   string `json:"smell" validate:"required"`
	Taste   string `json:"taste" validate:"required"`
	Touch   string `json:"touch" validate:"required"`
	Emotion string `json:"emotion" validate:"required"`
}

type Point struct {
	ID      int64  `json:"point_id"`
	StoryID int64  `json:"story_id"`
	Content string `json:"content"`
}

type Script struct {
	ID      int64  `json:"script_id"`
	StoryID int64  `json:"story_id"`
	Content string `json:"content"`
}

// ContentInput is the body of points and scripts.
type ContentInput struct {
	Content string `json:"content" validate:"required"`
}

type Media struct {
	ID       int64  `json:"media_id"`
	StoryID  int64  `json:"story_id"`
	Type     string `json:"type"`
	MediaURL string `json:"media_url"`
}

type MediaInput struct {
	Type     string `json:"type" validate:"required,max=255"`
	MediaURL string `json:"media_url" validate:"required,max=50,slug"`
}
