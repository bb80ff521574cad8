package models

import (
	"time"
)

type Story struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID int64     `json:"accountID" gorm:"not null;index"`
	Account   Account   `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE;"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	CDate     time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (Story) TableName() string { return "stories" }

type Incident struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	StoryID int64     `json:"storyID" gorm:"not null;index"`
	Story   Story     `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	What    string    `json:"what" gorm:"type:text;not null"`
	Where   string    `json:"where" gorm:"type:text;not null"`
	When    time.Time `json:"when" gorm:"not null"`
}

func (Incident) TableName() string { return "incidents" }

type SensoryDetail struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	StoryID int64  `json:"storyID" gorm:"not null;index"`
	Story   Story  `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	Sight   string `json:"sight" gorm:"type:text;not null"`
	Hearing string `json:"hearing" gorm:"type:text;not null"`
	Smell   string `json:"smell" gorm:"type:text;not null"`
	Taste   string `json:"taste" gorm:"type:text;not null"`
	Touch   string `json:"touch" gorm:"type:text;not null"`
	Emotion string `json:"emotion" gorm:"type:text;not null"`
}

func (SensoryDetail) TableName() string { return "sensory_details" }

type Point struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	StoryID int64  `json:"storyID" gorm:"not null;index"`
	Story   Story  `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	Content string `json:"content" gorm:"type:text;not null"`
}

func (Point) TableName() string { return "points" }

type Script struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	StoryID int64  `json:"storyID" gorm:"not null;index"`
	Story   Story  `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	Content string `json:"content" gorm:"type:text;not null"`
}

func (Script) TableName() string { return "scripts" }

type Media struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	StoryID  int64  `json:"storyID" gorm:"not null;index"`
	Story    Story  `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	Type     string `json:"type" gorm:"type:text;not null"`
	MediaURL string `json:"mediaURL" gorm:"type:text;not null"`
}

func (Media) TableName() string { return "media" }
