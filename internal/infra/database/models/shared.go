package models

import (
	"time"
)

// Shared rows are deduplicated on NaturalKey, a digest of their descriptive columns.

type Person struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	NaturalKey string `json:"-" gorm:"type:text;not null;uniqueIndex"`
	FirstName  string `json:"firstName" gorm:"type:text;not null"`
	Type       string `json:"type" gorm:"type:text;not null"`
}

func (Person) TableName() string { return "people" }

type Link struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	NaturalKey  string `json:"-" gorm:"type:text;not null;uniqueIndex"`
	Title       string `json:"title" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Colour      string `json:"colour" gorm:"type:text;not null"`
}

func (Link) TableName() string { return "links" }

type Character struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	NaturalKey   string `json:"-" gorm:"type:text;not null;uniqueIndex"`
	BodyLanguage string `json:"bodyLanguage" gorm:"type:text;not null"`
	Dialog       string `json:"dialog" gorm:"type:text;not null"`
}

func (Character) TableName() string { return "characters" }

type StoryPerson struct {
	StoryID  int64     `json:"storyID" gorm:"primaryKey;autoIncrement:false"`
	Story    Story     `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	PersonID int64     `json:"personID" gorm:"primaryKey;autoIncrement:false;index"`
	Person   Person    `json:"-" gorm:"foreignKey:PersonID;references:ID;constraint:OnDelete:RESTRICT;"`
	CDate    time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (StoryPerson) TableName() string { return "story_people" }

type IncidentPerson struct {
	IncidentID int64     `json:"incidentID" gorm:"primaryKey;autoIncrement:false"`
	Incident   Incident  `json:"-" gorm:"foreignKey:IncidentID;references:ID;constraint:OnDelete:CASCADE;"`
	PersonID   int64     `json:"personID" gorm:"primaryKey;autoIncrement:false;index"`
	Person     Person    `json:"-" gorm:"foreignKey:PersonID;references:ID;constraint:OnDelete:RESTRICT;"`
	CDate      time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (IncidentPerson) TableName() string { return "incident_people" }

type StoryLink struct {
	StoryID int64     `json:"storyID" gorm:"primaryKey;autoIncrement:false"`
	Story   Story     `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	LinkID  int64     `json:"linkID" gorm:"primaryKey;autoIncrement:false;index"`
	Link    Link      `json:"-" gorm:"foreignKey:LinkID;references:ID;constraint:OnDelete:RESTRICT;"`
	CDate   time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (StoryLink) TableName() string { return "story_links" }

type StoryCharacter struct {
	StoryID     int64     `json:"storyID" gorm:"primaryKey;autoIncrement:false"`
	Story       Story     `json:"-" gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE;"`
	CharacterID int64     `json:"characterID" gorm:"primaryKey;autoIncrement:false;index"`
	Character   Character `json:"-" gorm:"foreignKey:CharacterID;references:ID;constraint:OnDelete:RESTRICT;"`
	CDate       time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (StoryCharacter) TableName() string { return "story_characters" }
