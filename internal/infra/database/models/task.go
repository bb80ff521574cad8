package models

import (
	"time"
)

// Priority columns are embedded into tasks, areas and projects.
type Priority struct {
	ImportanceLevel     string `json:"importanceLevel" gorm:"type:text;not null"`
	ImportanceMagnitude int    `json:"importanceMagnitude" gorm:"not null"`
	UrgencyLevel        string `json:"urgencyLevel" gorm:"type:text;not null"`
	UrgencyMagnitude    int    `json:"urgencyMagnitude" gorm:"not null"`
}

type Task struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID   int64     `json:"accountID" gorm:"not null;index"`
	Account     Account   `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE;"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Priority    Priority  `json:"priority" gorm:"embedded"`
	Deadline    time.Time `json:"deadline" gorm:"not null"`
	Start       time.Time `json:"start" gorm:"not null"`
	End         time.Time `json:"end" gorm:"not null"`
	Status      string    `json:"status" gorm:"type:text;not null"`
	CDate       time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (Task) TableName() string { return "tasks" }

type Area struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID   int64     `json:"accountID" gorm:"not null;index"`
	Account     Account   `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE;"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Priority    Priority  `json:"priority" gorm:"embedded"`
	Start       time.Time `json:"start" gorm:"type:date;not null"`
	End         time.Time `json:"end" gorm:"type:date;not null"`
	Status      string    `json:"status" gorm:"type:text;not null"`
}

func (Area) TableName() string { return "areas" }

type Project struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID   int64     `json:"accountID" gorm:"not null;index"`
	Account     Account   `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE;"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Priority    Priority  `json:"priority" gorm:"embedded"`
	Deadline    time.Time `json:"deadline" gorm:"type:date;not null"`
	Start       time.Time `json:"start" gorm:"type:date;not null"`
	End         time.Time `json:"end" gorm:"type:date;not null"`
	Status      string    `json:"status" gorm:"type:text;not null"`
}

func (Project) TableName() string { return "projects" }

type Milestone struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID   int64   `json:"accountID" gorm:"not null;index"`
	Account     Account `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE;"`
	Title       string  `json:"title" gorm:"type:text;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
}

func (Milestone) TableName() string { return "milestones" }

type Lifestage struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID   int64     `json:"accountID" gorm:"not null;index"`
	Account     Account   `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE;"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Start       time.Time `json:"start" gorm:"type:date;not null"`
	End         time.Time `json:"end" gorm:"type:date;not null"`
}

func (Lifestage) TableName() string { return "lifestages" }

type Resource struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID int64   `json:"accountID" gorm:"not null;index"`
	Account   Account `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE;"`
	Type      string  `json:"type" gorm:"type:text;not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
}

func (Resource) TableName() string { return "resources" }

type TaskMilestone struct {
	TaskID      int64     `json:"taskID" gorm:"primaryKey;autoIncrement:false"`
	Task        Task      `json:"-" gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE;"`
	MilestoneID int64     `json:"milestoneID" gorm:"primaryKey;autoIncrement:false;index"`
	Milestone   Milestone `json:"-" gorm:"foreignKey:MilestoneID;references:ID;constraint:OnDelete:CASCADE;"`
	CDate       time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (TaskMilestone) TableName() string { return "task_milestones" }

type TaskResource struct {
	TaskID     int64     `json:"taskID" gorm:"primaryKey;autoIncrement:false"`
	Task       Task      `json:"-" gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE;"`
	ResourceID int64     `json:"resourceID" gorm:"primaryKey;autoIncrement:false;index"`
	Resource   Resource  `json:"-" gorm:"foreignKey:ResourceID;references:ID;constraint:OnDelete:CASCADE;"`
	CDate      time.Time `json:"cdate" gorm:"autoCreateTime"`
}

func (TaskResource) TableName() string { return "task_resources" }
