package models

import (
	"time"
)

type Account struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex"`
	FirstName    string    `json:"firstName" gorm:"type:text;not null"`
	LastName     string    `json:"lastName" gorm:"type:text;not null"`
	DateOfBirth  time.Time `json:"dateOfBirth" gorm:"type:date;not null"`
	City         string    `json:"city" gorm:"type:text;not null"`
	Gender       *string   `json:"gender" gorm:"type:text"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	IsActive     bool      `json:"isActive" gorm:"not null;default:true"`
	IsStaff      bool      `json:"isStaff" gorm:"not null;default:false"`
	CDate        time.Time `json:"cdate" gorm:"autoCreateTime"`
	MDate        time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

func (Account) TableName() string { return "accounts" }
