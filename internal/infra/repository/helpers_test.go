package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/domain"
)

func seedAccount(t *testing.T, db *gorm.DB, name string) domain.Account {
	t.Helper()
	account, err := NewAccountRepository(db).Create(context.Background(), domain.Account{
		Email:        fmt.Sprintf("%s@example.com", name),
		FirstName:    name,
		LastName:     "Tester",
		DateOfBirth:  "1990-04-01",
		City:         "london",
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return account
}

func seedStory(t *testing.T, db *gorm.DB, accountID int64, title string) domain.Story {
	t.Helper()
	story, err := NewStoryRepository(db).Create(context.Background(), accountID, domain.StoryInput{Title: title})
	require.NoError(t, err)
	return story
}

func seedTask(t *testing.T, db *gorm.DB, accountID int64) domain.Task {
	t.Helper()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	task, err := NewTaskRepository(db).Create(context.Background(), accountID, domain.TaskInput{
		Title:       "write chapter",
		Description: "first draft",
		Priority: domain.Priority{
			ImportanceLevel:     "high",
			ImportanceMagnitude: 10,
			UrgencyLevel:        "low",
			UrgencyMagnitude:    2,
		},
		Deadline: start.Add(72 * time.Hour),
		Start:    start,
		End:      start.Add(24 * time.Hour),
		Status:   "to-do",
	})
	require.NoError(t, err)
	return task
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
