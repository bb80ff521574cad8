package repository

import (
	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/infra/database/models"
)

func storyOwner(tx *gorm.DB, accountID int64, ref domain.OwnerRef) (int64, error) {
	if err := ensureStory(tx, accountID, ref.ID); err != nil {
		return 0, err
	}
	return ref.ID, nil
}

// incidentOwner requires the incident to sit under the referenced story.
func incidentOwner(tx *gorm.DB, accountID int64, ref domain.OwnerRef) (int64, error) {
	if err := ensureStory(tx, accountID, ref.StoryID); err != nil {
		return 0, err
	}

	var count int64
	err := tx.Model(&models.Incident{}).
		Where("id = ? AND story_id = ?", ref.ID, ref.StoryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, domain.NotFoundError{Resource: "incident"}
	}
	return ref.ID, nil
}

func taskOwner(tx *gorm.DB, accountID int64, ref domain.OwnerRef) (int64, error) {
	var count int64
	err := tx.Model(&models.Task{}).
		Where("id = ? AND account_id = ?", ref.ID, accountID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, domain.NotFoundError{Resource: "task"}
	}
	return ref.ID, nil
}
