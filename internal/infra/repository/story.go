package repository

import (
	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/infra/database/models"
)

type StoryRepository struct {
	*accountScoped[models.Story, domain.Story, domain.StoryInput]
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{&accountScoped[models.Story, domain.Story, domain.StoryInput]{
		db:       db,
		resource: "story",
		build: func(accountID int64, in domain.StoryInput) (models.Story, error) {
			return models.Story{AccountID: accountID, Title: in.Title}, nil
		},
		apply: func(row *models.Story, in domain.StoryInput) error {
			row.Title = in.Title
			return nil
		},
		toDomain: func(m models.Story) domain.Story {
			return domain.Story{
				ID:        m.ID,
				AccountID: m.AccountID,
				Title:     m.Title,
				CreatedAt: m.CDate,
			}
		},
	}}
}

type IncidentRepository struct {
	*storyScoped[models.Incident, domain.Incident, domain.IncidentInput]
}

func NewIncidentRepository(db *gorm.DB) *IncidentRepository {
	apply := func(row *models.Incident, in domain.IncidentInput) error {
		row.What = in.What
		row.Where = in.Where
		row.When = in.When
		return nil
	}
	return &IncidentRepository{&storyScoped[models.Incident, domain.Incident, domain.IncidentInput]{
		db:       db,
		resource: "incident",
		build: func(storyID int64, in domain.IncidentInput) (models.Incident, error) {
			row := models.Incident{StoryID: storyID}
			return row, apply(&row, in)
		},
		apply: apply,
		toDomain: func(m models.Incident) domain.Incident {
			return domain.Incident{
				ID:      m.ID,
				StoryID: m.StoryID,
				What:    m.What,
				Where:   m.Where,
				When:    m.When,
			}
		},
	}}
}

type SensoryDetailRepository struct {
	*storyScoped[models.SensoryDetail, domain.SensoryDetail, domain.SensoryDetailInput]
}

func NewSensoryDetailRepository(db *gorm.DB) *SensoryDetailRepository {
	apply := func(row *models.SensoryDetail, in domain.SensoryDetailInput) error {
		row.Sight = in.Sight
		row.Hearing = in.Hearing
		row.Smell = in.Smell
		row.Taste = in.Taste
		row.Touch = in.Touch
		row.Emotion = in.Emotion
		return nil
	}
	return &SensoryDetailRepository{&storyScoped[models.SensoryDetail, domain.SensoryDetail, domain.SensoryDetailInput]{
		db:       db,
		resource: "sensory detail",
		build: func(storyID int64, in domain.SensoryDetailInput) (models.SensoryDetail, error) {
			row := models.SensoryDetail{StoryID: storyID}
			return row, apply(&row, in)
		},
		apply: apply,
		toDomain: func(m models.SensoryDetail) domain.SensoryDetail {
			return domain.SensoryDetail{
				ID:      m.ID,
				StoryID: m.StoryID,
				Sight:   m.Sight,
				Hearing: m.Hearing,
				Smell:   m.Smell,
				Taste:   m.Taste,
				Touch:   m.Touch,
				Emotion: m.Emotion,
			}
		},
	}}
}

type PointRepository struct {
	*storyScoped[models.Point, domain.Point, domain.ContentInput]
}

func NewPointRepository(db *gorm.DB) *PointRepository {
	return &PointRepository{&storyScoped[models.Point, domain.Point, domain.ContentInput]{
		db:       db,
		resource: "point",
		build: func(storyID int64, in domain.ContentInput) (models.Point, error) {
			return models.Point{StoryID: storyID, Content: in.Content}, nil
		},
		apply: func(row *models.Point, in domain.ContentInput) error {
			row.Content = in.Content
			return nil
		},
		toDomain: func(m models.Point) domain.Point {
			return domain.Point{ID: m.ID, StoryID: m.StoryID, Content: m.Content}
		},
	}}
}

type ScriptRepository struct {
	*storyScoped[models.Script, domain.Script, domain.ContentInput]
}

func NewScriptRepository(db *gorm.DB) *ScriptRepository {
	return &ScriptRepository{&storyScoped[models.Script, domain.Script, domain.ContentInput]{
		db:       db,
		resource: "script",
		build: func(storyID int64, in domain.ContentInput) (models.Script, error) {
			return models.Script{StoryID: storyID, Content: in.Content}, nil
		},
		apply: func(row *models.Script, in domain.ContentInput) error {
			row.Content = in.Content
			return nil
		},
		toDomain: func(m models.Script) domain.Script {
			return domain.Script{ID: m.ID, StoryID: m.StoryID, Content: m.Content}
		},
	}}
}

type MediaRepository struct {
	*storyScoped[models.Media, domain.Media, domain.MediaInput]
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	apply := func(row *models.Media, in domain.MediaInput) error {
		row.Type = in.Type
		row.MediaURL = in.MediaURL
		return nil
	}
	return &MediaRepository{&storyScoped[models.Media, domain.Media, domain.MediaInput]{
		db:       db,
		resource: "media",
		build: func(storyID int64, in domain.MediaInput) (models.Media, error) {
			row := models.Media{StoryID: storyID}
			return row, apply(&row, in)
		},
		apply: apply,
		toDomain: func(m models.Media) domain.Media {
			return domain.Media{
				ID:       m.ID,
				StoryID:  m.StoryID,
				Type:     m.Type,
				MediaURL: m.MediaURL,
			}
		},
	}}
}
