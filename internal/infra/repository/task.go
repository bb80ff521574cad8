package repository

import (
	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/infra/database/models"
)

func priorityModel(p domain.Priority) models.Priority {
	return models.Priority{
		ImportanceLevel:     p.ImportanceLevel,
		ImportanceMagnitude: p.ImportanceMagnitude,
		UrgencyLevel:        p.UrgencyLevel,
		UrgencyMagnitude:    p.UrgencyMagnitude,
	}
}

func priorityDomain(p models.Priority) domain.Priority {
	return domain.Priority{
		ImportanceLevel:     p.ImportanceLevel,
		ImportanceMagnitude: p.ImportanceMagnitude,
		UrgencyLevel:        p.UrgencyLevel,
		UrgencyMagnitude:    p.UrgencyMagnitude,
	}
}

type TaskRepository struct {
	*accountScoped[models.Task, domain.Task, domain.TaskInput]
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	apply := func(row *models.Task, in domain.TaskInput) error {
		row.Title = in.Title
		row.Description = in.Description
		row.Priority = priorityModel(in.Priority)
		row.Deadline = in.Deadline
		row.Start = in.Start
		row.End = in.End
		row.Status = in.Status
		return nil
	}
	return &TaskRepository{&accountScoped[models.Task, domain.Task, domain.TaskInput]{
		db:       db,
		resource: "task",
		build: func(accountID int64, in domain.TaskInput) (models.Task, error) {
			row := models.Task{AccountID: accountID}
			return row, apply(&row, in)
		},
		apply: apply,
		toDomain: func(m models.Task) domain.Task {
			return domain.Task{
				ID:          m.ID,
				AccountID:   m.AccountID,
				Title:       m.Title,
				Description: m.Description,
				Priority:    priorityDomain(m.Priority),
				Deadline:    m.Deadline,
				Start:       m.Start,
				End:         m.End,
				Status:      m.Status,
			}
		},
	}}
}

type AreaRepository struct {
	*accountScoped[models.Area, domain.Area, domain.AreaInput]
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	apply := func(row *models.Area, in domain.AreaInput) error {
		start, err := domain.ParseDate(in.Start)
		if err != nil {
			return err
		}
		end, err := domain.ParseDate(in.End)
		if err != nil {
			return err
		}
		row.Title = in.Title
		row.Description = in.Description
		row.Priority = priorityModel(in.Priority)
		row.Start = start
		row.End = end
		row.Status = in.Status
		return nil
	}
	return &AreaRepository{&accountScoped[models.Area, domain.Area, domain.AreaInput]{
		db:       db,
		resource: "area",
		build: func(accountID int64, in domain.AreaInput) (models.Area, error) {
			row := models.Area{AccountID: accountID}
			return row, apply(&row, in)
		},
		apply: apply,
		toDomain: func(m models.Area) domain.Area {
			return domain.Area{
				ID:          m.ID,
				AccountID:   m.AccountID,
				Title:       m.Title,
				Description: m.Description,
				Priority:    priorityDomain(m.Priority),
				Start:       domain.FormatDate(m.Start),
				End:         domain.FormatDate(m.End),
				Status:      m.Status,
			}
		},
	}}
}

type ProjectRepository struct {
	*accountScoped[models.Project, domain.Project, domain.ProjectInput]
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	apply := func(row *models.Project, in domain.ProjectInput) error {
		deadline, err := domain.ParseDate(in.Deadline)
		if err != nil {
			return err
		}
		start, err := domain.ParseDate(in.Start)
		if err != nil {
			return err
		}
		end, err := domain.ParseDate(in.End)
		if err != nil {
			return err
		}
		row.Title = in.Title
		row.Description = in.Description
		row.Priority = priorityModel(in.Priority)
		row.Deadline = deadline
		row.Start = start
		row.End = end
		row.Status = in.Status
		return nil
	}
	return &ProjectRepository{&accountScoped[models.Project, domain.Project, domain.ProjectInput]{
		db:       db,
		resource: "project",
		build: func(accountID int64, in domain.ProjectInput) (models.Project, error) {
			row := models.Project{AccountID: accountID}
			return row, apply(&row, in)
		},
		apply: apply,
		toDomain: func(m models.Project) domain.Project {
			return domain.Project{
				ID:          m.ID,
				AccountID:   m.AccountID,
				Title:       m.Title,
				Description: m.Description,
				Priority:    priorityDomain(m.Priority),
				Deadline:    domain.FormatDate(m.Deadline),
				Start:       domain.FormatDate(m.Start),
				End:         domain.FormatDate(m.End),
				Status:      m.Status,
			}
		},
	}}
}

type MilestoneRepository struct {
	*accountScoped[models.Milestone, domain.Milestone, domain.MilestoneInput]
}

func milestoneDomain(m models.Milestone) domain.Milestone {
	return domain.Milestone{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Title:       m.Title,
		Description: m.Description,
	}
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	apply := func(row *models.Milestone, in domain.MilestoneInput) error {
		row.Title = in.Title
		row.Description = in.Description
		return nil
	}
	return &MilestoneRepository{&accountScoped[models.Milestone, domain.Milestone, domain.MilestoneInput]{
		db:       db,
		resource: "milestone",
		build: func(accountID int64, in domain.MilestoneInput) (models.Milestone, error) {
			row := models.Milestone{AccountID: accountID}
			return row, apply(&row, in)
		},
		apply:    apply,
		toDomain: milestoneDomain,
	}}
}

type LifestageRepository struct {
	*accountScoped[models.Lifestage, domain.Lifestage, domain.LifestageInput]
}

func NewLifestageRepository(db *gorm.DB) *LifestageRepository {
	apply := func(row *models.Lifestage, in domain.LifestageInput) error {
		start, err := domain.ParseDate(in.Start)
		if err != nil {
			return err
		}
		end, err := domain.ParseDate(in.End)
		if err != nil {
			return err
		}
		row.Title = in.Title
		row.Description = in.Description
		row.Start = start
		row.End = end
		return nil
	}
	return &LifestageRepository{&accountScoped[models.Lifestage, domain.Lifestage, domain.LifestageInput]{
		db:       db,
		resource: "lifestage",
		build: func(accountID int64, in domain.LifestageInput) (models.Lifestage, error) {
			row := models.Lifestage{AccountID: accountID}
			return row, apply(&row, in)
		},
		apply: apply,
		toDomain: func(m models.Lifestage) domain.Lifestage {
			return domain.Lifestage{
				ID:           m.ID,
				AccountID:    m.AccountID,
				Title:        m.Title,
				Description:  m.Description,
				Start:        domain.FormatDate(m.Start),
				End:          domain.FormatDate(m.End),
				DurationDays: int(m.End.Sub(m.Start).Hours() / 24),
			}
		},
	}}
}

type ResourceRepository struct {
	*accountScoped[models.Resource, domain.Resource, domain.ResourceInput]
}

func resourceDomain(m models.Resource) domain.Resource {
	return domain.Resource{
		ID:        m.ID,
		AccountID: m.AccountID,
		Type:      m.Type,
		Quantity:  m.Quantity,
	}
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	apply := func(row *models.Resource, in domain.ResourceInput) error {
		row.Type = in.Type
		row.Quantity = in.Quantity
		return nil
	}
	return &ResourceRepository{&accountScoped[models.Resource, domain.Resource, domain.ResourceInput]{
		db:       db,
		resource: "resource",
		build: func(accountID int64, in domain.ResourceInput) (models.Resource, error) {
			row := models.Resource{AccountID: accountID}
			return row, apply(&row, in)
		},
		apply:    apply,
		toDomain: resourceDomain,
	}}
}
