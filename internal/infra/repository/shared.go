package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/infra/database/models"
)

func personDomain(m models.Person) domain.Person {
	return domain.Person{ID: m.ID, FirstName: m.FirstName, Type: m.Type}
}

func resolvePerson(tx *gorm.DB, _ int64, in domain.PersonInput) (models.Person, error) {
	return findOrCreateShared(tx, in.Key(),
		func(digest string) models.Person {
			return models.Person{NaturalKey: digest, FirstName: in.FirstName, Type: in.Type}
		},
		func(m models.Person) domain.PersonKey {
			return domain.PersonKey{FirstName: m.FirstName, Type: m.Type}
		},
	)
}

type PersonAssociationRepository = associationRepository[models.Person, models.StoryPerson, domain.Person, domain.PersonInput]

// NewStoryPeopleRepository links people to stories.
func NewStoryPeopleRepository(db *gorm.DB) *PersonAssociationRepository {
	return &PersonAssociationRepository{
		db:            db,
		resource:      "person",
		sharedTable:   models.Person{}.TableName(),
		junctionTable: models.StoryPerson{}.TableName(),
		ownerCol:      "story_id",
		sharedCol:     "person_id",
		scope:         storyOwner,
		resolve:       resolvePerson,
		sharedID:      func(m models.Person) int64 { return m.ID },
		junction: func(ownerID, sharedID int64) models.StoryPerson {
			return models.StoryPerson{StoryID: ownerID, PersonID: sharedID}
		},
		createdAt: func(j models.StoryPerson) time.Time { return j.CDate },
		toDomain:  personDomain,
	}
}

type IncidentPersonAssociationRepository = associationRepository[models.Person, models.IncidentPerson, domain.Person, domain.PersonInput]

// NewIncidentPeopleRepository links people to incidents.
func NewIncidentPeopleRepository(db *gorm.DB) *IncidentPersonAssociationRepository {
	return &IncidentPersonAssociationRepository{
		db:            db,
		resource:      "person",
		sharedTable:   models.Person{}.TableName(),
		junctionTable: models.IncidentPerson{}.TableName(),
		ownerCol:      "incident_id",
		sharedCol:     "person_id",
		scope:         incidentOwner,
		resolve:       resolvePerson,
		sharedID:      func(m models.Person) int64 { return m.ID },
		junction: func(ownerID, sharedID int64) models.IncidentPerson {
			return models.IncidentPerson{IncidentID: ownerID, PersonID: sharedID}
		},
		createdAt: func(j models.IncidentPerson) time.Time { return j.CDate },
		toDomain:  personDomain,
	}
}

type LinkAssociationRepository = associationRepository[models.Link, models.StoryLink, domain.Link, domain.LinkInput]

func NewStoryLinksRepository(db *gorm.DB) *LinkAssociationRepository {
	return &LinkAssociationRepository{
		db:            db,
		resource:      "link",
		sharedTable:   models.Link{}.TableName(),
		junctionTable: models.StoryLink{}.TableName(),
		ownerCol:      "story_id",
		sharedCol:     "link_id",
		scope:         storyOwner,
		resolve: func(tx *gorm.DB, _ int64, in domain.LinkInput) (models.Link, error) {
			return findOrCreateShared(tx, in.Key(),
				func(digest string) models.Link {
					return models.Link{
						NaturalKey:  digest,
						Title:       in.Title,
						Description: in.Description,
						Colour:      in.Colour,
					}
				},
				func(m models.Link) domain.LinkKey {
					return domain.LinkKey{Title: m.Title, Description: m.Description, Colour: m.Colour}
				},
			)
		},
		sharedID: func(m models.Link) int64 { return m.ID },
		junction: func(ownerID, sharedID int64) models.StoryLink {
			return models.StoryLink{StoryID: ownerID, LinkID: sharedID}
		},
		createdAt: func(j models.StoryLink) time.Time { return j.CDate },
		toDomain: func(m models.Link) domain.Link {
			return domain.Link{ID: m.ID, Title: m.Title, Description: m.Description, Colour: m.Colour}
		},
	}
}

type CharacterAssociationRepository = associationRepository[models.Character, models.StoryCharacter, domain.Character, domain.CharacterInput]

func NewStoryCharactersRepository(db *gorm.DB) *CharacterAssociationRepository {
	return &CharacterAssociationRepository{
		db:            db,
		resource:      "character",
		sharedTable:   models.Character{}.TableName(),
		junctionTable: models.StoryCharacter{}.TableName(),
		ownerCol:      "story_id",
		sharedCol:     "character_id",
		scope:         storyOwner,
		resolve: func(tx *gorm.DB, _ int64, in domain.CharacterInput) (models.Character, error) {
			return findOrCreateShared(tx, in.Key(),
				func(digest string) models.Character {
					return models.Character{NaturalKey: digest, BodyLanguage: in.BodyLanguage, Dialog: in.Dialog}
				},
				func(m models.Character) domain.CharacterKey {
					return domain.CharacterKey{BodyLanguage: m.BodyLanguage, Dialog: m.Dialog}
				},
			)
		},
		sharedID: func(m models.Character) int64 { return m.ID },
		junction: func(ownerID, sharedID int64) models.StoryCharacter {
			return models.StoryCharacter{StoryID: ownerID, CharacterID: sharedID}
		},
		createdAt: func(j models.StoryCharacter) time.Time { return j.CDate },
		toDomain: func(m models.Character) domain.Character {
			return domain.Character{ID: m.ID, BodyLanguage: m.BodyLanguage, Dialog: m.Dialog}
		},
	}
}

type TaskMilestoneRepository = associationRepository[models.Milestone, models.TaskMilestone, domain.Milestone, domain.MilestoneRef]

// NewTaskMilestonesRepository attaches caller-owned milestones to caller-owned tasks.
func NewTaskMilestonesRepository(db *gorm.DB) *TaskMilestoneRepository {
	return &TaskMilestoneRepository{
		db:            db,
		resource:      "milestone",
		sharedTable:   models.Milestone{}.TableName(),
		junctionTable: models.TaskMilestone{}.TableName(),
		ownerCol:      "task_id",
		sharedCol:     "milestone_id",
		scope:         taskOwner,
		resolve: func(tx *gorm.DB, accountID int64, in domain.MilestoneRef) (models.Milestone, error) {
			var row models.Milestone
			err := tx.Where("id = ? AND account_id = ?", in.MilestoneID, accountID).Take(&row).Error
			return row, err
		},
		sharedID: func(m models.Milestone) int64 { return m.ID },
		junction: func(ownerID, sharedID int64) models.TaskMilestone {
			return models.TaskMilestone{TaskID: ownerID, MilestoneID: sharedID}
		},
		createdAt: func(j models.TaskMilestone) time.Time { return j.CDate },
		toDomain:  milestoneDomain,
	}
}

type TaskResourceRepository = associationRepository[models.Resource, models.TaskResource, domain.Resource, domain.ResourceRef]

func NewTaskResourcesRepository(db *gorm.DB) *TaskResourceRepository {
	return &TaskResourceRepository{
		db:            db,
		resource:      "resource",
		sharedTable:   models.Resource{}.TableName(),
		junctionTable: models.TaskResource{}.TableName(),
		ownerCol:      "task_id",
		sharedCol:     "resource_id",
		scope:         taskOwner,
		resolve: func(tx *gorm.DB, accountID int64, in domain.ResourceRef) (models.Resource, error) {
			var row models.Resource
			err := tx.Where("id = ? AND account_id = ?", in.ResourceID, accountID).Take(&row).Error
			return row, err
		},
		sharedID: func(m models.Resource) int64 { return m.ID },
		junction: func(ownerID, sharedID int64) models.TaskResource {
			return models.TaskResource{TaskID: ownerID, ResourceID: sharedID}
		},
		createdAt: func(j models.TaskResource) time.Time { return j.CDate },
		toDomain:  resourceDomain,
	}
}
