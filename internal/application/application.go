// Package application wires repositories, usecases and the HTTP handler
// into a runnable echo instance.
package application

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/infra/repository"
	"github.com/totegamma/storykeep/internal/present/rest"
	"github.com/totegamma/storykeep/internal/present/rest/middleware"
	"github.com/totegamma/storykeep/internal/service"
	"github.com/totegamma/storykeep/internal/usecase"
)

type Application struct {
	Auth    *service.AuthService
	Signal  *service.SignalService
	Handler *rest.Handler
}

// New builds the application. rdb may be nil, which disables event
// publishing and the realtime endpoint.
func New(db *gorm.DB, rdb *redis.Client, authConfig domain.AuthConfig) *Application {
	auth := service.NewAuthService(authConfig)
	signal := service.NewSignalService(rdb)

	uc := rest.Usecases{
		Account: usecase.NewAccountUsecase(repository.NewAccountRepository(db), auth),

		Tasks:      usecase.NewOwnedUsecase[domain.Task, domain.TaskInput]("Task", repository.NewTaskRepository(db)),
		Areas:      usecase.NewOwnedUsecase[domain.Area, domain.AreaInput]("Area", repository.NewAreaRepository(db)),
		Projects:   usecase.NewOwnedUsecase[domain.Project, domain.ProjectInput]("Project", repository.NewProjectRepository(db)),
		Milestones: usecase.NewOwnedUsecase[domain.Milestone, domain.MilestoneInput]("Milestone", repository.NewMilestoneRepository(db)),
		Lifestages: usecase.NewOwnedUsecase[domain.Lifestage, domain.LifestageInput]("Lifestage", repository.NewLifestageRepository(db)),
		Resources:  usecase.NewOwnedUsecase[domain.Resource, domain.ResourceInput]("Resource", repository.NewResourceRepository(db)),

		TaskMilestones: usecase.NewAssociationUsecase[domain.Milestone, domain.MilestoneRef]("milestone", repository.NewTaskMilestonesRepository(db), signal),
		TaskResources:  usecase.NewAssociationUsecase[domain.Resource, domain.ResourceRef]("resource", repository.NewTaskResourcesRepository(db), signal),

		Stories:        usecase.NewOwnedUsecase[domain.Story, domain.StoryInput]("Story", repository.NewStoryRepository(db)),
		Incidents:      usecase.NewStoryScopedUsecase[domain.Incident, domain.IncidentInput]("Incident", repository.NewIncidentRepository(db)),
		SensoryDetails: usecase.NewStoryScopedUsecase[domain.SensoryDetail, domain.SensoryDetailInput]("SensoryDetail", repository.NewSensoryDetailRepository(db)),
		Points:         usecase.NewStoryScopedUsecase[domain.Point, domain.ContentInput]("Point", repository.NewPointRepository(db)),
		Scripts:        usecase.NewStoryScopedUsecase[domain.Script, domain.ContentInput]("Script", repository.NewScriptRepository(db)),
		Media:          usecase.NewStoryScopedUsecase[domain.Media, domain.MediaInput]("Media", repository.NewMediaRepository(db)),

		StoryPeople:     usecase.NewAssociationUsecase[domain.Person, domain.PersonInput]("person", repository.NewStoryPeopleRepository(db), signal),
		IncidentPeople:  usecase.NewAssociationUsecase[domain.Person, domain.PersonInput]("person", repository.NewIncidentPeopleRepository(db), signal),
		StoryLinks:      usecase.NewAssociationUsecase[domain.Link, domain.LinkInput]("link", repository.NewStoryLinksRepository(db), signal),
		StoryCharacters: usecase.NewAssociationUsecase[domain.Character, domain.CharacterInput]("character", repository.NewStoryCharactersRepository(db), signal),
	}

	ping := func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}

	handler := rest.NewHandler(uc, middleware.NewAuthMiddleware(auth), signal, ping)

	return &Application{
		Auth:    auth,
		Signal:  signal,
		Handler: handler,
	}
}

// Echo returns the HTTP server for the application.
func (a *Application) Echo(extra ...echo.MiddlewareFunc) *echo.Echo {
	return rest.NewEcho(a.Handler, extra...)
}
