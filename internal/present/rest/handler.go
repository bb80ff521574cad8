package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/metrics"
	"github.com/totegamma/storykeep/internal/present/rest/middleware"
	"github.com/totegamma/storykeep/internal/present/rest/presenter"
	"github.com/totegamma/storykeep/internal/service"
	"github.com/totegamma/storykeep/internal/usecase"
	"github.com/totegamma/storykeep/internal/utils"
)

// Usecases bundles everything the routes call into.
type Usecases struct {
	Account *usecase.AccountUsecase

	Tasks      *usecase.OwnedUsecase[domain.Task, domain.TaskInput]
	Areas      *usecase.OwnedUsecase[domain.Area, domain.AreaInput]
	Projects   *usecase.OwnedUsecase[domain.Project, domain.ProjectInput]
	Milestones *usecase.OwnedUsecase[domain.Milestone, domain.MilestoneInput]
	Lifestages *usecase.OwnedUsecase[domain.Lifestage, domain.LifestageInput]
	Resources  *usecase.OwnedUsecase[domain.Resource, domain.ResourceInput]

	TaskMilestones *usecase.AssociationUsecase[domain.Milestone, domain.MilestoneRef]
	TaskResources  *usecase.AssociationUsecase[domain.Resource, domain.ResourceRef]

	Stories        *usecase.OwnedUsecase[domain.Story, domain.StoryInput]
	Incidents      *usecase.StoryScopedUsecase[domain.Incident, domain.IncidentInput]
	SensoryDetails *usecase.StoryScopedUsecase[domain.SensoryDetail, domain.SensoryDetailInput]
	Points         *usecase.StoryScopedUsecase[domain.Point, domain.ContentInput]
	Scripts        *usecase.StoryScopedUsecase[domain.Script, domain.ContentInput]
	Media          *usecase.StoryScopedUsecase[domain.Media, domain.MediaInput]

	StoryPeople     *usecase.AssociationUsecase[domain.Person, domain.PersonInput]
	IncidentPeople  *usecase.AssociationUsecase[domain.Person, domain.PersonInput]
	StoryLinks      *usecase.AssociationUsecase[domain.Link, domain.LinkInput]
	StoryCharacters *usecase.AssociationUsecase[domain.Character, domain.CharacterInput]
}

type Handler struct {
	uc     Usecases
	auth   *middleware.AuthMiddleware
	signal *service.SignalService
	ping   func(ctx context.Context) error
	index  utils.OrderedKVMap[string]
}

func NewHandler(
	uc Usecases,
	auth *middleware.AuthMiddleware,
	signal *service.SignalService,
	ping func(ctx context.Context) error,
) *Handler {
	return &Handler{
		uc:     uc,
		auth:   auth,
		signal: signal,
		ping:   ping,
		index:  utils.OrderedKVMap[string]{},
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.handleIndex)
	e.GET("/healthz", h.handleHealth)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	public := e.Group("", h.auth.IdentifyIdentity)
	public.POST("/user/registration/", h.handleRegister)
	public.POST("/user/token/", h.handleToken)
	public.POST("/user/token/refresh/", h.handleTokenRefresh)

	g := e.Group("", h.auth.IdentifyIdentity, middleware.RequireAccount)
	g.GET("/user/", h.handleProfile)
	g.PUT("/user/", h.handleUpdateProfile)
	g.GET("/realtime", h.handleRealtime)

	registerOwned(g, "/tasks", "task_id", "task", h.uc.Tasks)
	registerOwned(g, "/areas", "area_id", "area", h.uc.Areas)
	registerOwned(g, "/projects", "project_id", "project", h.uc.Projects)
	registerOwned(g, "/milestones", "milestone_id", "milestone", h.uc.Milestones)
	registerOwned(g, "/lifestages", "lifestage_id", "lifestage", h.uc.Lifestages)
	registerOwned(g, "/resources", "resource_id", "resource", h.uc.Resources)
	registerAssociation(g, "/tasks/:task_id/milestones/", "milestone_id", "milestone", taskRef, h.uc.TaskMilestones)
	registerAssociation(g, "/tasks/:task_id/resources/", "resource_id", "resource", taskRef, h.uc.TaskResources)

	registerOwned(g, "/stories", "story_id", "story", h.uc.Stories)
	registerStoryScoped(g, "/incidents", "incident_id", "incident", h.uc.Incidents)
	registerStoryScoped(g, "/sensory-details", "sensory_detail_id", "sensory detail", h.uc.SensoryDetails)
	registerStoryScoped(g, "/points", "point_id", "point", h.uc.Points)
	registerStoryScoped(g, "/scripts", "script_id", "script", h.uc.Scripts)
	registerStoryScoped(g, "/media", "media_id", "media", h.uc.Media)
	registerAssociation(g, "/stories/:story_id/people/", "person_id", "person", storyRef, h.uc.StoryPeople)
	registerAssociation(g, "/stories/:story_id/incidents/:incident_id/people/", "person_id", "person", incidentRef, h.uc.IncidentPeople)
	registerAssociation(g, "/stories/:story_id/links/", "link_id", "link", storyRef, h.uc.StoryLinks)
	registerAssociation(g, "/stories/:story_id/characters/", "character_id", "character", storyRef, h.uc.StoryCharacters)

	h.buildIndex()
}

func (h *Handler) buildIndex() {
	h.index.Append("registration", "/user/registration/")
	h.index.Append("token", "/user/token/")
	h.index.Append("token-refresh", "/user/token/refresh/")
	h.index.Append("profile", "/user/")
	h.index.Append("tasks", "/tasks/")
	h.index.Append("task-milestones", "/tasks/{task_id}/milestones/")
	h.index.Append("task-resources", "/tasks/{task_id}/resources/")
	h.index.Append("areas", "/areas/")
	h.index.Append("projects", "/projects/")
	h.index.Append("milestones", "/milestones/")
	h.index.Append("lifestages", "/lifestages/")
	h.index.Append("resources", "/resources/")
	h.index.Append("stories", "/stories/")
	h.index.Append("incidents", "/stories/{story_id}/incidents/")
	h.index.Append("incident-people", "/stories/{story_id}/incidents/{incident_id}/people/")
	h.index.Append("people", "/stories/{story_id}/people/")
	h.index.Append("sensory-details", "/stories/{story_id}/sensory-details/")
	h.index.Append("points", "/stories/{story_id}/points/")
	h.index.Append("scripts", "/stories/{story_id}/scripts/")
	h.index.Append("media", "/stories/{story_id}/media/")
	h.index.Append("links", "/stories/{story_id}/links/")
	h.index.Append("characters", "/stories/{story_id}/characters/")
	h.index.Append("realtime", "/realtime")
	h.index.Append("health", "/healthz")
	h.index.Append("metrics", "/metrics")
}

func (h *Handler) handleIndex(c echo.Context) error {
	return presenter.OK(c, h.index)
}

func (h *Handler) handleHealth(c echo.Context) error {
	if h.ping != nil {
		if err := h.ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}
