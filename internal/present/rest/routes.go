package rest

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/present/rest/middleware"
	"github.com/totegamma/storykeep/internal/present/rest/presenter"
)

type ownedService[T any, In any] interface {
	List(ctx context.Context, accountID int64) ([]T, error)
	Get(ctx context.Context, accountID, id int64) (T, error)
	Create(ctx context.Context, accountID int64, in In) (T, error)
	Update(ctx context.Context, accountID, id int64, in In) (T, error)
	Delete(ctx context.Context, accountID, id int64) error
}

type storyScopedService[T any, In any] interface {
	List(ctx context.Context, accountID, storyID int64) ([]T, error)
	Get(ctx context.Context, accountID, storyID, id int64) (T, error)
	Create(ctx context.Context, accountID, storyID int64, in In) (T, error)
	Update(ctx context.Context, accountID, storyID, id int64, in In) (T, error)
	Delete(ctx context.Context, accountID, storyID, id int64) error
}

type associationService[T any, In any] interface {
	Link(ctx context.Context, accountID int64, owner domain.OwnerRef, in In) (domain.LinkResult[T], error)
	List(ctx context.Context, accountID int64, owner domain.OwnerRef) ([]T, error)
	Unlink(ctx context.Context, accountID int64, owner domain.OwnerRef, sharedID int64) error
}

// pathID parses a numeric path parameter. Anything else cannot name a row,
// so it is reported as not found.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func requester(c echo.Context) int64 {
	id, _ := middleware.RequesterID(c.Request().Context())
	return id
}

func bind[In any](c echo.Context) (In, error) {
	var in In
	err := c.Bind(&in)
	return in, err
}

func storyRef(c echo.Context) (domain.OwnerRef, bool) {
	storyID, ok := pathID(c, "story_id")
	if !ok {
		return domain.OwnerRef{}, false
	}
	return domain.OwnerRef{StoryID: storyID, ID: storyID}, true
}

func incidentRef(c echo.Context) (domain.OwnerRef, bool) {
	storyID, ok := pathID(c, "story_id")
	if !ok {
		return domain.OwnerRef{}, false
	}
	incidentID, ok := pathID(c, "incident_id")
	if !ok {
		return domain.OwnerRef{}, false
	}
	return domain.OwnerRef{StoryID: storyID, ID: incidentID}, true
}

func taskRef(c echo.Context) (domain.OwnerRef, bool) {
	taskID, ok := pathID(c, "task_id")
	if !ok {
		return domain.OwnerRef{}, false
	}
	return domain.OwnerRef{ID: taskID}, true
}

// registerOwned mounts list/create on path and get/update/delete on path/:param/.
func registerOwned[T any, In any](g *echo.Group, path, param, resource string, uc ownedService[T, In]) {
	g.GET(path+"/", func(c echo.Context) error {
		items, err := uc.List(c.Request().Context(), requester(c))
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, items)
	})

	g.POST(path+"/", func(c echo.Context) error {
		in, err := bind[In](c)
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		item, err := uc.Create(c.Request().Context(), requester(c), in)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.Created(c, item)
	})

	item := path + "/:" + param + "/"

	g.GET(item, func(c echo.Context) error {
		id, ok := pathID(c, param)
		if !ok {
			return presenter.NotFound(c, resource+" not found")
		}
		result, err := uc.Get(c.Request().Context(), requester(c), id)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, result)
	})

	g.PUT(item, func(c echo.Context) error {
		id, ok := pathID(c, param)
		if !ok {
			return presenter.NotFound(c, resource+" not found")
		}
		in, err := bind[In](c)
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		result, err := uc.Update(c.Request().Context(), requester(c), id, in)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, result)
	})

	g.DELETE(item, func(c echo.Context) error {
		id, ok := pathID(c, param)
		if !ok {
			return presenter.NotFound(c, resource+" not found")
		}
		if err := uc.Delete(c.Request().Context(), requester(c), id); err != nil {
			return presenter.Error(c, err)
		}
		return presenter.NoContent(c)
	})
}

// registerStoryScoped mounts the same five routes below /stories/:story_id/.
func registerStoryScoped[T any, In any](g *echo.Group, path, param, resource string, uc storyScopedService[T, In]) {
	collection := "/stories/:story_id" + path + "/"
	item := "/stories/:story_id" + path + "/:" + param + "/"

	g.GET(collection, func(c echo.Context) error {
		storyID, ok := pathID(c, "story_id")
		if !ok {
			return presenter.NotFound(c, "story not found")
		}
		items, err := uc.List(c.Request().Context(), requester(c), storyID)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, items)
	})

	g.POST(collection, func(c echo.Context) error {
		storyID, ok := pathID(c, "story_id")
		if !ok {
			return presenter.NotFound(c, "story not found")
		}
		in, err := bind[In](c)
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		result, err := uc.Create(c.Request().Context(), requester(c), storyID, in)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.Created(c, result)
	})

	g.GET(item, func(c echo.Context) error {
		storyID, ok1 := pathID(c, "story_id")
		id, ok2 := pathID(c, param)
		if !ok1 || !ok2 {
			return presenter.NotFound(c, resource+" not found")
		}
		result, err := uc.Get(c.Request().Context(), requester(c), storyID, id)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, result)
	})

	g.PUT(item, func(c echo.Context) error {
		storyID, ok1 := pathID(c, "story_id")
		id, ok2 := pathID(c, param)
		if !ok1 || !ok2 {
			return presenter.NotFound(c, resource+" not found")
		}
		in, err := bind[In](c)
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		result, err := uc.Update(c.Request().Context(), requester(c), storyID, id, in)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, result)
	})

	g.DELETE(item, func(c echo.Context) error {
		storyID, ok1 := pathID(c, "story_id")
		id, ok2 := pathID(c, param)
		if !ok1 || !ok2 {
			return presenter.NotFound(c, resource+" not found")
		}
		if err := uc.Delete(c.Request().Context(), requester(c), storyID, id); err != nil {
			return presenter.Error(c, err)
		}
		return presenter.NoContent(c)
	})
}

// registerAssociation mounts link/list on path and unlink on path/:param/.
// key names the shared entity in the link response.
func registerAssociation[T any, In any](
	g *echo.Group,
	path, param, key string,
	owner func(echo.Context) (domain.OwnerRef, bool),
	uc associationService[T, In],
) {
	g.GET(path, func(c echo.Context) error {
		ref, ok := owner(c)
		if !ok {
			return presenter.NotFound(c, "owner not found")
		}
		items, err := uc.List(c.Request().Context(), requester(c), ref)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, items)
	})

	g.POST(path, func(c echo.Context) error {
		ref, ok := owner(c)
		if !ok {
			return presenter.NotFound(c, "owner not found")
		}
		in, err := bind[In](c)
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		result, err := uc.Link(c.Request().Context(), requester(c), ref, in)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.Created(c, echo.Map{
			key:           result.Shared,
			"association": result.Association,
			"created":     result.Created,
			"link_status": result.Status(),
		})
	})

	g.DELETE(path+":"+param+"/", func(c echo.Context) error {
		ref, ok := owner(c)
		if !ok {
			return presenter.NotFound(c, "owner not found")
		}
		sharedID, ok := pathID(c, param)
		if !ok {
			return presenter.NotFound(c, key+" not found")
		}
		if err := uc.Unlink(c.Request().Context(), requester(c), ref, sharedID); err != nil {
			return presenter.Error(c, err)
		}
		return presenter.NoContent(c)
	})
}
