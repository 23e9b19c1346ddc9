package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"photoclub_backend/internal/domain/models"
	"photoclub_backend/internal/lib/jwt"
	"photoclub_backend/internal/lib/logger/sl"
	"photoclub_backend/internal/storage"
	"photoclub_backend/internal/transport/http/dto"
	"photoclub_backend/internal/transport/http/dto/response"
)

type ContentService interface {
	ListActivities(ctx context.Context) ([]models.Activity, error)
	ListExhibitions(ctx context.Context) ([]models.Exhibition, error)
	ListPhotographers(ctx context.Context) ([]models.PhotographerGroup, error)
	ListLinks(ctx context.Context) ([]models.Link, error)
	GetConfig(ctx context.Context, key string) (json.RawMessage, error)
	MutatePhotographer(ctx context.Context, req dto.PhotographerMutationRequest) ([]models.PhotographerGroup, error)
	MutateLink(ctx context.Context, req dto.LinkMutationRequest) ([]models.Link, error)
	UpdateActivityTitle(ctx context.Context, id int64, title string) ([]models.Activity, error)
	DeleteActivity(ctx context.Context, id int64) ([]models.Activity, error)
	DeleteExhibition(ctx context.Context, id int64) ([]models.Exhibition, error)
}

type UploadService interface {
	UploadActivity(ctx context.Context, input dto.UploadInput) (*models.Activity, error)
	UploadExhibition(ctx context.Context, input dto.UploadInput) (*models.Exhibition, error)
	UploadPhotographerPhoto(ctx context.Context, file *multipart.FileHeader) (string, error)
	UploadHero(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type Routers struct {
	log            *slog.Logger
	ContentService ContentService
	UploadService  UploadService
	Tokens         *jwt.Manager
	adminPassword  string
}

func NewRouters(log *slog.Logger, content ContentService, upload UploadService, tokens *jwt.Manager, adminPassword string) *Routers {
	return &Routers{
		log:            log,
		ContentService: content,
		UploadService:  upload,
		Tokens:         tokens,
		adminPassword:  adminPassword,
	}
}

// GetData serves every public read: the four collections plus the
// singleton config blobs. Responses always carry no-store headers so no
// intermediary caches a stale list.
func (r *Routers) GetData(c echo.Context) error {
	const op = "http.routers.GetData"

	ctx := c.Request().Context()
	setNoStore(c)

	switch kind := c.Param("type"); kind {
	case "activities":
		activities, err := r.ContentService.ListActivities(ctx)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, activities)

	case "exhibitions":
		exhibitions, err := r.ContentService.ListExhibitions(ctx)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, exhibitions)

	case "photographers":
		groups, err := r.ContentService.ListPhotographers(ctx)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, groups)

	case "linktree":
		links, err := r.ContentService.ListLinks(ctx)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, links)

	case models.ConfigKeyHero, models.ConfigKeyAbout, models.ConfigKeyBanner:
		value, err := r.ContentService.GetConfig(ctx, kind)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSONBlob(http.StatusOK, value)

	default:
		return c.JSON(http.StatusBadRequest, response.ErrInvalidDataType)
	}
}

// Upload handles every multipart create/update. The kind field selects
// the pipeline; gallery is the default and produces an activity.
func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"

	log := r.log.With(slog.String("op", op))
	ctx := c.Request().Context()

	kind := c.FormValue("type")
	if kind == "" {
		kind = dto.UploadKindGallery
	}

	log.Info("upload started", slog.String("kind", kind), slog.String("client_ip", c.RealIP()))

	switch kind {
	case dto.UploadKindPhotographer:
		file, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrFileRequired)
		}
		url, err := r.UploadService.UploadPhotographerPhoto(ctx, file)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "url": url})

	case dto.UploadKindHero:
		file, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrFileRequired)
		}
		url, err := r.UploadService.UploadHero(ctx, file)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "url": url})

	case dto.UploadKindExhibition:
		input, err := r.parseUploadInput(c, kind)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", err.Error()))
		}
		exhibition, err := r.UploadService.UploadExhibition(ctx, *input)
		if err != nil {
			return r.fail(c, op, err)
		}
		list, err := r.ContentService.ListExhibitions(ctx)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"exhibition": exhibition,
			"list":       list,
		})

	default:
		input, err := r.parseUploadInput(c, dto.UploadKindGallery)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", err.Error()))
		}
		activity, err := r.UploadService.UploadActivity(ctx, *input)
		if err != nil {
			return r.fail(c, op, err)
		}
		list, err := r.ContentService.ListActivities(ctx)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":  true,
			"activity": activity,
			"list":     list,
		})
	}
}

// DeleteUpload removes an activity or exhibition and answers with the
// canonical remaining list. An absent id still succeeds.
func (r *Routers) DeleteUpload(c echo.Context) error {
	const op = "http.routers.DeleteUpload"

	kind := c.QueryParam("type")
	rawID := c.QueryParam("id")
	if kind == "" || rawID == "" {
		return c.JSON(http.StatusBadRequest, response.ErrTypeAndIDRequired)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", "id must be an integer"))
	}

	ctx := c.Request().Context()

	if kind == dto.UploadKindExhibition {
		list, err := r.ContentService.DeleteExhibition(ctx, id)
		if err != nil {
			return r.fail(c, op, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "list": list})
	}

	list, err := r.ContentService.DeleteActivity(ctx, id)
	if err != nil {
		return r.fail(c, op, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "list": list})
}

func (r *Routers) GetPhotographers(c echo.Context) error {
	const op = "http.routers.GetPhotographers"

	groups, err := r.ContentService.ListPhotographers(c.Request().Context())
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, groups)
}

func (r *Routers) MutatePhotographers(c echo.Context) error {
	const op = "http.routers.MutatePhotographers"

	var req dto.PhotographerMutationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", err.Error()))
	}

	groups, err := r.ContentService.MutatePhotographer(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "photographers": groups})
}

func (r *Routers) MutateLinktree(c echo.Context) error {
	const op = "http.routers.MutateLinktree"

	var req dto.LinkMutationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", err.Error()))
	}

	links, err := r.ContentService.MutateLink(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "linktree": links})
}

func (r *Routers) UpdateTitle(c echo.Context) error {
	const op = "http.routers.UpdateTitle"

	var req dto.UpdateTitleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", err.Error()))
	}

	activities, err := r.ContentService.UpdateActivityTitle(c.Request().Context(), req.ID, *req.Title)
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "activities": activities})
}

// AdminLogin exchanges the admin password for a signed token. The token
// is what mutating routes check; the browser-side admin flag alone
// grants nothing.
func (r *Routers) AdminLogin(c echo.Context) error {
	const op = "http.routers.AdminLogin"

	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", err.Error()))
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(r.adminPassword)) != 1 {
		r.log.Warn("admin login rejected", slog.String("op", op), slog.String("client_ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	token, err := r.Tokens.NewToken()
	if err != nil {
		r.log.Error("failed to issue admin token", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("internal_error"))
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// fail translates service errors into the envelope. Validation problems
// answer 400, missing records 404, everything else is a store failure.
func (r *Routers) fail(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrInvalidInput), errors.Is(err, storage.ErrNoFiles), errors.Is(err, storage.ErrInvalidKind):
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_request", err.Error()))
	case errors.Is(err, storage.ErrNotFound):
		return c.JSON(http.StatusNotFound, response.Error("not_found"))
	default:
		r.log.Error("request failed", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.FromStoreError(err))
	}
}

func (r *Routers) parseUploadInput(c echo.Context, kind string) (*dto.UploadInput, error) {
	input := dto.UploadInput{
		Kind:     kind,
		Title:    c.FormValue("title"),
		Date:     c.FormValue("date"),
		Location: c.FormValue("location"),
	}

	if raw := c.FormValue("mainIndex"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("mainIndex must be an integer")
		}
		input.MainIndex = idx
	}

	if raw := c.FormValue("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("id must be an integer")
		}
		input.ID = id
	}

	if raw := c.FormValue("existingImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.ExistingImages); err != nil {
			return nil, errors.New("existingImages must be a JSON array of URLs")
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("multipart form is required")
	}
	input.Files = form.File["files"]

	return &input, nil
}

func setNoStore(c echo.Context) {
	h := c.Response().Header()
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}
