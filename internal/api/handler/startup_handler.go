package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// StartupHandler serves the startup-side screens: dashboard, company
// profile, future plans, pitch ideas and financial documents.
type StartupHandler struct {
	dashboards ports.DashboardService
	profiles   ports.StartupProfileService
	documents  ports.DocumentService
	log        zerolog.Logger
}

func NewStartupHandler(
	dashboards ports.DashboardService,
	profiles ports.StartupProfileService,
	documents ports.DocumentService,
	log zerolog.Logger,
) *StartupHandler {
	return &StartupHandler{dashboards: dashboards, profiles: profiles, documents: documents, log: log}
}

func (h *StartupHandler) Dashboard(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	dash, err := h.dashboards.Startup(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}

func (h *StartupHandler) Profile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Current(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	if profile == nil {
		return c.JSON(http.StatusOK, map[string]any{"profile": nil})
	}
	return c.JSON(http.StatusOK, map[string]any{"profile": profile})
}

// SaveProfile creates the profile on the first save and updates it
// afterwards.
func (h *StartupHandler) SaveProfile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req ports.StartupProfileInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, created, err := h.profiles.Save(c.Request().Context(), sess, req)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, map[string]any{"profile": profile})
}

type futurePlansRequest struct {
	FuturePlans string `json:"futurePlans" validate:"required"`
}

func (h *StartupHandler) SavePlans(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req futurePlansRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profiles.SavePlans(c.Request().Context(), sess, req.FuturePlans); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type pitchIdeaRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (h *StartupHandler) AddPitchIdea(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req pitchIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ideas, err := h.profiles.AddPitchIdea(c.Request().Context(), sess, domain.PitchIdea{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"pitchIdeas": ideas})
}

func (h *StartupHandler) ListDocuments(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	docs, err := h.documents.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": docs})
}

type uploadResponse struct {
	File      *ports.StoredFile    `json:"file"`
	Documents []domain.DocumentRef `json:"documents,omitempty"`
	Attached  bool                 `json:"attached"`
}

// UploadDocument stores the multipart file and then records it on the
// profile. An attach failure after a successful store is reported, not
// rolled back; the stored file survives.
func (h *StartupHandler) UploadDocument(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	stored, err := h.documents.Upload(c.Request().Context(), sess, ports.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		return err
	}

	docs, err := h.documents.Attach(c.Request().Context(), sess, *stored)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		h.log.Warn().Err(err).Str("file", stored.FileName).Msg("uploaded file could not be attached")
		return c.JSON(http.StatusCreated, uploadResponse{File: stored})
	}

	return c.JSON(http.StatusCreated, uploadResponse{File: stored, Documents: docs, Attached: true})
}

func (h *StartupHandler) RemoveDocument(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	docs, err := h.documents.Remove(c.Request().Context(), sess, c.Param("docId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": docs})
}
