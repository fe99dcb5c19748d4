package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// WatchlistHandler serves the investor's watchlist screen and the watch
// toggle on the startup detail page.
type WatchlistHandler struct {
	watchlist ports.WatchlistService
}

func NewWatchlistHandler(watchlist ports.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

func (h *WatchlistHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	items, err := h.watchlist.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"watchlist": items})
}

func (h *WatchlistHandler) Status(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	status, err := h.watchlist.Status(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

// Toggle flips the watch status for the startup named in the path and
// returns the new state.
func (h *WatchlistHandler) Toggle(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	status, err := h.watchlist.Toggle(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func (h *WatchlistHandler) Remove(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.watchlist.Remove(c.Request().Context(), sess, c.Param("entryId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
