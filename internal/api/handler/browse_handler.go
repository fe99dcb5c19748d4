package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// BrowseHandler serves the investor's browse and startup detail screens.
type BrowseHandler struct {
	browse ports.BrowseService
}

func NewBrowseHandler(browse ports.BrowseService) *BrowseHandler {
	return &BrowseHandler{browse: browse}
}

// List returns the filtered startup list plus the domain filter options.
// Filters arrive as query parameters: ?q=<term>&domain=<domain>.
func (h *BrowseHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	result, err := h.browse.Browse(c.Request().Context(), sess, c.QueryParam("q"), c.QueryParam("domain"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Detail returns one startup together with the viewer's watch status.
func (h *BrowseHandler) Detail(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	detail, err := h.browse.Detail(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}
