package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// InvestorHandler serves the investor-side screens: dashboard, investor
// profile and the invest form.
type InvestorHandler struct {
	dashboards  ports.DashboardService
	profiles    ports.InvestorProfileService
	investments ports.InvestmentsAPI
}

func NewInvestorHandler(
	dashboards ports.DashboardService,
	profiles ports.InvestorProfileService,
	investments ports.InvestmentsAPI,
) *InvestorHandler {
	return &InvestorHandler{dashboards: dashboards, profiles: profiles, investments: investments}
}

func (h *InvestorHandler) Dashboard(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	dash, err := h.dashboards.Investor(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}

func (h *InvestorHandler) Profile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Current(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"profile": profile})
}

func (h *InvestorHandler) SaveProfile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req ports.InvestorProfileInput
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

type investRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// Invest records an investment into the startup named in the path.
func (h *InvestorHandler) Invest(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.User.RoleProfileID == "" {
		return domain.ErrProfileMissing
	}

	var req investRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	investment, err := h.investments.Invest(c.Request().Context(), sess, ports.InvestInput{
		InvestorID: sess.User.RoleProfileID,
		StartupID:  c.Param("id"),
		Amount:     req.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"investment": investment})
}
