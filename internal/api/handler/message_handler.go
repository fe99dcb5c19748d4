package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// MessageHandler serves the shared inbox and the investor contact form.
type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) Inbox(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msgs, err := h.messages.Inbox(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": msgs})
}

type contactRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Contact sends an investor-to-startup message.
func (h *MessageHandler) Contact(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messages.Contact(c.Request().Context(), sess, c.Param("id"), req.Subject, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"sent": msg})
}

func (h *MessageHandler) Conversation(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msgs, err := h.messages.Conversation(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": msgs})
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msg, err := h.messages.MarkRead(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.messages.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
