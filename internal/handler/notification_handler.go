package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diicsu/room-booking-service/internal/dto"
	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/service"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/notifications", h.ListNotifications)
	e.PATCH("/api/v1/notifications/:id", h.MarkNotification)
	e.GET("/api/v1/bookings/:id/notifications", h.ListBookingNotifications)
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	var status *models.NotificationStatus
	if s := c.QueryParam("status"); s != "" {
		ns := models.NotificationStatus(s)
		status = &ns
	}

	notifications, err := h.svc.ListNotifications(c.Request().Context(), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toNotificationResponses(notifications))
}

func (h *NotificationHandler) ListBookingNotifications(c echo.Context) error {
	notifications, err := h.svc.ListForBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toNotificationResponses(notifications))
}

func (h *NotificationHandler) MarkNotification(c echo.Context) error {
	var req dto.MarkNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	notification, err := h.svc.MarkDelivery(c.Request().Context(), c.Param("id"), models.NotificationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidNotificationStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotificationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

func toNotificationResponses(notifications []models.Notification) []dto.NotificationResponse {
	resp := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = dto.ToNotificationResponse(&n)
	}
	return resp
}
