package booking

import (
	"log/slog"
	"net/http"
	"strconv"

	"bikerental/model"
	bs "bikerental/service/booking"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/bookings
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	out, err := h.Svc.Create(c.Request().Context(), uid, bs.CreateInput{
		BicycleID: req.BicycleID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  model.BillingMode(req.Duration),
	})
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrBicycleNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "bicycle not found"})
		case bs.ErrNotAvailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "bicycle is not available"})
		case bs.ErrBadWindow:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end time must be after start time"})
		case bs.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid duration"})
		default:
			h.Log.Error("booking create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, out)
}

// GET /api/bookings/my-bookings
func (h *Controller) MyBookings(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.MyBookings(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("my bookings", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []bs.Row{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/bookings (admin)
func (h *Controller) ListAll(c echo.Context) error {
	rows, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error("booking list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []bs.Row{}
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /api/bookings/:id/cancel
func (h *Controller) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := c.Get("user_id").(int64)

	out, err := h.Svc.Transition(c.Request().Context(), bs.Actor{UserID: uid}, id, model.BookingCancelled)
	if err != nil {
		return h.transitionError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// PATCH /api/bookings/:id/status (admin)
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(int64)

	out, err := h.Svc.Transition(c.Request().Context(), bs.Actor{UserID: uid, IsAdmin: true}, id, model.BookingStatus(req.Status))
	if err != nil {
		return h.transitionError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Controller) transitionError(c echo.Context, err error) error {
	switch bs.Code(err) {
	case bs.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
	case bs.ErrNotOwner:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "not authorized for this booking"})
	case bs.ErrNotPending:
		return c.JSON(http.StatusConflict, echo.Map{"message": "cannot cancel this booking"})
	case bs.ErrBadStatus:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
	default:
		h.Log.Error("booking transition", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
