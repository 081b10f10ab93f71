package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"bikerental/model"
	authsvc "bikerental/service/auth"
	bicyclesvc "bikerental/service/bicycle"
	bookingsvc "bikerental/service/booking"
	"bikerental/util/upload"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Auth     authsvc.Service
	Bicycles bicyclesvc.Service
	Bookings bookingsvc.Service
	Media    *upload.Store
	V        *validator.Validate
	Log      *slog.Logger
}

// POST /api/admin/login
func (h *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	token, err := h.Auth.AdminLogin(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
		case authsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("admin login", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// GET /api/admin/profile
func (h *Controller) Profile(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	a, err := h.Auth.AdminProfile(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("admin profile", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if a == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "admin not found"})
	}
	return c.JSON(http.StatusOK, a)
}

// GET /api/admin/bicycles
func (h *Controller) ListBicycles(c echo.Context) error {
	rows, err := h.Bicycles.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error("admin bicycle list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.Bicycle{}
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /api/admin/bicycles (multipart)
func (h *Controller) CreateBicycle(c echo.Context) error {
	b, err := bindBicycleForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		ref, serr := h.Media.Save(fh)
		if serr != nil {
			h.Log.Error("image save", "err", serr)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "image save failed"})
		}
		b.Image = &ref
	}

	out, err := h.Bicycles.Create(c.Request().Context(), b)
	if err != nil {
		if bicyclesvc.Code(err) == bicyclesvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid fields"})
		}
		h.Log.Error("bicycle create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/bicycles/:id (multipart)
func (h *Controller) UpdateBicycle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	b, err := bindBicycleForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	b.ID = id

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		ref, serr := h.Media.Save(fh)
		if serr != nil {
			h.Log.Error("image save", "err", serr)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "image save failed"})
		}
		b.Image = &ref
	}

	out, err := h.Bicycles.Update(c.Request().Context(), b)
	if err != nil {
		switch bicyclesvc.Code(err) {
		case bicyclesvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "bicycle not found"})
		case bicyclesvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid fields"})
		default:
			h.Log.Error("bicycle update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/bicycles/:id
func (h *Controller) DeleteBicycle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Bicycles.Delete(c.Request().Context(), id); err != nil {
		if bicyclesvc.Code(err) == bicyclesvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "bicycle not found"})
		}
		h.Log.Error("bicycle delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bicycle deleted"})
}

// GET /api/admin/bookings
func (h *Controller) ListBookings(c echo.Context) error {
	rows, err := h.Bookings.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error("admin booking list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []bookingsvc.Row{}
	}
	return c.JSON(http.StatusOK, rows)
}

// PUT /api/admin/bookings/:id
func (h *Controller) UpdateBookingStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	uid, _ := c.Get("user_id").(int64)

	out, err := h.Bookings.Transition(c.Request().Context(), bookingsvc.Actor{UserID: uid, IsAdmin: true}, id, model.BookingStatus(req.Status))
	if err != nil {
		switch bookingsvc.Code(err) {
		case bookingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		case bookingsvc.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		default:
			h.Log.Error("admin booking update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}
