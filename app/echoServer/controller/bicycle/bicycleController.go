package bicycle

import (
	"log/slog"
	"net/http"
	"strconv"

	"bikerental/model"
	bicyclesvc "bikerental/service/bicycle"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bicyclesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/bicycles
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.Search(c.Request().Context(), bicyclesvc.Filter{})
	if err != nil {
		h.Log.Error("bicycle list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/bicycles/search?type=&minPrice=&maxPrice=&location=
func (h *Controller) Search(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	rows, err := h.Svc.Search(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("bicycle search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.Bicycle{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/bicycles/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if bicyclesvc.Code(err) == bicyclesvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "bicycle not found"})
		}
		h.Log.Error("bicycle detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}
