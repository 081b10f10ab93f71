package admin

import (
	"errors"
	"strconv"
	"strings"

	"bikerental/model"

	"github.com/labstack/echo/v4"
)

// bindBicycleForm reads the multipart fleet form. The image file is handled
// by the caller; status defaults to available on create.
func bindBicycleForm(c echo.Context) (*model.Bicycle, error) {
	b := &model.Bicycle{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Type:        model.BicycleType(c.FormValue("type")),
		Description: c.FormValue("description"),
		Location:    strings.TrimSpace(c.FormValue("location")),
		Status:      model.BicycleStatus(c.FormValue("status")),
	}

	var err error
	if b.Price, err = formFloat(c, "price"); err != nil {
		return nil, err
	}
	if b.PricePerHour, err = formFloat(c, "price_per_hour"); err != nil {
		return nil, err
	}
	if b.PricePerDay, err = formFloat(c, "price_per_day"); err != nil {
		return nil, err
	}
	return b, nil
}

func formFloat(c echo.Context, key string) (float64, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	if f < 0 {
		return 0, errors.New(key + " must be >= 0")
	}
	return f, nil
}
