package bicycle

import (
	"errors"
	"strconv"

	bicyclesvc "bikerental/service/bicycle"

	"github.com/labstack/echo/v4"
)

func parseFilter(c echo.Context) (bicyclesvc.Filter, error) {
	var f bicyclesvc.Filter
	f.Type = c.QueryParam("type")
	f.Location = c.QueryParam("location")

	if v := c.QueryParam("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errors.New("invalid minPrice")
		}
		f.MinPrice = &p
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errors.New("invalid maxPrice")
		}
		f.MaxPrice = &p
	}
	return f, nil
}
