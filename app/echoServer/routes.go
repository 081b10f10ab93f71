package echoServer

import (
	adminctrl "bikerental/app/echoServer/controller/admin"
	authctrl "bikerental/app/echoServer/controller/auth"
	bicyclectrl "bikerental/app/echoServer/controller/bicycle"
	bookingctrl "bikerental/app/echoServer/controller/booking"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *authctrl.Controller
	Bicycle   *bicyclectrl.Controller
	Booking   *bookingctrl.Controller
	Admin     *adminctrl.Controller
	JWTSecret string
	UploadDir string
}

func Register(e *echo.Echo, c C) {
	jwtmw := echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	})

	// Public
	pub := e.Group("/api")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)
	pub.POST("/admin/login", c.Admin.Login)

	pub.GET("/bicycles", c.Bicycle.List)
	pub.GET("/bicycles/search", c.Bicycle.Search)
	pub.GET("/bicycles/:id", c.Bicycle.Detail)

	pub.Static("/uploads", c.UploadDir)

	// Authenticated renters
	auth := e.Group("/api", jwtmw, ExtractClaims())
	auth.POST("/bookings", c.Booking.Create)
	auth.GET("/bookings/my-bookings", c.Booking.MyBookings)
	auth.POST("/bookings/:id/cancel", c.Booking.Cancel)

	// Admin-only booking surface
	auth.GET("/bookings", c.Booking.ListAll, RequireAdmin())
	auth.PATCH("/bookings/:id/status", c.Booking.UpdateStatus, RequireAdmin())

	// Admin console
	admin := e.Group("/api/admin", jwtmw, ExtractClaims(), RequireAdmin())
	admin.GET("/profile", c.Admin.Profile)
	admin.GET("/bicycles", c.Admin.ListBicycles)
	admin.POST("/bicycles", c.Admin.CreateBicycle)
	admin.PUT("/bicycles/:id", c.Admin.UpdateBicycle)
	admin.DELETE("/bicycles/:id", c.Admin.DeleteBicycle)
	admin.GET("/bookings", c.Admin.ListBookings)
	admin.PUT("/bookings/:id", c.Admin.UpdateBookingStatus)
}
