// Package main bicycle rental API.
//
// @title           Bicycle Rental API
// @version         1.0
// @description     Bicycle rental marketplace (catalog, bookings, admin console).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"bikerental/app/echoServer"
	adminctrl "bikerental/app/echoServer/controller/admin"
	authctrl "bikerental/app/echoServer/controller/auth"
	bicyclectrl "bikerental/app/echoServer/controller/bicycle"
	bookingctrl "bikerental/app/echoServer/controller/booking"
	"bikerental/app/echoServer/validation"
	"bikerental/config"
	adminrepo "bikerental/repository/admin"
	bicyclerepo "bikerental/repository/bicycle"
	bookingrepo "bikerental/repository/booking"
	userrepo "bikerental/repository/user"
	authsvc "bikerental/service/auth"
	bicyclesvc "bikerental/service/bicycle"
	bookingsvc "bikerental/service/booking"
	"bikerental/util/database"
	"bikerental/util/upload"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	media, err := upload.New(cfg.UploadDir)
	if err != nil {
		log.Error("upload dir init failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	ar := adminrepo.New(db)
	bcr := bicyclerepo.New(db)
	bkr := bookingrepo.New(db)

	// services
	as := authsvc.New(ur, ar, cfg.JWTSecret)
	bcs := bicyclesvc.New(bcr, media)
	bks := bookingsvc.New(bkr, bcr)

	if err := as.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error("admin seed failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bicycleC := &bicyclectrl.Controller{Svc: bcs, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bks, V: v, Log: log}
	adminC := &adminctrl.Controller{Auth: as, Bicycles: bcs, Bookings: bks, Media: media, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Bicycle:   bicycleC,
		Booking:   bookingC,
		Admin:     adminC,
		JWTSecret: cfg.JWTSecret,
		UploadDir: media.Dir(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
