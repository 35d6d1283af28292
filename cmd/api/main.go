package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"loan-portal/internal/adapter/repository/gormrepo"
	"loan-portal/internal/adapter/restapi"
	"loan-portal/internal/config"
	"loan-portal/internal/infrastructure/db"
	"loan-portal/internal/notify"
	"loan-portal/internal/usecase/admin"
	"loan-portal/internal/usecase/enquiry"
	"loan-portal/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.ValidateAPI(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := gormrepo.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	tokens := admin.NewTokens(cfg.JWTSecret, cfg.JWTExpiry)
	adminUC := admin.NewUsecase(gormrepo.NewGormUoW(gdb), gormrepo.NewAdminRepository(gdb), tokens)
	if err := adminUC.Seed(context.Background(), cfg.SeedAdminName, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatalf("seed: %v", err)
	}
	mailer := notify.New(notify.Config{APIKey: cfg.SendGridAPIKey, From: cfg.MailFrom, FromName: cfg.MailFromName})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())

	restapi.Register(e, restapi.Handlers{
		Loans:     restapi.NewLoanHandler(loan.NewUsecase(gormrepo.NewLoanRepository(gdb), mailer)),
		Enquiries: restapi.NewEnquiryHandler(enquiry.NewUsecase(gormrepo.NewEnquiryRepository(gdb))),
		Admins:    restapi.NewAdminHandler(adminUC),
		Tokens:    tokens,
	})

	go func() {
		addr := ":" + cfg.APIPort
		log.Printf("api listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down api...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("api stopped")
}
