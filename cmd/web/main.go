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

	httpadp "loan-portal/internal/adapter/http"
	"loan-portal/internal/apiclient"
	"loan-portal/internal/config"
	"loan-portal/internal/infrastructure/cache"
	"loan-portal/internal/session"
	"loan-portal/internal/usecase/listing"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	rdb := cache.OpenOptional(cfg.RedisAddr, cfg.RedisDB)
	lists := listing.NewUsecase(api, cache.NewListCache(rdb, cfg.ListCacheTTL))
	h := httpadp.NewHandler(api, lists, session.NewStore(cfg.SessionCookieName, cfg.CookieSecure))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover(), middleware.Secure())

	opt := httpadp.DefaultOptions()
	opt.Redis = rdb
	opt.SubmissionTTL = cfg.SubmissionTTL
	if err := httpadp.Register(e, h, opt); err != nil {
		log.Fatalf("routes: %v", err)
	}

	go func() {
		addr := ":" + cfg.AppPort
		log.Printf("web listening on %s (api %s)", addr, cfg.APIBaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down web...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Println("web stopped")
}
