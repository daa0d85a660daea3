package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"motorhub/internal/cache"
	"motorhub/internal/enquiry"
	"motorhub/internal/listings"
	"motorhub/internal/pages"
	"motorhub/internal/upstream"
	"motorhub/pkg/database"
	"motorhub/pkg/utils"
)

func main() {
	cfg := utils.LoadConfig()
	site := utils.LoadSiteProfile(cfg.SiteProfilePath)

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	store := cache.NewStore(cfg.CachePath, cfg.CacheTimeout)
	client := upstream.NewClient(cfg.APIURL, cfg.APIUsername, cfg.APIPassword)
	svc := listings.NewService(store, client)

	listings.NewHandler(svc, site).RegisterRoutes(router)
	pages.NewHandler(site).RegisterRoutes(router)

	enquiryRepo := enquiry.NewRepo(db)
	enquiry.NewHandler(enquiryRepo, site).RegisterRoutes(router)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
