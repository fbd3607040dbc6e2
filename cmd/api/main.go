// @title                       LawHub API
// @version                     1.0
// @description                 Legal assistance backend: situation wizard, law explorer, document scan, chat and emergency info.
// @BasePath                    /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "LawHub_LegalAssistant/docs"
	"LawHub_LegalAssistant/internal/auth"
	"LawHub_LegalAssistant/internal/config"
	"LawHub_LegalAssistant/internal/handler"
	"LawHub_LegalAssistant/internal/laws"
	"LawHub_LegalAssistant/internal/logger"
	"LawHub_LegalAssistant/internal/storage"
	"LawHub_LegalAssistant/internal/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET_KEY is not set, using the default key")
	}

	catalog, err := wizard.DefaultCatalog()
	if err != nil {
		log.Fatal("Failed to load scenario catalog", zap.Error(err))
	}
	library, err := laws.DefaultLibrary()
	if err != nil {
		log.Fatal("Failed to load law library", zap.Error(err))
	}
	store, err := storage.Open(cfg.DBPath, log.Named("storage"))
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer store.Close()
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("Failed to set up tokens", zap.Error(err))
	}

	h := handler.New(catalog, library, store, tokens, handler.Options{
		PageTTL:            cfg.PageTTL,
		ChatReplyDelay:     cfg.ChatReplyDelay,
		AnalysisDelay:      cfg.AnalysisDelay,
		TranscriptionDelay: cfg.TranscriptionDelay,
		LocateDelay:        cfg.LocateDelay,
	}, log.Named("handler"))

	gin.SetMode(gin.ReleaseMode)
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}
	router := newRouter(cfg, h, tokens, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second, // chat replies and analyses are delayed on purpose
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exiting")
}
