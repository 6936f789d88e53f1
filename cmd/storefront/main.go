package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wheelhouse/storefront/auth"
	"github.com/wheelhouse/storefront/config"
	"github.com/wheelhouse/storefront/handler"
	"github.com/wheelhouse/storefront/logger"
	"github.com/wheelhouse/storefront/mailer"
	"github.com/wheelhouse/storefront/password"
	"github.com/wheelhouse/storefront/server"
	"github.com/wheelhouse/storefront/server/middleware"
	"github.com/wheelhouse/storefront/session"
	"github.com/wheelhouse/storefront/store"
	"github.com/wheelhouse/storefront/version"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		logger.NewDefault("storefront").Fatal("invalid configuration", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
	}

	log := logger.New(&cfg.Logging, "storefront")
	log.Info("starting", map[string]interface{}{"version": version.Short()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		log.Fatal("store connection failed", logger.ErrorFields("connect", err))
	}

	sessions, err := session.NewService(session.Config{
		Secret:     cfg.Auth.JWTSecret,
		SessionTTL: time.Duration(cfg.Auth.CookieExpirationDays) * 24 * time.Hour,
		ShortTTL:   cfg.Auth.OtpTTL(),
		Production: cfg.Production,
	})
	if err != nil {
		log.Fatal("session issuer failed", logger.ErrorFields("session", err))
	}

	svc := auth.NewService(auth.Deps{
		Users:    st.Users(),
		Otps:     st.Otps(),
		Resets:   st.ResetTokens(),
		Hasher:   password.NewBcryptHasher(),
		Issuer:   sessions,
		Notifier: mailer.New(cfg.Mail, log),
		Config:   cfg.Auth,
		Logger:   log,
	})

	srv := server.New(cfg.Server, log)
	engine := srv.Engine()
	engine.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORS(middleware.CORSConfig{
			AllowedOrigins:   []string{cfg.Auth.Origin, "http://localhost:3000"},
			AllowCredentials: true,
		}),
		middleware.RateLimit(middleware.RateLimitConfig{RequestsPerMinute: 120}),
		middleware.BodyLimit(0),
		middleware.SessionAuth(sessions),
	)

	engine.GET("/health", func(c *gin.Context) {
		if err := st.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Short()})
	})

	handler.NewAuthHandler(svc, sessions, log).Register(engine)

	if err := srv.Start(ctx); err != nil {
		log.Fatal("server start failed", logger.ErrorFields("start", err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutdown signal received")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("server shutdown failed", logger.ErrorFields("stop", err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Error("store close failed", logger.ErrorFields("close", err))
	}
}
