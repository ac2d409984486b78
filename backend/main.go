package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"triply/internal/assistant"
	"triply/internal/config"
	"triply/internal/logger"
	"triply/internal/planner"
	"triply/internal/store"
)

type server struct {
	cfg       *config.Config
	store     store.Store
	assistant *assistant.Service
	planner   planner.Planner
	limiter   *ipRateLimiter
	logger    *zap.Logger
}

func newServer(cfg *config.Config, st store.Store, pl planner.Planner, lg *zap.Logger, opts ...assistant.Option) *server {
	base := []assistant.Option{
		assistant.WithCurrency(cfg.CurrencyCode),
		assistant.WithThinkingDelay(cfg.ThinkingMin, cfg.ThinkingMax),
		assistant.WithLogger(lg),
	}
	return &server{
		cfg:       cfg,
		store:     st,
		assistant: assistant.NewService(append(base, opts...)...),
		planner:   pl,
		limiter:   newIPRateLimiter(cfg.ChatRatePerMinute, cfg.ChatRateBurst),
		logger:    lg,
	}
}

// ========== Router ==========

func setupRouter(s *server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(s.cfg.CORSOrigins) == 0 || slices.Contains(s.cfg.CORSOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now(),
			})
		})

		// trips
		api.GET("/trips", s.listTrips)
		api.GET("/trips/:id", s.getTrip)
		api.POST("/trips", s.createTrip)
		api.PUT("/trips/:id", s.updateTrip)
		api.DELETE("/trips/:id", s.deleteTrip)

		// assistant
		api.POST("/trips/:id/chat", s.limiter.middleware(), s.chat)
		api.GET("/trips/:id/messages", s.listMessages)
		api.GET("/trips/:id/insights", s.insights)

		// structured payloads
		api.POST("/trips/:id/itinerary", s.saveItinerary)
		api.POST("/trips/:id/suggestions/apply", s.applySuggestion)
		api.POST("/trips/:id/receipts", s.saveReceipt)

		api.POST("/planner/suggestions", s.planSuggestions)
	}
	return r
}

func requestLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		lg.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// ========== Main ==========

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Init(cfg.Development(), logger.LogLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	lg := logger.Get()

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	money, err := assistant.NewCurrencyFormatter(cfg.CurrencyCode)
	if err != nil {
		lg.Fatal("currency", zap.Error(err))
	}
	pl, closePlanner := openPlanner(ctx, cfg, money.Format, lg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(newServer(cfg, st, pl, lg)),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		lg.Info("server running", zap.String("addr", "http://localhost"+srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("listen", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := closePlanner(); err != nil {
		lg.Warn("close planner", zap.Error(err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		lg.Warn("close store", zap.Error(err))
	}
}
