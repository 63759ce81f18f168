package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	_ "event-lottery-backend/docs"
	"event-lottery-backend/internal/common/config"
	"event-lottery-backend/internal/common/logger"
	"event-lottery-backend/internal/common/middleware"
	lotteryhttp "event-lottery-backend/internal/features/lottery/delivery/http"
	"event-lottery-backend/internal/features/lottery/notify"
	redisrepo "event-lottery-backend/internal/features/lottery/repository/redis"
	"event-lottery-backend/internal/features/lottery/service"
	"event-lottery-backend/internal/platform/kafka"
	platformredis "event-lottery-backend/internal/platform/redis"
)

// @title Event Lottery API
// @version 1.0
// @description Randomized, capacity-bounded allocation of event spots with waitlists, response deadlines and automatic backfill.

// @host localhost:8080
// @BasePath /api/v1

// @tag.name events
// @tag.description Event management - creation, configuration and counters

// @tag.name waitlist
// @tag.description Waiting list - joining, leaving, responses and organizer removals

// @tag.name draws
// @tag.description Randomized draws and their audit log

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config load: %v", err))
	}

	logger.Init("event-lottery-backend", cfg.Debug)

	rdb, err := platformredis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")

	repo := redisrepo.New(rdb)

	var dispatcher notify.Dispatcher = &notify.LogDispatcher{Logger: logger.With("notify")}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			RetryMax:     cfg.Kafka.RetryMax,
			RequiredAcks: cfg.Kafka.RequiredAcks,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer producer.Close()
		dispatcher = notify.NewKafkaDispatcher(producer, cfg.Kafka.Topic, logger.With("notify"))
	}

	svc := service.New(repo, dispatcher, nil, service.SystemClock(), logger.With("lottery"), service.Options{
		ResponseWindow: cfg.Lottery.ResponseWindow,
		LockWait:       cfg.Lottery.LockWait,
	})
	sweeper := service.NewSweeper(svc, cfg.Lottery.SweepInterval, logger.With("sweeper"))

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	lotteryhttp.NewLotteryHandler(svc).RegisterRoutes(v1)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	group.Go(func() error {
		err := sweeper.Run(groupCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := group.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
	logger.Info().Msg("Server exited")
}
