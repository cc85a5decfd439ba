package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/void-training.net/internal/adapter/console"
	"gitlab.com/void-training.net/internal/adapter/crypto"
	"gitlab.com/void-training.net/internal/adapter/discord"
	memorystore "gitlab.com/void-training.net/internal/adapter/memory/submissionstore"
	postgresstore "gitlab.com/void-training.net/internal/adapter/postgres/submissionstore"
	redisstore "gitlab.com/void-training.net/internal/adapter/redis/submissionstore"
	"gitlab.com/void-training.net/internal/config"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	auth2 "gitlab.com/void-training.net/internal/core/services/auth"
	"gitlab.com/void-training.net/internal/core/services/interaction"
	"gitlab.com/void-training.net/internal/core/services/notify"
	"gitlab.com/void-training.net/internal/core/services/review"
	"gitlab.com/void-training.net/internal/core/services/rolegrant"
	"gitlab.com/void-training.net/internal/core/services/submission"
	"gitlab.com/void-training.net/internal/dispatch"
	logger2 "gitlab.com/void-training.net/internal/global/logger"
	http2 "gitlab.com/void-training.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting submission review service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	// SECONDARY PORTS
	submissionRepo, cleanup, err := setupStore(sysCfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	noticePort, guildPort := setupChatAdapters(sysCfg)

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	dispatcher := dispatch.NewPool(
		sysCfg.DispatchConfig.Workers,
		sysCfg.DispatchConfig.QueueSize,
		sysCfg.DispatchConfig.TaskTimeout,
		logger,
	)

	//services
	notifySvc := notify.NewNotificationService(noticePort, sysCfg.DiscordConfig.FrontendURL, logger)
	submissionSvc := submission.NewSubmissionService(submissionRepo, notifySvc, dispatcher, logger)
	grantSvc := rolegrant.NewRoleGrantService(guildPort, sysCfg.DispatchConfig.GrantTimeout, logger)
	reviewSvc := review.NewReviewService(submissionRepo, grantSvc, dispatcher, sysCfg.DiscordConfig.VerifiedRoleName, logger)
	interactionSvc := interaction.NewInteractionService(reviewSvc, logger)
	discordAuth := auth2.NewDiscordAuthService(jwtProvider)

	serviceProvider := http2.NewServiceProvider(submissionSvc, reviewSvc, interactionSvc, discordAuth, jwtProvider)

	//server
	httServer := http2.NewServer(sysCfg.HTTPConfig.Port, "submissionReview", *serviceProvider, sysCfg.DiscordConfig, logger)
	if err := httServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)
	dispatcher.Stop()

	logger.Info("successfully shutdown server")
}

// setupStore selects the submission store from STORE_BACKEND
func setupStore(sysCfg *config.AppConfig) (secondary.SubmissionRepository, func(), error) {
	logger := logger2.Logger

	switch sysCfg.StoreConfig.Backend {
	case config.StoreBackendPostgres:
		db, err := sqlx.Open("postgres", sysCfg.PostgresConfig.Url)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		logger.Info("Using postgres submission store")
		return postgresstore.New(db, logger), func() { _ = db.Close() }, nil

	case config.StoreBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     sysCfg.RedisConfig.Url,
			Password: sysCfg.RedisConfig.Password,
			DB:       sysCfg.RedisConfig.DB,
		})
		logger.Info("Using redis submission store")
		return redisstore.New(redisClient, logger), func() { _ = redisClient.Close() }, nil

	default:
		logger.Info("Using in-memory submission store")
		return memorystore.New(), func() {}, nil
	}
}

// setupChatAdapters wires the Discord integration, falling back to the
// console adapter when no bot token is configured.
func setupChatAdapters(sysCfg *config.AppConfig) (secondary.NoticePort, secondary.GuildPort) {
	logger := logger2.Logger

	if sysCfg.DiscordConfig.BotToken == "" {
		logger.Warn("No Discord bot token configured, using console adapter")
		adapter := console.New(logger)
		return adapter, adapter
	}

	client, err := discord.NewClient(sysCfg.DiscordConfig, logger)
	if err != nil {
		logger.Error("Failed to create Discord client, using console adapter", "error", err)
		adapter := console.New(logger)
		return adapter, adapter
	}

	return client, client
}

func InitReader() {
	environment := "local"
	if len(os.Args) >= 2 {
		environment = os.Args[1]
	}

	if err := godotenv.Load(environment + ".env"); err != nil {
		logger2.Warn("No env file loaded", "file", environment+".env")
	}
}
