package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cotacao_ia/internal/adapter/http/handlers"
	"cotacao_ia/internal/adapter/persistence/repository"
	"cotacao_ia/internal/config"
	"cotacao_ia/internal/infrastructure/database"
	"cotacao_ia/internal/infrastructure/llm"
	"cotacao_ia/internal/infrastructure/pricing"
	"cotacao_ia/internal/infrastructure/sheets"
	"cotacao_ia/internal/observability/metrics"
	"cotacao_ia/internal/usecase"
	"cotacao_ia/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAPI = "/api"

	shutdownTimeout = 10 * time.Second
)

// Handlers groups the HTTP handlers mounted under PathAPI.
type Handlers struct {
	Chat  *handlers.ChatHandler
	Quote *handlers.QuoteHandler
}

// Run wires the service from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	h, cleanup, err := getHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: NewRouter(cfg, h),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("[http][routes] server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("[http][routes] shutting down")
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addChatRoutes(api, h.Chat)
	addQuoteRoutes(api, h.Quote)

	return router
}

func getHandlers(ctx context.Context, cfg *config.Config) (Handlers, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	m := metrics.NewQuoteMetrics(nil)

	completion, closeCompletion, err := newCompletionClient(ctx, cfg.Completion)
	if err != nil {
		return Handlers{}, func() {}, err
	}
	closers = append(closers, closeCompletion)

	var sheet interfaces.ILeadSheet
	if cfg.Sheets.Configured() {
		client, err := sheets.NewClientFromCredentials(ctx, cfg.Sheets.CredentialsJSON, cfg.Sheets.SpreadsheetID, cfg.Sheets.Range)
		if err != nil {
			cleanup()
			return Handlers{}, func() {}, err
		}
		sheet = client
	} else {
		log.Warn().Msg("[lead][routes] spreadsheet not configured, leads will not be recorded")
	}

	markers, closeMarkers, err := newLeadMarkerRepository(ctx, cfg)
	if err != nil {
		cleanup()
		return Handlers{}, func() {}, err
	}
	closers = append(closers, closeMarkers)

	var gateway interfaces.IPricingGateway
	if cfg.Pricing.APIKey != "" {
		gateway = pricing.NewTrindadeGateway(cfg.Pricing.BaseURL, cfg.Pricing.APIKey, cfg.Pricing.Timeout)
	} else {
		log.Info().Msg("[quote][routes] pricing API key absent, quotes will be simulated")
	}

	leadUseCase := usecase.NewLeadRecorderUseCase(sheet, markers, cfg.Leads.Location(), m)
	chatUseCase := usecase.NewChatUseCase(completion, leadUseCase, usecase.ChatSettings{
		Model:       cfg.Completion.OpenAIModel,
		MaxTokens:   cfg.Completion.MaxTokens,
		Temperature: cfg.Completion.Temperature,
	}, m)
	quoteUseCase := usecase.NewQuoteUseCase(gateway, m)

	return Handlers{
		Chat:  handlers.NewChatHandler(chatUseCase),
		Quote: handlers.NewQuoteHandler(quoteUseCase),
	}, cleanup, nil
}

// newCompletionClient returns OpenAI as primary and Gemini as fallback when
// both keys are present, either one alone otherwise, or nil with no keys.
func newCompletionClient(ctx context.Context, cfg config.CompletionConfig) (interfaces.ICompletionClient, func(), error) {
	noop := func() {}

	var primary, fallback interfaces.ICompletionClient
	closeFn := noop

	if cfg.OpenAIAPIKey != "" {
		client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		if err != nil {
			return nil, noop, err
		}
		primary = client
	}
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		fallback = client
		closeFn = func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("[chat][routes] closing gemini client")
			}
		}
	}

	switch {
	case primary != nil && fallback != nil:
		return llm.NewFallbackClient(primary, fallback), closeFn, nil
	case primary != nil:
		return primary, closeFn, nil
	case fallback != nil:
		return fallback, closeFn, nil
	}
	log.Warn().Msg("[chat][routes] no completion provider configured, /api/chat will answer 503")
	return nil, noop, nil
}

func newLeadMarkerRepository(ctx context.Context, cfg *config.Config) (interfaces.ILeadMarkerRepository, func(), error) {
	noop := func() {}
	switch cfg.Leads.MarkerBackend {
	case config.MarkerBackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.Leads.RedisAddr, cfg.Leads.RedisPassword)
		if err != nil {
			return nil, noop, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("[lead][routes] closing redis client")
			}
		}
		return repository.NewLeadMarkerRedisRepository(client, cfg.Leads.MarkerTTL), closeFn, nil
	case config.MarkerBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewLeadMarkerDynamoRepository(ddb, cfg.Leads.MarkersTable, cfg.Leads.MarkerTTL), noop, nil
	default:
		return repository.NewLeadMarkerMemoryRepository(cfg.Leads.MarkerTTL), noop, nil
	}
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("[http][routes] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
