package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cadastro/internal/config"
	"github.com/prefeitura-rio/app-cadastro/internal/handlers"
	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/middleware"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-cadastro/docs"
)

// @title           Cadastro de Pessoas API
// @version         1.0
// @description     API versionada para cadastro de pessoas. A v1 expõe o formato plano; a v2 aceita adicionalmente um endereço obrigatório no cadastro. O CPF, depois de normalizado para 11 dígitos, é único entre os registros.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name pessoas
// @tag.description Operações sobre pessoas

// @tag.name auth
// @tag.description Autenticação

// @tag.name health
// @tag.description Verificação de saúde

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	// Initialize database connections
	db, err := config.ConnectMongo(cfg)
	if err != nil {
		logging.Logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	redisClient := config.ConnectRedis(cfg)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build components
	pessoaService := services.NewPessoaService(db, cfg, logging.Logger.Named("pessoa_service"))
	pessoaCache := services.NewPessoaCache(redisClient, cfg.RedisTTL, logging.Logger.Named("pessoa_cache"))
	pessoaHandler := handlers.NewPessoaHandler(pessoaService, pessoaCache, logging.Logger.Named("pessoa_handler"))
	authHandler := handlers.NewAuthHandler(cfg, logging.Logger.Named("auth_handler"))
	healthHandler := handlers.NewHealthHandler(db)

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	// Login endpoint (public)
	router.POST("/api/auth/login", authHandler.Login)

	// Resource routes, all behind the bearer-token gate
	api := router.Group("/api", middleware.AuthMiddleware(cfg))
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/pessoas", pessoaHandler.ListPessoas)
			v1.GET("/pessoas/:id", pessoaHandler.GetPessoa)
			v1.POST("/pessoas", pessoaHandler.CreatePessoa)
			v1.PUT("/pessoas/:id", pessoaHandler.UpdatePessoa)
			v1.DELETE("/pessoas/:id", pessoaHandler.DeletePessoa)
		}

		v2 := api.Group("/v2")
		{
			v2.GET("/pessoas", pessoaHandler.ListPessoas)
			v2.GET("/pessoas/:id", pessoaHandler.GetPessoa)
			v2.POST("/pessoas", pessoaHandler.CreatePessoaV2)
		}

		// Unversioned requests default to v1
		api.GET("/pessoas", pessoaHandler.ListPessoas)
		api.GET("/pessoas/:id", pessoaHandler.GetPessoa)
		api.POST("/pessoas", pessoaHandler.CreatePessoa)
		api.PUT("/pessoas/:id", pessoaHandler.UpdatePessoa)
		api.DELETE("/pessoas/:id", pessoaHandler.DeletePessoa)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
