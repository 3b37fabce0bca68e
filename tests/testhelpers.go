package tests

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prefeitura-rio/app-cadastro/internal/config"
	"github.com/prefeitura-rio/app-cadastro/internal/handlers"
	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/middleware"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
)

// TestEnv holds the containers and wired components for an API test run
type TestEnv struct {
	Cfg     *config.Config
	MongoDB *mongo.Database
	Redis   *goredis.Client
	Router  *gin.Engine
	Cleanup func()
}

// SetupTestEnv starts MongoDB and Redis containers and wires the full router
// the way cmd/api does.
func SetupTestEnv(t *testing.T) *TestEnv {
	ctx := context.Background()

	require.NoError(t, logging.InitLogger(), "failed to initialize logger")

	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7.0",
		mongodb.WithUsername("root"),
		mongodb.WithPassword("password"),
	)
	require.NoError(t, err, "failed to start MongoDB container")

	redisContainer, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start Redis container")

	mongoURI, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get MongoDB connection string")

	redisURI, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get Redis connection string")
	// ConnectionString returns redis://host:port; the client wants host:port
	redisAddr := strings.TrimPrefix(redisURI, "redis://")

	cfg := &config.Config{
		Port:              8080,
		Environment:       "test",
		MongoURI:          mongoURI,
		MongoDatabase:     "cadastro_test",
		RedisURI:          redisAddr,
		RedisTTL:          time.Minute,
		PessoaCollection:  "pessoas",
		CounterCollection: "counters",
		JWTSecret:         "e2e-test-secret",
		JWTExpiration:     time.Hour,
		AdminUsername:     "admin",
		AdminPassword:     "password123",
	}

	db, err := config.ConnectMongo(cfg)
	require.NoError(t, err, "failed to connect to MongoDB")

	redisClient := config.ConnectRedis(cfg)

	cleanup := func() {
		_ = redisClient.Close()
		_ = db.Client().Disconnect(context.Background())
		_ = redisContainer.Terminate(context.Background())
		_ = mongoContainer.Terminate(context.Background())
	}

	return &TestEnv{
		Cfg:     cfg,
		MongoDB: db,
		Redis:   redisClient,
		Router:  BuildRouter(cfg, db, redisClient),
		Cleanup: cleanup,
	}
}

// BuildRouter wires the gin engine with the same routes as cmd/api
func BuildRouter(cfg *config.Config, db *mongo.Database, redisClient *goredis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	pessoaService := services.NewPessoaService(db, cfg, logging.Logger.Named("pessoa_service"))
	pessoaCache := services.NewPessoaCache(redisClient, cfg.RedisTTL, logging.Logger.Named("pessoa_cache"))
	pessoaHandler := handlers.NewPessoaHandler(pessoaService, pessoaCache, logging.Logger.Named("pessoa_handler"))
	authHandler := handlers.NewAuthHandler(cfg, logging.Logger.Named("auth_handler"))
	healthHandler := handlers.NewHealthHandler(db)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", healthHandler.HealthCheck)
	router.POST("/api/auth/login", authHandler.Login)

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

		api.GET("/pessoas", pessoaHandler.ListPessoas)
		api.GET("/pessoas/:id", pessoaHandler.GetPessoa)
		api.POST("/pessoas", pessoaHandler.CreatePessoa)
		api.PUT("/pessoas/:id", pessoaHandler.UpdatePessoa)
		api.DELETE("/pessoas/:id", pessoaHandler.DeletePessoa)
	}

	return router
}
