package config

import (
	"context"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

// ConnectMongo establishes the MongoDB connection and ensures the indexes the
// registry relies on.
func ConnectMongo(cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(cfg.MongoDatabase)

	if err := ensureIndexes(cfg, db); err != nil {
		return nil, err
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(cfg.MongoURI)),
		zap.String("database", cfg.MongoDatabase),
	)

	return db, nil
}

// maskMongoURI masks credentials embedded in a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at == -1 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}

// ensureIndexes creates required indexes if they don't exist
func ensureIndexes(cfg *Config, db *mongo.Database) error {
	logger := zap.L().Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return ensurePessoaIndex(ctx, cfg, db, logger)
}

// ensurePessoaIndex creates the unique index on the normalized CPF for the
// pessoa collection. The index is the uniqueness guarantee: concurrent writes
// racing on the same CPF are resolved here, not by any pre-check.
func ensurePessoaIndex(ctx context.Context, cfg *Config, db *mongo.Database, logger *zap.Logger) error {
	collection := db.Collection(cfg.PessoaCollection)

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok && name == "cpf_digitos_1" {
			indexExists = true
			break
		}
	}

	if indexExists {
		logger.Debug("pessoa collection index already exists", zap.String("collection", cfg.PessoaCollection))
		return nil
	}

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "cpf_digitos", Value: 1}},
		Options: options.Index().
			SetName("cpf_digitos_1").
			SetUnique(true),
	}

	_, err = collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		// Another instance may have created it in the meantime
		if mongo.IsDuplicateKeyError(err) {
			logger.Info("pessoa index already exists (created by another instance)",
				zap.String("collection", cfg.PessoaCollection))
			return nil
		}
		logger.Error("failed to create pessoa index",
			zap.String("collection", cfg.PessoaCollection),
			zap.Error(err))
		return err
	}

	logger.Info("created pessoa collection index",
		zap.String("collection", cfg.PessoaCollection),
		zap.String("index", "cpf_digitos_1"))
	return nil
}
