package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/config"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// PessoaService is the registry store: a keyed collection of canonical Pessoa
// records with a uniqueness constraint on the normalized CPF. The constraint
// is enforced by the unique index on cpf_digitos; a duplicate-key error on
// write is the conflict signal, so check-then-write races cannot violate it.
type PessoaService struct {
	database *mongo.Database
	cfg      *config.Config
	logger   *zap.Logger
}

// NewPessoaService creates a new pessoa service instance
func NewPessoaService(database *mongo.Database, cfg *config.Config, logger *zap.Logger) *PessoaService {
	return &PessoaService{
		database: database,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *PessoaService) collection() *mongo.Collection {
	return s.database.Collection(s.cfg.PessoaCollection)
}

// nextID atomically allocates the next surrogate id from the counter
// document. Ids are monotonic and never reused.
func (s *PessoaService) nextID(ctx context.Context) (int64, error) {
	counters := s.database.Collection(s.cfg.CounterCollection)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := utils.FindOneAndUpdateWithTimeout(ctx, counters,
		bson.M{"_id": s.cfg.PessoaCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		&counter,
		utils.DefaultQueryTimeout,
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate pessoa id: %w", err)
	}
	return counter.Seq, nil
}

// List returns all records matching the optional filters, in insertion order.
// nome is a case-insensitive substring match on the stored name; cpf is a
// substring match on the stored digit-string.
func (s *PessoaService) List(ctx context.Context, nome, cpf string) ([]models.Pessoa, error) {
	filter := bson.M{}
	if nome != "" {
		filter["nome"] = bson.M{"$regex": regexp.QuoteMeta(nome), "$options": "i"}
	}
	if cpf != "" {
		filter["cpf_digitos"] = bson.M{"$regex": regexp.QuoteMeta(utils.CPFDigits(cpf))}
	}

	cursor, err := utils.FindWithTimeout(ctx, s.collection(), filter, utils.DefaultQueryTimeout,
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to list pessoas: %w", err)
	}
	defer cursor.Close(ctx)

	pessoas := []models.Pessoa{}
	if err := cursor.All(ctx, &pessoas); err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to decode pessoas: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	return pessoas, nil
}

// Get returns the record addressed by id, or ErrPessoaNotFound.
func (s *PessoaService) Get(ctx context.Context, id int64) (*models.Pessoa, error) {
	var pessoa models.Pessoa
	err := utils.FindOneWithTimeout(ctx, s.collection(), bson.M{"_id": id}, &pessoa, utils.DefaultQueryTimeout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrPessoaNotFound
		}
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to get pessoa: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	return &pessoa, nil
}

// Create assigns a fresh id, stamps both timestamps and persists the record.
// A concurrent create holding the same normalized CPF loses against the
// unique index and surfaces as ErrCPFDuplicado.
func (s *PessoaService) Create(ctx context.Context, pessoa *models.Pessoa) error {
	id, err := s.nextID(ctx)
	if err != nil {
		return err
	}

	// Mongo stores timestamps at millisecond precision; truncate so the
	// stored record round-trips equal to the response body
	now := time.Now().UTC().Truncate(time.Millisecond)
	pessoa.ID = id
	pessoa.CPFDigitos = utils.CPFDigits(pessoa.CPF)
	pessoa.DataCadastro = now
	pessoa.DataAtualizacao = now

	_, err = utils.InsertOneWithTimeout(ctx, s.collection(), pessoa, utils.DefaultQueryTimeout)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			observability.DuplicateCPFConflicts.Inc()
			return models.ErrCPFDuplicado
		}
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		return fmt.Errorf("failed to insert pessoa: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()
	s.logger.Info("pessoa created",
		zap.Int64("id", pessoa.ID),
		zap.String("cpf", observability.MaskCPF(pessoa.CPFDigitos)))
	return nil
}

// Update overwrites all mutable fields of the record addressed by id and
// re-stamps data_atualizacao. The id and data_cadastro are never touched.
func (s *PessoaService) Update(ctx context.Context, id int64, pessoa *models.Pessoa) error {
	pessoa.CPFDigitos = utils.CPFDigits(pessoa.CPF)

	update := bson.M{
		"$set": bson.M{
			"nome":             pessoa.Nome,
			"sexo":             pessoa.Sexo,
			"email":            pessoa.Email,
			"data_nascimento":  pessoa.DataNascimento,
			"naturalidade":     pessoa.Naturalidade,
			"nacionalidade":    pessoa.Nacionalidade,
			"cpf":              pessoa.CPF,
			"cpf_digitos":      pessoa.CPFDigitos,
			"data_atualizacao": time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	result, err := utils.UpdateOneWithTimeout(ctx, s.collection(), bson.M{"_id": id}, update, utils.DefaultQueryTimeout)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			observability.DuplicateCPFConflicts.Inc()
			return models.ErrCPFDuplicado
		}
		observability.DatabaseOperations.WithLabelValues("update", "error").Inc()
		return fmt.Errorf("failed to update pessoa: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrPessoaNotFound
	}

	observability.DatabaseOperations.WithLabelValues("update", "success").Inc()
	s.logger.Info("pessoa updated",
		zap.Int64("id", id),
		zap.String("cpf", observability.MaskCPF(pessoa.CPFDigitos)))
	return nil
}

// Delete permanently removes the record addressed by id.
func (s *PessoaService) Delete(ctx context.Context, id int64) error {
	result, err := utils.DeleteOneWithTimeout(ctx, s.collection(), bson.M{"_id": id}, utils.DefaultQueryTimeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("failed to delete pessoa: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrPessoaNotFound
	}

	observability.DatabaseOperations.WithLabelValues("delete", "success").Inc()
	s.logger.Info("pessoa deleted", zap.Int64("id", id))
	return nil
}
