package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Messages kept verbatim from the legacy system; the front end matches on them.
const (
	msgCPFJaCadastrado  = "Este CPF já está cadastrado. Para editar, utilize a tela de Consulta."
	msgCPFOutroRegistro = "Este CPF já pertence a outro registro no sistema."
)

// PessoaHandler orchestrates translation, validation and storage for the
// pessoa resource, one logical operation per HTTP verb.
type PessoaHandler struct {
	service *services.PessoaService
	cache   *services.PessoaCache
	logger  *zap.Logger
}

// NewPessoaHandler creates a new pessoa handler instance
func NewPessoaHandler(service *services.PessoaService, cache *services.PessoaCache, logger *zap.Logger) *PessoaHandler {
	return &PessoaHandler{
		service: service,
		cache:   cache,
		logger:  logger,
	}
}

// ListPessoas godoc
// @Summary Listar pessoas
// @Description Lista as pessoas cadastradas, com filtros opcionais por nome (substring, sem distinção de maiúsculas) e por CPF (substring de dígitos)
// @Tags pessoas
// @Produce json
// @Param nome query string false "Filtro por nome"
// @Param cpf query string false "Filtro por CPF"
// @Security BearerAuth
// @Success 200 {array} models.Pessoa
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/pessoas [get]
func (h *PessoaHandler) ListPessoas(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPessoas")
	defer span.End()

	nome := c.Query("nome")
	cpf := c.Query("cpf")
	span.SetAttributes(
		attribute.String("operation", "list_pessoas"),
		attribute.Bool("filter.nome", nome != ""),
		attribute.Bool("filter.cpf", cpf != ""),
	)

	pessoas, err := h.service.List(ctx, nome, cpf)
	if err != nil {
		h.logger.Error("failed to list pessoas", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, pessoas)
}

// GetPessoa godoc
// @Summary Obter pessoa
// @Description Obtém uma pessoa pelo id
// @Tags pessoas
// @Produce json
// @Param id path int true "Id da pessoa"
// @Security BearerAuth
// @Success 200 {object} models.Pessoa
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pessoas/{id} [get]
func (h *PessoaHandler) GetPessoa(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPessoa")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}
	span.SetAttributes(attribute.Int64("pessoa.id", id))

	if pessoa, ok := h.cache.Get(ctx, id); ok {
		c.JSON(http.StatusOK, pessoa)
		return
	}

	pessoa, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrPessoaNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pessoa not found"})
			return
		}
		h.logger.Error("failed to get pessoa", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	h.cache.Set(ctx, pessoa)
	c.JSON(http.StatusOK, pessoa)
}

// CreatePessoa godoc
// @Summary Cadastrar pessoa (v1)
// @Description Cadastra uma nova pessoa. O CPF, depois de normalizado, deve ser único.
// @Tags pessoas
// @Accept json
// @Produce json
// @Param pessoa body models.PessoaInput true "Dados da pessoa"
// @Security BearerAuth
// @Success 201 {object} models.Pessoa
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/pessoas [post]
func (h *PessoaHandler) CreatePessoa(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreatePessoa")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "create_pessoa"), attribute.Int("api.version", 1))

	var input models.PessoaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	pessoa := input.ToPessoa()
	if result := utils.ValidatePessoa(pessoa); !result.IsValid {
		recordValidationFailures(result)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Erros: result.Errors})
		return
	}

	if err := h.service.Create(ctx, &pessoa); err != nil {
		if errors.Is(err, models.ErrCPFDuplicado) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgCPFJaCadastrado})
			return
		}
		h.logger.Error("failed to create pessoa", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/pessoas/%d", pessoa.ID))
	c.JSON(http.StatusCreated, pessoa)
}

// CreatePessoaV2 godoc
// @Summary Cadastrar pessoa (v2)
// @Description Cadastra uma nova pessoa com endereço obrigatório. O endereço é validado mas não é retido no registro canônico, e não é devolvido na resposta.
// @Tags pessoas
// @Accept json
// @Produce json
// @Param pessoa body models.PessoaV2Input true "Dados da pessoa com endereço"
// @Security BearerAuth
// @Success 200 {object} models.Pessoa
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v2/pessoas [post]
func (h *PessoaHandler) CreatePessoaV2(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreatePessoaV2")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "create_pessoa"), attribute.Int("api.version", 2))

	var input models.PessoaV2Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	pessoa := input.ToPessoa()
	result := utils.ValidatePessoa(pessoa)
	for _, e := range utils.ValidateEndereco(input.Endereco).Errors {
		result.AddError(e.Field, e.Message)
	}
	if !result.IsValid {
		recordValidationFailures(result)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Erros: result.Errors})
		return
	}

	// The endereco is dropped here: the canonical record has no field for it.
	if err := h.service.Create(ctx, &pessoa); err != nil {
		if errors.Is(err, models.ErrCPFDuplicado) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgCPFJaCadastrado})
			return
		}
		h.logger.Error("failed to create pessoa", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, pessoa)
}

// UpdatePessoa godoc
// @Summary Atualizar pessoa
// @Description Atualiza uma pessoa existente. O id do corpo deve ser igual ao id da URL.
// @Tags pessoas
// @Accept json
// @Produce json
// @Param id path int true "Id da pessoa"
// @Param pessoa body models.PessoaInput true "Dados da pessoa"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pessoas/{id} [put]
func (h *PessoaHandler) UpdatePessoa(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdatePessoa")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}
	span.SetAttributes(attribute.String("operation", "update_pessoa"), attribute.Int64("pessoa.id", id))

	var input models.PessoaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	// Identity mismatch is a client error in its own right, checked before
	// anything else; whether the body id exists is irrelevant.
	if input.ID != id {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: models.ErrIDMismatch.Error()})
		return
	}

	pessoa := input.ToPessoa()
	if result := utils.ValidatePessoa(pessoa); !result.IsValid {
		recordValidationFailures(result)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Erros: result.Errors})
		return
	}

	if err := h.service.Update(ctx, id, &pessoa); err != nil {
		switch {
		case errors.Is(err, models.ErrPessoaNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pessoa not found"})
		case errors.Is(err, models.ErrCPFDuplicado):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgCPFOutroRegistro})
		default:
			h.logger.Error("failed to update pessoa", zap.Int64("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	h.cache.Invalidate(ctx, id)
	c.Status(http.StatusNoContent)
}

// DeletePessoa godoc
// @Summary Remover pessoa
// @Description Remove definitivamente uma pessoa pelo id
// @Tags pessoas
// @Produce json
// @Param id path int true "Id da pessoa"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pessoas/{id} [delete]
func (h *PessoaHandler) DeletePessoa(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeletePessoa")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}
	span.SetAttributes(attribute.String("operation", "delete_pessoa"), attribute.Int64("pessoa.id", id))

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrPessoaNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pessoa not found"})
			return
		}
		h.logger.Error("failed to delete pessoa", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	h.cache.Invalidate(ctx, id)
	c.Status(http.StatusNoContent)
}

func recordValidationFailures(result *utils.ValidationResult) {
	for _, e := range result.Errors {
		observability.ValidationFailures.WithLabelValues(e.Field).Inc()
	}
}
