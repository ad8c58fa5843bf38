// Package http provides the HTTP handlers for the person endpoints.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/persons/internal/httputil"
	"github.com/allisson/persons/internal/person/domain"
	"github.com/allisson/persons/internal/person/http/dto"
	personUseCase "github.com/allisson/persons/internal/person/usecase"
	customValidation "github.com/allisson/persons/internal/validation"
)

// PersonHandler handles HTTP requests for person operations.
type PersonHandler struct {
	personUseCase personUseCase.PersonUseCase
	logger        *slog.Logger
}

// NewPersonHandler creates a new person handler.
func NewPersonHandler(useCase personUseCase.PersonUseCase, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		personUseCase: useCase,
		logger:        logger,
	}
}

// CreateHandler registers a person.
// POST /pessoas - Returns 201 Created with an empty body and Location: /pessoas/{id}.
func (h *PersonHandler) CreateHandler(c *gin.Context) {
	var req dto.CreatePersonRequest

	// Length and date constraints are checked while decoding
	if err := httputil.DecodeJSON(c, &req); err != nil {
		httputil.RespondBadRequest(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.RespondBadRequest(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	person, err := h.personUseCase.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.RespondError(c, err, h.logger)
		return
	}

	c.Header("Location", fmt.Sprintf("/pessoas/%s", person.ID))
	c.Status(http.StatusCreated)
	c.Writer.WriteHeaderNow()
}

// GetHandler returns a person by identifier.
// GET /pessoas/:id - An identifier that is not a UUID cannot exist and yields 404.
func (h *PersonHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, domain.NewGetPersonError(domain.GetPersonNotFound, err), h.logger)
		return
	}

	person, err := h.personUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPersonToResponse(person))
}

// SearchHandler returns up to 50 persons whose name, nickname or stack contain t.
// GET /pessoas?t=term
func (h *PersonHandler) SearchHandler(c *gin.Context) {
	persons, err := h.personUseCase.Search(c.Request.Context(), c.Query("t"))
	if err != nil {
		httputil.RespondError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPersonsToResponse(persons))
}

// CountHandler returns the number of persons as plain text.
// GET /contagem-pessoas
func (h *PersonHandler) CountHandler(c *gin.Context) {
	count, err := h.personUseCase.Count(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err, h.logger)
		return
	}

	c.String(http.StatusOK, strconv.FormatInt(count, 10))
}
