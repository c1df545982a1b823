// Package http provides the HTTP handlers of the IBAN API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/ibancheck/internal/httputil"
	"github.com/allisson/ibancheck/internal/iban/domain"
	"github.com/allisson/ibancheck/internal/iban/http/dto"
	ibanUseCase "github.com/allisson/ibancheck/internal/iban/usecase"
	customValidation "github.com/allisson/ibancheck/internal/validation"
)

// IbanHandler handles HTTP requests for IBAN validation, generation and registry queries.
type IbanHandler struct {
	ibanUseCase ibanUseCase.IbanUseCase
	logger      *slog.Logger
}

// NewIbanHandler creates a new IBAN handler with required dependencies.
func NewIbanHandler(useCase ibanUseCase.IbanUseCase, logger *slog.Logger) *IbanHandler {
	return &IbanHandler{
		ibanUseCase: useCase,
		logger:      logger,
	}
}

// ValidateHandler validates one IBAN.
// POST /v1/ibans/validate
// Returns 200 with valid=true and the IBAN parts, or 200 with valid=false and the reason.
func (h *IbanHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateIBANRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	iban, err := h.ibanUseCase.Validate(c.Request.Context(), req.IBAN)
	if err != nil && domain.ErrorCode(err) == "" {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationToResponse(iban, err))
}

// BatchValidateHandler validates many IBANs in one request.
// POST /v1/ibans/validate/batch
// Returns 200 with one result per input in request order.
func (h *IbanHandler) BatchValidateHandler(c *gin.Context) {
	var req dto.BatchValidateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	results, err := h.ibanUseCase.ValidateBatch(c.Request.Context(), req.IBANs)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationResultsToResponse(results))
}

// GenerateHandler computes the check digits for an account and returns the IBAN.
// POST /v1/ibans/generate
// Returns 201 Created with the IBAN parts.
func (h *IbanHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateIBANRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	iban, err := h.ibanUseCase.Generate(c.Request.Context(), req.Country, req.BBAN)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIBANToResponse(iban))
}

// ListCountriesHandler lists the registry ordered by country code.
// GET /v1/countries?offset=0&limit=50
func (h *IbanHandler) ListCountriesHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	specs, total, err := h.ibanUseCase.ListSpecs(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSpecsToListResponse(specs, offset, limit, total))
}

// GetCountryHandler returns the registry entry of one country.
// GET /v1/countries/:code
// Returns 404 for unregistered codes. Codes are matched exactly.
func (h *IbanHandler) GetCountryHandler(c *gin.Context) {
	spec, err := h.ibanUseCase.GetSpec(c.Request.Context(), c.Param("code"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSpecToResponse(spec))
}
