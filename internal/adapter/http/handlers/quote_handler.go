package handlers

import (
	"errors"
	"net/http"
	"os"

	request "cuidandote_presupuestos/internal/adapter/http/dto/request"
	response "cuidandote_presupuestos/internal/adapter/http/dto/response"
	"cuidandote_presupuestos/internal/usecase"
	"cuidandote_presupuestos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Cuerpo de la petición no válido", http.StatusBadRequest)
)

const defaultRedirectURL = "https://cuidandoteserviciosauxiliares.com/presupuesto-solicitado/"

// QuoteHandler handles HTTP requests for budget quotes (presupuestos).

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote accepts the budget form submission, runs the full pipeline
// and returns the created proposal summary plus the thank-you redirect.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	payload, err := request.ParseQuoteRequest(raw)
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd := payload.ToCommand(c.ClientIP(), c.Request.UserAgent())

	quote, err := h.usecase.CreateQuote(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteCreated(quote, redirectURLGracias()))
}

// GetQuote serves the full proposal behind a token for the detail page.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// MarkQuoteUsed flags a proposal as consumed by the client. Safe to repeat.
func (h *QuoteHandler) MarkQuoteUsed(c *gin.Context) {
	quote, err := h.usecase.MarkUsed(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MarkUsedResponse{
		Success: true,
		Message: "Presupuesto marcado como utilizado",
		Token:   quote.Token,
	})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingName):
		return pkg.NewDomainErrorSimple("MISSING_NAME", "El nombre es obligatorio", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "El email no es válido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPhone):
		return pkg.NewDomainErrorSimple("MISSING_PHONE", "El teléfono es obligatorio", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDays):
		return pkg.NewDomainErrorSimple("MISSING_DAYS", "Debes seleccionar al menos un día", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingSchedule):
		return pkg.NewDomainErrorSimple("MISSING_SCHEDULE", "Debes indicar el horario", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPrivacyNotAccepted):
		return pkg.NewDomainErrorSimple("PRIVACY_NOT_ACCEPTED", "Debes aceptar la política de privacidad", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Token no válido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPresupuestoNotFound):
		return pkg.NewDomainErrorSimple("PRESUPUESTO_NOT_FOUND", "Presupuesto no encontrado o expirado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error al procesar el presupuesto", err, http.StatusInternalServerError)
	}
}

func redirectURLGracias() string {
	if v := os.Getenv("GRACIAS_URL"); v != "" {
		return v
	}
	return defaultRedirectURL
}
