package handlers

import (
	"net/http"

	request "cotacao_ia/internal/adapter/http/dto/request"
	response "cotacao_ia/internal/adapter/http/dto/response"
	"cotacao_ia/internal/usecase"
	"cotacao_ia/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quote payload", http.StatusBadRequest)
	errInvalidInterestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid interest payload", http.StatusBadRequest)
)

// QuoteHandler serves plan quotes and interest registration.
//
// Once the payload is valid these endpoints always answer 200: pricing
// failures degrade to simulated quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetQuotes godoc
// @Summary      Quote health plans
// @Description  Quotes from the pricing API, or the local simulation when it is unconfigured or failing.
// @Tags         cotacao
// @Accept       json
// @Produce      json
// @Param        request  body      request.QuoteRequest  true  "Customer profile"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /cotacao [post]
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	profile, err := payload.ToProfile()
	if err != nil {
		appErr := errInvalidQuotePayload.WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result := h.usecase.GetQuotes(c.Request.Context(), profile)
	c.JSON(http.StatusOK, response.FromQuoteResult(result))
}

// RegisterInterest godoc
// @Summary      Register interest in a plan
// @Description  Acknowledges the interest with a protocol built from the payload timestamp.
// @Tags         cotacao
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Arbitrary payload, timestamp expected"
// @Success      200      {object}  response.InterestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /lead [post]
func (h *QuoteHandler) RegisterInterest(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInterestPayload.HTTPStatus, errInvalidInterestPayload.ToHTTPError())
		return
	}

	ack := h.usecase.RegisterInterest(c.Request.Context(), payload)
	c.JSON(http.StatusOK, response.FromInterestAck(ack))
}
