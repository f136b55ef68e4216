package handlers

import (
	"errors"
	"net/http"

	request "cotacao_ia/internal/adapter/http/dto/request"
	response "cotacao_ia/internal/adapter/http/dto/response"
	"cotacao_ia/internal/usecase"
	"cotacao_ia/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid chat payload", http.StatusBadRequest)
)

// ChatHandler serves the lead-intake conversation.
type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// Chat godoc
// @Summary      Chat with the insurance consultant
// @Description  Runs one conversation turn. ready_for_quote turns true once name, age, contact, location and plan type were mentioned.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      request.ChatRequest  true  "Message and history"
// @Success      200      {object}  response.ChatResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.Reply(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChatReply(reply))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage), errors.Is(err, usecase.ErrInvalidTurnRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompletionNotConfigured):
		return pkg.NewDomainErrorSimple("CHAT_UNAVAILABLE", "Chat is not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCompletionFailed):
		return pkg.NewDomainErrorSimple("CHAT_COMPLETION_FAILED", "Chat completion failed", http.StatusBadGateway).
			WithDetails("Erro no chat: " + err.Error())
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
