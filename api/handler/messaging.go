package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/api/transport"
	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/pkg/httpcontext"
	messagingUC "github.com/lifeboard/backend/usecase/messaging"
)

type MessagingHandler struct {
	baseHandler
	uc *messagingUC.UseCase
}

func NewMessagingHandler(uc *messagingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MessagingHandler {
	return &MessagingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List conversations
// @Tags messaging
// @Router /api/v1/conversations [get]
func (h *MessagingHandler) GetConversations(ctx *fasthttp.RequestCtx) {
	search := string(ctx.QueryArgs().Peek("search"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conversations, err := h.uc.ListConversations(stdCtx, search)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, conversations)
}

// @Summary Get conversation
// @Tags messaging
// @Router /api/v1/conversations/{id} [get]
func (h *MessagingHandler) GetConversation(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing conversation id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conversation, err := h.uc.GetConversation(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, conversation)
}

// @Summary Start conversation
// @Tags messaging
// @Router /api/v1/conversations [post]
func (h *MessagingHandler) StartConversation(ctx *fasthttp.RequestCtx) {
	var req transport.ConversationStartRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.StartConversation(stdCtx, domain.ConversationDraft{
		Name:   req.Name,
		Avatar: req.Avatar,
		Status: domain.PresenceStatus(req.Status),
	})
	h.respondMutation(ctx, http.StatusCreated, created, err)
}

// @Summary Send message
// @Tags messaging
// @Router /api/v1/conversations/{id}/messages [post]
func (h *MessagingHandler) SendMessage(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing conversation id")
		return
	}

	var req transport.MessageRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conversation, err := h.uc.Send(stdCtx, id, req.Text)
	h.respondMutation(ctx, http.StatusCreated, conversation, err)
}

// @Summary Record inbound message
// @Tags messaging
// @Router /api/v1/conversations/{id}/inbound [post]
func (h *MessagingHandler) ReceiveMessage(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing conversation id")
		return
	}

	var req transport.MessageRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conversation, err := h.uc.Receive(stdCtx, id, req.Text)
	h.respondMutation(ctx, http.StatusCreated, conversation, err)
}

// @Summary Mark conversation as read
// @Tags messaging
// @Router /api/v1/conversations/{id}/read [post]
func (h *MessagingHandler) MarkAsRead(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing conversation id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conversation, err := h.uc.MarkAsRead(stdCtx, id)
	h.respondMutation(ctx, http.StatusOK, conversation, err)
}

// @Summary Open conversation
// @Tags messaging
// @Router /api/v1/conversations/{id}/activate [post]
func (h *MessagingHandler) Activate(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing conversation id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conversation, err := h.uc.Activate(stdCtx, id)
	h.respondMutation(ctx, http.StatusOK, conversation, err)
}

// @Summary Close the open conversation
// @Tags messaging
// @Router /api/v1/conversations/active [delete]
func (h *MessagingHandler) Deactivate(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.Deactivate(stdCtx)
	if err == nil {
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondMutation(ctx, http.StatusOK, nil, err)
}

// @Summary Get the open conversation
// @Tags messaging
// @Router /api/v1/conversations/active [get]
func (h *MessagingHandler) GetActive(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conversation, err := h.uc.ActiveConversation(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, conversation)
}

// @Summary Total unread count
// @Tags messaging
// @Router /api/v1/conversations/unread [get]
func (h *MessagingHandler) GetUnread(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	total, err := h.uc.TotalUnread(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]int{"unread": total})
}

// @Summary Delete all conversations
// @Tags messaging
// @Router /api/v1/conversations [delete]
func (h *MessagingHandler) ClearConversations(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.ClearAll(stdCtx)
	if err == nil {
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondMutation(ctx, http.StatusOK, nil, err)
}

// @Summary Delete conversation
// @Tags messaging
// @Router /api/v1/conversations/{id} [delete]
func (h *MessagingHandler) DeleteConversation(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing conversation id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.DeleteConversation(stdCtx, id)
	if err == nil {
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondMutation(ctx, http.StatusOK, nil, err)
}
