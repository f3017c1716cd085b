package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/api/transport"
	"github.com/lifeboard/backend/pkg/httpcontext"
	preferencesUC "github.com/lifeboard/backend/usecase/preferences"
)

type PreferencesHandler struct {
	baseHandler
	uc *preferencesUC.UseCase
}

func NewPreferencesHandler(uc *preferencesUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get preferences
// @Tags preferences
// @Router /api/v1/preferences [get]
func (h *PreferencesHandler) GetPreferences(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	prefs, err := h.uc.GetPreferences(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, prefs)
}

// @Summary Update preferences
// @Tags preferences
// @Router /api/v1/preferences [put]
func (h *PreferencesHandler) UpdatePreferences(ctx *fasthttp.RequestCtx) {
	var req transport.PreferencesUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdatePreferences(stdCtx, preferencesUC.Patch{
		Notifications: req.Notifications,
		Appearance:    req.Appearance,
		Privacy:       req.Privacy,
		Data:          req.Data,
	})
	h.respondMutation(ctx, http.StatusOK, updated, err)
}

// @Summary Reset preferences to defaults
// @Tags preferences
// @Router /api/v1/preferences/reset [post]
func (h *PreferencesHandler) ResetPreferences(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	prefs, err := h.uc.ResetPreferences(stdCtx)
	h.respondMutation(ctx, http.StatusOK, prefs, err)
}
