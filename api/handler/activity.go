package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/api/transport"
	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/pkg/httpcontext"
	"github.com/lifeboard/backend/repository"
	activityUC "github.com/lifeboard/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List activities
// @Tags activities
// @Router /api/v1/activities [get]
func (h *ActivityHandler) GetActivities(ctx *fasthttp.RequestCtx) {
	filter := activityUC.Filter(ctx.QueryArgs().Peek("category"))
	sortBy := activityUC.SortBy(ctx.QueryArgs().Peek("sort_by"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, err := h.uc.ListActivities(stdCtx, filter, sortBy)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

// @Summary Recently logged activities
// @Tags activities
// @Router /api/v1/activities/recent [get]
func (h *ActivityHandler) GetRecent(ctx *fasthttp.RequestCtx) {
	limit := parseInt(string(ctx.QueryArgs().Peek("limit")), 0)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, err := h.uc.RecentActivities(stdCtx, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

// @Summary Get activity
// @Tags activities
// @Router /api/v1/activities/{id} [get]
func (h *ActivityHandler) GetActivity(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activity, err := h.uc.GetActivity(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activity)
}

// @Summary Log activity
// @Tags activities
// @Router /api/v1/activities [post]
func (h *ActivityHandler) CreateActivity(ctx *fasthttp.RequestCtx) {
	var req transport.ActivityCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	draft := domain.ActivityDraft{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.Category(req.Category),
		Duration:    req.Duration,
		Tags:        req.Tags,
	}
	if req.Date != "" {
		date, _ := time.Parse(time.RFC3339, req.Date)
		draft.Date = &date
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateActivity(stdCtx, draft)
	h.respondMutation(ctx, http.StatusCreated, created, err)
}

// @Summary Update activity
// @Tags activities
// @Router /api/v1/activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	var req transport.ActivityUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	patch := activityUC.Patch{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Tags:        req.Tags,
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		patch.Category = &category
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			h.respondInvalid(ctx, "date must be RFC 3339")
			return
		}
		patch.Date = &date
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateActivity(stdCtx, id, patch)
	h.respondMutation(ctx, http.StatusOK, updated, err)
}

// @Summary Delete activity
// @Tags activities
// @Router /api/v1/activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.DeleteActivity(stdCtx, id)
	if err == nil {
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondMutation(ctx, http.StatusOK, nil, err)
}

// @Summary Activity statistics
// @Tags activities
// @Router /api/v1/activities/stats [get]
func (h *ActivityHandler) GetStats(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.Stats(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Get activity list selection
// @Tags activities
// @Router /api/v1/activities/selection [get]
func (h *ActivityHandler) GetSelection(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sel, err := h.uc.Selection(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, sel)
}

// @Summary Set activity list selection
// @Tags activities
// @Router /api/v1/activities/selection [put]
func (h *ActivityHandler) SetSelection(ctx *fasthttp.RequestCtx) {
	var req transport.ActivitySelectionRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sel := repository.ActivitySelection{Filter: req.Filter, SortBy: req.SortBy}
	err := h.uc.SetSelection(stdCtx, sel)
	h.respondMutation(ctx, http.StatusOK, sel, err)
}

// @Summary Delete all activities
// @Tags activities
// @Router /api/v1/activities [delete]
func (h *ActivityHandler) ClearActivities(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.ClearAll(stdCtx)
	if err == nil {
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondMutation(ctx, http.StatusOK, nil, err)
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
