package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/pkg/httpcontext"
	analyticsUC "github.com/lifeboard/backend/usecase/analytics"
)

type AnalyticsHandler struct {
	baseHandler
	uc *analyticsUC.UseCase
}

func NewAnalyticsHandler(uc *analyticsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Headline numbers for a period
// @Tags analytics
// @Router /api/v1/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(ctx *fasthttp.RequestCtx) {
	period := analyticsUC.Period(ctx.QueryArgs().Peek("period"))
	if period == "" {
		period = analyticsUC.PeriodWeek
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.Summary(stdCtx, period)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary Task churn per day
// @Tags analytics
// @Router /api/v1/analytics/weekly [get]
func (h *AnalyticsHandler) GetWeekly(ctx *fasthttp.RequestCtx) {
	days := parseInt(string(ctx.QueryArgs().Peek("days")), 0)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.Weekly(stdCtx, days)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Time spent per category
// @Tags analytics
// @Router /api/v1/analytics/categories [get]
func (h *AnalyticsHandler) GetCategories(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	slices, err := h.uc.Categories(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, slices)
}

// @Summary Daily activity hours
// @Tags analytics
// @Router /api/v1/analytics/timeline [get]
func (h *AnalyticsHandler) GetTimeline(ctx *fasthttp.RequestCtx) {
	days := parseInt(string(ctx.QueryArgs().Peek("days")), 0)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	points, err := h.uc.ActivityTimeline(stdCtx, days)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, points)
}

// @Summary Open tasks by priority
// @Tags analytics
// @Router /api/v1/analytics/priorities [get]
func (h *AnalyticsHandler) GetPriorities(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	bands, err := h.uc.Priorities(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, bands)
}

// @Summary Recent completions and logged activities
// @Tags analytics
// @Router /api/v1/analytics/recent [get]
func (h *AnalyticsHandler) GetRecent(ctx *fasthttp.RequestCtx) {
	limit := parseInt(string(ctx.QueryArgs().Peek("limit")), 0)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	events, err := h.uc.Recent(stdCtx, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, events)
}
