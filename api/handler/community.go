package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/api/transport"
	"github.com/lifeboard/backend/pkg/httpcontext"
	"github.com/lifeboard/backend/repository"
	communityUC "github.com/lifeboard/backend/usecase/community"
)

type CommunityHandler struct {
	baseHandler
	uc *communityUC.UseCase
}

func NewCommunityHandler(uc *communityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List community posts
// @Tags community
// @Router /api/v1/posts [get]
func (h *CommunityHandler) GetPosts(ctx *fasthttp.RequestCtx) {
	filter := communityUC.Filter(ctx.QueryArgs().Peek("filter"))
	tagFilter := string(ctx.QueryArgs().Peek("tag"))
	sortBy := communityUC.SortBy(ctx.QueryArgs().Peek("sort_by"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	posts, err := h.uc.ListPosts(stdCtx, filter, tagFilter, sortBy)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, posts)
}

// @Summary Get post
// @Tags community
// @Router /api/v1/posts/{id} [get]
func (h *CommunityHandler) GetPost(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing post id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	post, err := h.uc.GetPost(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, post)
}

// @Summary Publish post
// @Tags community
// @Router /api/v1/posts [post]
func (h *CommunityHandler) CreatePost(ctx *fasthttp.RequestCtx) {
	var req transport.PostCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreatePost(stdCtx, req.Title, req.Body, req.Tags)
	h.respondMutation(ctx, http.StatusCreated, created, err)
}

// @Summary Update post
// @Tags community
// @Router /api/v1/posts/{id} [put]
func (h *CommunityHandler) UpdatePost(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing post id")
		return
	}

	var req transport.PostUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdatePost(stdCtx, id, communityUC.Patch{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	})
	h.respondMutation(ctx, http.StatusOK, updated, err)
}

// @Summary Like post
// @Tags community
// @Router /api/v1/posts/{id}/like [post]
func (h *CommunityHandler) LikePost(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing post id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	liked, err := h.uc.LikePost(stdCtx, id)
	h.respondMutation(ctx, http.StatusOK, liked, err)
}

// @Summary Delete post
// @Tags community
// @Router /api/v1/posts/{id} [delete]
func (h *CommunityHandler) DeletePost(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing post id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.DeletePost(stdCtx, id)
	if err == nil {
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondMutation(ctx, http.StatusOK, nil, err)
}

// @Summary Delete all posts
// @Tags community
// @Router /api/v1/posts [delete]
func (h *CommunityHandler) ClearPosts(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.ClearAll(stdCtx)
	if err == nil {
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondMutation(ctx, http.StatusOK, nil, err)
}

// @Summary Community statistics
// @Tags community
// @Router /api/v1/posts/stats [get]
func (h *CommunityHandler) GetStats(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.Stats(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Get post list selection
// @Tags community
// @Router /api/v1/posts/selection [get]
func (h *CommunityHandler) GetSelection(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sel, err := h.uc.Selection(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, sel)
}

// @Summary Set post list selection
// @Tags community
// @Router /api/v1/posts/selection [put]
func (h *CommunityHandler) SetSelection(ctx *fasthttp.RequestCtx) {
	var req transport.PostSelectionRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sel := repository.PostSelection{Filter: req.Filter, TagFilter: req.TagFilter, SortBy: req.SortBy}
	err := h.uc.SetSelection(stdCtx, sel)
	h.respondMutation(ctx, http.StatusOK, sel, err)
}
