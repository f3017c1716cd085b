package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/pkg/httpcontext"
	exportUC "github.com/lifeboard/backend/usecase/export"
)

type ExportHandler struct {
	baseHandler
	uc *exportUC.UseCase
}

func NewExportHandler(uc *exportUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Export collections
// @Tags export
// @Router /api/v1/export [get]
func (h *ExportHandler) Export(ctx *fasthttp.RequestCtx) {
	sel := parseSelection(string(ctx.QueryArgs().Peek("collections")))
	format := string(ctx.QueryArgs().Peek("format"))
	if format == "" {
		format = "json"
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	switch format {
	case "json":
		bundle, err := h.uc.ExportBundle(stdCtx, sel)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		body, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		sendAttachment(ctx, body, "application/json", "lifeboard-export-"+datestamp()+".json")
	case "csv":
		body, err := h.uc.ExportCSV(stdCtx, sel)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		sendAttachment(ctx, body, "text/csv", "lifeboard-export-"+datestamp()+".csv")
	default:
		h.respondInvalid(ctx, "format must be json or csv")
	}
}

// @Summary Import a previously exported bundle
// @Tags export
// @Router /api/v1/import [post]
func (h *ExportHandler) Import(ctx *fasthttp.RequestCtx) {
	var bundle exportUC.Bundle
	if err := json.Unmarshal(ctx.PostBody(), &bundle); err != nil {
		h.respondInvalid(ctx, "invalid bundle")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ImportBundle(stdCtx, &bundle); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"imported": bundle.Version})
}

// parseSelection reads a comma separated collection list. Empty means all.
func parseSelection(raw string) exportUC.Selection {
	if raw == "" {
		return exportUC.All()
	}
	var sel exportUC.Selection
	for _, name := range strings.Split(raw, ",") {
		switch strings.TrimSpace(name) {
		case "tasks":
			sel.Tasks = true
		case "activities":
			sel.Activities = true
		case "posts":
			sel.Posts = true
		case "conversations":
			sel.Conversations = true
		}
	}
	return sel
}

func sendAttachment(ctx *fasthttp.RequestCtx, body []byte, contentType, filename string) {
	ctx.Response.Header.SetContentType(contentType)
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(body)
}

func datestamp() string {
	return time.Now().Format("2006-01-02")
}
