// Package httpadapter exposes the read-only spectator and ops surface.
// Agents run in-process; these endpoints only read what the match loop
// publishes to the board.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"gridwar/internal/app/observe"
	"gridwar/internal/app/ports"
	"gridwar/internal/app/replay"
	"gridwar/internal/app/status"
)

type Handler struct {
	ObserveUC observe.UseCase
	StatusUC  status.UseCase
	ReplayUC  replay.UseCase
	Board     ports.ViewBoard
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	agent := s.Group("/api/agent")
	agent.POST("/observe", h.observe)
	agent.GET("/replay", h.replay)

	match := s.Group("/api/match")
	match.GET("/state", h.state)
	match.GET("/status", h.status)

	s.GET("/ops/kpi", h.kpi)
}

type observeRequest struct {
	AgentID string `json:"agent_id"`
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	var body observeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ObserveUC.Execute(c, observe.Request{AgentID: body.AgentID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	agentID := string(ctx.Query("agent_id"))
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{AgentID: agentID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) state(_ context.Context, ctx *app.RequestContext) {
	snap, ok := h.Board.LatestSnapshot()
	if !ok {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "no round published yet")
		return
	}
	ctx.JSON(consts.StatusOK, snap)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
