// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/errs"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type Handler struct {
	svc service.VerdictService
}

func NewHandler(svc service.VerdictService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/verdicts", ginx.B[SaveVerdictReq](h.Save))
	server.GET("/verdicts/history", ginx.W(h.History))
	server.GET("/verdicts/:id", ginx.W(h.Detail))
	server.GET("/verdicts/:id/vote", ginx.W(h.VoteStatus))
	server.POST("/verdicts/:id/vote", ginx.B[VoteReq](h.Vote))
	server.DELETE("/verdicts/:id/vote", ginx.W(h.WithdrawVote))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveVerdictReq) (ginx.Result, error) {
	if req.invalid() {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidInput.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	verdict, err := h.svc.Save(ctx.Request.Context(), req.FormData, req.Result)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveVerdictResp{
			VerdictId: verdict.Id,
			CaseId:    verdict.CaseId,
		},
	}, nil
}

func (h *Handler) History(ctx *ginx.Context) (ginx.Result, error) {
	page := queryInt(ctx, "page", defaultPage)
	limit := queryInt(ctx, "limit", defaultLimit)
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	search := ctx.Query("search")
	list, total, err := h.svc.History(ctx.Request.Context(), page, limit, search)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: HistoryResp{
			Verdicts: slice.Map(list, func(idx int, src domain.Verdict) Verdict {
				return newVerdict(src)
			}),
			Total:      total,
			Page:       page,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	verdict, err := h.svc.Detail(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrVerdictNotFound) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": errs.VerdictNotFound.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newVerdict(verdict),
	}, nil
}

func (h *Handler) Vote(ctx *ginx.Context, req VoteReq) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	vote := domain.Vote{
		VerdictId:   id,
		Fingerprint: req.DeviceFingerprint,
		Type:        req.VoteType,
	}
	if vote.Fingerprint == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.MissFingerprint.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if !vote.ValidType() {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidVoteType.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	err := h.svc.Vote(ctx.Request.Context(), vote)
	switch {
	case errors.Is(err, service.ErrDuplicateVote):
		ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error": errs.DuplicateVote.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	case errors.Is(err, service.ErrVerdictNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": errs.VerdictNotFound.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "投票成功"}, nil
	}
}

func (h *Handler) WithdrawVote(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	fingerprint, ok := h.fingerprint(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	err := h.svc.WithdrawVote(ctx.Request.Context(), id, fingerprint)
	switch {
	case errors.Is(err, service.ErrVoteNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": errs.VoteNotFound.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "撤回成功"}, nil
	}
}

func (h *Handler) VoteStatus(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	fingerprint, ok := h.fingerprint(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	status, err := h.svc.VoteStatus(ctx.Request.Context(), id, fingerprint)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: VoteStatusResp{
			Voted:    status.Voted,
			VoteType: status.VoteType,
		},
	}, nil
}

func (h *Handler) verdictId(ctx *ginx.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidInput.Msg,
		})
		return 0, false
	}
	return id, true
}

func (h *Handler) fingerprint(ctx *ginx.Context) (string, bool) {
	fingerprint := ctx.Query("deviceFingerprint")
	if fingerprint == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.MissFingerprint.Msg,
		})
		return "", false
	}
	return fingerprint, true
}

func queryInt(ctx *ginx.Context, key string, def int) int {
	val := ctx.Query(key)
	if val == "" {
		return def
	}
	res, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return res
}
