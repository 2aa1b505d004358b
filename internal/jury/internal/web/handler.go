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
	"github.com/ecodeclub/woofcourt/internal/jury/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/errs"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	svc service.JuryService
}

func NewHandler(svc service.JuryService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/verdicts/random", ginx.W(h.RandomCase))
	server.GET("/verdicts/:id/jury/vote", ginx.W(h.VoteStatus))
	server.POST("/verdicts/:id/jury/vote", ginx.B[VoteReq](h.Vote))
	server.GET("/verdicts/:id/jury/stats", ginx.W(h.Stats))
	server.GET("/verdicts/:id/jury/comments", ginx.W(h.Comments))
	server.POST("/verdicts/:id/jury/comments", ginx.B[CommentReq](h.AddComment))
}

func (h *Handler) RandomCase(ctx *ginx.Context) (ginx.Result, error) {
	fingerprint, ok := h.fingerprint(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	res, err := h.svc.RandomCase(ctx.Request.Context(), fingerprint)
	if errors.Is(err, service.ErrNoAvailableCase) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": errs.NoAvailableCase.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newRandomCaseResp(res),
	}, nil
}

func (h *Handler) Vote(ctx *ginx.Context, req VoteReq) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if req.DeviceFingerprint == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.MissFingerprint.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	vote := domain.Vote{
		VerdictId:   id,
		Fingerprint: req.DeviceFingerprint,
		SupportSide: req.SupportSide,
		Reasoning:   req.Reasoning,
	}
	if !vote.ValidSide() {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidSupportSide.Msg,
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
		return ginx.Result{Msg: "评判成功"}, nil
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
			Voted:       status.Voted,
			SupportSide: status.SupportSide,
		},
	}, nil
}

func (h *Handler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	stats, err := h.svc.Stats(ctx.Request.Context(), id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStats(stats),
	}, nil
}

func (h *Handler) Comments(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	page := queryInt(ctx, "page", defaultPage)
	limit := queryInt(ctx, "limit", defaultLimit)
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	list, total, err := h.svc.Comments(ctx.Request.Context(), id, page, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CommentsResp{
			Comments: slice.Map(list, func(idx int, src domain.Comment) Comment {
				return newComment(src)
			}),
			Total:      total,
			Page:       page,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (h *Handler) AddComment(ctx *ginx.Context, req CommentReq) (ginx.Result, error) {
	id, ok := h.verdictId(ctx)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if req.DeviceFingerprint == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.MissFingerprint.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if req.contentInvalid() {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidComment.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	comment := domain.Comment{
		VerdictId:   id,
		Fingerprint: req.DeviceFingerprint,
		Content:     req.commentContent(),
		SupportSide: req.SupportSide,
	}
	if !comment.ValidSide() {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidCommentSide.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	res, err := h.svc.AddComment(ctx.Request.Context(), comment)
	switch {
	case errors.Is(err, service.ErrVerdictNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": errs.VerdictNotFound.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Msg:  "评论发表成功",
			Data: newComment(res),
		}, nil
	}
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
