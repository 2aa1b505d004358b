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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/errs"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc service.JudgeService
	// 只有 /analyze 要限流，其它路由不挂
	analyzeLimit gin.HandlerFunc
	logger       *elog.Component
}

func NewHandler(svc service.JudgeService, analyzeLimit gin.HandlerFunc) *Handler {
	return &Handler{
		svc:          svc,
		analyzeLimit: analyzeLimit,
		logger:       elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/analyze", h.analyzeLimit, ginx.B[AnalyzeReq](h.Analyze))
	server.POST("/love-index", ginx.B[LoveIndexReq](h.LoveIndex))
}

func (h *Handler) Analyze(ctx *ginx.Context, req AnalyzeReq) (ginx.Result, error) {
	if req.Person1.invalid() || req.Person2.invalid() {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidInput.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	res := h.svc.Analyze(ctx.Request.Context(), req.toDomain())
	return ginx.Result{
		Data: newJudgeResult(res),
	}, nil
}

func (h *Handler) LoveIndex(ctx *ginx.Context, req LoveIndexReq) (ginx.Result, error) {
	if req.Person1.invalid() || req.Person2.invalid() {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errs.InvalidInput.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	input := AnalyzeReq{Person1: req.Person1, Person2: req.Person2}.toDomain()
	res := h.svc.LoveIndex(ctx.Request.Context(), input, req.Result.toDomain())
	return ginx.Result{
		Data: newLoveIndexAnalysis(res),
	}, nil
}
