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

package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecodeclub/woofcourt/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type RateLimitMiddlewareBuilder struct {
	limiter ratelimit.Limiter
	limit   int
	logger  *elog.Component
}

func NewRateLimitMiddlewareBuilder(limiter ratelimit.Limiter, limit int) *RateLimitMiddlewareBuilder {
	return &RateLimitMiddlewareBuilder{
		limiter: limiter,
		limit:   limit,
		logger:  elog.DefaultLogger,
	}
}

func (r *RateLimitMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ip := clientIP(ctx)
		res, err := r.limiter.Limit(ctx.Request.Context(), ip)
		if err != nil {
			// 限流器挂了放行请求，可用性优先
			r.logger.Error("限流器执行失败", elog.String("ip", ip), elog.FieldErr(err))
			return
		}
		ctx.Header("X-RateLimit-Limit", strconv.Itoa(r.limit))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		ctx.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
		if !res.Allowed {
			r.logger.Warn("触发限流", elog.String("ip", ip))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":     fmt.Sprintf("请求过于频繁，请在 %s 后重试", res.ResetAt.Format("15:04:05")),
				"resetTime": res.ResetAt.UnixMilli(),
			})
			return
		}
	}
}

// clientIP 依次看 x-forwarded-for（取第一跳）、x-real-ip、cf-connecting-ip，
// 都没有时退回 gin 解析出来的 ClientIP。
func clientIP(ctx *gin.Context) string {
	if xff := ctx.GetHeader("x-forwarded-for"); xff != "" {
		if idx := strings.Index(xff, ","); idx >= 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if rip := ctx.GetHeader("x-real-ip"); rip != "" {
		return strings.TrimSpace(rip)
	}
	if cip := ctx.GetHeader("cf-connecting-ip"); cip != "" {
		return strings.TrimSpace(cip)
	}
	if ip := ctx.ClientIP(); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
