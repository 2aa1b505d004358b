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

package ioc

import (
	"time"

	"github.com/ecodeclub/woofcourt/internal/pkg/middleware"
	"github.com/ecodeclub/woofcourt/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

const (
	defaultAnalyzeLimit    = 3
	defaultAnalyzeInterval = time.Minute
)

// InitRateLimiter 单实例部署用 memory，多实例部署配成 redis
func InitRateLimiter(cmd redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		Type     string `yaml:"type"`
		Limit    int    `yaml:"limit"`
		Interval int64  `yaml:"interval"`
	}
	cfg := Config{Type: "memory", Limit: defaultAnalyzeLimit}
	err := econf.UnmarshalKey("ratelimit", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultAnalyzeLimit
	}
	interval := defaultAnalyzeInterval
	if cfg.Interval > 0 {
		interval = time.Duration(cfg.Interval) * time.Millisecond
	}
	if cfg.Type == "redis" {
		return ratelimit.NewRedisLimiter(cmd, "ratelimit:analyze", cfg.Limit, interval)
	}
	return ratelimit.NewMemoryLimiter(cfg.Limit, interval)
}

// InitAnalyzeLimit 只挂在 /analyze 上的限流中间件
func InitAnalyzeLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	limit := econf.GetInt("ratelimit.limit")
	if limit <= 0 {
		limit = defaultAnalyzeLimit
	}
	return middleware.NewRateLimitMiddlewareBuilder(limiter, limit).Build()
}
