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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/woofcourt/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitServer(limiter ratelimit.Limiter, limit int) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	server.Use(NewRateLimitMiddlewareBuilder(limiter, limit).Build())
	server.POST("/analyze", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return server
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()
	limiter := ratelimit.NewMemoryLimiter(3, time.Minute)
	defer limiter.Close()
	server := newRateLimitServer(limiter, 3)

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest(http.MethodPost, "/analyze", nil)
		require.NoError(t, err)
		req.Header.Set("x-real-ip", "1.2.3.4")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "3", recorder.Header().Get("X-RateLimit-Limit"))
	}

	req, err := http.NewRequest(http.MethodPost, "/analyze", nil)
	require.NoError(t, err)
	req.Header.Set("x-real-ip", "1.2.3.4")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "0", recorder.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, recorder.Header().Get("X-RateLimit-Reset"))
	assert.Contains(t, recorder.Body.String(), "resetTime")

	// 换个 IP 不受影响
	req, err = http.NewRequest(http.MethodPost, "/analyze", nil)
	require.NoError(t, err)
	req.Header.Set("x-real-ip", "5.6.7.8")
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

type failLimiter struct{}

func (failLimiter) Limit(_ context.Context, _ string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("redis down")
}

func TestRateLimitMiddleware_FailOpen(t *testing.T) {
	t.Parallel()
	server := newRateLimitServer(failLimiter{}, 3)
	req, err := http.NewRequest(http.MethodPost, "/analyze", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestClientIP(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "x-forwarded-for 取第一跳",
			headers: map[string]string{"x-forwarded-for": "9.9.9.9, 10.0.0.1"},
			want:    "9.9.9.9",
		},
		{
			name:    "x-real-ip 次之",
			headers: map[string]string{"x-real-ip": "8.8.8.8"},
			want:    "8.8.8.8",
		},
		{
			name:    "cf-connecting-ip 兜底",
			headers: map[string]string{"cf-connecting-ip": "7.7.7.7"},
			want:    "7.7.7.7",
		},
		{
			name: "x-forwarded-for 优先于其它头",
			headers: map[string]string{
				"x-forwarded-for":  "9.9.9.9",
				"x-real-ip":        "8.8.8.8",
				"cf-connecting-ip": "7.7.7.7",
			},
			want: "9.9.9.9",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/analyze", nil)
			require.NoError(t, err)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = req
			assert.Equal(t, tc.want, clientIP(ctx))
		})
	}
}
