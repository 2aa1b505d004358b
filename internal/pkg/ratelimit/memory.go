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

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter 进程内固定窗口限流。
// 单实例部署够用，多实例换 RedisLimiter。
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window

	limit    int
	interval time.Duration

	closeOnce sync.Once
	closeCh   chan struct{}
}

type window struct {
	count   int
	resetAt time.Time
}

// NewMemoryLimiter limit 是窗口内最大请求数，interval 是窗口长度。
// 后台每两分钟清理一次过期窗口，防止 map 无限增长。
func NewMemoryLimiter(limit int, interval time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		windows:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		closeCh:  make(chan struct{}),
	}
	go l.sweep(time.Minute * 2)
	return l
}

func (l *MemoryLimiter) Limit(_ context.Context, key string) (Result, error) {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(l.interval)}
		l.windows[key] = w
	}
	if w.count >= l.limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: w.resetAt}, nil
	}
	w.count++
	return Result{
		Allowed:   true,
		Remaining: l.limit - w.count,
		ResetAt:   w.resetAt,
	}, nil
}

func (l *MemoryLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for key, w := range l.windows {
				if now.After(w.resetAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		case <-l.closeCh:
			return
		}
	}
}

// Close 停掉后台清理 goroutine
func (l *MemoryLimiter) Close() error {
	l.closeOnce.Do(func() {
		close(l.closeCh)
	})
	return nil
}
