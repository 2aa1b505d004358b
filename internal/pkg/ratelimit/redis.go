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
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 返回 {本窗口计数, 剩余毫秒}。INCR 和 PEXPIRE 必须原子，否则
// 第一次请求失败后 key 可能永不过期。
var luaFixedWindow = redis.NewScript(`
local cnt = redis.call("INCR", KEYS[1])
if cnt == 1 then
    redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {cnt, ttl}
`)

// RedisLimiter 固定窗口限流，多实例共享计数。
type RedisLimiter struct {
	client   redis.Cmdable
	prefix   string
	limit    int
	interval time.Duration
}

func NewRedisLimiter(client redis.Cmdable, prefix string, limit int, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		limit:    limit,
		interval: interval,
	}
}

func (l *RedisLimiter) Limit(ctx context.Context, key string) (Result, error) {
	res, err := luaFixedWindow.Run(ctx, l.client,
		[]string{fmt.Sprintf("%s:%s", l.prefix, key)},
		l.interval.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, err
	}
	cnt, ttl := res[0], res[1]
	resetAt := time.Now().Add(time.Duration(ttl) * time.Millisecond)
	if cnt > int64(l.limit) {
		return Result{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}
	return Result{
		Allowed:   true,
		Remaining: l.limit - int(cnt),
		ResetAt:   resetAt,
	}, nil
}
