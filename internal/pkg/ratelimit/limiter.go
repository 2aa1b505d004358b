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
	"time"
)

// Limiter 固定窗口限流器。key 通常是客户端 IP。
type Limiter interface {
	Limit(ctx context.Context, key string) (Result, error)
}

type Result struct {
	// Allowed 为 false 时本次请求应被拒绝
	Allowed bool
	// Remaining 当前窗口内剩余配额
	Remaining int
	// ResetAt 当前窗口的过期时间
	ResetAt time.Time
}
