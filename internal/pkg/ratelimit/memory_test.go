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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Limit(t *testing.T) {
	t.Parallel()
	l := NewMemoryLimiter(3, time.Minute)
	defer l.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := l.Limit(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2-i, res.Remaining)
	}
	res, err := l.Limit(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.True(t, res.ResetAt.After(time.Now()))

	// 不同 key 互不影响
	res, err = l.Limit(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestMemoryLimiter_WindowReset(t *testing.T) {
	t.Parallel()
	l := NewMemoryLimiter(1, time.Millisecond*20)
	defer l.Close()
	ctx := context.Background()

	res, err := l.Limit(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = l.Limit(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	time.Sleep(time.Millisecond * 30)
	res, err = l.Limit(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	t.Parallel()
	l := &MemoryLimiter{
		windows:  make(map[string]*window),
		limit:    3,
		interval: time.Millisecond * 10,
		closeCh:  make(chan struct{}),
	}
	go l.sweep(time.Millisecond * 20)
	defer l.Close()

	ctx := context.Background()
	_, err := l.Limit(ctx, "1.2.3.4")
	require.NoError(t, err)
	_, err = l.Limit(ctx, "5.6.7.8")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.windows) == 0
	}, time.Second, time.Millisecond*10)
}

func TestMemoryLimiter_CloseIdempotent(t *testing.T) {
	t.Parallel()
	l := NewMemoryLimiter(3, time.Minute)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
}
