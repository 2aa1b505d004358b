package service

import (
	"math/rand"
	"sync"
	"time"
)

// Rand math/rand 的 Rand 不是并发安全的，包一层锁。
// 测试里用固定 seed 注入，拿到确定的兜底结果。
type Rand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func NewTimeSeededRand() *Rand {
	return NewRand(time.Now().UnixNano())
}

func (l *Rand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
