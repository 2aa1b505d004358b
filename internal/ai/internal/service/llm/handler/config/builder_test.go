package config

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/woofcourt/internal/ai/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	cfg domain.BizConfig
	err error
}

func (f *fakeConfigRepo) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	return f.cfg, f.err
}

func TestHandlerBuilder_Next(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		cfg  domain.BizConfig
		// 下游看到的剩余时间应该落在这个区间里
		wantMin time.Duration
		wantMax time.Duration
	}{
		{
			name: "用配置里的超时",
			cfg: domain.BizConfig{
				Biz:     domain.BizCourtScoring,
				Timeout: 100,
			},
			wantMin: 0,
			wantMax: 100 * time.Millisecond,
		},
		{
			name: "没配超时就用默认 30s",
			cfg: domain.BizConfig{
				Biz: domain.BizCourtVerdict,
			},
			wantMin: 29 * time.Second,
			wantMax: 30 * time.Second,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			builder := NewBuilder(&fakeConfigRepo{cfg: tc.cfg})
			var gotDeadline time.Time
			var hasDeadline bool
			var gotCfg domain.BizConfig
			next := handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				gotDeadline, hasDeadline = ctx.Deadline()
				gotCfg = req.Config
				return domain.LLMResponse{}, nil
			})
			_, err := builder.Next(next).Handle(context.Background(),
				domain.LLMRequest{Biz: tc.cfg.Biz})
			require.NoError(t, err)
			// 下游拿到的是带截止时间的 ctx，而且配置已经注入请求
			require.True(t, hasDeadline)
			assert.Equal(t, tc.cfg, gotCfg)
			remaining := time.Until(gotDeadline)
			assert.True(t, remaining > tc.wantMin)
			assert.True(t, remaining <= tc.wantMax)
		})
	}
}

func TestHandlerBuilder_Next_ConfigError(t *testing.T) {
	t.Parallel()
	mockErr := errors.New("配置不存在")
	builder := NewBuilder(&fakeConfigRepo{err: mockErr})
	next := handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		t.Fatal("读配置失败就不应该再往下走")
		return domain.LLMResponse{}, nil
	})
	_, err := builder.Next(next).Handle(context.Background(),
		domain.LLMRequest{Biz: domain.BizCourtScoring})
	assert.ErrorIs(t, err, mockErr)
}
