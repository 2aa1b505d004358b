package config

import (
	"context"

	"github.com/ecodeclub/woofcourt/internal/ai/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/repository"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 按 biz 加载配置，并给整条调用链加上超时
type HandlerBuilder struct {
	repo repository.ConfigRepository
}

var _ handler.Builder = &HandlerBuilder{}

func NewBuilder(repo repository.ConfigRepository) *HandlerBuilder {
	return &HandlerBuilder{
		repo: repo,
	}
}

func (h *HandlerBuilder) Name() string {
	return "config"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		cfg, err := h.repo.GetConfig(ctx, req.Biz)
		if err != nil {
			return domain.LLMResponse{}, err
		}
		req.Config = cfg
		ctx, cancel := context.WithTimeout(ctx, cfg.TimeoutDuration())
		defer cancel()
		return next.Handle(ctx, req)
	})
}
