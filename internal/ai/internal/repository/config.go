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

package repository

import (
	"context"

	"github.com/ecodeclub/woofcourt/internal/ai/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
}

// CachedConfigRepository 每次 AI 调用都要读配置，必须有缓存
type CachedConfigRepository struct {
	dao    dao.ConfigDAO
	cache  cache.ConfigCache
	logger *elog.Component
}

func NewCachedConfigRepository(dao dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{
		dao:    dao,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, err := repo.cache.GetConfig(ctx, biz)
	if err == nil {
		return cfg, nil
	}
	res, err := repo.dao.GetConfig(ctx, biz)
	if err != nil {
		return domain.BizConfig{}, err
	}
	cfg = repo.toDomain(res)
	if err = repo.cache.SetConfig(ctx, cfg); err != nil {
		repo.logger.Error("回写 biz 配置缓存失败",
			elog.String("biz", biz), elog.FieldErr(err))
	}
	return cfg, nil
}

func (repo *CachedConfigRepository) toDomain(res dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             res.Id,
		Biz:            res.Biz,
		Model:          res.Model,
		Temperature:    res.Temperature,
		TopP:           res.TopP,
		SystemPrompt:   res.SystemPrompt,
		MaxInput:       res.MaxInput,
		MaxTokens:      res.MaxTokens,
		Timeout:        res.Timeout,
		PromptTemplate: res.PromptTemplate,
		Utime:          res.Utime,
	}
}
