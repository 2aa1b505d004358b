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

package ai

import (
	"github.com/ecodeclub/woofcourt/internal/ai/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/platform/qwen"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

// InitHandlerFacade 三个法庭业务走同一条链，biz 只决定配置
func InitHandlerFacade(common []handler.Builder, platform handler.Handler) *biz.FacadeHandler {
	bizMap := make(map[string]handler.Handler, 3)
	for _, b := range []string{
		domain.BizCourtScoring,
		domain.BizCourtVerdict,
		domain.BizCourtLoveIndex,
	} {
		bizMap[b] = handler.NewCompositionHandler(common, platform)
	}
	return biz.NewHandler(bizMap)
}

// InitPlatform 按配置选出口，默认智谱
func InitPlatform() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
		APIKey   string `yaml:"apikey"`
		BaseURL  string `yaml:"baseURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Platform == "qwen" {
		return qwen.NewHandler(cfg.APIKey, cfg.BaseURL)
	}
	h, err := zhipu.NewHandler(cfg.APIKey)
	if err != nil {
		panic(err)
	}
	return h
}

func InitCommonHandlers(log *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	// log -> config -> record -> platform
	return []handler.Builder{log, cfg, record}
}
