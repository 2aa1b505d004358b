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

package service

import (
	"context"

	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
)

// JudgeService 完整的分析流水线：先评分，再把评分喂给判词生成。
// 两步都自带兜底，所以整条流水线永远能给出完整结果。
type JudgeService interface {
	Analyze(ctx context.Context, input domain.CaseInput) domain.JudgeResult
	LoveIndex(ctx context.Context, input domain.CaseInput, res domain.JudgeResult) domain.LoveIndexAnalysis
}

type judgeService struct {
	scoring   ScoringService
	composer  ComposerService
	loveIndex LoveIndexService
}

func NewJudgeService(scoring ScoringService, composer ComposerService, loveIndex LoveIndexService) JudgeService {
	return &judgeService{
		scoring:   scoring,
		composer:  composer,
		loveIndex: loveIndex,
	}
}

func (j *judgeService) Analyze(ctx context.Context, input domain.CaseInput) domain.JudgeResult {
	scoring := j.scoring.Score(ctx, input)
	analysis := j.composer.Compose(ctx, input, scoring)
	return domain.JudgeResult{
		Analysis: analysis,
		Scoring:  scoring,
	}
}

func (j *judgeService) LoveIndex(ctx context.Context, input domain.CaseInput, res domain.JudgeResult) domain.LoveIndexAnalysis {
	return j.loveIndex.Estimate(ctx, input, res)
}
