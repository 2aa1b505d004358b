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
	"encoding/json"
	"fmt"
	"math"

	"github.com/ecodeclub/woofcourt/internal/ai"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// ScoringService 把双方陈述变成五维度评分和责任比例。
// 大模型挂了或者返回的东西没法解析时走兜底评分，所以永远不返回错误。
type ScoringService interface {
	Score(ctx context.Context, input domain.CaseInput) domain.ScoringResult
}

type scoringService struct {
	aiSvc  ai.LLMService
	rnd    *Rand
	logger *elog.Component
}

func NewScoringService(aiSvc ai.LLMService, rnd *Rand) ScoringService {
	return &scoringService{
		aiSvc:  aiSvc,
		rnd:    rnd,
		logger: elog.DefaultLogger,
	}
}

func (s *scoringService) Score(ctx context.Context, input domain.CaseInput) domain.ScoringResult {
	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizCourtScoring,
		Tid:   shortuuid.New(),
		Input: []string{scoringPrompt(input)},
	})
	if err != nil {
		s.logger.Warn("评分调用失败，使用兜底评分", elog.FieldErr(err))
		return s.defaultScoring(input)
	}
	res, err := s.parse(resp.Answer, input)
	if err != nil {
		s.logger.Warn("评分结果解析失败，使用兜底评分", elog.FieldErr(err))
		return s.defaultScoring(input)
	}
	return res
}

type scoreDetailResp struct {
	Communication  *int   `json:"communication"`
	EmotionControl *int   `json:"emotionControl"`
	ProblemSolving *int   `json:"problemSolving"`
	Empathy        *int   `json:"empathy"`
	Behavior       *int   `json:"behavior"`
	Reasoning      string `json:"reasoning"`
}

type scoreResp struct {
	ScoringDetails struct {
		Person1 scoreDetailResp `json:"person1"`
		Person2 scoreDetailResp `json:"person2"`
	} `json:"scoringDetails"`
}

func (s *scoringService) parse(answer string, input domain.CaseInput) (domain.ScoringResult, error) {
	data := extractJSON(answer)
	if data == "" {
		return domain.ScoringResult{}, fmt.Errorf("回答里没有 JSON: %q", answer)
	}
	var resp scoreResp
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return domain.ScoringResult{}, fmt.Errorf("解析评分 JSON 失败: %w", err)
	}
	p1 := toDetails(resp.ScoringDetails.Person1)
	p2 := toDetails(resp.ScoringDetails.Person2)
	return domain.ScoringResult{
		Person1: p1,
		Person2: p2,
		// 不信大模型算的百分比，也不信它给的总分，全部重算
		Fault: faultSplit(p1.TotalScore, p2.TotalScore),
	}, nil
}

func toDetails(d scoreDetailResp) domain.ScoringDetails {
	res := domain.ScoringDetails{
		Communication:  clampScore(d.Communication),
		EmotionControl: clampScore(d.EmotionControl),
		ProblemSolving: clampScore(d.ProblemSolving),
		Empathy:        clampScore(d.Empathy),
		Behavior:       clampScore(d.Behavior),
		Reasoning:      d.Reasoning,
	}
	if res.Reasoning == "" {
		res.Reasoning = "评分基于具体表现"
	}
	res.TotalScore = res.Sum()
	return res
}

// 维度缺失按 15 算，越界的截到 [0, 20]
func clampScore(v *int) int {
	if v == nil {
		return 15
	}
	if *v < 0 {
		return 0
	}
	if *v > 20 {
		return 20
	}
	return *v
}

// faultSplit 得分低的一方责任大。双方都是 0 分时五五开。
func faultSplit(p1, p2 int) domain.FaultPercentage {
	total := p1 + p2
	if total == 0 {
		return domain.FaultPercentage{Person1: 50, Person2: 50}
	}
	return domain.FaultPercentage{
		Person1: round1(float64(p2) / float64(total) * 100),
		Person2: round1(float64(p1) / float64(total) * 100),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// 兜底用的总分对，刻意不对称，保证降级时也能分出责任
var fallbackScorePairs = [][2]int{
	{76, 68},
	{71, 82},
	{65, 74},
	{78, 59},
}

func (s *scoringService) defaultScoring(input domain.CaseInput) domain.ScoringResult {
	pair := fallbackScorePairs[s.rnd.Intn(len(fallbackScorePairs))]
	p1 := s.buildFallbackDetails(pair[0], input.Person1.Name)
	p2 := s.buildFallbackDetails(pair[1], input.Person2.Name)
	return domain.ScoringResult{
		Person1: p1,
		Person2: p2,
		Fault:   faultSplit(pair[0], pair[1]),
	}
}

// buildFallbackDetails 把总分摊到五个维度上，维度之间挪动少量分数
// 避免五个维度一模一样，但总和始终等于 total。
func (s *scoringService) buildFallbackDetails(total int, name string) domain.ScoringDetails {
	base := total / 5
	rem := total % 5
	dims := [5]int{base, base, base, base, base}
	for i := 0; i < rem; i++ {
		dims[i]++
	}
	for i := 0; i < len(dims); i++ {
		j := s.rnd.Intn(len(dims))
		if i == j {
			continue
		}
		if dims[i] > 1 && dims[j] < 20 {
			dims[i]--
			dims[j]++
		}
	}
	return domain.ScoringDetails{
		Communication:  dims[0],
		EmotionControl: dims[1],
		ProblemSolving: dims[2],
		Empathy:        dims[3],
		Behavior:       dims[4],
		TotalScore:     total,
		Reasoning:      fmt.Sprintf("基于%s的具体表现进行综合评分", name),
	}
}
