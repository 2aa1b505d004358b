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
	"errors"
	"testing"

	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func buildJudgeResult(total1, total2, comm, empathy int, fault1, fault2 float64) domain.JudgeResult {
	return domain.JudgeResult{
		Scoring: domain.ScoringResult{
			Person1: domain.ScoringDetails{
				TotalScore: total1, Communication: comm, Empathy: empathy,
			},
			Person2: domain.ScoringDetails{
				TotalScore: total2, Communication: comm, Empathy: empathy,
			},
			Fault: domain.FaultPercentage{Person1: fault1, Person2: fault2},
		},
	}
}

func TestLoveIndexService_Formula(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		res       domain.JudgeResult
		wantIndex float64
		wantLevel string
	}{
		{
			name: "平均75分小差距有加成",
			// avg=75 → base=60；差距10不扣分；沟通共情都是16 → +5
			res:       buildJudgeResult(75, 75, 16, 16, 55, 45),
			wantIndex: 65.0,
			wantLevel: "稳定期",
		},
		{
			name: "沟通共情很差要扣分",
			// avg=75 → base=60；差距0；共情8 → -8
			res:       buildJudgeResult(75, 75, 16, 8, 50, 50),
			wantIndex: 52.0,
			wantLevel: "磨合期",
		},
		{
			name: "责任差距大要扣分",
			// avg=50 → base=40；差距60 → 扣(60-20)*0.3=12；维度都低 → -8
			res:       buildJudgeResult(50, 50, 5, 5, 80, 20),
			wantIndex: 20.0,
			wantLevel: "危机期",
		},
		{
			name: "高分封顶90",
			// avg=120*0.8=96 → clamp 90；+5 → 95
			res:       buildJudgeResult(120, 120, 20, 20, 50, 50),
			wantIndex: 95.0,
			wantLevel: "热恋期",
		},
		{
			name: "低分保底15再扣沟通分",
			// avg=10 → base=clamp(8,20,90)=20；差距100 → 扣24 → max(15, -4)=15；-8 → 7
			res:       buildJudgeResult(0, 20, 2, 2, 100, 0),
			wantIndex: 7.0,
			wantLevel: "破裂边缘",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &loveIndexService{}
			got := svc.formulaIndex(tc.res)
			assert.Equal(t, tc.wantIndex, got.LoveIndex)
			assert.Equal(t, tc.wantLevel, got.LoveLevel)
			assert.Len(t, got.MainFactors, 3)
			assert.NotEmpty(t, got.Reasoning)
		})
	}
}

func TestLoveLevelFor(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		index float64
		want  string
	}{
		{100, "热恋期"},
		{90, "热恋期"},
		{89.9, "甜蜜期"},
		{75, "甜蜜期"},
		{74.9, "稳定期"},
		{60, "稳定期"},
		{59.9, "磨合期"},
		{45, "磨合期"},
		{44.9, "困难期"},
		{30, "困难期"},
		{29.9, "危机期"},
		{15, "危机期"},
		{14.9, "破裂边缘"},
		{0, "破裂边缘"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, loveLevelFor(tc.index), "index=%v", tc.index)
	}
}

func TestLoveIndexService_Parse(t *testing.T) {
	t.Parallel()
	svc := NewLoveIndexService(&fakeLLM{answer: "```json\n" +
		`{"loveIndex": 82.5, "loveLevel": "乱写的状态",` +
		`"mainFactors": ["感情基础好"], "suggestions": ["保持"], "reasoning": "综合评估"}` +
		"\n```"})
	res := svc.Estimate(context.Background(), testInput(), buildJudgeResult(80, 80, 16, 16, 50, 50))
	assert.Equal(t, 82.5, res.LoveIndex)
	// 状态名按分级表重算，不用大模型自己报的
	assert.Equal(t, "甜蜜期", res.LoveLevel)
	assert.Equal(t, []string{"感情基础好"}, res.MainFactors)
}

func TestLoveIndexService_ParseDefaults(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		answer string
	}{
		{name: "指数越界", answer: `{"loveIndex": 180}`},
		{name: "指数缺失", answer: `{"loveLevel": "甜蜜期"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewLoveIndexService(&fakeLLM{answer: tc.answer})
			res := svc.Estimate(context.Background(), testInput(), buildJudgeResult(80, 80, 16, 16, 50, 50))
			// 没法用的指数落回 65
			assert.Equal(t, 65.0, res.LoveIndex)
			assert.Equal(t, "稳定期", res.LoveLevel)
			assert.NotEmpty(t, res.MainFactors)
			assert.NotEmpty(t, res.Suggestions)
		})
	}
}

func TestLoveIndexService_FallbackOnError(t *testing.T) {
	t.Parallel()
	svc := NewLoveIndexService(&fakeLLM{err: errors.New("模拟超时")})
	res := svc.Estimate(context.Background(), testInput(), buildJudgeResult(75, 75, 16, 16, 55, 45))
	assert.Equal(t, 65.0, res.LoveIndex)
	assert.Equal(t, "稳定期", res.LoveLevel)
}
