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

	"github.com/ecodeclub/woofcourt/internal/ai"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeLLM struct {
	answer string
	err    error
}

func (f *fakeLLM) Invoke(_ context.Context, _ ai.LLMRequest) (ai.LLMResponse, error) {
	if f.err != nil {
		return ai.LLMResponse{}, f.err
	}
	return ai.LLMResponse{Answer: f.answer}, nil
}

func testInput() domain.CaseInput {
	return domain.CaseInput{
		Person1: domain.Party{Name: "小明", Story: "他总是玩游戏", Complaint: "不陪我"},
		Person2: domain.Party{Name: "小红", Story: "她总是生气", Complaint: "不理解我"},
	}
}

func TestFaultSplit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		p1, p2 int
		want   domain.FaultPercentage
	}{
		{
			name: "双方都是0分时五五开",
			p1:   0, p2: 0,
			want: domain.FaultPercentage{Person1: 50, Person2: 50},
		},
		{
			name: "分数相同责任均分",
			p1:   75, p2: 75,
			want: domain.FaultPercentage{Person1: 50, Person2: 50},
		},
		{
			name: "得分低的责任大",
			p1:   76, p2: 68,
			want: domain.FaultPercentage{Person1: 47.2, Person2: 52.8},
		},
		{
			name: "一方0分承担全部责任",
			p1:   0, p2: 80,
			want: domain.FaultPercentage{Person1: 100, Person2: 0},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := faultSplit(tc.p1, tc.p2)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFaultSplit_Monotonic(t *testing.T) {
	t.Parallel()
	// p1 分数不变，p2 分数越高，p1 的责任越大
	prev := faultSplit(60, 0).Person1
	for p2 := 1; p2 <= 100; p2++ {
		cur := faultSplit(60, p2).Person1
		assert.GreaterOrEqual(t, cur, prev, "p2=%d", p2)
		prev = cur
	}
}

func TestScoringService_Parse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		answer     string
		wantP1     domain.ScoringDetails
		wantP2Sum  int
		wantFault1 float64
	}{
		{
			name: "带代码块的完整回答",
			answer: "```json\n{\"scoringDetails\": {" +
				"\"person1\": {\"communication\": 16, \"emotionControl\": 15, \"problemSolving\": 14, \"empathy\": 16, \"behavior\": 15, \"totalScore\": 99, \"reasoning\": \"表现尚可\"}," +
				"\"person2\": {\"communication\": 10, \"emotionControl\": 12, \"problemSolving\": 11, \"empathy\": 13, \"behavior\": 12, \"totalScore\": 1, \"reasoning\": \"有待改进\"}}," +
				"\"faultPercentage\": {\"person1\": 1.0, \"person2\": 99.0}}\n```",
			wantP1: domain.ScoringDetails{
				Communication: 16, EmotionControl: 15, ProblemSolving: 14,
				Empathy: 16, Behavior: 15,
				// 总分重算，不用大模型给的 99
				TotalScore: 76,
				Reasoning:  "表现尚可",
			},
			wantP2Sum: 58,
			// 责任比例同样重算：58/(76+58)
			wantFault1: 43.3,
		},
		{
			name: "维度缺失按15补齐",
			answer: `{"scoringDetails": {` +
				`"person1": {"communication": 10},` +
				`"person2": {}}}`,
			wantP1: domain.ScoringDetails{
				Communication: 10, EmotionControl: 15, ProblemSolving: 15,
				Empathy: 15, Behavior: 15,
				TotalScore: 70,
				Reasoning:  "评分基于具体表现",
			},
			wantP2Sum:  75,
			wantFault1: 51.7,
		},
		{
			name: "越界分数截断到0-20",
			answer: `{"scoringDetails": {` +
				`"person1": {"communication": 35, "emotionControl": -5, "problemSolving": 20, "empathy": 0, "behavior": 10},` +
				`"person2": {"communication": 15, "emotionControl": 15, "problemSolving": 15, "empathy": 15, "behavior": 15}}}`,
			wantP1: domain.ScoringDetails{
				Communication: 20, EmotionControl: 0, ProblemSolving: 20,
				Empathy: 0, Behavior: 10,
				TotalScore: 50,
				Reasoning:  "评分基于具体表现",
			},
			wantP2Sum:  75,
			wantFault1: 60.0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &scoringService{rnd: NewRand(1)}
			res, err := svc.parse(tc.answer, testInput())
			assert.NoError(t, err)
			assert.Equal(t, tc.wantP1, res.Person1)
			assert.Equal(t, tc.wantP2Sum, res.Person2.TotalScore)
			assert.Equal(t, res.Person2.Sum(), res.Person2.TotalScore)
			assert.Equal(t, tc.wantFault1, res.Fault.Person1)
			assert.InDelta(t, 100, res.Fault.Person1+res.Fault.Person2, 0.11)
		})
	}
}

func TestScoringService_Fallback(t *testing.T) {
	t.Parallel()
	// 大模型直接报错，走兜底评分
	svc := NewScoringService(&fakeLLM{err: errors.New("模拟超时")}, NewRand(42))
	res := svc.Score(context.Background(), testInput())

	// 兜底的总分对都是不对称的
	assert.NotEqual(t, res.Person1.TotalScore, res.Person2.TotalScore)
	// 维度之和必须等于总分
	assert.Equal(t, res.Person1.TotalScore, res.Person1.Sum())
	assert.Equal(t, res.Person2.TotalScore, res.Person2.Sum())
	// 责任比例加起来是100
	assert.InDelta(t, 100, res.Fault.Person1+res.Fault.Person2, 0.11)
	// 每个维度都在合法范围内
	for _, d := range []domain.ScoringDetails{res.Person1, res.Person2} {
		for _, v := range []int{d.Communication, d.EmotionControl, d.ProblemSolving, d.Empathy, d.Behavior} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 20)
		}
	}
}

func TestScoringService_FallbackDeterministic(t *testing.T) {
	t.Parallel()
	// 相同 seed 两次兜底结果一致
	run := func() domain.ScoringResult {
		svc := NewScoringService(&fakeLLM{answer: "不是 JSON 的回答"}, NewRand(7))
		return svc.Score(context.Background(), testInput())
	}
	assert.Equal(t, run(), run())
}

func TestScoringService_FallbackPairs(t *testing.T) {
	t.Parallel()
	// 所有兜底总分对都能取到，且来自固定的池子
	seen := make(map[[2]int]bool)
	svc := NewScoringService(&fakeLLM{err: errors.New("下线了")}, NewRand(1))
	for i := 0; i < 200; i++ {
		res := svc.Score(context.Background(), testInput())
		seen[[2]int{res.Person1.TotalScore, res.Person2.TotalScore}] = true
	}
	assert.Len(t, seen, len(fallbackScorePairs))
	for _, pair := range fallbackScorePairs {
		assert.True(t, seen[pair], "缺少总分对 %v", pair)
	}
}
