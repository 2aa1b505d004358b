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

// LoveIndexService 根据判决结果评估爱情指数。
// 大模型不可用时按公式算，不返回错误。
type LoveIndexService interface {
	Estimate(ctx context.Context, input domain.CaseInput, res domain.JudgeResult) domain.LoveIndexAnalysis
}

type loveIndexService struct {
	aiSvc  ai.LLMService
	logger *elog.Component
}

func NewLoveIndexService(aiSvc ai.LLMService) LoveIndexService {
	return &loveIndexService{
		aiSvc:  aiSvc,
		logger: elog.DefaultLogger,
	}
}

func (l *loveIndexService) Estimate(ctx context.Context, input domain.CaseInput, res domain.JudgeResult) domain.LoveIndexAnalysis {
	resp, err := l.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizCourtLoveIndex,
		Tid:   shortuuid.New(),
		Input: []string{loveIndexPrompt(input, res)},
	})
	if err != nil {
		l.logger.Warn("爱情指数调用失败，按公式计算", elog.FieldErr(err))
		return l.formulaIndex(res)
	}
	return l.parse(resp.Answer, res)
}

type loveIndexResp struct {
	LoveIndex   *float64 `json:"loveIndex"`
	LoveLevel   string   `json:"loveLevel"`
	MainFactors []string `json:"mainFactors"`
	Suggestions []string `json:"suggestions"`
	Reasoning   string   `json:"reasoning"`
}

func (l *loveIndexService) parse(answer string, res domain.JudgeResult) domain.LoveIndexAnalysis {
	data := extractJSON(answer)
	if data == "" {
		l.logger.Warn("爱情指数回答里没有 JSON，按公式计算")
		return l.formulaIndex(res)
	}
	var resp loveIndexResp
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		l.logger.Warn("爱情指数 JSON 解析失败，按公式计算", elog.FieldErr(err))
		return l.formulaIndex(res)
	}
	index := 65.0
	if resp.LoveIndex != nil && *resp.LoveIndex >= 0 && *resp.LoveIndex <= 100 {
		index = *resp.LoveIndex
	}
	out := domain.LoveIndexAnalysis{
		LoveIndex: round1(index),
		// 状态名按指数重算，大模型自己报的经常和分级表对不上
		LoveLevel:   loveLevelFor(index),
		MainFactors: resp.MainFactors,
		Suggestions: resp.Suggestions,
		Reasoning:   resp.Reasoning,
	}
	if len(out.MainFactors) == 0 {
		out.MainFactors = []string{
			"双方都有改善关系的意愿",
			"沟通方式需要改进",
			"信任需要重建",
		}
	}
	if len(out.Suggestions) == 0 {
		out.Suggestions = []string{
			"多进行开诚布公的深度交流",
			"学会换位思考，理解对方感受",
			"建立更好的冲突处理机制",
			"增加共同的美好回忆",
		}
	}
	if out.Reasoning == "" {
		out.Reasoning = "基于争吵分析和双方表现进行综合评估"
	}
	return out
}

// formulaIndex 公式兜底：
// 基础分 = clamp(双方总分均值 * 0.8, 20, 90)
// 责任差距超过 20 个百分点后每多 1 点扣 0.3，下限 15
// 沟通和共情双高加 5，任一很低减 8
func (l *loveIndexService) formulaIndex(res domain.JudgeResult) domain.LoveIndexAnalysis {
	p1, p2 := res.Scoring.Person1, res.Scoring.Person2
	avgScore := float64(p1.TotalScore+p2.TotalScore) / 2

	baseIndex := math.Min(90, math.Max(20, avgScore*0.8))

	gap := math.Abs(res.Scoring.Fault.Person1 - res.Scoring.Fault.Person2)
	severityPenalty := (gap - 20) * 0.3
	baseIndex = math.Max(15, baseIndex-math.Max(0, severityPenalty))

	commAvg := float64(p1.Communication+p2.Communication) / 2
	empathyAvg := float64(p1.Empathy+p2.Empathy) / 2
	if commAvg >= 15 && empathyAvg >= 15 {
		baseIndex += 5
	}
	if commAvg <= 8 || empathyAvg <= 8 {
		baseIndex -= 8
	}

	finalIndex := round1(baseIndex)

	commHint := "加强"
	if commAvg >= 12 {
		commHint = "保持"
	}
	commDesc := "沟通能力待提升"
	if commAvg >= 12 {
		commDesc = "沟通基础良好"
	}
	empathyDesc := "共情能力需加强"
	if empathyAvg >= 12 {
		empathyDesc = "共情能力尚可"
	}

	return domain.LoveIndexAnalysis{
		LoveIndex: finalIndex,
		LoveLevel: loveLevelFor(finalIndex),
		MainFactors: []string{
			fmt.Sprintf("双方平均表现得分：%d分", int(math.Round(avgScore))),
			fmt.Sprintf("责任分配差距：%d%%", int(math.Round(gap))),
			fmt.Sprintf("沟通和共情能力需要%s", commHint),
		},
		Suggestions: []string{
			"增加高质量的一对一交流时间",
			"学习更好的冲突解决技巧",
			"培养换位思考的习惯",
			"创造更多正面的共同体验",
		},
		Reasoning: fmt.Sprintf("基于双方评分（平均%d分）和责任分配（%d%%差距），综合计算出爱情指数%.1f分。%s，%s。",
			int(math.Round(avgScore)), int(math.Round(gap)), finalIndex, commDesc, empathyDesc),
	}
}

// loveLevelFor 分级边界是闭区间下界
func loveLevelFor(index float64) string {
	switch {
	case index >= 90:
		return "热恋期"
	case index >= 75:
		return "甜蜜期"
	case index >= 60:
		return "稳定期"
	case index >= 45:
		return "磨合期"
	case index >= 30:
		return "困难期"
	case index >= 15:
		return "危机期"
	default:
		return "破裂边缘"
	}
}
