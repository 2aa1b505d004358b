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

	"github.com/ecodeclub/woofcourt/internal/ai"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// ComposerService 基于评分结果生成判词的叙事部分。
// 和评分一样，任何失败都走兜底模板，不返回错误。
type ComposerService interface {
	Compose(ctx context.Context, input domain.CaseInput, scoring domain.ScoringResult) domain.Analysis
}

type composerService struct {
	aiSvc  ai.LLMService
	rnd    *Rand
	logger *elog.Component
}

func NewComposerService(aiSvc ai.LLMService, rnd *Rand) ComposerService {
	return &composerService{
		aiSvc:  aiSvc,
		rnd:    rnd,
		logger: elog.DefaultLogger,
	}
}

func (c *composerService) Compose(ctx context.Context, input domain.CaseInput, scoring domain.ScoringResult) domain.Analysis {
	resp, err := c.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizCourtVerdict,
		Tid:   shortuuid.New(),
		Input: []string{analysisPrompt(input, scoring)},
	})
	if err != nil {
		c.logger.Warn("判词调用失败，使用兜底判词", elog.FieldErr(err))
		return c.fallbackAnalysis(input)
	}
	return c.parse(resp.Answer, input)
}

type analysisResp struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Reason    string `json:"reason"`
	Verdict   string `json:"verdict"`
	Solutions struct {
		Person1 []string `json:"person1"`
		Person2 []string `json:"person2"`
	} `json:"solutions"`
}

func (c *composerService) parse(answer string, input domain.CaseInput) domain.Analysis {
	data := extractJSON(answer)
	if data == "" {
		c.logger.Warn("判词回答里没有 JSON，使用默认判词")
		return c.defaultAnalysis(input)
	}
	var resp analysisResp
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		c.logger.Warn("判词 JSON 解析失败，使用默认判词", elog.FieldErr(err))
		return c.defaultAnalysis(input)
	}
	res := domain.Analysis{
		Title:   resp.Title,
		Summary: resp.Summary,
		Reason:  resp.Reason,
		Verdict: resp.Verdict,
		Solutions: domain.Solutions{
			Person1: resp.Solutions.Person1,
			Person2: resp.Solutions.Person2,
		},
	}
	// 逐字段兜底，单个字段缺失不影响其它字段
	if res.Title == "" {
		res.Title = "情感争议案"
	}
	if res.Summary == "" {
		res.Summary = "双方因沟通问题产生矛盾"
	}
	if res.Reason == "" {
		res.Reason = "双方在沟通方式和期望值上存在差异"
	}
	if res.Verdict == "" {
		res.Verdict = "经本庭审理查明，双方均需要改进沟通方式，现判决和解。"
	}
	// 建议列表整组替换，不做逐条补齐
	if len(res.Solutions.Person1) == 0 {
		res.Solutions.Person1 = defaultSolutions()
	}
	if len(res.Solutions.Person2) == 0 {
		res.Solutions.Person2 = defaultSolutions()
	}
	return res
}

func defaultSolutions() []string {
	return []string{
		"主动与对方沟通，表达自己的想法",
		"学会倾听对方的观点",
		"控制情绪，避免激化矛盾",
		"寻找双方都能接受的解决方案",
	}
}

// defaultAnalysis JSON 整体解析不出来时的默认判词
func (c *composerService) defaultAnalysis(input domain.CaseInput) domain.Analysis {
	n1, n2 := input.Person1.Name, input.Person2.Name
	return domain.Analysis{
		Title:   fmt.Sprintf("%s与%s的争议", n1, n2),
		Summary: "双方在沟通方式和期望值上存在差异",
		Reason:  "根据双方陈述，双方在沟通方式和期望值上存在差异，需要加强相互理解。",
		Verdict: fmt.Sprintf("经本庭审理查明，%s与%s双方均需要改进沟通方式，现判决和解。", n1, n2),
		Solutions: domain.Solutions{
			Person1: defaultSolutions(),
			Person2: defaultSolutions(),
		},
	}
}

// fallbackAnalysis 大模型完全不可用时，从模板池里随机拼一份判词
func (c *composerService) fallbackAnalysis(input domain.CaseInput) domain.Analysis {
	n1, n2 := input.Person1.Name, input.Person2.Name
	reasons := []string{
		fmt.Sprintf("根据双方陈述，%s认为问题在于沟通不畅，而%s则强调情感需求未被满足，实际上反映了双方期望值的差异", n1, n2),
		fmt.Sprintf("案情显示%s和%s在事件处理方式上存在分歧，各自从不同角度理解同一件事", n1, n2),
		"通过分析双方陈述可见，争执根源在于日常相处模式的认知差异，以及对彼此行为动机的误解",
		fmt.Sprintf("本案核心问题是%s与%s在表达方式和接收理解上的不匹配", n1, n2),
	}
	verdicts := []string{
		fmt.Sprintf("经汪汪法庭米粒法官审理查明，%s违反了《恋人相处基本法》第3条\"主动沟通义务\"，%s违反了第7条\"情绪表达合理性规定\"。鉴于双方都有改进空间，判决双方承担相应责任，并需执行和解方案。", n1, n2),
		fmt.Sprintf("本庭认定，%s在事件中存在\"换位思考不足罪\"，%s犯有\"表达方式欠妥罪\"。依据《情侣和谐共处条例》，判决双方各自反思并积极改进。", n1, n2),
		fmt.Sprintf("米粒法官判决：%s因未能及时察觉对方情感需求，触犯《爱情维护法》第5条；%s因情绪控制不当，违反第12条规定。现判决双方执行情感修复计划。", n1, n2),
		fmt.Sprintf("经审理，%s和%s分别违反了恋爱关系中的\"理解义务\"和\"表达规范\"。本庭宣判：双方需在指导下改善沟通模式，重建和谐关系。", n1, n2),
	}
	titles := []string{
		fmt.Sprintf("%s与%s的沟通危机", n1, n2),
		fmt.Sprintf("情侣相处分歧案：%s vs %s", n1, n2),
		"恋人矛盾调解：双方期望差异争议",
		fmt.Sprintf("情感纠纷案件：%s与%s", n1, n2),
	}
	summaries := []string{
		"双方因沟通方式和情感需求不匹配产生矛盾",
		"情侣在日常相处中因期望值差异引发争执",
		"恋人关系中的理解偏差导致情感冲突",
		"双方在表达和接收情感信息上存在分歧",
	}
	return domain.Analysis{
		Title:   titles[c.rnd.Intn(len(titles))],
		Summary: summaries[c.rnd.Intn(len(summaries))],
		Reason:  reasons[c.rnd.Intn(len(reasons))],
		Verdict: verdicts[c.rnd.Intn(len(verdicts))],
		Solutions: domain.Solutions{
			Person1: []string{
				fmt.Sprintf("针对这次事件，%s需要在日常中多主动询问对方的感受和想法", n1),
				"建立定期沟通机制，每周至少安排一次深度交流时间",
				"学会在表达观点时先确认对方是否理解了你的真实意图",
				"遇到分歧时，先尝试站在对方角度思考3分钟再做反应",
			},
			Person2: []string{
				fmt.Sprintf("基于此次争执，%s应该学会在情绪激动时暂停对话，冷静后再继续", n2),
				"建立情绪表达的健康方式，避免指责性语言，多用'我觉得'开头",
				"当感到不被理解时，具体说明需要什么样的支持，而不是让对方猜测",
				"培养感激表达习惯，及时认可对方的努力和改变",
			},
		},
	}
}
