package service

import (
	"fmt"

	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
)

const scoringPromptTpl = `
你是汪汪法庭的专业评分员，请严格按照5维度评分标准对以下情侣争吵案件进行量化评分。

## 案件信息：
**当事人甲（%s）陈述：**
- 事情经过：%s
- 委屈诉求：%s

**当事人乙（%s）陈述：**
- 事情经过：%s
- 委屈诉求：%s

## 评分标准（每个维度0-20分）：

### 1. 沟通态度 (0-20分)
- 20-18分：主动沟通，耐心倾听，语言温和
- 17-14分：基本愿意沟通，偶有不耐烦
- 13-10分：被动沟通，经常打断对方
- 9-6分：回避沟通，态度冷淡或激进
- 5-0分：拒绝沟通，恶语相向

### 2. 情绪控制 (0-20分)
- 20-18分：全程冷静理性，包容理解
- 17-14分：基本平和，偶有情绪波动
- 13-10分：情绪不稳，有指责行为
- 9-6分：经常情绪化，多次激动
- 5-0分：完全失控，暴躁易怒

### 3. 问题处理 (0-20分)
- 20-18分：积极寻求解决方案，建设性强
- 17-14分：愿意解决问题，有一定妥协
- 13-10分：态度一般，固执己见
- 9-6分：逃避问题，破坏性行为
- 5-0分：完全逃避，纯粹破坏

### 4. 理解共情 (0-20分)
- 20-18分：充分换位思考，体谅关怀对方
- 17-14分：基本理解对方，偶有共情
- 13-10分：理解有限，较为自我中心
- 9-6分：缺乏共情，经常忽视对方感受
- 5-0分：完全自我中心，冷漠无情

### 5. 行为表现 (0-20分)
- 20-18分：言行一致，负责任，主动改进
- 17-14分：基本可靠，有改进意愿
- 13-10分：偶有不一致，改进意愿一般
- 9-6分：经常推诿责任，言不由衷
- 5-0分：完全不负责，重复犯错

## 评分要求：
1. 必须基于具体陈述内容评分，不能主观臆断
2. 仔细分析双方的具体行为和态度表现
3. 评分要有差异性，避免给出相近分数
4. 责任比例计算公式：
   - Person1责任%% = (Person2总分 / (Person1总分 + Person2总分)) × 100%%
   - Person2责任%% = (Person1总分 / (Person1总分 + Person2总分)) × 100%%
   - 即：表现差的人(得分低)承担更多责任
5. 必须说明每个维度扣分的具体原因

请返回以下JSON格式：
{
  "scoringDetails": {
    "person1": {
      "communication": 具体分数,
      "emotionControl": 具体分数,
      "problemSolving": 具体分数,
      "empathy": 具体分数,
      "behavior": 具体分数,
      "totalScore": 总分,
      "reasoning": "详细说明每个维度的评分理由，指出具体的扣分和加分原因"
    },
    "person2": {
      "communication": 具体分数,
      "emotionControl": 具体分数,
      "problemSolving": 具体分数,
      "empathy": 具体分数,
      "behavior": 具体分数,
      "totalScore": 总分,
      "reasoning": "详细说明每个维度的评分理由，指出具体的扣分和加分原因"
    }
  },
  "faultPercentage": {
    "person1": 精确百分比（保留1位小数）,
    "person2": 精确百分比（保留1位小数）
  }
}

严格要求：只返回JSON格式，不要任何其他解释文字！
`

func scoringPrompt(input domain.CaseInput) string {
	return fmt.Sprintf(scoringPromptTpl,
		input.Person1.Name, input.Person1.Story, input.Person1.Complaint,
		input.Person2.Name, input.Person2.Story, input.Person2.Complaint)
}

const analysisPromptTpl = `
你是汪汪法庭的专业情感纠纷调解法官米粒，请基于已完成的评分分析，对情侣争吵案件进行综合判决。

## 案件信息：
**当事人甲（%s）陈述：**
- 事情经过：%s
- 委屈诉求：%s

**当事人乙（%s）陈述：**
- 事情经过：%s
- 委屈诉求：%s

## 评分结果：
- %s总分：%d/100，责任比例：%.1f%%
- %s总分：%d/100，责任比例：%.1f%%

请返回以下JSON格式：
{
  "title": "吸引人的案件标题（10-20字）",
  "summary": "一句话概括核心问题（20-50字）",
  "reason": "详细分析事件经过和争执根本原因（200-500字）",
  "verdict": "以可爱正式的法律用语写判决，引用适当的虚构法条",
  "solutions": {
    "person1": [
      "针对具体问题的第一条建议",
      "针对具体问题的第二条建议",
      "针对具体问题的第三条建议",
      "针对具体问题的第四条建议"
    ],
    "person2": [
      "针对具体问题的第一条建议",
      "针对具体问题的第二条建议",
      "针对具体问题的第三条建议",
      "针对具体问题的第四条建议"
    ]
  }
}

要求：
1. 严格返回JSON格式，不添加其他文字
2. 标题要吸引人，体现争吵核心矛盾
3. 分析要客观深入，指出问题根源
4. 判决要有趣但正式，可创造法条名称
5. 解决方案要具体可执行，针对各自问题
`

func analysisPrompt(input domain.CaseInput, scoring domain.ScoringResult) string {
	return fmt.Sprintf(analysisPromptTpl,
		input.Person1.Name, input.Person1.Story, input.Person1.Complaint,
		input.Person2.Name, input.Person2.Story, input.Person2.Complaint,
		input.Person1.Name, scoring.Person1.TotalScore, scoring.Fault.Person1,
		input.Person2.Name, scoring.Person2.TotalScore, scoring.Fault.Person2)
}

const loveIndexPromptTpl = `
你是汪汪法庭的专业情感分析师，请基于情侣争吵案件的分析结果，评估他们的爱情指数和关系状态。

## 案件基本信息：
**当事人甲（%s）：**
- 事情经过：%s
- 委屈诉求：%s

**当事人乙（%s）：**
- 事情经过：%s
- 委屈诉求：%s

## 争吵分析结果：
- 案件标题：%s
- 问题概要：%s
- 分析原因：%s
- 责任分配：%s %.1f%% vs %s %.1f%%
- 评分详情：
  * %s总分：%d/100
  * %s总分：%d/100
- 法庭判决：%s

## 爱情指数评估标准：

### 分数计算因素（综合评估0-100分）：
1. **基础感情分**（40分）：
   - 根据争吵严重程度：轻微争吵35-40分，中等争吵25-35分，严重争吵10-25分
   - 根据问题性质：沟通问题影响较小，信任问题影响较大，原则问题影响最大

2. **沟通质量分**（25分）：
   - 基于双方评分中的沟通态度和理解共情得分
   - 高分表示良好沟通能力，有利于解决问题

3. **解决能力分**（20分）：
   - 基于问题处理和行为表现得分
   - 高分表示有改善和解决问题的能力

4. **情感成熟度分**（15分）：
   - 基于情绪控制得分和整体表现
   - 高分表示情感成熟，能理性处理关系问题

### 爱情状态分级：
- 90-100分：热恋期 - 偶有小摩擦，感情依然甜蜜
- 75-89分：甜蜜期 - 关系稳定，有小问题但能很好解决
- 60-74分：稳定期 - 关系平稳，需要更多沟通和理解
- 45-59分：磨合期 - 存在一些问题，需要双方努力改善
- 30-44分：困难期 - 关系面临挑战，需要认真对待和改变
- 15-29分：危机期 - 关系不稳定，需要专业建议和重大调整
- 0-14分：破裂边缘 - 关系岌岌可危，需要深刻反思

请返回以下JSON格式：
{
  "loveIndex": 精确的0-100分数（保留1位小数）,
  "loveLevel": "对应的爱情状态名称",
  "mainFactors": [
    "影响爱情指数的主要正面因素1",
    "影响爱情指数的主要负面因素1",
    "影响爱情指数的主要因素2（可正可负）"
  ],
  "suggestions": [
    "针对性的改善建议1",
    "针对性的改善建议2",
    "针对性的改善建议3",
    "针对性的改善建议4"
  ],
  "reasoning": "详细说明为什么给出这个爱情指数，包括各个因素的具体影响和计算逻辑（150-300字）"
}

要求：
1. 必须严格返回JSON格式，不要其他文字
2. 爱情指数要基于具体分析，不能随意给分
3. 主要因素要具体，不能泛泛而谈
4. 建议要针对这对情侣的具体问题
5. 评分理由要逻辑清晰，说明具体扣分和加分原因
`

func loveIndexPrompt(input domain.CaseInput, res domain.JudgeResult) string {
	return fmt.Sprintf(loveIndexPromptTpl,
		input.Person1.Name, input.Person1.Story, input.Person1.Complaint,
		input.Person2.Name, input.Person2.Story, input.Person2.Complaint,
		res.Title, res.Summary, res.Reason,
		input.Person1.Name, res.Scoring.Fault.Person1,
		input.Person2.Name, res.Scoring.Fault.Person2,
		input.Person1.Name, res.Scoring.Person1.TotalScore,
		input.Person2.Name, res.Scoring.Person2.TotalScore,
		res.Verdict)
}
