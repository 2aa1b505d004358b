package domain

// Party 一方当事人的陈述
type Party struct {
	Name      string
	Story     string
	Complaint string
}

// CaseInput 一次纠纷提交，只在请求期间存在，不单独落库
type CaseInput struct {
	Person1 Party
	Person2 Party
}

// ScoringDetails 五维度评分，每个维度 0-20
type ScoringDetails struct {
	Communication  int
	EmotionControl int
	ProblemSolving int
	Empathy        int
	Behavior       int
	TotalScore     int
	Reasoning      string
}

// Sum 五个维度之和
func (s ScoringDetails) Sum() int {
	return s.Communication + s.EmotionControl + s.ProblemSolving + s.Empathy + s.Behavior
}

type FaultPercentage struct {
	Person1 float64
	Person2 float64
}

type ScoringResult struct {
	Person1 ScoringDetails
	Person2 ScoringDetails
	Fault   FaultPercentage
}

// Solutions 给双方的建议
type Solutions struct {
	Person1 []string
	Person2 []string
}

// Analysis 判词的叙事部分
type Analysis struct {
	Title     string
	Summary   string
	Reason    string
	Verdict   string
	Solutions Solutions
}

// JudgeResult 完整的分析结果
type JudgeResult struct {
	Analysis
	Scoring ScoringResult
}

// LoveIndexAnalysis 爱情指数评估
type LoveIndexAnalysis struct {
	LoveIndex   float64
	LoveLevel   string
	MainFactors []string
	Suggestions []string
	Reasoning   string
}
