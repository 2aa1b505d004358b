package web

import (
	"strings"

	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
)

type Party struct {
	Name      string `json:"name"`
	Story     string `json:"story"`
	Complaint string `json:"complaint"`
}

func (p Party) toDomain() domain.Party {
	return domain.Party{
		Name:      strings.TrimSpace(p.Name),
		Story:     strings.TrimSpace(p.Story),
		Complaint: strings.TrimSpace(p.Complaint),
	}
}

func (p Party) invalid() bool {
	return strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Story) == "" ||
		strings.TrimSpace(p.Complaint) == ""
}

type AnalyzeReq struct {
	Person1 Party `json:"person1"`
	Person2 Party `json:"person2"`
}

func (req AnalyzeReq) toDomain() domain.CaseInput {
	return domain.CaseInput{
		Person1: req.Person1.toDomain(),
		Person2: req.Person2.toDomain(),
	}
}

type ScoringDetails struct {
	Communication  int    `json:"communication"`
	EmotionControl int    `json:"emotionControl"`
	ProblemSolving int    `json:"problemSolving"`
	Empathy        int    `json:"empathy"`
	Behavior       int    `json:"behavior"`
	TotalScore     int    `json:"totalScore"`
	Reasoning      string `json:"reasoning"`
}

type PairScoringDetails struct {
	Person1 ScoringDetails `json:"person1"`
	Person2 ScoringDetails `json:"person2"`
}

type FaultPercentage struct {
	Person1 float64 `json:"person1"`
	Person2 float64 `json:"person2"`
}

type Solutions struct {
	Person1 []string `json:"person1"`
	Person2 []string `json:"person2"`
}

type JudgeResult struct {
	Title           string             `json:"title"`
	Summary         string             `json:"summary"`
	Reason          string             `json:"reason"`
	ScoringDetails  PairScoringDetails `json:"scoringDetails"`
	FaultPercentage FaultPercentage    `json:"faultPercentage"`
	Verdict         string             `json:"verdict"`
	Solutions       Solutions          `json:"solutions"`
}

type LoveIndexReq struct {
	Person1 Party       `json:"person1"`
	Person2 Party       `json:"person2"`
	Result  JudgeResult `json:"result"`
}

type LoveIndexAnalysis struct {
	LoveIndex   float64  `json:"loveIndex"`
	LoveLevel   string   `json:"loveLevel"`
	MainFactors []string `json:"mainFactors"`
	Suggestions []string `json:"suggestions"`
	Reasoning   string   `json:"reasoning"`
}

func newScoringDetails(d domain.ScoringDetails) ScoringDetails {
	return ScoringDetails{
		Communication:  d.Communication,
		EmotionControl: d.EmotionControl,
		ProblemSolving: d.ProblemSolving,
		Empathy:        d.Empathy,
		Behavior:       d.Behavior,
		TotalScore:     d.TotalScore,
		Reasoning:      d.Reasoning,
	}
}

func newJudgeResult(res domain.JudgeResult) JudgeResult {
	return JudgeResult{
		Title:   res.Title,
		Summary: res.Summary,
		Reason:  res.Reason,
		ScoringDetails: PairScoringDetails{
			Person1: newScoringDetails(res.Scoring.Person1),
			Person2: newScoringDetails(res.Scoring.Person2),
		},
		FaultPercentage: FaultPercentage{
			Person1: res.Scoring.Fault.Person1,
			Person2: res.Scoring.Fault.Person2,
		},
		Verdict: res.Verdict,
		Solutions: Solutions{
			Person1: res.Solutions.Person1,
			Person2: res.Solutions.Person2,
		},
	}
}

func (s ScoringDetails) toDomain() domain.ScoringDetails {
	return domain.ScoringDetails{
		Communication:  s.Communication,
		EmotionControl: s.EmotionControl,
		ProblemSolving: s.ProblemSolving,
		Empathy:        s.Empathy,
		Behavior:       s.Behavior,
		TotalScore:     s.TotalScore,
		Reasoning:      s.Reasoning,
	}
}

func (r JudgeResult) toDomain() domain.JudgeResult {
	return domain.JudgeResult{
		Analysis: domain.Analysis{
			Title:   r.Title,
			Summary: r.Summary,
			Reason:  r.Reason,
			Verdict: r.Verdict,
			Solutions: domain.Solutions{
				Person1: r.Solutions.Person1,
				Person2: r.Solutions.Person2,
			},
		},
		Scoring: domain.ScoringResult{
			Person1: r.ScoringDetails.Person1.toDomain(),
			Person2: r.ScoringDetails.Person2.toDomain(),
			Fault: domain.FaultPercentage{
				Person1: r.FaultPercentage.Person1,
				Person2: r.FaultPercentage.Person2,
			},
		},
	}
}

func newLoveIndexAnalysis(res domain.LoveIndexAnalysis) LoveIndexAnalysis {
	return LoveIndexAnalysis{
		LoveIndex:   res.LoveIndex,
		LoveLevel:   res.LoveLevel,
		MainFactors: res.MainFactors,
		Suggestions: res.Suggestions,
		Reasoning:   res.Reasoning,
	}
}
