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

package domain

const (
	VoteTypeLike    = "like"
	VoteTypeDislike = "dislike"
)

type Party struct {
	Name      string `json:"name"`
	Story     string `json:"story"`
	Complaint string `json:"complaint"`
}

type Persons struct {
	Person1 Party `json:"person1"`
	Person2 Party `json:"person2"`
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

// Result 判决书正文，整体以 JSON 形式落库
type Result struct {
	Title           string             `json:"title"`
	Summary         string             `json:"summary"`
	Reason          string             `json:"reason"`
	ScoringDetails  PairScoringDetails `json:"scoringDetails"`
	FaultPercentage FaultPercentage    `json:"faultPercentage"`
	Verdict         string             `json:"verdict"`
	Solutions       Solutions          `json:"solutions"`
}

type Verdict struct {
	Id int64
	// 展示用案件编号，形如 CP-xxxx
	CaseId   string
	Title    string
	Summary  string
	Persons  Persons
	Result   Result
	Likes    int64
	Dislikes int64
	Ctime    int64
}

type Vote struct {
	VerdictId   int64
	Fingerprint string
	Type        string
}

func (v Vote) ValidType() bool {
	return v.Type == VoteTypeLike || v.Type == VoteTypeDislike
}
