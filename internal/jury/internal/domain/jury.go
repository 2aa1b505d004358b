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

import "math"

const (
	SupportPerson1 = "person1"
	SupportPerson2 = "person2"
	// SupportNeutral 只在评论里允许，投票必须站队
	SupportNeutral = "neutral"
)

type Vote struct {
	VerdictId   int64
	Fingerprint string
	SupportSide string
	// Reasoning 投票理由，可以不填
	Reasoning string
}

func (v Vote) ValidSide() bool {
	return v.SupportSide == SupportPerson1 || v.SupportSide == SupportPerson2
}

type Comment struct {
	Id          int64
	VerdictId   int64
	Fingerprint string
	Content     string
	SupportSide string
	Ctime       int64
}

func (c Comment) ValidSide() bool {
	return c.SupportSide == SupportPerson1 ||
		c.SupportSide == SupportPerson2 ||
		c.SupportSide == SupportNeutral
}

type Stats struct {
	VerdictId         int64
	TotalVotes        int64
	Person1Votes      int64
	Person2Votes      int64
	Person1Percentage int
	Person2Percentage int
}

// NewStats 百分比取整后必须加起来是100，person2 一侧用减法补齐
func NewStats(verdictId, person1Votes, person2Votes int64) Stats {
	res := Stats{
		VerdictId:    verdictId,
		TotalVotes:   person1Votes + person2Votes,
		Person1Votes: person1Votes,
		Person2Votes: person2Votes,
	}
	if res.TotalVotes == 0 {
		return res
	}
	res.Person1Percentage = int(math.Round(float64(person1Votes) / float64(res.TotalVotes) * 100))
	res.Person2Percentage = 100 - res.Person1Percentage
	return res
}
