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

package web

import (
	"strings"

	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
)

type SaveVerdictReq struct {
	FormData domain.Persons `json:"formData"`
	Result   domain.Result  `json:"result"`
}

func (req SaveVerdictReq) invalid() bool {
	return partyInvalid(req.FormData.Person1) ||
		partyInvalid(req.FormData.Person2) ||
		strings.TrimSpace(req.Result.Verdict) == ""
}

func partyInvalid(p domain.Party) bool {
	return strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Story) == "" ||
		strings.TrimSpace(p.Complaint) == ""
}

type SaveVerdictResp struct {
	VerdictId int64  `json:"verdictId"`
	CaseId    string `json:"caseId"`
}

type VoteReq struct {
	VoteType          string `json:"voteType"`
	DeviceFingerprint string `json:"deviceFingerprint"`
}

type VoteStatusResp struct {
	Voted    bool   `json:"voted"`
	VoteType string `json:"voteType,omitempty"`
}

type Votes struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

type Verdict struct {
	Id        int64          `json:"id"`
	CaseId    string         `json:"caseId"`
	Title     string         `json:"title"`
	Summary   string         `json:"summary"`
	Persons   domain.Persons `json:"persons"`
	Result    domain.Result  `json:"result"`
	Votes     Votes          `json:"votes"`
	Timestamp int64          `json:"timestamp"`
}

type HistoryResp struct {
	Verdicts   []Verdict `json:"verdicts"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int64     `json:"totalPages"`
}

func newVerdict(v domain.Verdict) Verdict {
	return Verdict{
		Id:        v.Id,
		CaseId:    v.CaseId,
		Title:     v.Title,
		Summary:   v.Summary,
		Persons:   v.Persons,
		Result:    v.Result,
		Votes:     Votes{Likes: v.Likes, Dislikes: v.Dislikes},
		Timestamp: v.Ctime,
	}
}
