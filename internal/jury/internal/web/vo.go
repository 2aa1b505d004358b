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
	"unicode/utf8"

	"github.com/ecodeclub/woofcourt/internal/jury/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/service"
	"github.com/ecodeclub/woofcourt/internal/verdict"
)

const (
	minCommentLen = 5
	maxCommentLen = 500
)

type VoteReq struct {
	SupportSide       string `json:"supportSide"`
	Reasoning         string `json:"reasoning"`
	DeviceFingerprint string `json:"deviceFingerprint"`
}

type VoteStatusResp struct {
	Voted       bool   `json:"voted"`
	SupportSide string `json:"supportSide,omitempty"`
}

type Stats struct {
	TotalVotes        int64 `json:"totalVotes"`
	Person1Votes      int64 `json:"person1Votes"`
	Person2Votes      int64 `json:"person2Votes"`
	Person1Percentage int   `json:"person1Percentage"`
	Person2Percentage int   `json:"person2Percentage"`
}

func newStats(s domain.Stats) Stats {
	return Stats{
		TotalVotes:        s.TotalVotes,
		Person1Votes:      s.Person1Votes,
		Person2Votes:      s.Person2Votes,
		Person1Percentage: s.Person1Percentage,
		Person2Percentage: s.Person2Percentage,
	}
}

type CommentReq struct {
	Comment           string `json:"comment"`
	SupportSide       string `json:"supportSide"`
	DeviceFingerprint string `json:"deviceFingerprint"`
}

// commentContent 返回去掉首尾空白后的评论内容
func (req CommentReq) commentContent() string {
	return strings.TrimSpace(req.Comment)
}

func (req CommentReq) contentInvalid() bool {
	n := utf8.RuneCountInString(req.commentContent())
	return n < minCommentLen || n > maxCommentLen
}

type Comment struct {
	Id          int64  `json:"id"`
	VerdictId   int64  `json:"verdictId"`
	Comment     string `json:"comment"`
	SupportSide string `json:"supportSide"`
	Timestamp   int64  `json:"timestamp"`
}

func newComment(c domain.Comment) Comment {
	return Comment{
		Id:          c.Id,
		VerdictId:   c.VerdictId,
		Comment:     c.Content,
		SupportSide: c.SupportSide,
		Timestamp:   c.Ctime,
	}
}

type CommentsResp struct {
	Comments   []Comment `json:"comments"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int64     `json:"totalPages"`
}

type RandomCaseResp struct {
	Id        int64           `json:"id"`
	CaseId    string          `json:"caseId"`
	Title     string          `json:"title"`
	Summary   string          `json:"summary"`
	Persons   verdict.Persons `json:"persons"`
	Result    verdict.Result  `json:"result"`
	Timestamp int64           `json:"timestamp"`
	JuryStats Stats           `json:"juryStats"`
}

func newRandomCaseResp(c service.RandomCase) RandomCaseResp {
	return RandomCaseResp{
		Id:        c.Verdict.Id,
		CaseId:    c.Verdict.CaseId,
		Title:     c.Verdict.Title,
		Summary:   c.Verdict.Summary,
		Persons:   c.Verdict.Persons,
		Result:    c.Verdict.Result,
		Timestamp: c.Verdict.Ctime,
		JuryStats: newStats(c.Stats),
	}
}
