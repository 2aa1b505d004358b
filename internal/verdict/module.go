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

package verdict

import (
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/service"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.VerdictService
type VoteStatus = service.VoteStatus

type Verdict = domain.Verdict
type Persons = domain.Persons
type Party = domain.Party
type Result = domain.Result
type Vote = domain.Vote

const (
	VoteTypeLike    = domain.VoteTypeLike
	VoteTypeDislike = domain.VoteTypeDislike
)

var (
	ErrVerdictNotFound = service.ErrVerdictNotFound
	ErrDuplicateVote   = service.ErrDuplicateVote
	ErrVoteNotFound    = service.ErrVoteNotFound
	ErrNoAvailableCase = service.ErrNoAvailableCase
)
