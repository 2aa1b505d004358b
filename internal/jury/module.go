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

package jury

import (
	"github.com/ecodeclub/woofcourt/internal/jury/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/event"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/service"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	// Consumer 由 ioc 负责 Start
	Consumer *StatsConsumer
}

type Handler = web.Handler
type Service = service.JuryService
type StatsConsumer = event.StatsConsumer
type VoteStatus = service.VoteStatus
type RandomCase = service.RandomCase

type Vote = domain.Vote
type Comment = domain.Comment
type Stats = domain.Stats

const (
	SupportPerson1 = domain.SupportPerson1
	SupportPerson2 = domain.SupportPerson2
	SupportNeutral = domain.SupportNeutral
)

var (
	ErrDuplicateVote   = service.ErrDuplicateVote
	ErrVerdictNotFound = service.ErrVerdictNotFound
	ErrNoAvailableCase = service.ErrNoAvailableCase
)
