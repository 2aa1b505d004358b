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
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	ErrVerdictNotFound = errors.New("判决不存在")
	ErrDuplicateVote   = errors.New("已经对此判决投过票了")
	ErrVoteNotFound    = errors.New("还没有投票，无法撤回")
	ErrNoAvailableCase = errors.New("没有可供评判的案例了")
)

// VoteStatus 一台设备在一份判决上的投票情况
type VoteStatus struct {
	Voted    bool
	VoteType string
}

type VerdictService interface {
	Save(ctx context.Context, persons domain.Persons, result domain.Result) (domain.Verdict, error)
	Detail(ctx context.Context, id int64) (domain.Verdict, error)
	History(ctx context.Context, page, limit int, search string) ([]domain.Verdict, int64, error)
	// RandomExcluding 随机抽一份不在排除列表里的判决给陪审团评判
	RandomExcluding(ctx context.Context, excludeIds []int64) (domain.Verdict, error)

	Vote(ctx context.Context, vote domain.Vote) error
	WithdrawVote(ctx context.Context, verdictId int64, fingerprint string) error
	VoteStatus(ctx context.Context, verdictId int64, fingerprint string) (VoteStatus, error)
}

type verdictService struct {
	repo repository.VerdictRepository
	node *snowflake.Node
}

func NewVerdictService(repo repository.VerdictRepository, node *snowflake.Node) VerdictService {
	return &verdictService{
		repo: repo,
		node: node,
	}
}

func (s *verdictService) Save(ctx context.Context, persons domain.Persons, result domain.Result) (domain.Verdict, error) {
	verdict := domain.Verdict{
		CaseId:  fmt.Sprintf("CP-%d", s.node.Generate().Int64()),
		Title:   result.Title,
		Summary: result.Summary,
		Persons: persons,
		Result:  result,
	}
	id, err := s.repo.Create(ctx, verdict)
	if err != nil {
		return domain.Verdict{}, err
	}
	verdict.Id = id
	return verdict, nil
}

func (s *verdictService) Detail(ctx context.Context, id int64) (domain.Verdict, error) {
	res, err := s.repo.Detail(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Verdict{}, ErrVerdictNotFound
	}
	return res, err
}

func (s *verdictService) History(ctx context.Context, page, limit int, search string) ([]domain.Verdict, int64, error) {
	offset := (page - 1) * limit
	list, err := s.repo.List(ctx, offset, limit, search)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *verdictService) RandomExcluding(ctx context.Context, excludeIds []int64) (domain.Verdict, error) {
	res, err := s.repo.RandomExcluding(ctx, excludeIds)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Verdict{}, ErrNoAvailableCase
	}
	return res, err
}

func (s *verdictService) Vote(ctx context.Context, vote domain.Vote) error {
	err := s.repo.CastVote(ctx, vote)
	switch {
	case errors.Is(err, dao.ErrDuplicateVote):
		return ErrDuplicateVote
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrVerdictNotFound
	default:
		return err
	}
}

func (s *verdictService) WithdrawVote(ctx context.Context, verdictId int64, fingerprint string) error {
	err := s.repo.WithdrawVote(ctx, verdictId, fingerprint)
	if errors.Is(err, dao.ErrVoteNotFound) {
		return ErrVoteNotFound
	}
	return err
}

func (s *verdictService) VoteStatus(ctx context.Context, verdictId int64, fingerprint string) (VoteStatus, error) {
	vote, err := s.repo.GetVote(ctx, verdictId, fingerprint)
	if errors.Is(err, dao.ErrVoteNotFound) {
		return VoteStatus{}, nil
	}
	if err != nil {
		return VoteStatus{}, err
	}
	return VoteStatus{Voted: true, VoteType: vote.Type}, nil
}
