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

	"github.com/ecodeclub/woofcourt/internal/jury/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/event"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/repository"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/repository/dao"
	"github.com/ecodeclub/woofcourt/internal/verdict"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrDuplicateVote   = errors.New("已经参与过这个案件的评判了")
	ErrVerdictNotFound = verdict.ErrVerdictNotFound
	ErrNoAvailableCase = verdict.ErrNoAvailableCase
)

// VoteStatus 一台设备在一个案件里的评判情况
type VoteStatus struct {
	Voted       bool
	SupportSide string
}

// RandomCase 待评判的案例，带上已有的计票汇总
type RandomCase struct {
	Verdict verdict.Verdict
	Stats   domain.Stats
}

type JuryService interface {
	Vote(ctx context.Context, vote domain.Vote) error
	VoteStatus(ctx context.Context, verdictId int64, fingerprint string) (VoteStatus, error)
	Stats(ctx context.Context, verdictId int64) (domain.Stats, error)

	AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	Comments(ctx context.Context, verdictId int64, page, limit int) ([]domain.Comment, int64, error)

	// RandomCase 随机抽一个这台设备还没评判过的案例
	RandomCase(ctx context.Context, fingerprint string) (RandomCase, error)
}

type juryService struct {
	repo       repository.JuryRepository
	verdictSvc verdict.Service
	producer   event.VoteEventProducer
	logger     *elog.Component
}

func NewJuryService(repo repository.JuryRepository,
	verdictSvc verdict.Service,
	producer event.VoteEventProducer) JuryService {
	return &juryService{
		repo:       repo,
		verdictSvc: verdictSvc,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *juryService) Vote(ctx context.Context, vote domain.Vote) error {
	_, err := s.verdictSvc.Detail(ctx, vote.VerdictId)
	if err != nil {
		return err
	}
	err = s.repo.CreateVote(ctx, vote)
	if errors.Is(err, dao.ErrDuplicateVote) {
		return ErrDuplicateVote
	}
	if err != nil {
		return err
	}
	// 汇总异步刷，发消息失败不影响投票本身
	evt := event.VoteEvent{VerdictId: vote.VerdictId}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送投票事件失败",
			elog.FieldErr(er),
			elog.Int64("verdictId", vote.VerdictId))
	}
	return nil
}

func (s *juryService) VoteStatus(ctx context.Context, verdictId int64, fingerprint string) (VoteStatus, error) {
	vote, err := s.repo.GetVote(ctx, verdictId, fingerprint)
	if errors.Is(err, dao.ErrVoteNotFound) {
		return VoteStatus{}, nil
	}
	if err != nil {
		return VoteStatus{}, err
	}
	return VoteStatus{Voted: true, SupportSide: vote.SupportSide}, nil
}

func (s *juryService) Stats(ctx context.Context, verdictId int64) (domain.Stats, error) {
	return s.repo.Stats(ctx, verdictId)
}

func (s *juryService) AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	_, err := s.verdictSvc.Detail(ctx, comment.VerdictId)
	if err != nil {
		return domain.Comment{}, err
	}
	return s.repo.CreateComment(ctx, comment)
}

func (s *juryService) Comments(ctx context.Context, verdictId int64, page, limit int) ([]domain.Comment, int64, error) {
	offset := (page - 1) * limit
	list, err := s.repo.ListComments(ctx, verdictId, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountComments(ctx, verdictId)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *juryService) RandomCase(ctx context.Context, fingerprint string) (RandomCase, error) {
	votedIds, err := s.repo.VotedVerdictIds(ctx, fingerprint)
	if err != nil {
		return RandomCase{}, err
	}
	res, err := s.verdictSvc.RandomExcluding(ctx, votedIds)
	if err != nil {
		return RandomCase{}, err
	}
	// 汇总表里没有记录说明还没人投过票，零值就是正确答案
	stats, err := s.repo.CachedStats(ctx, res.Id)
	if err != nil {
		stats = domain.Stats{VerdictId: res.Id}
	}
	return RandomCase{Verdict: res, Stats: stats}, nil
}
