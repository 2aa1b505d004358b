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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/repository/dao"
)

type JuryRepository interface {
	CreateVote(ctx context.Context, vote domain.Vote) error
	GetVote(ctx context.Context, verdictId int64, fingerprint string) (domain.Vote, error)
	// Stats 每次都从投票明细现算
	Stats(ctx context.Context, verdictId int64) (domain.Stats, error)
	VotedVerdictIds(ctx context.Context, fingerprint string) ([]int64, error)

	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	ListComments(ctx context.Context, verdictId int64, offset, limit int) ([]domain.Comment, error)
	CountComments(ctx context.Context, verdictId int64) (int64, error)

	// RefreshStats 把明细计票结果刷进冗余的汇总表
	RefreshStats(ctx context.Context, verdictId int64) error
	CachedStats(ctx context.Context, verdictId int64) (domain.Stats, error)
}

type juryRepository struct {
	dao dao.JuryDAO
}

func NewJuryRepository(d dao.JuryDAO) JuryRepository {
	return &juryRepository{dao: d}
}

func (r *juryRepository) CreateVote(ctx context.Context, vote domain.Vote) error {
	return r.dao.CreateVote(ctx, dao.JuryVote{
		VerdictId:   vote.VerdictId,
		Fingerprint: vote.Fingerprint,
		SupportSide: vote.SupportSide,
		Reasoning:   vote.Reasoning,
	})
}

func (r *juryRepository) GetVote(ctx context.Context, verdictId int64, fingerprint string) (domain.Vote, error) {
	vote, err := r.dao.GetVote(ctx, verdictId, fingerprint)
	if err != nil {
		return domain.Vote{}, err
	}
	return domain.Vote{
		VerdictId:   vote.VerdictId,
		Fingerprint: vote.Fingerprint,
		SupportSide: vote.SupportSide,
		Reasoning:   vote.Reasoning,
	}, nil
}

func (r *juryRepository) Stats(ctx context.Context, verdictId int64) (domain.Stats, error) {
	person1, person2, err := r.dao.CountVotes(ctx, verdictId)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.NewStats(verdictId, person1, person2), nil
}

func (r *juryRepository) VotedVerdictIds(ctx context.Context, fingerprint string) ([]int64, error) {
	return r.dao.VotedVerdictIds(ctx, fingerprint)
}

func (r *juryRepository) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	entity, err := r.dao.CreateComment(ctx, dao.JuryComment{
		VerdictId:   comment.VerdictId,
		Fingerprint: comment.Fingerprint,
		Content:     comment.Content,
		SupportSide: comment.SupportSide,
	})
	if err != nil {
		return domain.Comment{}, err
	}
	comment.Id = entity.Id
	comment.Ctime = entity.Ctime
	return comment, nil
}

func (r *juryRepository) ListComments(ctx context.Context, verdictId int64, offset, limit int) ([]domain.Comment, error) {
	entities, err := r.dao.ListComments(ctx, verdictId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.JuryComment) domain.Comment {
		return domain.Comment{
			Id:          src.Id,
			VerdictId:   src.VerdictId,
			Fingerprint: src.Fingerprint,
			Content:     src.Content,
			SupportSide: src.SupportSide,
			Ctime:       src.Ctime,
		}
	}), nil
}

func (r *juryRepository) CountComments(ctx context.Context, verdictId int64) (int64, error) {
	return r.dao.CountComments(ctx, verdictId)
}

func (r *juryRepository) RefreshStats(ctx context.Context, verdictId int64) error {
	stats, err := r.Stats(ctx, verdictId)
	if err != nil {
		return err
	}
	return r.dao.UpsertStats(ctx, dao.JuryStats{
		VerdictId:         stats.VerdictId,
		TotalVotes:        stats.TotalVotes,
		Person1Votes:      stats.Person1Votes,
		Person2Votes:      stats.Person2Votes,
		Person1Percentage: stats.Person1Percentage,
		Person2Percentage: stats.Person2Percentage,
	})
}

func (r *juryRepository) CachedStats(ctx context.Context, verdictId int64) (domain.Stats, error) {
	stats, err := r.dao.GetStats(ctx, verdictId)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		VerdictId:         stats.VerdictId,
		TotalVotes:        stats.TotalVotes,
		Person1Votes:      stats.Person1Votes,
		Person2Votes:      stats.Person2Votes,
		Person1Percentage: stats.Person1Percentage,
		Person2Percentage: stats.Person2Percentage,
	}, nil
}
