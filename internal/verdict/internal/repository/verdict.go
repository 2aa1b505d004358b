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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository/cache"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type VerdictRepository interface {
	Create(ctx context.Context, verdict domain.Verdict) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Verdict, error)
	List(ctx context.Context, offset, limit int, search string) ([]domain.Verdict, error)
	Count(ctx context.Context, search string) (int64, error)
	RandomExcluding(ctx context.Context, excludeIds []int64) (domain.Verdict, error)

	GetVote(ctx context.Context, verdictId int64, fingerprint string) (domain.Vote, error)
	CastVote(ctx context.Context, vote domain.Vote) error
	WithdrawVote(ctx context.Context, verdictId int64, fingerprint string) error
}

type CachedVerdictRepository struct {
	dao    dao.VerdictDAO
	cache  cache.VerdictCache
	logger *elog.Component
}

func NewCachedVerdictRepository(d dao.VerdictDAO, c cache.VerdictCache) VerdictRepository {
	return &CachedVerdictRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedVerdictRepository) Create(ctx context.Context, verdict domain.Verdict) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(verdict))
}

func (r *CachedVerdictRepository) Detail(ctx context.Context, id int64) (domain.Verdict, error) {
	res, err := r.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	entity, err := r.dao.GetById(ctx, id)
	if err != nil {
		return domain.Verdict{}, err
	}
	res = r.toDomain(entity)
	err = r.cache.Set(ctx, res)
	if err != nil {
		r.logger.Error("回写判决缓存失败",
			elog.FieldErr(err),
			elog.Int64("id", id))
	}
	return res, nil
}

func (r *CachedVerdictRepository) List(ctx context.Context, offset, limit int, search string) ([]domain.Verdict, error) {
	entities, err := r.dao.List(ctx, offset, limit, search)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Verdict) domain.Verdict {
		return r.toDomain(src)
	}), nil
}

func (r *CachedVerdictRepository) Count(ctx context.Context, search string) (int64, error) {
	return r.dao.Count(ctx, search)
}

func (r *CachedVerdictRepository) RandomExcluding(ctx context.Context, excludeIds []int64) (domain.Verdict, error) {
	entity, err := r.dao.RandomExcluding(ctx, excludeIds)
	if err != nil {
		return domain.Verdict{}, err
	}
	return r.toDomain(entity), nil
}

func (r *CachedVerdictRepository) GetVote(ctx context.Context, verdictId int64, fingerprint string) (domain.Vote, error) {
	vote, err := r.dao.GetVote(ctx, verdictId, fingerprint)
	if err != nil {
		return domain.Vote{}, err
	}
	return domain.Vote{
		VerdictId:   vote.VerdictId,
		Fingerprint: vote.Fingerprint,
		Type:        vote.VoteType,
	}, nil
}

func (r *CachedVerdictRepository) CastVote(ctx context.Context, vote domain.Vote) error {
	err := r.dao.CastVote(ctx, dao.Vote{
		VerdictId:   vote.VerdictId,
		Fingerprint: vote.Fingerprint,
		VoteType:    vote.Type,
	})
	if err != nil {
		return err
	}
	r.evict(ctx, vote.VerdictId)
	return nil
}

func (r *CachedVerdictRepository) WithdrawVote(ctx context.Context, verdictId int64, fingerprint string) error {
	err := r.dao.WithdrawVote(ctx, verdictId, fingerprint)
	if err != nil {
		return err
	}
	r.evict(ctx, verdictId)
	return nil
}

// evict 计数变了，详情缓存必须失效
func (r *CachedVerdictRepository) evict(ctx context.Context, id int64) {
	err := r.cache.Delete(ctx, id)
	if err != nil {
		r.logger.Error("删除判决缓存失败",
			elog.FieldErr(err),
			elog.Int64("id", id))
	}
}

func (r *CachedVerdictRepository) toEntity(verdict domain.Verdict) dao.Verdict {
	return dao.Verdict{
		Id:      verdict.Id,
		CaseId:  verdict.CaseId,
		Title:   verdict.Title,
		Summary: verdict.Summary,
		Persons: sqlx.JsonColumn[domain.Persons]{Val: verdict.Persons, Valid: true},
		Result:  sqlx.JsonColumn[domain.Result]{Val: verdict.Result, Valid: true},
		Ctime:   verdict.Ctime,
	}
}

func (r *CachedVerdictRepository) toDomain(entity dao.Verdict) domain.Verdict {
	return domain.Verdict{
		Id:       entity.Id,
		CaseId:   entity.CaseId,
		Title:    entity.Title,
		Summary:  entity.Summary,
		Persons:  entity.Persons.Val,
		Result:   entity.Result.Val,
		Likes:    entity.LikeCnt,
		Dislikes: entity.DislikeCnt,
		Ctime:    entity.Ctime,
	}
}
