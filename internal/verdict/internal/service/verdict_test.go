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
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	created    []domain.Verdict
	castErr    error
	withdraw   error
	voteErr    error
	vote       domain.Vote
	randomErr  error
	random     domain.Verdict
	listOffset int
	listLimit  int
	listSearch string
}

func (f *fakeRepo) Create(_ context.Context, verdict domain.Verdict) (int64, error) {
	f.created = append(f.created, verdict)
	return int64(len(f.created)), nil
}

func (f *fakeRepo) Detail(_ context.Context, id int64) (domain.Verdict, error) {
	return domain.Verdict{}, gorm.ErrRecordNotFound
}

func (f *fakeRepo) List(_ context.Context, offset, limit int, search string) ([]domain.Verdict, error) {
	f.listOffset = offset
	f.listLimit = limit
	f.listSearch = search
	return []domain.Verdict{}, nil
}

func (f *fakeRepo) Count(_ context.Context, search string) (int64, error) {
	return 42, nil
}

func (f *fakeRepo) RandomExcluding(_ context.Context, _ []int64) (domain.Verdict, error) {
	return f.random, f.randomErr
}

func (f *fakeRepo) GetVote(_ context.Context, _ int64, _ string) (domain.Vote, error) {
	return f.vote, f.voteErr
}

func (f *fakeRepo) CastVote(_ context.Context, _ domain.Vote) error {
	return f.castErr
}

func (f *fakeRepo) WithdrawVote(_ context.Context, _ int64, _ string) error {
	return f.withdraw
}

func testNode(t *testing.T) *snowflake.Node {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

func TestVerdictService_Save(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := NewVerdictService(repo, testNode(t))
	persons := domain.Persons{
		Person1: domain.Party{Name: "小明", Story: "他总是玩游戏", Complaint: "不陪我"},
		Person2: domain.Party{Name: "小红", Story: "她总是生气", Complaint: "不理解我"},
	}
	result := domain.Result{Title: "游戏引发的冷战", Summary: "陪伴与空间之争", Verdict: "判决和解"}

	verdict, err := svc.Save(context.Background(), persons, result)
	require.NoError(t, err)
	assert.Equal(t, int64(1), verdict.Id)
	// 案件编号由服务端生成
	assert.True(t, strings.HasPrefix(verdict.CaseId, "CP-"), verdict.CaseId)
	assert.Equal(t, "游戏引发的冷战", verdict.Title)
	assert.Equal(t, "陪伴与空间之争", verdict.Summary)
	require.Len(t, repo.created, 1)
	assert.Equal(t, persons, repo.created[0].Persons)

	// 连着存两份，编号不能重复
	verdict2, err := svc.Save(context.Background(), persons, result)
	require.NoError(t, err)
	assert.NotEqual(t, verdict.CaseId, verdict2.CaseId)
}

func TestVerdictService_HistoryOffset(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := NewVerdictService(repo, testNode(t))
	_, total, err := svc.History(context.Background(), 3, 10, "游戏")
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.Equal(t, 20, repo.listOffset)
	assert.Equal(t, 10, repo.listLimit)
	assert.Equal(t, "游戏", repo.listSearch)
}

func TestVerdictService_VoteErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "重复投票", repoErr: dao.ErrDuplicateVote, wantErr: ErrDuplicateVote},
		{name: "判决不存在", repoErr: gorm.ErrRecordNotFound, wantErr: ErrVerdictNotFound},
		{name: "正常投票", repoErr: nil, wantErr: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewVerdictService(&fakeRepo{castErr: tc.repoErr}, testNode(t))
			err := svc.Vote(context.Background(), domain.Vote{
				VerdictId: 1, Fingerprint: "fp", Type: domain.VoteTypeLike,
			})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestVerdictService_WithdrawNotVoted(t *testing.T) {
	t.Parallel()
	svc := NewVerdictService(&fakeRepo{withdraw: dao.ErrVoteNotFound}, testNode(t))
	err := svc.WithdrawVote(context.Background(), 1, "fp")
	assert.ErrorIs(t, err, ErrVoteNotFound)
}

func TestVerdictService_VoteStatus(t *testing.T) {
	t.Parallel()
	// 没投过票不算错误
	svc := NewVerdictService(&fakeRepo{voteErr: dao.ErrVoteNotFound}, testNode(t))
	status, err := svc.VoteStatus(context.Background(), 1, "fp")
	require.NoError(t, err)
	assert.False(t, status.Voted)
	assert.Empty(t, status.VoteType)

	svc = NewVerdictService(&fakeRepo{
		vote: domain.Vote{VerdictId: 1, Fingerprint: "fp", Type: domain.VoteTypeDislike},
	}, testNode(t))
	status, err = svc.VoteStatus(context.Background(), 1, "fp")
	require.NoError(t, err)
	assert.True(t, status.Voted)
	assert.Equal(t, domain.VoteTypeDislike, status.VoteType)
}

func TestVerdictService_RandomNoneLeft(t *testing.T) {
	t.Parallel()
	svc := NewVerdictService(&fakeRepo{randomErr: gorm.ErrRecordNotFound}, testNode(t))
	_, err := svc.RandomExcluding(context.Background(), []int64{1, 2})
	assert.ErrorIs(t, err, ErrNoAvailableCase)
}

func TestVerdictService_DetailNotFound(t *testing.T) {
	t.Parallel()
	svc := NewVerdictService(&fakeRepo{}, testNode(t))
	_, err := svc.Detail(context.Background(), 99)
	assert.ErrorIs(t, err, ErrVerdictNotFound)
}
