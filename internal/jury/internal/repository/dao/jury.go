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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/woofcourt/internal/jury/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrDuplicateVote 一台设备在一个案件里只有一票，由唯一索引兜底
	ErrDuplicateVote = errors.New("已经参与过评判了")
	ErrVoteNotFound  = errors.New("没有找到评判记录")
)

const uniqueIndexErrNo uint16 = 1062

type JuryDAO interface {
	CreateVote(ctx context.Context, vote JuryVote) error
	GetVote(ctx context.Context, verdictId int64, fingerprint string) (JuryVote, error)
	// CountVotes 从投票明细里数票，明细是统计的事实来源
	CountVotes(ctx context.Context, verdictId int64) (person1, person2 int64, err error)
	VotedVerdictIds(ctx context.Context, fingerprint string) ([]int64, error)

	CreateComment(ctx context.Context, comment JuryComment) (JuryComment, error)
	ListComments(ctx context.Context, verdictId int64, offset, limit int) ([]JuryComment, error)
	CountComments(ctx context.Context, verdictId int64) (int64, error)

	UpsertStats(ctx context.Context, stats JuryStats) error
	GetStats(ctx context.Context, verdictId int64) (JuryStats, error)
}

type GORMJuryDAO struct {
	db *egorm.Component
}

func NewGORMJuryDAO(db *egorm.Component) JuryDAO {
	return &GORMJuryDAO{db: db}
}

func (g *GORMJuryDAO) CreateVote(ctx context.Context, vote JuryVote) error {
	now := time.Now().UnixMilli()
	vote.Ctime = now
	vote.Utime = now
	err := g.db.WithContext(ctx).Create(&vote).Error
	if me, ok := err.(*mysql.MySQLError); ok && me.Number == uniqueIndexErrNo {
		return ErrDuplicateVote
	}
	return err
}

func (g *GORMJuryDAO) GetVote(ctx context.Context, verdictId int64, fingerprint string) (JuryVote, error) {
	var res JuryVote
	err := g.db.WithContext(ctx).
		Where("verdict_id = ? AND fingerprint = ?", verdictId, fingerprint).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JuryVote{}, ErrVoteNotFound
	}
	return res, err
}

func (g *GORMJuryDAO) CountVotes(ctx context.Context, verdictId int64) (int64, int64, error) {
	var counts []struct {
		SupportSide string
		Cnt         int64
	}
	err := g.db.WithContext(ctx).Model(&JuryVote{}).
		Select("support_side, COUNT(*) AS cnt").
		Where("verdict_id = ?", verdictId).
		Group("support_side").
		Scan(&counts).Error
	if err != nil {
		return 0, 0, err
	}
	var person1, person2 int64
	for _, c := range counts {
		switch c.SupportSide {
		case domain.SupportPerson1:
			person1 = c.Cnt
		case domain.SupportPerson2:
			person2 = c.Cnt
		}
	}
	return person1, person2, nil
}

func (g *GORMJuryDAO) VotedVerdictIds(ctx context.Context, fingerprint string) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&JuryVote{}).
		Where("fingerprint = ?", fingerprint).
		Pluck("verdict_id", &res).Error
	return res, err
}

func (g *GORMJuryDAO) CreateComment(ctx context.Context, comment JuryComment) (JuryComment, error) {
	now := time.Now().UnixMilli()
	comment.Ctime = now
	comment.Utime = now
	err := g.db.WithContext(ctx).Create(&comment).Error
	return comment, err
}

func (g *GORMJuryDAO) ListComments(ctx context.Context, verdictId int64, offset, limit int) ([]JuryComment, error) {
	var res []JuryComment
	err := g.db.WithContext(ctx).
		Where("verdict_id = ?", verdictId).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMJuryDAO) CountComments(ctx context.Context, verdictId int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&JuryComment{}).
		Where("verdict_id = ?", verdictId).
		Count(&res).Error
	return res, err
}

func (g *GORMJuryDAO) UpsertStats(ctx context.Context, stats JuryStats) error {
	now := time.Now().UnixMilli()
	stats.Ctime = now
	stats.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "verdict_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_votes":        stats.TotalVotes,
			"person1_votes":      stats.Person1Votes,
			"person2_votes":      stats.Person2Votes,
			"person1_percentage": stats.Person1Percentage,
			"person2_percentage": stats.Person2Percentage,
			"utime":              now,
		}),
	}).Create(&stats).Error
}

func (g *GORMJuryDAO) GetStats(ctx context.Context, verdictId int64) (JuryStats, error) {
	var res JuryStats
	err := g.db.WithContext(ctx).
		Where("verdict_id = ?", verdictId).
		First(&res).Error
	return res, err
}

// JuryVote 陪审团投票明细，一台设备对一个案件只有一票
type JuryVote struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	VerdictId   int64  `gorm:"uniqueIndex:unq_jury_verdict_fp"`
	Fingerprint string `gorm:"type:varchar(128);uniqueIndex:unq_jury_verdict_fp"`
	SupportSide string `gorm:"type:varchar(16);comment:person1 或 person2"`
	Reasoning   string `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}

func (JuryVote) TableName() string {
	return "jury_votes"
}

// JuryComment 围观评论，只增不改
type JuryComment struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	VerdictId   int64  `gorm:"index:idx_jury_comment_verdict"`
	Fingerprint string `gorm:"type:varchar(128)"`
	Content     string `gorm:"type:text"`
	SupportSide string `gorm:"type:varchar(16);comment:person1、person2 或 neutral"`
	Ctime       int64  `gorm:"index"`
	Utime       int64
}

func (JuryComment) TableName() string {
	return "jury_comments"
}

// JuryStats 冗余的计票汇总，由消费者在投票事件后刷新
type JuryStats struct {
	Id                int64 `gorm:"primaryKey,autoIncrement"`
	VerdictId         int64 `gorm:"uniqueIndex:unq_jury_stats_verdict"`
	TotalVotes        int64
	Person1Votes      int64
	Person2Votes      int64
	Person1Percentage int
	Person2Percentage int
	Ctime             int64
	Utime             int64
}

func (JuryStats) TableName() string {
	return "jury_stats"
}
