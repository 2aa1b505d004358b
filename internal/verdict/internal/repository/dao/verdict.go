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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateVote 同一设备对同一判决重复投票，由唯一索引兜底
	ErrDuplicateVote = errors.New("已经投过票了")
	ErrVoteNotFound  = errors.New("没有找到投票记录")
)

const uniqueIndexErrNo uint16 = 1062

type VerdictDAO interface {
	Create(ctx context.Context, v Verdict) (int64, error)
	GetById(ctx context.Context, id int64) (Verdict, error)
	List(ctx context.Context, offset, limit int, search string) ([]Verdict, error)
	Count(ctx context.Context, search string) (int64, error)
	RandomExcluding(ctx context.Context, excludeIds []int64) (Verdict, error)

	GetVote(ctx context.Context, verdictId int64, fingerprint string) (Vote, error)
	CastVote(ctx context.Context, vote Vote) error
	WithdrawVote(ctx context.Context, verdictId int64, fingerprint string) error
}

type GORMVerdictDAO struct {
	db *egorm.Component
}

func NewGORMVerdictDAO(db *egorm.Component) VerdictDAO {
	return &GORMVerdictDAO{db: db}
}

func (g *GORMVerdictDAO) Create(ctx context.Context, v Verdict) (int64, error) {
	now := time.Now().UnixMilli()
	v.Ctime = now
	v.Utime = now
	err := g.db.WithContext(ctx).Create(&v).Error
	return v.Id, err
}

func (g *GORMVerdictDAO) GetById(ctx context.Context, id int64) (Verdict, error) {
	var res Verdict
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMVerdictDAO) List(ctx context.Context, offset, limit int, search string) ([]Verdict, error) {
	var res []Verdict
	err := g.searchQuery(ctx, search).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMVerdictDAO) Count(ctx context.Context, search string) (int64, error) {
	var res int64
	err := g.searchQuery(ctx, search).Count(&res).Error
	return res, err
}

// searchQuery 标题、摘要和双方的名字、经过、诉求都参与模糊搜索。
// 当事人内容存在 JSON 列里，直接对序列化后的整列做 LIKE。
func (g *GORMVerdictDAO) searchQuery(ctx context.Context, search string) *gorm.DB {
	query := g.db.WithContext(ctx).Model(&Verdict{})
	if search == "" {
		return query
	}
	pattern := "%" + search + "%"
	return query.Where("title LIKE ? OR summary LIKE ? OR persons LIKE ?",
		pattern, pattern, pattern)
}

func (g *GORMVerdictDAO) RandomExcluding(ctx context.Context, excludeIds []int64) (Verdict, error) {
	var res Verdict
	query := g.db.WithContext(ctx)
	if len(excludeIds) > 0 {
		query = query.Where("id NOT IN ?", excludeIds)
	}
	err := query.Order("RAND()").First(&res).Error
	return res, err
}

func (g *GORMVerdictDAO) GetVote(ctx context.Context, verdictId int64, fingerprint string) (Vote, error) {
	var res Vote
	err := g.db.WithContext(ctx).
		Where("verdict_id = ? AND fingerprint = ?", verdictId, fingerprint).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Vote{}, ErrVoteNotFound
	}
	return res, err
}

func (g *GORMVerdictDAO) CastVote(ctx context.Context, vote Vote) error {
	now := time.Now().UnixMilli()
	vote.Ctime = now
	vote.Utime = now
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先确认判决还在
		var verdict Verdict
		err := tx.Select("id").Where("id = ?", vote.VerdictId).
			First(&verdict).Error
		if err != nil {
			return err
		}
		err = tx.Create(&vote).Error
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == uniqueIndexErrNo {
			return ErrDuplicateVote
		}
		if err != nil {
			return err
		}
		return tx.Model(&Verdict{}).
			Where("id = ?", vote.VerdictId).
			Updates(map[string]any{
				voteColumn(vote.VoteType): gorm.Expr(voteColumn(vote.VoteType) + " + 1"),
				"utime":                   now,
			}).Error
	})
}

func (g *GORMVerdictDAO) WithdrawVote(ctx context.Context, verdictId int64, fingerprint string) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vote Vote
		err := tx.Where("verdict_id = ? AND fingerprint = ?", verdictId, fingerprint).
			First(&vote).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVoteNotFound
		}
		if err != nil {
			return err
		}
		err = tx.Delete(&Vote{}, vote.Id).Error
		if err != nil {
			return err
		}
		col := voteColumn(vote.VoteType)
		return tx.Model(&Verdict{}).
			Where("id = ? AND "+col+" > 0", verdictId).
			Updates(map[string]any{
				col:     gorm.Expr(col + " - 1"),
				"utime": now,
			}).Error
	})
}

func voteColumn(voteType string) string {
	if voteType == domain.VoteTypeLike {
		return "like_cnt"
	}
	return "dislike_cnt"
}

// Verdict AI 判决书，计数列冗余存储避免每次聚合
type Verdict struct {
	Id         int64                           `gorm:"primaryKey,autoIncrement"`
	CaseId     string                          `gorm:"type:varchar(64);uniqueIndex:unq_case_id;comment:展示用案件编号"`
	Title      string                          `gorm:"type:varchar(512)"`
	Summary    string                          `gorm:"type:text"`
	Persons    sqlx.JsonColumn[domain.Persons] `gorm:"type:text;comment:双方当事人的陈述"`
	Result     sqlx.JsonColumn[domain.Result]  `gorm:"type:text;comment:判决书正文"`
	LikeCnt    int64                           `gorm:"not null;default:0"`
	DislikeCnt int64                           `gorm:"not null;default:0"`
	Ctime      int64                           `gorm:"index"`
	Utime      int64
}

func (Verdict) TableName() string {
	return "verdicts"
}

// Vote 围观群众的点赞/点踩记录，一台设备对一份判决只能有一票
type Vote struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	VerdictId   int64  `gorm:"uniqueIndex:unq_verdict_fp"`
	Fingerprint string `gorm:"type:varchar(128);uniqueIndex:unq_verdict_fp"`
	VoteType    string `gorm:"type:varchar(16);comment:like 或 dislike"`
	Ctime       int64
	Utime       int64
}

func (Vote) TableName() string {
	return "votes"
}
