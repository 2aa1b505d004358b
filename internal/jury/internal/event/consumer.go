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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// StatsConsumer 消费投票事件，把计票结果刷进 jury_stats
type StatsConsumer struct {
	repo     repository.JuryRepository
	consumer mq.Consumer
	logger   *elog.Component
}

func NewStatsConsumer(repo repository.JuryRepository, q mq.MQ) (*StatsConsumer, error) {
	groupID := "jury_stats"
	consumer, err := q.Consumer(VoteEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &StatsConsumer{
		repo:     repo,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start ctx 取消后消费循环退出
func (c *StatsConsumer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费投票事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *StatsConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt VoteEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.repo.RefreshStats(ctx, evt.VerdictId)
	if err != nil {
		return fmt.Errorf("刷新计票汇总失败: verdictId=%d %w", evt.VerdictId, err)
	}
	return nil
}
