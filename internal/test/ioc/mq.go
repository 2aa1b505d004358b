package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		type Topic struct {
			Name       string
			Partitions int
		}
		topics := []Topic{
			{
				Name:       "jury_vote_events",
				Partitions: 1,
			},
		}
		// 替换用内存实现，方便测试
		qq := memory.NewMQ()
		for _, t := range topics {
			err := qq.CreateTopic(context.Background(), t.Name, t.Partitions)
			if err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}
