package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/domain"
	"github.com/pkg/errors"
)

const expiration = 10 * time.Minute

var ErrConfigNotFound = errors.New("biz 配置没找到")

type ConfigCache interface {
	SetConfig(ctx context.Context, cfg domain.BizConfig) error
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
}

type configCache struct {
	ec ecache.Cache
}

func NewConfigCache(ec ecache.Cache) ConfigCache {
	return &configCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "ai:config:",
		},
	}
}

func (c *configCache) SetConfig(ctx context.Context, cfg domain.BizConfig) error {
	bytes, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "序列化 biz 配置失败")
	}
	return c.ec.Set(ctx, c.configKey(cfg.Biz), string(bytes), expiration)
}

func (c *configCache) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	val := c.ec.Get(ctx, c.configKey(biz))
	if val.KeyNotFound() {
		return domain.BizConfig{}, ErrConfigNotFound
	}
	if val.Err != nil {
		return domain.BizConfig{}, val.Err
	}
	var res domain.BizConfig
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化 biz 配置失败")
}

func (c *configCache) configKey(biz string) string {
	return fmt.Sprintf("biz:%s", biz)
}
