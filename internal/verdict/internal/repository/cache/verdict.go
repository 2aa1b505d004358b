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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/pkg/errors"
)

const expiration = 10 * time.Minute

var ErrVerdictNotCached = errors.New("判决不在缓存里")

type VerdictCache interface {
	Set(ctx context.Context, verdict domain.Verdict) error
	Get(ctx context.Context, id int64) (domain.Verdict, error)
	Delete(ctx context.Context, id int64) error
}

type verdictCache struct {
	ec ecache.Cache
}

func NewVerdictCache(ec ecache.Cache) VerdictCache {
	return &verdictCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "verdict:",
		},
	}
}

func (c *verdictCache) Set(ctx context.Context, verdict domain.Verdict) error {
	bytes, err := json.Marshal(verdict)
	if err != nil {
		return errors.Wrap(err, "序列化判决失败")
	}
	return c.ec.Set(ctx, c.detailKey(verdict.Id), string(bytes), expiration)
}

func (c *verdictCache) Get(ctx context.Context, id int64) (domain.Verdict, error) {
	val := c.ec.Get(ctx, c.detailKey(id))
	if val.KeyNotFound() {
		return domain.Verdict{}, ErrVerdictNotCached
	}
	if val.Err != nil {
		return domain.Verdict{}, val.Err
	}
	var res domain.Verdict
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化判决失败")
}

func (c *verdictCache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.detailKey(id))
	return err
}

func (c *verdictCache) detailKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
