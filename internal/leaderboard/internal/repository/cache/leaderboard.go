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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/domain"
	"github.com/pkg/errors"
)

const leaderboardExpiration = 30 * time.Second

var ErrKeyNotFound = errors.New("排行榜缓存不存在")

//go:generate mockgen -source=./leaderboard.go -package=cachemocks -destination=./mocks/leaderboard.mock.go LeaderboardCache
type LeaderboardCache interface {
	Get(ctx context.Context, w domain.Window) ([]domain.Entry, error)
	Set(ctx context.Context, w domain.Window, entries []domain.Entry) error
	// Invalidate 删除所有窗口的缓存
	Invalidate(ctx context.Context) error
}

type leaderboardCache struct {
	ec ecache.Cache
}

func NewLeaderboardCache(ec ecache.Cache) LeaderboardCache {
	return &leaderboardCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "leaderboard:",
		},
	}
}

func (c *leaderboardCache) Get(ctx context.Context, w domain.Window) ([]domain.Entry, error) {
	val := c.ec.Get(ctx, c.key(w))
	if val.KeyNotFound() {
		return nil, ErrKeyNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return nil, errors.Wrap(err, "缓存数据类型不对")
	}
	var res []domain.Entry
	err = json.Unmarshal([]byte(str), &res)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化排行榜失败")
	}
	return res, nil
}

func (c *leaderboardCache) Set(ctx context.Context, w domain.Window, entries []domain.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "序列化排行榜失败")
	}
	return c.ec.Set(ctx, c.key(w), string(data), leaderboardExpiration)
}

func (c *leaderboardCache) Invalidate(ctx context.Context) error {
	_, err := c.ec.Delete(ctx,
		c.key(domain.WindowAll),
		c.key(domain.WindowToday),
		c.key(domain.WindowWeek))
	return errors.Wrap(err, "清理排行榜缓存失败")
}

func (c *leaderboardCache) key(w domain.Window) string {
	return "top:" + w.String()
}
