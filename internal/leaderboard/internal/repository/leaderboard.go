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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/cache"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

// CachedSize 每个窗口缓存的条数，也是能查询的上限
const CachedSize = 100

//go:generate mockgen -source=./leaderboard.go -package=repomocks -destination=./mocks/leaderboard.mock.go LeaderboardRepository
type LeaderboardRepository interface {
	Save(ctx context.Context, e domain.Entry) error
	Top(ctx context.Context, w domain.Window, limit int) ([]domain.Entry, error)
}

type cachedLeaderboardRepository struct {
	dao    dao.LeaderboardDAO
	cache  cache.LeaderboardCache
	now    func() time.Time
	logger *elog.Component
}

func NewCachedLeaderboardRepository(d dao.LeaderboardDAO, c cache.LeaderboardCache) LeaderboardRepository {
	return &cachedLeaderboardRepository{
		dao:    d,
		cache:  c,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (r *cachedLeaderboardRepository) Save(ctx context.Context, e domain.Entry) error {
	err := r.dao.Upsert(ctx, r.toEntity(e))
	if err != nil {
		return err
	}
	// 缓存最多 30 秒就过期了，删除失败问题不大
	if err = r.cache.Invalidate(ctx); err != nil {
		r.logger.Warn("清理排行榜缓存失败", elog.FieldErr(err))
	}
	return nil
}

func (r *cachedLeaderboardRepository) Top(ctx context.Context, w domain.Window, limit int) ([]domain.Entry, error) {
	entries, err := r.cache.Get(ctx, w)
	if err == nil {
		return head(entries, limit), nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		r.logger.Warn("读取排行榜缓存失败，回查数据库",
			elog.String("window", w.String()),
			elog.FieldErr(err))
	}
	var since int64
	if t := w.Since(r.now()); !t.IsZero() {
		since = t.UnixMilli()
	}
	res, err := r.dao.Top(ctx, since, CachedSize)
	if err != nil {
		return nil, err
	}
	entries = slice.Map(res, func(idx int, src dao.Entry) domain.Entry {
		return r.toDomain(src)
	})
	if err = r.cache.Set(ctx, w, entries); err != nil {
		r.logger.Warn("写入排行榜缓存失败",
			elog.String("window", w.String()),
			elog.FieldErr(err))
	}
	return head(entries, limit), nil
}

func head(entries []domain.Entry, limit int) []domain.Entry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func (r *cachedLeaderboardRepository) toEntity(e domain.Entry) dao.Entry {
	var ctime int64
	if !e.Ctime.IsZero() {
		ctime = e.Ctime.UnixMilli()
	}
	return dao.Entry{
		RoastSN:         e.RoastSN,
		ProjectName:     e.ProjectName,
		IdeaText:        e.Idea,
		Originality:     e.Scores.Originality,
		Feasibility:     e.Scores.Feasibility,
		WowFactor:       e.Scores.WowFactor,
		MarketPotential: e.Scores.MarketPotential,
		TotalScore:      e.TotalScore,
		Verdict:         e.Verdict,
		Ctime:           ctime,
	}
}

func (r *cachedLeaderboardRepository) toDomain(e dao.Entry) domain.Entry {
	return domain.Entry{
		Id:          e.Id,
		RoastSN:     e.RoastSN,
		ProjectName: e.ProjectName,
		Idea:        e.IdeaText,
		Scores: domain.Scores{
			Originality:     e.Originality,
			Feasibility:     e.Feasibility,
			WowFactor:       e.WowFactor,
			MarketPotential: e.MarketPotential,
		},
		TotalScore: e.TotalScore,
		Verdict:    e.Verdict,
		Ctime:      time.UnixMilli(e.Ctime),
	}
}
