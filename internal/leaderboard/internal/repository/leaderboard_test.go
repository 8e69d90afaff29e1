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
	"testing"
	"time"

	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/cache"
	cachemocks "github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/cache/mocks"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/dao"
	daomocks "github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/dao/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedLeaderboardRepository_Top(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	cached := []domain.Entry{
		{RoastSN: "a", TotalScore: 30},
		{RoastSN: "b", TotalScore: 20},
		{RoastSN: "c", TotalScore: 10},
	}
	rows := []dao.Entry{
		{Id: 1, RoastSN: "a", IdeaText: "idea a", Originality: 8, TotalScore: 30, Verdict: "PASS", Ctime: 1699999999000},
		{Id: 2, RoastSN: "b", IdeaText: "idea b", TotalScore: 20, Verdict: "FAIL", Ctime: 1699999998000},
	}
	testCases := []struct {
		name   string
		window domain.Window
		limit  int
		mock   func(ctrl *gomock.Controller) (dao.LeaderboardDAO, cache.LeaderboardCache)
		want   []domain.Entry
	}{
		{
			name:   "命中缓存",
			window: domain.WindowAll,
			limit:  2,
			mock: func(ctrl *gomock.Controller) (dao.LeaderboardDAO, cache.LeaderboardCache) {
				c := cachemocks.NewMockLeaderboardCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.WindowAll).Return(cached, nil)
				return daomocks.NewMockLeaderboardDAO(ctrl), c
			},
			want: cached[:2],
		},
		{
			name:   "缓存未命中，回查数据库",
			window: domain.WindowToday,
			limit:  10,
			mock: func(ctrl *gomock.Controller) (dao.LeaderboardDAO, cache.LeaderboardCache) {
				c := cachemocks.NewMockLeaderboardCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.WindowToday).Return(nil, cache.ErrKeyNotFound)
				d := daomocks.NewMockLeaderboardDAO(ctrl)
				d.EXPECT().Top(gomock.Any(), now.Add(-24*time.Hour).UnixMilli(), 100).Return(rows, nil)
				c.EXPECT().Set(gomock.Any(), domain.WindowToday, gomock.Len(2)).Return(nil)
				return d, c
			},
			want: []domain.Entry{
				{Id: 1, RoastSN: "a", Idea: "idea a", Scores: domain.Scores{Originality: 8},
					TotalScore: 30, Verdict: "PASS", Ctime: time.UnixMilli(1699999999000)},
				{Id: 2, RoastSN: "b", Idea: "idea b", TotalScore: 20, Verdict: "FAIL",
					Ctime: time.UnixMilli(1699999998000)},
			},
		},
		{
			name:   "缓存出错，全部时间不限制起点",
			window: domain.WindowAll,
			limit:  1,
			mock: func(ctrl *gomock.Controller) (dao.LeaderboardDAO, cache.LeaderboardCache) {
				c := cachemocks.NewMockLeaderboardCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.WindowAll).Return(nil, errors.New("redis down"))
				d := daomocks.NewMockLeaderboardDAO(ctrl)
				d.EXPECT().Top(gomock.Any(), int64(0), 100).Return(rows, nil)
				c.EXPECT().Set(gomock.Any(), domain.WindowAll, gomock.Any()).Return(errors.New("redis down"))
				return d, c
			},
			want: []domain.Entry{
				{Id: 1, RoastSN: "a", Idea: "idea a", Scores: domain.Scores{Originality: 8},
					TotalScore: 30, Verdict: "PASS", Ctime: time.UnixMilli(1699999999000)},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			repo := &cachedLeaderboardRepository{
				dao:    d,
				cache:  c,
				now:    func() time.Time { return now },
				logger: elog.DefaultLogger,
			}
			res, err := repo.Top(context.Background(), tc.window, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestCachedLeaderboardRepository_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockLeaderboardDAO(ctrl)
	c := cachemocks.NewMockLeaderboardCache(ctrl)
	d.EXPECT().Upsert(gomock.Any(), dao.Entry{
		RoastSN:     "sn-1",
		ProjectName: "DogWalk",
		IdeaText:    "Uber for dogs",
		Originality: 7,
		TotalScore:  7,
		Verdict:     "MAYBE",
		Ctime:       1700000000000,
	}).Return(nil)
	// 缓存删除失败不影响结果
	c.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
	repo := NewCachedLeaderboardRepository(d, c)
	err := repo.Save(context.Background(), domain.Entry{
		RoastSN:     "sn-1",
		ProjectName: "DogWalk",
		Idea:        "Uber for dogs",
		Scores:      domain.Scores{Originality: 7},
		TotalScore:  7,
		Verdict:     "MAYBE",
		Ctime:       time.UnixMilli(1700000000000),
	})
	assert.NoError(t, err)

	d.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
	err = repo.Save(context.Background(), domain.Entry{RoastSN: "sn-2"})
	assert.Error(t, err)
}
