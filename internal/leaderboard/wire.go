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

//go:build wireinject

package leaderboard

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/event"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/cache"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository/dao"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/service"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		InitLeaderboardDAO,
		cache.NewLeaderboardCache,
		repository.NewCachedLeaderboardRepository,
		service.NewService,
		event.NewRoastCreatedConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitLeaderboardDAO(db *egorm.Component) dao.LeaderboardDAO {
	InitTableOnce(db)
	return dao.NewGORMLeaderboardDAO(db)
}
