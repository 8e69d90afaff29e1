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

package roast

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/roastmyidea/internal/ai"
	"github.com/ecodeclub/roastmyidea/internal/pkg/objstore"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/event"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository/dao"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/service"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	aiModule *ai.Module,
	q mq.MQ,
	store objstore.Storage) (*Module, error) {
	wire.Build(
		InitConfig,
		InitRoastDAO,
		repository.NewRoastRepository,
		event.NewRoastEventProducer,

		service.NewPersonaRegistry,
		service.NewModerationGate,
		service.NewJudgeInvoker,
		service.NewService,
		service.NewUploadService,
		web.NewHandler,

		wire.FieldsOf(new(*ai.Module), "Svc"),
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

func InitRoastDAO(db *egorm.Component) dao.RoastDAO {
	InitTableOnce(db)
	return dao.NewGORMRoastDAO(db)
}

func InitConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("roast", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg.WithDefaults()
}
