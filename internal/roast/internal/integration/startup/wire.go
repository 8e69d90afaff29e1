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

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/roastmyidea/internal/ai"
	"github.com/ecodeclub/roastmyidea/internal/pkg/objstore"
	"github.com/ecodeclub/roastmyidea/internal/roast"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/event"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/service"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	llmSvc ai.LLMService,
	q mq.MQ,
	store objstore.Storage,
	cfg roast.Config) (*roast.Module, error) {
	wire.Build(
		roast.InitRoastDAO,
		repository.NewRoastRepository,
		event.NewRoastEventProducer,

		service.NewPersonaRegistry,
		service.NewModerationGate,
		service.NewJudgeInvoker,
		service.NewService,
		service.NewUploadService,
		web.NewHandler,

		wire.Struct(new(roast.Module), "*"),
	)
	return new(roast.Module), nil
}
