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

package agent

import (
	"github.com/ecodeclub/roastmyidea/internal/agent/internal/service"
	"github.com/ecodeclub/roastmyidea/internal/agent/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() *Module {
	wire.Build(
		InitConfig,
		service.NewAppReviewer,
		service.NewGitHubClient,
		service.NewRepoReviewer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func InitConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("agent", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg.WithDefaults()
}
