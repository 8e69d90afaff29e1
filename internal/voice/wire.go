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

package voice

import (
	"github.com/ecodeclub/roastmyidea/internal/roast"
	"github.com/ecodeclub/roastmyidea/internal/voice/internal/service"
	"github.com/ecodeclub/roastmyidea/internal/voice/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(roastModule *roast.Module) *Module {
	wire.Build(
		InitConfig,
		InitSynthesizer,
		service.NewVoiceResolver,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*roast.Module), "Svc"),
		wire.Bind(new(service.PersonaFinder), new(roast.Service)),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func InitConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("voice", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg.WithDefaults()
}

func InitSynthesizer(cfg Config) service.Synthesizer {
	return service.NewElevenLabsSynthesizer(cfg)
}
