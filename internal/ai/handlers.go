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

package ai

import (
	"context"
	"fmt"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler/platform/unconfigured"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type PlatformConfig struct {
	// gemini | openai | zhipu
	Platform string `yaml:"platform"`
	APIKey   string `yaml:"apikey"`
	Model    string `yaml:"model"`
	// 只有 openai 兼容平台才需要
	BaseURL string `yaml:"baseURL"`
}

// InitPlatform 按照配置 llm.platform 选择真正的出口
func InitPlatform() handler.PlatformHandler {
	var cfg PlatformConfig
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	h, err := NewPlatform(cfg)
	if err != nil {
		panic(err)
	}
	return h
}

// NewPlatform 没有配置 API key 的时候不会报错，
// 而是返回一个每次都鉴权失败的平台，这样应用还能正常启动
func NewPlatform(cfg PlatformConfig) (handler.PlatformHandler, error) {
	name := cfg.Platform
	if name == "" {
		name = "gemini"
	}
	switch name {
	case "gemini", "openai", "zhipu":
	default:
		return nil, fmt.Errorf("未知的 LLM 平台 %s", cfg.Platform)
	}
	if cfg.APIKey == "" {
		elog.DefaultLogger.Warn("LLM 平台未配置 API key，所有 AI 调用都会鉴权失败",
			elog.String("platform", name))
		return unconfigured.NewHandler(name), nil
	}
	switch name {
	case "gemini":
		return gemini.NewHandler(context.Background(), cfg.APIKey, cfg.Model)
	case "openai":
		return openai.NewHandler(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case "zhipu":
		return zhipu.NewHandler(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("未知的 LLM 平台 %s", cfg.Platform)
	}
}

func InitCommonHandlers(log *log.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, record}
}

func InitRootHandler(common []handler.Builder,
	// platform 就是真正的出口
	platform handler.PlatformHandler) handler.Handler {
	// log -> record -> platform
	return handler.NewCompositionHandler(common, platform)
}
