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
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type BizConfig = domain.BizConfig
type LLMService = llm.Service

// PlatformHandler 对外暴露，方便测试替换真正的平台
type PlatformHandler = handler.PlatformHandler

var (
	ErrQuotaExceeded = domain.ErrQuotaExceeded
	ErrAuthFailed    = domain.ErrAuthFailed
	ErrEmptyAnswer   = domain.ErrEmptyAnswer
)
