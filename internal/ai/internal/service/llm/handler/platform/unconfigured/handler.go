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

package unconfigured

import (
	"context"
	"fmt"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler"
)

var _ handler.PlatformHandler = &Handler{}

// Handler 没有配置 API key 的时候使用，每次调用都按鉴权失败处理，
// 让应用仍然可以启动
type Handler struct {
	name string
}

func NewHandler(name string) *Handler {
	return &Handler{name: name}
}

func (h *Handler) Name() string {
	return h.name
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return domain.LLMResponse{}, fmt.Errorf("%w: %s: 未配置 API key", domain.ErrAuthFailed, h.name)
}
