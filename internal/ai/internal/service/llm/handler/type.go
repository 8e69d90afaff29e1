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

package handler

import (
	"context"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
)

type HandleFunc func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)

func (f HandleFunc) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return f(ctx, req)
}

type Handler interface {
	Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

type Builder interface {
	Next(next Handler) Handler
}

// PlatformHandler 真正调用大模型平台的出口
type PlatformHandler interface {
	Handler
	Name() string
}
