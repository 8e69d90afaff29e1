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

package openai

import (
	"context"
	"fmt"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ handler.PlatformHandler = &Handler{}

// Handler 兼容 OpenAI 协议的平台，比如 DeepSeek、通义
type Handler struct {
	client *openai.Client
	model  string
}

// NewHandler baseURL 为空的时候使用 OpenAI 官方地址
func NewHandler(apikey, baseURL, model string) *Handler {
	opts := []option.RequestOption{option.WithAPIKey(apikey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Handler{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(req))
	if err != nil {
		return domain.LLMResponse{}, handler.ClassifyError(h.Name(), err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return domain.LLMResponse{}, fmt.Errorf("%w: %s", domain.ErrEmptyAnswer, h.Name())
	}
	return domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
		Answer: completion.Choices[0].Message.Content,
	}, nil
}

func (h *Handler) buildParams(req domain.LLMRequest) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(req.Config.SystemPrompt))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))
	model := h.model
	if req.Config.Model != "" {
		model = req.Config.Model
	}
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(msgs),
		Model:    openai.F(model),
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	return params
}
