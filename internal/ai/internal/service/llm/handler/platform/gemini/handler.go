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

package gemini

import (
	"context"
	"fmt"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

var _ handler.PlatformHandler = &Handler{}

// Handler 调用 Google Gemini
type Handler struct {
	client *genai.Client
	model  string
}

func NewHandler(ctx context.Context, apikey, model string) (*Handler, error) {
	if apikey == "" {
		return nil, fmt.Errorf("gemini: 缺少 API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apikey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = defaultModel
	}
	return &Handler{
		client: client,
		model:  model,
	}, nil
}

func (h *Handler) Name() string {
	return "gemini"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	model := h.model
	if req.Config.Model != "" {
		model = req.Config.Model
	}
	result, err := h.client.Models.GenerateContent(ctx, model,
		genai.Text(req.Prompt), h.buildConfig(req.Config))
	if err != nil {
		return domain.LLMResponse{}, handler.ClassifyError(h.Name(), err)
	}
	answer := result.Text()
	if answer == "" {
		return domain.LLMResponse{}, fmt.Errorf("%w: %s", domain.ErrEmptyAnswer, h.Name())
	}
	resp := domain.LLMResponse{Answer: answer}
	if result.UsageMetadata != nil {
		resp.Tokens = int64(result.UsageMetadata.TotalTokenCount)
	}
	return resp, nil
}

func (h *Handler) buildConfig(cfg domain.BizConfig) *genai.GenerateContentConfig {
	res := &genai.GenerateContentConfig{}
	if cfg.Temperature > 0 {
		res.Temperature = genai.Ptr(float32(cfg.Temperature))
	}
	if cfg.TopP > 0 {
		res.TopP = genai.Ptr(float32(cfg.TopP))
	}
	if cfg.SystemPrompt != "" {
		res.SystemInstruction = genai.NewContentFromText(cfg.SystemPrompt, genai.RoleUser)
	}
	if cfg.JSONOutput {
		res.ResponseMIMEType = "application/json"
	}
	return res
}
