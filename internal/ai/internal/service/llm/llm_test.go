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

package llm

import (
	"context"
	"testing"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagBuilder struct {
	tag   string
	trace *[]string
}

func (b tagBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		*b.trace = append(*b.trace, b.tag)
		return next.Handle(ctx, req)
	})
}

func TestLLMService_Invoke(t *testing.T) {
	var trace []string
	var got domain.LLMRequest
	root := handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		trace = append(trace, "platform")
		got = req
		return domain.LLMResponse{Tokens: 12, Answer: "ok"}, nil
	})
	svc := NewLLMService(handler.NewCompositionHandler([]handler.Builder{
		tagBuilder{tag: "log", trace: &trace},
		tagBuilder{tag: "record", trace: &trace},
	}, root))

	resp, err := svc.Invoke(context.Background(), domain.LLMRequest{Biz: "roast_judge", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, domain.LLMResponse{Tokens: 12, Answer: "ok"}, resp)
	assert.Equal(t, []string{"log", "record", "platform"}, trace)
	assert.NotEmpty(t, got.Tid)

	_, err = svc.Invoke(context.Background(), domain.LLMRequest{Biz: "roast_judge", Tid: "tid-1"})
	require.NoError(t, err)
	assert.Equal(t, "tid-1", got.Tid)
}
