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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlatform(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      PlatformConfig
		wantName string
		wantErr  bool
	}{
		{
			name:     "默认平台未配置 key",
			cfg:      PlatformConfig{},
			wantName: "gemini",
		},
		{
			name:     "gemini 未配置 key",
			cfg:      PlatformConfig{Platform: "gemini", Model: "gemini-2.0-flash"},
			wantName: "gemini",
		},
		{
			name:     "openai 未配置 key",
			cfg:      PlatformConfig{Platform: "openai", BaseURL: "https://api.deepseek.com"},
			wantName: "openai",
		},
		{
			name:     "zhipu 未配置 key",
			cfg:      PlatformConfig{Platform: "zhipu"},
			wantName: "zhipu",
		},
		{
			name:    "未知平台",
			cfg:     PlatformConfig{Platform: "claude", APIKey: "key"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := NewPlatform(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, h.Name())
			_, err = h.Handle(context.Background(), LLMRequest{Biz: "roast_judge", Prompt: "hello"})
			assert.True(t, errors.Is(err, ErrAuthFailed))
		})
	}
}

func TestNewPlatform_OpenAIWithKey(t *testing.T) {
	h, err := NewPlatform(PlatformConfig{Platform: "openai", APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "openai", h.Name())
}
