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

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/roastmyidea/internal/ai"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

const moderationBiz = "roast_moderation"

const moderationPrompt = `Analyze this startup idea for inappropriate content. Return only "SAFE" or "UNSAFE".

Startup Idea: "%s"

Consider inappropriate:
- Hate speech or discrimination
- Violence or harmful content
- Illegal activities
- Explicit sexual content
- Content that could harm individuals or groups

Return only "SAFE" or "UNSAFE".
`

//go:generate mockgen -source=./moderation.go -destination=./mocks/moderation.mock.go -package=svcmocks ModerationGate
type ModerationGate interface {
	// Check 审核失败的时候放行，失败原因放在 Err 里面
	Check(ctx context.Context, idea string) domain.ModerationResult
}

type llmModerationGate struct {
	llmSvc  ai.LLMService
	timeout time.Duration
	logger  *elog.Component
}

func NewModerationGate(llmSvc ai.LLMService, cfg Config) ModerationGate {
	return &llmModerationGate{
		llmSvc:  llmSvc,
		timeout: cfg.WithDefaults().GenerateTimeout,
		logger:  elog.DefaultLogger,
	}
}

func (m *llmModerationGate) Check(ctx context.Context, idea string) domain.ModerationResult {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	resp, err := m.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:    moderationBiz,
		Prompt: fmt.Sprintf(moderationPrompt, idea),
	})
	if err != nil {
		m.logger.Warn("内容审核调用失败，默认放行", elog.FieldErr(err))
		return domain.ModerationResult{Safe: true, Err: err}
	}
	return domain.ModerationResult{Safe: strings.ToUpper(strings.TrimSpace(resp.Answer)) == "SAFE"}
}
