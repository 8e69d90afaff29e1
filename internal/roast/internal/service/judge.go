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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ecodeclub/roastmyidea/internal/ai"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

const judgeBiz = "roast_judge"

//go:generate mockgen -source=./judge.go -destination=./mocks/judge.mock.go -package=svcmocks JudgeInvoker
type JudgeInvoker interface {
	Invoke(ctx context.Context, persona domain.Persona, prompt string, uid string) (domain.JudgeResult, error)
}

type llmJudgeInvoker struct {
	llmSvc  ai.LLMService
	timeout time.Duration
	logger  *elog.Component
}

func NewJudgeInvoker(llmSvc ai.LLMService, cfg Config) JudgeInvoker {
	return &llmJudgeInvoker{
		llmSvc:  llmSvc,
		timeout: cfg.WithDefaults().GenerateTimeout,
		logger:  elog.DefaultLogger,
	}
}

func (j *llmJudgeInvoker) Invoke(ctx context.Context, persona domain.Persona,
	prompt string, uid string) (domain.JudgeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	resp, err := j.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:    judgeBiz,
		Uid:    uid,
		Prompt: prompt,
		Config: ai.BizConfig{JSONOutput: true},
	})
	if err != nil {
		return domain.JudgeResult{}, classifyLLMError(ctx, err)
	}
	res, err := ParseJudgeResult(resp.Answer)
	if err != nil {
		j.logger.Error("解析评委输出失败",
			elog.String("persona", persona.Name),
			elog.String("answer", truncate(resp.Answer, 500)),
			elog.FieldErr(err))
		return domain.JudgeResult{}, err
	}
	return res, nil
}

func classifyLLMError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, ai.ErrQuotaExceeded):
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case errors.Is(err, ai.ErrAuthFailed):
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	default:
		return fmt.Errorf("%w: %w", ErrProvider, err)
	}
}

type judgeScores struct {
	Originality     *float64 `json:"originality"`
	Feasibility     *float64 `json:"feasibility"`
	WowFactor       *float64 `json:"wow_factor"`
	MarketPotential *float64 `json:"market_potential"`
}

type judgeOutput struct {
	Scores   *judgeScores `json:"scores"`
	Roast    string       `json:"roast"`
	Feedback string       `json:"feedback"`
	Verdict  string       `json:"verdict"`
}

// ParseJudgeResult 模型经常会用 ```json 包一层，先去掉再解析
func ParseJudgeResult(text string) (domain.JudgeResult, error) {
	cleaned := stripCodeFence(text)
	var out judgeOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return domain.JudgeResult{}, fmt.Errorf("%w: %w", ErrParseFail, err)
	}
	if out.Scores == nil {
		return domain.JudgeResult{}, fmt.Errorf("%w: 缺少 scores", ErrInvalidStructure)
	}
	scores := [...]struct {
		name string
		val  *float64
	}{
		{"originality", out.Scores.Originality},
		{"feasibility", out.Scores.Feasibility},
		{"wow_factor", out.Scores.WowFactor},
		{"market_potential", out.Scores.MarketPotential},
	}
	for _, s := range scores {
		if s.val == nil {
			return domain.JudgeResult{}, fmt.Errorf("%w: 缺少 %s", ErrInvalidStructure, s.name)
		}
		v := *s.val
		if v < 0 || v > 10 || v != math.Trunc(v) {
			return domain.JudgeResult{}, fmt.Errorf("%w: %s=%v 不是 0-10 的整数", ErrInvalidStructure, s.name, v)
		}
	}
	verdict := domain.Verdict(strings.ToUpper(strings.TrimSpace(out.Verdict)))
	if !verdict.Valid() {
		return domain.JudgeResult{}, fmt.Errorf("%w: verdict=%q", ErrInvalidStructure, out.Verdict)
	}
	if strings.TrimSpace(out.Roast) == "" || strings.TrimSpace(out.Feedback) == "" {
		return domain.JudgeResult{}, fmt.Errorf("%w: roast 或者 feedback 为空", ErrInvalidStructure)
	}
	return domain.JudgeResult{
		Scores: domain.Scores{
			Originality:     *out.Scores.Originality,
			Feasibility:     *out.Scores.Feasibility,
			WowFactor:       *out.Scores.WowFactor,
			MarketPotential: *out.Scores.MarketPotential,
		},
		Roast:    out.Roast,
		Feedback: out.Feedback,
		Verdict:  verdict,
	}, nil
}

func stripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
