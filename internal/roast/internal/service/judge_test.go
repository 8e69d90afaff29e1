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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/roastmyidea/internal/ai"
	aimocks "github.com/ecodeclub/roastmyidea/internal/ai/mocks"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validAnswer = `{"scores":{"originality":7,"feasibility":6,"wow_factor":8,"market_potential":5},
"roast":"It's Uber, but for dogs.","feedback":"Validate the market first.","verdict":" pass "}`

func TestParseJudgeResult(t *testing.T) {
	want := domain.JudgeResult{
		Scores:   domain.Scores{Originality: 7, Feasibility: 6, WowFactor: 8, MarketPotential: 5},
		Roast:    "It's Uber, but for dogs.",
		Feedback: "Validate the market first.",
		Verdict:  domain.VerdictPass,
	}
	testCases := []struct {
		name    string
		text    string
		want    domain.JudgeResult
		wantErr error
	}{
		{
			name: "纯 JSON",
			text: validAnswer,
			want: want,
		},
		{
			name: "带 json 代码块",
			text: "```json\n" + validAnswer + "\n```",
			want: want,
		},
		{
			name: "带普通代码块",
			text: "```\n" + validAnswer + "\n```\n",
			want: want,
		},
		{
			name:    "不是 JSON",
			text:    "I think this idea is great!",
			wantErr: ErrParseFail,
		},
		{
			name:    "缺少 scores",
			text:    `{"roast":"r","feedback":"f","verdict":"PASS"}`,
			wantErr: ErrInvalidStructure,
		},
		{
			name: "缺少某个分数",
			text: `{"scores":{"originality":7,"feasibility":6,"wow_factor":8},
"roast":"r","feedback":"f","verdict":"PASS"}`,
			wantErr: ErrInvalidStructure,
		},
		{
			name: "分数超出范围",
			text: `{"scores":{"originality":11,"feasibility":6,"wow_factor":8,"market_potential":5},
"roast":"r","feedback":"f","verdict":"PASS"}`,
			wantErr: ErrInvalidStructure,
		},
		{
			name: "分数不是整数",
			text: `{"scores":{"originality":7.5,"feasibility":6,"wow_factor":8,"market_potential":5},
"roast":"r","feedback":"f","verdict":"PASS"}`,
			wantErr: ErrInvalidStructure,
		},
		{
			name: "分数是字符串",
			text: `{"scores":{"originality":"7","feasibility":6,"wow_factor":8,"market_potential":5},
"roast":"r","feedback":"f","verdict":"PASS"}`,
			wantErr: ErrParseFail,
		},
		{
			name: "非法 verdict",
			text: `{"scores":{"originality":7,"feasibility":6,"wow_factor":8,"market_potential":5},
"roast":"r","feedback":"f","verdict":"YES"}`,
			wantErr: ErrInvalidStructure,
		},
		{
			name: "roast 为空",
			text: `{"scores":{"originality":7,"feasibility":6,"wow_factor":8,"market_potential":5},
"roast":" ","feedback":"f","verdict":"FAIL"}`,
			wantErr: ErrInvalidStructure,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ParseJudgeResult(tc.text)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestJudgeInvoker_Invoke(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) ai.LLMService
		wantErr error
	}{
		{
			name: "成功",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, "roast_judge", req.Biz)
						assert.Equal(t, "uid-1", req.Uid)
						assert.Equal(t, "prompt", req.Prompt)
						assert.True(t, req.Config.JSONOutput)
						_, ok := ctx.Deadline()
						assert.True(t, ok)
						return ai.LLMResponse{Answer: "```json\n" + validAnswer + "\n```"}, nil
					})
				return svc
			},
		},
		{
			name: "配额不足",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, fmt.Errorf("%w: gemini: 429", ai.ErrQuotaExceeded))
				return svc
			},
			wantErr: ErrQuotaExceeded,
		},
		{
			name: "鉴权失败",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, fmt.Errorf("%w: gemini", ai.ErrAuthFailed))
				return svc
			},
			wantErr: ErrAuthFailed,
		},
		{
			name: "超时",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						<-ctx.Done()
						return ai.LLMResponse{}, ctx.Err()
					})
				return svc
			},
			wantErr: ErrTimeout,
		},
		{
			name: "未知错误",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.New("internal error"))
				return svc
			},
			wantErr: ErrProvider,
		},
		{
			name: "输出不是 JSON",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: "Sorry, I can't do that."}, nil)
				return svc
			},
			wantErr: ErrParseFail,
		},
	}
	persona, _ := NewPersonaRegistry().Find("Brutal VC")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			invoker := NewJudgeInvoker(tc.mock(ctrl), Config{GenerateTimeout: 50 * time.Millisecond})
			res, err := invoker.Invoke(context.Background(), persona, "prompt", "uid-1")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			require.Equal(t, domain.VerdictPass, res.Verdict)
			assert.Equal(t, 8.0, res.Scores.WowFactor)
		})
	}
}

func TestModerationGate_Check(t *testing.T) {
	testCases := []struct {
		name   string
		answer string
		err    error
		want   bool
	}{
		{name: "安全", answer: " safe\n", want: true},
		{name: "不安全", answer: "UNSAFE", want: false},
		{name: "其他回答视为不安全", answer: "SAFE, probably", want: false},
		{name: "调用失败默认放行", err: errors.New("network"), want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := aimocks.NewMockService(ctrl)
			svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
					assert.Equal(t, "roast_moderation", req.Biz)
					assert.Contains(t, req.Prompt, `Startup Idea: "Uber for dogs"`)
					return ai.LLMResponse{Answer: tc.answer}, tc.err
				})
			gate := NewModerationGate(svc, Config{})
			res := gate.Check(context.Background(), "Uber for dogs")
			assert.Equal(t, tc.want, res.Safe)
			assert.Equal(t, tc.err, res.Err)
		})
	}
}
