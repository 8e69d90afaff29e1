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

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=./tts.go -package=svcmocks -destination=./mocks/tts.mock.go Synthesizer
type Synthesizer interface {
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, error)
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type ttsReq struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// ElevenLabsSynthesizer 调用 ElevenLabs 的 text-to-speech 接口
type ElevenLabsSynthesizer struct {
	client *resty.Client
	model  string
}

func NewElevenLabsSynthesizer(cfg Config) *ElevenLabsSynthesizer {
	cfg = cfg.WithDefaults()
	return &ElevenLabsSynthesizer{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("xi-api-key", cfg.APIKey),
		model: cfg.Model,
	}
}

func (e *ElevenLabsSynthesizer) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Accept", "audio/mpeg").
		SetBody(ttsReq{
			Text:    text,
			ModelID: e.model,
			VoiceSettings: voiceSettings{
				Stability:       0.5,
				SimilarityBoost: 0.75,
			},
		}).
		SetPathParam("voiceId", voiceID).
		Post("/v1/text-to-speech/{voiceId}")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrSynthesisFailed, resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
