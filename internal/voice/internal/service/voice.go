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
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./voice.go -destination=../../mocks/voice.mock.go -package=voicemocks Service
type Service interface {
	// Synthesize 返回 audio/mpeg 格式的音频
	Synthesize(ctx context.Context, text, personaName string) ([]byte, error)
}

type voiceService struct {
	apiKey   string
	resolver *VoiceResolver
	tts      Synthesizer
	timeout  time.Duration
	logger   *elog.Component
}

func NewService(cfg Config, resolver *VoiceResolver, tts Synthesizer) Service {
	cfg = cfg.WithDefaults()
	return &voiceService{
		apiKey:   cfg.APIKey,
		resolver: resolver,
		tts:      tts,
		timeout:  cfg.Timeout,
		logger:   elog.DefaultLogger,
	}
}

func (s *voiceService) Synthesize(ctx context.Context, text, personaName string) ([]byte, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(personaName) == "" {
		return nil, ErrInvalidInput
	}
	if s.apiKey == "" {
		return nil, ErrVoiceNotConfigured
	}
	voiceID, err := s.resolver.Resolve(personaName)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	start := time.Now()
	audio, err := s.tts.Synthesize(ctx, voiceID, text)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("语音合成完成",
		elog.String("persona", personaName),
		elog.String("voice_id", voiceID),
		elog.Int("text_len", len(text)),
		elog.Int("audio_size", len(audio)),
		elog.FieldCost(time.Since(start)))
	return audio, nil
}
