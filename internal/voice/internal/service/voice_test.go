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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/roastmyidea/internal/roast"
	svcmocks "github.com/ecodeclub/roastmyidea/internal/voice/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeFinder map[string]roast.Persona

func (f fakeFinder) FindPersona(name string) (roast.Persona, bool) {
	p, ok := f[name]
	return p, ok
}

var finder = fakeFinder{
	"Tech Bro 3000": {Name: "Tech Bro 3000", VoiceID: "tech_bro"},
	"Brutal VC":     {Name: "Brutal VC", VoiceID: "brutal_vc"},
	"Zen Mentor":    {Name: "Zen Mentor"},
}

func TestVoiceResolver_Resolve(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		persona string
		want    string
		wantErr error
	}{
		{
			name:    "通过 voice key 映射",
			cfg:     Config{Voices: map[string]string{"tech_bro": "id-tech"}, DefaultVoice: "id-default"},
			persona: "Tech Bro 3000",
			want:    "id-tech",
		},
		{
			name:    "映射为空用默认值",
			cfg:     Config{Voices: map[string]string{"tech_bro": "id-tech", "brutal_vc": ""}, DefaultVoice: "id-default"},
			persona: "Brutal VC",
			want:    "id-default",
		},
		{
			name:    "评委没有 voice key 用名字",
			cfg:     Config{Voices: map[string]string{"Zen Mentor": "id-zen"}},
			persona: "Zen Mentor",
			want:    "id-zen",
		},
		{
			name:    "未知评委用名字",
			cfg:     Config{Voices: map[string]string{"Technical Judge": "id-technical"}},
			persona: "Technical Judge",
			want:    "id-technical",
		},
		{
			name:    "什么都没配置",
			cfg:     Config{},
			persona: "Tech Bro 3000",
			wantErr: ErrVoiceNotConfigured,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := NewVoiceResolver(tc.cfg, finder).Resolve(tc.persona)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestVoiceService_Synthesize(t *testing.T) {
	cfg := Config{
		APIKey:       "key",
		Voices:       map[string]string{"tech_bro": "id-tech"},
		DefaultVoice: "id-default",
	}
	testCases := []struct {
		name    string
		cfg     Config
		text    string
		persona string
		mock    func(ctrl *gomock.Controller) Synthesizer
		want    []byte
		wantErr error
	}{
		{
			name:    "成功",
			cfg:     cfg,
			text:    "Your idea is mid.",
			persona: "Tech Bro 3000",
			mock: func(ctrl *gomock.Controller) Synthesizer {
				tts := svcmocks.NewMockSynthesizer(ctrl)
				tts.EXPECT().Synthesize(gomock.Any(), "id-tech", "Your idea is mid.").Return([]byte("mp3"), nil)
				return tts
			},
			want: []byte("mp3"),
		},
		{
			name:    "文本为空",
			cfg:     cfg,
			text:    "  ",
			persona: "Tech Bro 3000",
			mock: func(ctrl *gomock.Controller) Synthesizer {
				return svcmocks.NewMockSynthesizer(ctrl)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "评委为空",
			cfg:     cfg,
			text:    "hi",
			persona: "",
			mock: func(ctrl *gomock.Controller) Synthesizer {
				return svcmocks.NewMockSynthesizer(ctrl)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "占位符 key 等同于未配置",
			cfg:     Config{APIKey: "your_elevenlabs_api_key_here", DefaultVoice: "id-default"},
			text:    "hi",
			persona: "Tech Bro 3000",
			mock: func(ctrl *gomock.Controller) Synthesizer {
				return svcmocks.NewMockSynthesizer(ctrl)
			},
			wantErr: ErrVoiceNotConfigured,
		},
		{
			name:    "没有可用的 voice id",
			cfg:     Config{APIKey: "key"},
			text:    "hi",
			persona: "Tech Bro 3000",
			mock: func(ctrl *gomock.Controller) Synthesizer {
				return svcmocks.NewMockSynthesizer(ctrl)
			},
			wantErr: ErrVoiceNotConfigured,
		},
		{
			name:    "合成失败",
			cfg:     cfg,
			text:    "hi",
			persona: "Unknown",
			mock: func(ctrl *gomock.Controller) Synthesizer {
				tts := svcmocks.NewMockSynthesizer(ctrl)
				tts.EXPECT().Synthesize(gomock.Any(), "id-default", "hi").
					Return(nil, ErrSynthesisFailed)
				return tts
			},
			wantErr: ErrSynthesisFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			cfg := tc.cfg.WithDefaults()
			svc := NewService(cfg, NewVoiceResolver(cfg, finder), tc.mock(ctrl))
			audio, err := svc.Synthesize(context.Background(), tc.text, tc.persona)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, audio)
		})
	}
}

func TestElevenLabsSynthesizer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key", r.Header.Get("xi-api-key"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))
		if r.URL.Path == "/v1/text-to-speech/bad-voice" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"invalid_api_key"}`))
			return
		}
		assert.Equal(t, "/v1/text-to-speech/id-tech", r.URL.Path)
		var req ttsReq
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, ttsReq{
			Text:          "hello",
			ModelID:       "eleven_monolingual_v1",
			VoiceSettings: voiceSettings{Stability: 0.5, SimilarityBoost: 0.75},
		}, req)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-mp3-bytes"))
	}))
	defer server.Close()

	tts := NewElevenLabsSynthesizer(Config{APIKey: "key", BaseURL: server.URL, Timeout: time.Second})
	audio, err := tts.Synthesize(context.Background(), "id-tech", "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-mp3-bytes"), audio)

	_, err = tts.Synthesize(context.Background(), "bad-voice", "hello")
	assert.True(t, errors.Is(err, ErrSynthesisFailed))
}
