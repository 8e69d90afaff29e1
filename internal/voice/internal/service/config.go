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
	"errors"
	"time"
)

var (
	ErrInvalidInput       = errors.New("文本和评委名字不能为空")
	ErrVoiceNotConfigured = errors.New("语音合成未配置")
	ErrSynthesisFailed    = errors.New("语音合成失败")
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	defaultModel   = "eleven_monolingual_v1"
	// 示例配置里面的占位符，等同于没有配置
	placeholderAPIKey = "your_elevenlabs_api_key_here"
)

type Config struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseURL"`
	Model   string `yaml:"model"`
	// Voices 评委的 voice key 到 ElevenLabs voice id
	Voices       map[string]string `yaml:"voices"`
	DefaultVoice string            `yaml:"defaultVoice"`
	Timeout      time.Duration     `yaml:"timeout"`
}

func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.APIKey == placeholderAPIKey {
		c.APIKey = ""
	}
	return c
}
