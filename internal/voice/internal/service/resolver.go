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
	"github.com/ecodeclub/roastmyidea/internal/roast"
)

// PersonaFinder 按名字找评委
type PersonaFinder interface {
	FindPersona(name string) (roast.Persona, bool)
}

// VoiceResolver 评委名字 -> voice key -> voice id
type VoiceResolver struct {
	voices       map[string]string
	defaultVoice string
	finder       PersonaFinder
}

func NewVoiceResolver(cfg Config, finder PersonaFinder) *VoiceResolver {
	return &VoiceResolver{
		voices:       cfg.Voices,
		defaultVoice: cfg.DefaultVoice,
		finder:       finder,
	}
}

// Resolve 找不到评委的时候直接用名字做 key，映射不到用默认值
func (r *VoiceResolver) Resolve(personaName string) (string, error) {
	key := personaName
	if p, ok := r.finder.FindPersona(personaName); ok && p.VoiceID != "" {
		key = p.VoiceID
	}
	if id := r.voices[key]; id != "" {
		return id, nil
	}
	if r.defaultVoice != "" {
		return r.defaultVoice, nil
	}
	return "", ErrVoiceNotConfigured
}
