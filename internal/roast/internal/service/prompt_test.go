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
	"fmt"
	"strings"
	"testing"

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_ToneGuidance(t *testing.T) {
	humors := []struct {
		val  float64
		want string
	}{
		{0, "Stay serious and professional"},
		{0.39, "Stay serious and professional"},
		{0.4, "Stay serious and professional"},
		{0.41, "Mix professional insight with light humor"},
		{0.7, "Mix professional insight with light humor"},
		{1, "Be witty and playful in your critique"},
	}
	sarcasms := []struct {
		val  float64
		want string
	}{
		{-1, "Be encouraging and supportive"},
		{-0.5, "Be encouraging and supportive"},
		{-0.51, "Be encouraging and supportive"},
		{-0.2, "Stay neutral and balanced"},
		{0, "Stay neutral and balanced"},
		{0.2, "Use mild sarcasm occasionally"},
		{0.5, "Use mild sarcasm occasionally"},
		{0.51, "Use sharp sarcasm and biting wit"},
		{1, "Use sharp sarcasm and biting wit"},
	}
	persona, _ := NewPersonaRegistry().Find("Brutal VC")
	for _, h := range humors {
		for _, s := range sarcasms {
			t.Run(fmt.Sprintf("humor=%v,sarcasm=%v", h.val, s.val), func(t *testing.T) {
				prompt := BuildPrompt(PromptInput{
					Persona: persona,
					Idea:    "Uber for dogs",
					Tone:    domain.Tone{Humor: h.val, Sarcasm: s.val},
				})
				assert.Contains(t, prompt, h.want)
				assert.Contains(t, prompt, s.want)
				assert.Contains(t, prompt, fmt.Sprintf("Humor Level: %.2f", h.val))
				assert.Contains(t, prompt, fmt.Sprintf("Sarcasm Level: %.2f", s.val))
			})
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	registry := NewPersonaRegistry()
	tech, _ := registry.Find("Tech Bro 3000")
	testCases := []struct {
		name       string
		input      PromptInput
		contains   []string
		notContain []string
	}{
		{
			name: "基本结构",
			input: PromptInput{
				Persona: tech,
				Idea:    "A revolutionary AI-powered dog walker",
				Tone:    domain.Tone{Humor: 0.75, Sarcasm: 0.3},
			},
			contains: []string{
				"You are Tech Bro 3000, a Senior Engineer at a hackathon judging panel.",
				"YOUR EXPERTISE: " + tech.Expertise,
				"CRITICAL INSTRUCTION",
				"focus EXCLUSIVELY on your area of expertise",
				"Stay in your lane",
				"STARTUP IDEA:\n\"A revolutionary AI-powered dog walker\"",
				"Humor Level: 0.75",
				"Sarcasm Level: 0.30",
				"YOUR JUDGING STYLE: " + tech.Style,
				"YOUR FOCUS AREAS: " + tech.Focus,
				`"wow_factor"`,
				"under 200 words",
				"under 150 words",
				"Respond with ONLY the JSON object",
			},
			notContain: []string{"ADDITIONAL CONTEXT FROM AGENTS", "PROJECT NAME"},
		},
		{
			name: "包含项目名称和 agent 分析",
			input: PromptInput{
				Persona:     tech,
				Idea:        "Test idea",
				Tone:        domain.Tone{Humor: 0.5, Sarcasm: -0.85},
				Analysis:    "Code quality is excellent, using modern frameworks",
				ProjectName: "DogWalk",
			},
			contains: []string{
				"PROJECT NAME: DogWalk",
				"ADDITIONAL CONTEXT FROM AGENTS:\nCode quality is excellent, using modern frameworks",
				"Sarcasm Level: -0.85",
			},
		},
		{
			name: "空白的分析被忽略",
			input: PromptInput{
				Persona:  tech,
				Idea:     "Test idea",
				Analysis: "   \n ",
			},
			notContain: []string{"ADDITIONAL CONTEXT FROM AGENTS"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prompt := BuildPrompt(tc.input)
			for _, c := range tc.contains {
				assert.Contains(t, prompt, c)
			}
			for _, c := range tc.notContain {
				assert.NotContains(t, prompt, c)
			}
			assert.Equal(t, prompt, BuildPrompt(tc.input))
		})
	}
}

func TestBuildPrompt_PersonaFocus(t *testing.T) {
	wants := map[string]string{
		"Tech Bro 3000":       "technical",
		"Brutal VC":           "investment",
		"Supportive Comedian": "creative",
		"Zen Mentor":          "customer",
		"Middle-Aged CEO":     "business",
	}
	for _, p := range NewPersonaRegistry().List() {
		prompt := strings.ToLower(BuildPrompt(PromptInput{Persona: p, Idea: "Test idea"}))
		assert.Contains(t, prompt, wants[p.Name], p.Name)
	}
}
