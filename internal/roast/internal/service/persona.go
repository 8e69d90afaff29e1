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
	"slices"

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
)

var defaultPersonas = []domain.Persona{
	{
		Name:       "Tech Bro 3000",
		Role:       "Senior Engineer",
		Style:      "Analytical, detail-oriented, loves clean code",
		Focus:      "Technical feasibility, architecture, scalability",
		Expertise:  "Technical side - architecture, scalability, code quality, tech stack decisions",
		VoiceID:    "Tech Bro 3000",
		ToneOffset: domain.Tone{Humor: 0, Sarcasm: 0.2},
	},
	{
		Name:       "Brutal VC",
		Role:       "VC Partner",
		Style:      "Market-focused, ROI-driven, loves big numbers",
		Focus:      "Investment, valuation, market analysis",
		Expertise:  "Investment and Valuation side - funding potential, market size, ROI, investor appeal",
		VoiceID:    "Brutal VC",
		ToneOffset: domain.Tone{Humor: -0.1, Sarcasm: 0.3},
	},
	{
		Name:       "Supportive Comedian",
		Role:       "Design Director",
		Style:      "User-obsessed, aesthetic-focused, loves innovation",
		Focus:      "Creative aspects, user experience, innovation",
		Expertise:  "Creative side - design, user experience, innovation, aesthetic appeal",
		VoiceID:    "Supportive Comedian",
		ToneOffset: domain.Tone{Humor: 0.3, Sarcasm: -0.3},
	},
	{
		Name:  "Zen Mentor",
		Role:  "Customer Success Director",
		Style: "Empathetic, user-centric, problem-solver",
		Focus: "Customer experience, operations, support",
		Expertise: "Customer Experience and Operations side - user support, satisfaction, " +
			"customer journey, operational efficiency",
		VoiceID:    "Zen Mentor",
		ToneOffset: domain.Tone{Humor: -0.1, Sarcasm: -0.4},
	},
	{
		Name:       "Middle-Aged CEO",
		Role:       "Seasoned CEO",
		Style:      "Balanced, strategic, big-picture thinker",
		Focus:      "Business viability, profitability, strategy",
		Expertise:  "Business and Profitability side - revenue model, sustainability, strategic execution, market fit",
		VoiceID:    "Middle-Aged CEO",
		ToneOffset: domain.Tone{Humor: 0, Sarcasm: 0},
	},
}

// PersonaRegistry 静态的评委列表，顺序固定
type PersonaRegistry struct {
	personas []domain.Persona
}

func NewPersonaRegistry() *PersonaRegistry {
	return &PersonaRegistry{personas: slices.Clone(defaultPersonas)}
}

// List 返回副本，调用方修改不会影响注册表
func (r *PersonaRegistry) List() []domain.Persona {
	return slices.Clone(r.personas)
}

func (r *PersonaRegistry) Find(name string) (domain.Persona, bool) {
	idx := slices.IndexFunc(r.personas, func(p domain.Persona) bool {
		return p.Name == name
	})
	if idx < 0 {
		return domain.Persona{}, false
	}
	return r.personas[idx], true
}
