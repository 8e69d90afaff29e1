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

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
)

type PromptInput struct {
	Persona     domain.Persona
	Idea        string
	Tone        domain.Tone
	Analysis    string
	ProjectName string
}

// BuildPrompt 相同的输入一定得到相同的 prompt
func BuildPrompt(in PromptInput) string {
	var sb strings.Builder
	p := in.Persona
	fmt.Fprintf(&sb, "You are %s, a %s at a hackathon judging panel.\n\n", p.Name, p.Role)
	fmt.Fprintf(&sb, "YOUR EXPERTISE: %s\n\n", p.Expertise)
	sb.WriteString("CRITICAL INSTRUCTION: Your feedback MUST focus EXCLUSIVELY on your area of expertise. " +
		"Do NOT comment on areas outside your specialty. Stay in your lane!\n\n")
	if name := strings.TrimSpace(in.ProjectName); name != "" {
		fmt.Fprintf(&sb, "PROJECT NAME: %s\n\n", name)
	}
	fmt.Fprintf(&sb, "STARTUP IDEA:\n\"%s\"\n\n", in.Idea)
	if analysis := strings.TrimSpace(in.Analysis); analysis != "" {
		fmt.Fprintf(&sb, "ADDITIONAL CONTEXT FROM AGENTS:\n%s\n\n", analysis)
	}
	sb.WriteString("TONE PARAMETERS - ADJUST YOUR RESPONSE STYLE:\n")
	fmt.Fprintf(&sb, "- Humor Level: %.2f (scale: 0.0 = Very Serious → 1.0 = Very Funny)\n", in.Tone.Humor)
	fmt.Fprintf(&sb, "  → %s\n\n", HumorGuidance(in.Tone.Humor))
	fmt.Fprintf(&sb, "- Sarcasm Level: %.2f (scale: -1.0 = Very Supportive → 0.0 = Neutral → 1.0 = Very Sarcastic)\n",
		in.Tone.Sarcasm)
	fmt.Fprintf(&sb, "  → %s\n\n", SarcasmGuidance(in.Tone.Sarcasm))
	fmt.Fprintf(&sb, "YOUR JUDGING STYLE: %s\n", p.Style)
	fmt.Fprintf(&sb, "YOUR FOCUS AREAS: %s\n\n", p.Focus)
	sb.WriteString(responseFormat)
	return sb.String()
}

func HumorGuidance(humor float64) string {
	switch {
	case humor > 0.7:
		return "Be witty and playful in your critique"
	case humor > 0.4:
		return "Mix professional insight with light humor"
	default:
		return "Stay serious and professional"
	}
}

func SarcasmGuidance(sarcasm float64) string {
	switch {
	case sarcasm > 0.5:
		return "Use sharp sarcasm and biting wit"
	case sarcasm > 0:
		return "Use mild sarcasm occasionally"
	case sarcasm > -0.5:
		return "Stay neutral and balanced"
	default:
		return "Be encouraging and supportive"
	}
}

const responseFormat = `RESPONSE FORMAT:
You must respond with a valid JSON object in exactly this format:
{
  "scores": {
    "originality": 0-10,
    "feasibility": 0-10,
    "wow_factor": 0-10,
    "market_potential": 0-10
  },
  "roast": "Your witty, insightful roast here...",
  "feedback": "Constructive feedback here...",
  "verdict": "PASS" | "FAIL" | "MAYBE"
}

Guidelines:
- Stay within your area of expertise
- Adjust your humor and sarcasm based on the tone parameters
- Provide honest but fair scoring (whole numbers, 0-10 scale)
- Give actionable feedback
- Make your verdict based on the overall potential
- Keep the roast under 200 words
- Keep the feedback under 150 words

Respond with ONLY the JSON object, no additional text.
`
