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

package web

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
)

type RoastReq struct {
	// 前端可能传任意结构过来，自己解析
	ProjectName   json.RawMessage `json:"projectName"`
	Idea          json.RawMessage `json:"idea"`
	Tone          json.RawMessage `json:"tone"`
	SelectedJudge string          `json:"selectedJudge"`
	UserId        string          `json:"userId"`
	AgentAnalysis string          `json:"agentAnalysis"`
}

type ToneReq struct {
	Humor   *float64 `json:"humor"`
	Sarcasm *float64 `json:"sarcasm"`
}

// parseText 不是字符串的时候当成空值处理
func parseText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

var errMalformedTone = errors.New("tone 必须包含数字类型的 humor 和 sarcasm")

func parseTone(raw json.RawMessage) (domain.Tone, error) {
	if len(raw) == 0 {
		return domain.Tone{}, errMalformedTone
	}
	var t ToneReq
	if err := json.Unmarshal(raw, &t); err != nil {
		return domain.Tone{}, fmt.Errorf("%w: %w", errMalformedTone, err)
	}
	if t.Humor == nil || t.Sarcasm == nil {
		return domain.Tone{}, errMalformedTone
	}
	return domain.Tone{Humor: *t.Humor, Sarcasm: *t.Sarcasm}, nil
}

type RoastResp struct {
	Success bool  `json:"success"`
	Roast   Roast `json:"roast"`
}

type Roast struct {
	Id               string  `json:"id"`
	ProjectName      string  `json:"projectName,omitempty"`
	Idea             string  `json:"idea,omitempty"`
	Judges           []Judge `json:"judges"`
	FinalVerdict     string  `json:"finalVerdict"`
	AggregatedScores Scores  `json:"aggregatedScores"`
	Ctime            int64   `json:"ctime,omitempty"`
}

type Judge struct {
	Name     string        `json:"name"`
	Response JudgeResponse `json:"response"`
}

type JudgeResponse struct {
	Scores   Scores `json:"scores"`
	Roast    string `json:"roast"`
	Feedback string `json:"feedback"`
	Verdict  string `json:"verdict"`
}

type Scores struct {
	Originality     float64 `json:"originality"`
	Feasibility     float64 `json:"feasibility"`
	WowFactor       float64 `json:"wow_factor"`
	MarketPotential float64 `json:"market_potential"`
}

func newScores(s domain.Scores) Scores {
	return Scores{
		Originality:     s.Originality,
		Feasibility:     s.Feasibility,
		WowFactor:       s.WowFactor,
		MarketPotential: s.MarketPotential,
	}
}

type Persona struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Style     string `json:"style"`
	Focus     string `json:"focus"`
	Expertise string `json:"expertise"`
	VoiceId   string `json:"voiceId"`
}

type PersonaList struct {
	Personas []Persona `json:"personas"`
}

type UploadResp struct {
	Success bool  `json:"success"`
	Files   Files `json:"files"`
}

type Files struct {
	PitchDeckUrl string   `json:"pitchDeckUrl"`
	ImageUrls    []string `json:"imageUrls"`
}

type ErrorData struct {
	Category string `json:"category"`
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
	Details  string `json:"details,omitempty"`
}
