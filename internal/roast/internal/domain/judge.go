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

package domain

type Verdict string

const (
	VerdictPass  Verdict = "PASS"
	VerdictFail  Verdict = "FAIL"
	VerdictMaybe Verdict = "MAYBE"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictPass, VerdictFail, VerdictMaybe:
		return true
	default:
		return false
	}
}

func (v Verdict) String() string {
	return string(v)
}

// Scores 单个评委的分数是 0-10 的整数，聚合之后保留一位小数
type Scores struct {
	Originality     float64
	Feasibility     float64
	WowFactor       float64
	MarketPotential float64
}

func (s Scores) Total() float64 {
	return s.Originality + s.Feasibility + s.WowFactor + s.MarketPotential
}

type JudgeResult struct {
	Scores   Scores
	Roast    string
	Feedback string
	Verdict  Verdict
}

type JudgeEntry struct {
	Name     string
	Response JudgeResult
}

type AggregateResult struct {
	// 按照调用顺序
	Judges           []JudgeEntry
	AggregatedScores Scores
	FinalVerdict     Verdict
}
