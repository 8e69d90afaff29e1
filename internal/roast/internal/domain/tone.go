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

import "math"

const (
	MinHumor   = 0.0
	MaxHumor   = 1.0
	MinSarcasm = -1.0
	MaxSarcasm = 1.0
)

// Tone 语气参数，Humor ∈ [0,1]，Sarcasm ∈ [-1,1]
type Tone struct {
	Humor   float64
	Sarcasm float64
}

func (t Tone) Valid() bool {
	if math.IsNaN(t.Humor) || math.IsNaN(t.Sarcasm) {
		return false
	}
	return t.Humor >= MinHumor && t.Humor <= MaxHumor &&
		t.Sarcasm >= MinSarcasm && t.Sarcasm <= MaxSarcasm
}

// Shift 加上偏移之后再截断到合法区间
func (t Tone) Shift(offset Tone) Tone {
	return Tone{
		Humor:   clamp(t.Humor+offset.Humor, MinHumor, MaxHumor),
		Sarcasm: clamp(t.Sarcasm+offset.Sarcasm, MinSarcasm, MaxSarcasm),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
