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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTone_Shift(t *testing.T) {
	testCases := []struct {
		name   string
		tone   Tone
		offset Tone
		want   Tone
	}{
		{
			name:   "正常偏移",
			tone:   Tone{Humor: 0.5, Sarcasm: 0},
			offset: Tone{Humor: -0.1, Sarcasm: 0.3},
			want:   Tone{Humor: 0.4, Sarcasm: 0.3},
		},
		{
			name:   "humor 超过上限",
			tone:   Tone{Humor: 0.9, Sarcasm: 0},
			offset: Tone{Humor: 0.3, Sarcasm: -0.3},
			want:   Tone{Humor: 1, Sarcasm: -0.3},
		},
		{
			name:   "humor 低于下限",
			tone:   Tone{Humor: 0.05, Sarcasm: 0},
			offset: Tone{Humor: -0.1},
			want:   Tone{Humor: 0, Sarcasm: 0},
		},
		{
			name:   "sarcasm 两端截断",
			tone:   Tone{Humor: 0.5, Sarcasm: -0.9},
			offset: Tone{Sarcasm: -0.4},
			want:   Tone{Humor: 0.5, Sarcasm: -1},
		},
		{
			name:   "sarcasm 超过上限",
			tone:   Tone{Humor: 0.5, Sarcasm: 0.9},
			offset: Tone{Sarcasm: 0.3},
			want:   Tone{Humor: 0.5, Sarcasm: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tone.Shift(tc.offset)
			assert.InDelta(t, tc.want.Humor, got.Humor, 1e-9)
			assert.InDelta(t, tc.want.Sarcasm, got.Sarcasm, 1e-9)
			assert.True(t, got.Valid())
		})
	}
}

func TestTone_Valid(t *testing.T) {
	assert.True(t, Tone{Humor: 0, Sarcasm: -1}.Valid())
	assert.True(t, Tone{Humor: 1, Sarcasm: 1}.Valid())
	assert.False(t, Tone{Humor: 1.01, Sarcasm: 0}.Valid())
	assert.False(t, Tone{Humor: -0.01, Sarcasm: 0}.Valid())
	assert.False(t, Tone{Humor: 0.5, Sarcasm: -1.5}.Valid())
	assert.False(t, Tone{Humor: math.NaN(), Sarcasm: 0}.Valid())
}

func TestVerdict_Valid(t *testing.T) {
	assert.True(t, VerdictPass.Valid())
	assert.True(t, VerdictMaybe.Valid())
	assert.False(t, Verdict("pass").Valid())
	assert.False(t, Verdict("").Valid())
}
