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
	"testing"

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	entry := func(name string, o, f, w, m float64, v domain.Verdict) domain.JudgeEntry {
		return domain.JudgeEntry{
			Name: name,
			Response: domain.JudgeResult{
				Scores:   domain.Scores{Originality: o, Feasibility: f, WowFactor: w, MarketPotential: m},
				Roast:    "roast " + name,
				Feedback: "feedback " + name,
				Verdict:  v,
			},
		}
	}
	testCases := []struct {
		name        string
		judges      []domain.JudgeEntry
		wantScores  domain.Scores
		wantVerdict domain.Verdict
	}{
		{
			name:        "单个评委原样返回",
			judges:      []domain.JudgeEntry{entry("a", 7, 6, 8, 5, domain.VerdictFail)},
			wantScores:  domain.Scores{Originality: 7, Feasibility: 6, WowFactor: 8, MarketPotential: 5},
			wantVerdict: domain.VerdictFail,
		},
		{
			name: "多数通过",
			judges: []domain.JudgeEntry{
				entry("a", 8, 5, 5, 5, domain.VerdictPass),
				entry("b", 6, 5, 5, 5, domain.VerdictPass),
				entry("c", 10, 5, 5, 5, domain.VerdictFail),
			},
			wantScores:  domain.Scores{Originality: 8, Feasibility: 5, WowFactor: 5, MarketPotential: 5},
			wantVerdict: domain.VerdictPass,
		},
		{
			name: "三方各一票",
			judges: []domain.JudgeEntry{
				entry("a", 1, 2, 3, 4, domain.VerdictPass),
				entry("b", 1, 2, 3, 4, domain.VerdictFail),
				entry("c", 1, 2, 3, 4, domain.VerdictMaybe),
			},
			wantScores:  domain.Scores{Originality: 1, Feasibility: 2, WowFactor: 3, MarketPotential: 4},
			wantVerdict: domain.VerdictMaybe,
		},
		{
			name: "两两平票",
			judges: []domain.JudgeEntry{
				entry("a", 7, 7, 7, 7, domain.VerdictPass),
				entry("b", 8, 8, 8, 8, domain.VerdictFail),
			},
			wantScores:  domain.Scores{Originality: 7.5, Feasibility: 7.5, WowFactor: 7.5, MarketPotential: 7.5},
			wantVerdict: domain.VerdictMaybe,
		},
		{
			name: "四舍五入保留一位",
			judges: []domain.JudgeEntry{
				entry("a", 7, 1, 0, 10, domain.VerdictFail),
				entry("b", 8, 1, 0, 10, domain.VerdictFail),
				entry("c", 8, 2, 1, 9, domain.VerdictMaybe),
			},
			// 23/3=7.666 4/3=1.333 1/3=0.333 29/3=9.666
			wantScores:  domain.Scores{Originality: 7.7, Feasibility: 1.3, WowFactor: 0.3, MarketPotential: 9.7},
			wantVerdict: domain.VerdictFail,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Aggregate(tc.judges)
			require.NoError(t, err)
			assert.Equal(t, tc.wantScores, res.AggregatedScores)
			assert.Equal(t, tc.wantVerdict, res.FinalVerdict)
			assert.Equal(t, tc.judges, res.Judges)
		})
	}
}

func TestAggregate_NoJudges(t *testing.T) {
	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, ErrNoJudges)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 0.1, roundHalfUp(0.05))
	assert.Equal(t, 6.5, roundHalfUp(6.5))
	assert.Equal(t, 8.0, roundHalfUp(8))
	assert.Equal(t, 2.3, roundHalfUp(2.25))
}
