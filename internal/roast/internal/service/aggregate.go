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
	"math"
	"slices"

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
)

// Aggregate 单评委和多评委走同一条路径
// 分数取平均值，四舍五入保留一位小数；结论取严格多数，并列则为 MAYBE
func Aggregate(judges []domain.JudgeEntry) (domain.AggregateResult, error) {
	if len(judges) == 0 {
		return domain.AggregateResult{}, ErrNoJudges
	}
	var sum domain.Scores
	counts := make(map[domain.Verdict]int, 3)
	for _, j := range judges {
		s := j.Response.Scores
		sum.Originality += s.Originality
		sum.Feasibility += s.Feasibility
		sum.WowFactor += s.WowFactor
		sum.MarketPotential += s.MarketPotential
		counts[j.Response.Verdict]++
	}
	n := float64(len(judges))
	return domain.AggregateResult{
		Judges: slices.Clone(judges),
		AggregatedScores: domain.Scores{
			Originality:     roundHalfUp(sum.Originality / n),
			Feasibility:     roundHalfUp(sum.Feasibility / n),
			WowFactor:       roundHalfUp(sum.WowFactor / n),
			MarketPotential: roundHalfUp(sum.MarketPotential / n),
		},
		FinalVerdict: majority(counts),
	}, nil
}

func majority(counts map[domain.Verdict]int) domain.Verdict {
	best, bestCnt, tie := domain.VerdictMaybe, 0, false
	for _, v := range []domain.Verdict{domain.VerdictPass, domain.VerdictFail, domain.VerdictMaybe} {
		cnt := counts[v]
		switch {
		case cnt > bestCnt:
			best, bestCnt, tie = v, cnt, false
		case cnt == bestCnt && cnt > 0:
			tie = true
		}
	}
	if tie {
		return domain.VerdictMaybe
	}
	return best
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
