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

package event

import (
	"time"

	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/domain"
)

const roastCreatedTopic = "roast_created_events"

type RoastCreatedEvent struct {
	SN              string  `json:"sn"`
	ProjectName     string  `json:"projectName"`
	Idea            string  `json:"idea"`
	Originality     float64 `json:"originality"`
	Feasibility     float64 `json:"feasibility"`
	WowFactor       float64 `json:"wowFactor"`
	MarketPotential float64 `json:"marketPotential"`
	Verdict         string  `json:"verdict"`
	Ctime           int64   `json:"ctime"`
}

func (e RoastCreatedEvent) toDomain() domain.Entry {
	var ctime time.Time
	if e.Ctime > 0 {
		ctime = time.UnixMilli(e.Ctime)
	}
	return domain.Entry{
		RoastSN:     e.SN,
		ProjectName: e.ProjectName,
		Idea:        e.Idea,
		Scores: domain.Scores{
			Originality:     e.Originality,
			Feasibility:     e.Feasibility,
			WowFactor:       e.WowFactor,
			MarketPotential: e.MarketPotential,
		},
		Verdict: e.Verdict,
		Ctime:   ctime,
	}
}
