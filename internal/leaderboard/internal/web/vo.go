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

type LeaderboardResp struct {
	Success     bool    `json:"success"`
	Leaderboard []Entry `json:"leaderboard"`
	Count       int     `json:"count"`
}

type Entry struct {
	Id              int64   `json:"id"`
	RoastId         string  `json:"roastId"`
	ProjectName     string  `json:"projectName"`
	IdeaText        string  `json:"ideaText"`
	TotalScore      float64 `json:"totalScore"`
	Originality     float64 `json:"originality"`
	Feasibility     float64 `json:"feasibility"`
	WowFactor       float64 `json:"wowFactor"`
	MarketPotential float64 `json:"marketPotential"`
	Verdict         string  `json:"verdict"`
	// 毫秒
	CreatedAt int64 `json:"createdAt"`
}
