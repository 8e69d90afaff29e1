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
	"time"
)

// Window 按创建时间过滤的范围
type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
)

// ParseWindow 不认识的值都当成 all
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowToday:
		return WindowToday
	case WindowWeek:
		return WindowWeek
	default:
		return WindowAll
	}
}

// Since 返回窗口的起点，all 返回零值
func (w Window) Since(now time.Time) time.Time {
	switch w {
	case WindowToday:
		return now.Add(-24 * time.Hour)
	case WindowWeek:
		return now.Add(-7 * 24 * time.Hour)
	default:
		return time.Time{}
	}
}

func (w Window) String() string {
	return string(w)
}

type Scores struct {
	Originality     float64
	Feasibility     float64
	WowFactor       float64
	MarketPotential float64
}

// Total 四项之和，保留一位小数
func (s Scores) Total() float64 {
	sum := s.Originality + s.Feasibility + s.WowFactor + s.MarketPotential
	return math.Round(sum*10) / 10
}

type Entry struct {
	Id          int64
	RoastSN     string
	ProjectName string
	Idea        string
	Scores      Scores
	TotalScore  float64
	Verdict     string
	Ctime       time.Time
}
