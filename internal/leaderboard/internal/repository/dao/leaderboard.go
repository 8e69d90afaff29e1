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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./leaderboard.go -package=daomocks -destination=./mocks/leaderboard.mock.go LeaderboardDAO
type LeaderboardDAO interface {
	// Upsert 按照 roast_sn 去重
	Upsert(ctx context.Context, e Entry) error
	// Top since 为 0 表示不限制时间
	Top(ctx context.Context, since int64, limit int) ([]Entry, error)
}

type GORMLeaderboardDAO struct {
	db *egorm.Component
}

func NewGORMLeaderboardDAO(db *egorm.Component) LeaderboardDAO {
	return &GORMLeaderboardDAO{db: db}
}

func (g *GORMLeaderboardDAO) Upsert(ctx context.Context, e Entry) error {
	now := time.Now().UnixMilli()
	if e.Ctime == 0 {
		e.Ctime = now
	}
	e.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"project_name", "idea_text",
			"originality", "feasibility", "wow_factor", "market_potential",
			"total_score", "verdict", "utime",
		}),
	}).Create(&e).Error
}

func (g *GORMLeaderboardDAO) Top(ctx context.Context, since int64, limit int) ([]Entry, error) {
	var res []Entry
	db := g.db.WithContext(ctx).Model(&Entry{})
	if since > 0 {
		db = db.Where("ctime >= ?", since)
	}
	err := db.Order("total_score DESC, ctime DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

type Entry struct {
	Id              int64   `gorm:"primaryKey;autoIncrement"`
	RoastSN         string  `gorm:"type:varchar(64);not null;uniqueIndex:unq_roast_sn"`
	ProjectName     string  `gorm:"type:varchar(512);not null"`
	IdeaText        string  `gorm:"type:text;not null"`
	Originality     float64 `gorm:"not null"`
	Feasibility     float64 `gorm:"not null"`
	WowFactor       float64 `gorm:"not null"`
	MarketPotential float64 `gorm:"not null"`
	TotalScore      float64 `gorm:"not null;index:idx_score_ctime,priority:1;comment:四项分数之和"`
	Verdict         string  `gorm:"type:varchar(16);not null"`
	Ctime           int64   `gorm:"index:idx_score_ctime,priority:2;index:idx_ctime;comment:吐槽记录的创建时间"`
	Utime           int64
}

func (Entry) TableName() string {
	return "leaderboard_entries"
}
