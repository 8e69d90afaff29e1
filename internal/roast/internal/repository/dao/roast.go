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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type RoastDAO interface {
	Create(ctx context.Context, r Roast) (Roast, error)
	FindBySN(ctx context.Context, sn string) (Roast, error)
	// SaveFiles 记录文件，并且回填 roasts.processed_files
	SaveFiles(ctx context.Context, sn string, files []RoastFile) error
}

type GORMRoastDAO struct {
	db *egorm.Component
}

func NewGORMRoastDAO(db *egorm.Component) RoastDAO {
	return &GORMRoastDAO{db: db}
}

func (g *GORMRoastDAO) Create(ctx context.Context, r Roast) (Roast, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := g.db.WithContext(ctx).Create(&r).Error
	return r, err
}

func (g *GORMRoastDAO) FindBySN(ctx context.Context, sn string) (Roast, error) {
	var r Roast
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&r).Error
	return r, err
}

func (g *GORMRoastDAO) SaveFiles(ctx context.Context, sn string, files []RoastFile) error {
	now := time.Now().UnixMilli()
	processed := make([]ProcessedFile, 0, len(files))
	for i := range files {
		files[i].RoastSN = sn
		files[i].Ctime = now
		processed = append(processed, ProcessedFile{Type: files[i].FileType, URL: files[i].FileURL})
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&files).Error
		if err != nil {
			return err
		}
		return tx.Model(&Roast{}).Where("sn = ?", sn).Updates(map[string]any{
			"processed_files": sqlx.JsonColumn[[]ProcessedFile]{Val: processed, Valid: true},
			"utime":           now,
		}).Error
	})
}

type Roast struct {
	Id             int64                            `gorm:"primaryKey;autoIncrement"`
	SN             string                           `gorm:"type:varchar(64);not null;uniqueIndex:unq_sn;comment:对外暴露的ID"`
	Uid            sql.NullString                   `gorm:"type:varchar(256);index:idx_uid;comment:用户ID，匿名为空"`
	ProjectName    string                           `gorm:"type:varchar(512);not null"`
	IdeaText       string                           `gorm:"type:text;not null"`
	ToneHumor      float64                          `gorm:"not null;default:0"`
	ToneSarcasm    float64                          `gorm:"not null;default:0"`
	JudgesData     sqlx.JsonColumn[[]JudgeData]     `gorm:"type:json;comment:每个评委的结果"`
	FinalVerdict   string                           `gorm:"type:varchar(16);not null"`
	Scores         sqlx.JsonColumn[Scores]          `gorm:"type:json;comment:聚合之后的分数"`
	ErrorLog       sqlx.JsonColumn[map[string]any]  `gorm:"type:json"`
	ProcessedFiles sqlx.JsonColumn[[]ProcessedFile] `gorm:"type:json;comment:上传的文件"`
	Ctime          int64                            `gorm:"index:idx_ctime"`
	Utime          int64
}

func (Roast) TableName() string {
	return "roasts"
}

type Scores struct {
	Originality     float64 `json:"originality"`
	Feasibility     float64 `json:"feasibility"`
	WowFactor       float64 `json:"wow_factor"`
	MarketPotential float64 `json:"market_potential"`
}

type JudgeData struct {
	Name     string `json:"name"`
	Scores   Scores `json:"scores"`
	Roast    string `json:"roast"`
	Feedback string `json:"feedback"`
	Verdict  string `json:"verdict"`
}

type ProcessedFile struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type RoastFile struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	RoastSN  string `gorm:"type:varchar(64);not null;index:idx_roast_sn"`
	FileType string `gorm:"type:varchar(32);not null;comment:pitch_deck 或者 image"`
	FileURL  string `gorm:"type:varchar(1024);not null"`
	Ctime    int64
}

func (RoastFile) TableName() string {
	return "roast_files"
}
