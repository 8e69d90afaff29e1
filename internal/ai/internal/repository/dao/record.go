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

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type LLMRecordDAO interface {
	Save(ctx context.Context, r LLMRecord) (int64, error)
}

type GORMLLMLogDAO struct {
	db *egorm.Component
}

func NewGORMLLMLogDAO(db *egorm.Component) LLMRecordDAO {
	return &GORMLLMLogDAO{db: db}
}

func (g *GORMLLMLogDAO) Save(ctx context.Context, record LLMRecord) (int64, error) {
	now := time.Now().UnixMilli()
	record.Ctime = now
	record.Utime = now
	err := g.db.WithContext(ctx).Model(&LLMRecord{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tid"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "tokens", "answer", "utime"}),
		}).Create(&record).Error
	return record.Id, err
}

type LLMRecord struct {
	Id       int64          `gorm:"primaryKey;autoIncrement;comment:LLM调用记录自增ID"`
	Tid      string         `gorm:"type:varchar(256);not null;uniqueIndex:unq_tid;comment:一次请求的Tid只能有一次"`
	Uid      sql.NullString `gorm:"type:varchar(256);index:idx_user_id;comment:用户ID，匿名为空"`
	Biz      string         `gorm:"type:varchar(256);not null;comment:业务类型名"`
	Platform string         `gorm:"type:varchar(64);not null;comment:调用的平台"`
	Tokens   int64          `gorm:"type:int;default:0;comment:消耗的token数"`
	Status   uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:调用状态 1=成功, 2=失败"`
	Prompt   sql.NullString `gorm:"type:text;comment:完整的 prompt"`
	Answer   sql.NullString `gorm:"type:text;comment:llm的回答"`
	Ctime    int64
	Utime    int64
}

func (l LLMRecord) TableName() string {
	return "llm_records"
}
