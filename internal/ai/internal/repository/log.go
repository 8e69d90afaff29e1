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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/repository/dao"
)

type LLMLogRepo interface {
	SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error)
}

// 调用日志
type llmLogRepo struct {
	logDao dao.LLMRecordDAO
}

func NewLLMLogRepo(logDao dao.LLMRecordDAO) LLMLogRepo {
	return &llmLogRepo{
		logDao: logDao,
	}
}

func (g *llmLogRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	return g.logDao.Save(ctx, g.toEntity(l))
}

func (g *llmLogRepo) toEntity(r domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:       r.Id,
		Tid:      r.Tid,
		Uid:      sqlx.NewNullString(r.Uid),
		Biz:      r.Biz,
		Platform: r.Platform,
		Tokens:   r.Tokens,
		Status:   r.Status.ToUint8(),
		Prompt:   sqlx.NewNullString(r.Prompt),
		Answer:   sqlx.NewNullString(r.Answer),
	}
}
