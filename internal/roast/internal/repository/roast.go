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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrRoastNotFound = errors.New("吐槽记录不存在")

//go:generate mockgen -source=./roast.go -package=repomocks -destination=mocks/roast.mock.go RoastRepository
type RoastRepository interface {
	Create(ctx context.Context, r domain.Roast) (domain.Roast, error)
	FindBySN(ctx context.Context, sn string) (domain.Roast, error)
	SaveFiles(ctx context.Context, sn string, files []domain.RoastFile) error
}

type roastRepository struct {
	dao dao.RoastDAO
}

func NewRoastRepository(d dao.RoastDAO) RoastRepository {
	return &roastRepository{dao: d}
}

func (r *roastRepository) Create(ctx context.Context, roast domain.Roast) (domain.Roast, error) {
	entity, err := r.dao.Create(ctx, r.toEntity(roast))
	if err != nil {
		return domain.Roast{}, err
	}
	return r.toDomain(entity), nil
}

func (r *roastRepository) FindBySN(ctx context.Context, sn string) (domain.Roast, error) {
	entity, err := r.dao.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Roast{}, ErrRoastNotFound
	}
	if err != nil {
		return domain.Roast{}, err
	}
	return r.toDomain(entity), nil
}

func (r *roastRepository) SaveFiles(ctx context.Context, sn string, files []domain.RoastFile) error {
	return r.dao.SaveFiles(ctx, sn, slice.Map(files, func(idx int, src domain.RoastFile) dao.RoastFile {
		return dao.RoastFile{
			FileType: string(src.Type),
			FileURL:  src.URL,
		}
	}))
}

func (r *roastRepository) toEntity(roast domain.Roast) dao.Roast {
	return dao.Roast{
		Id:          roast.Id,
		SN:          roast.SN,
		Uid:         sqlx.NewNullString(roast.Uid),
		ProjectName: roast.ProjectName,
		IdeaText:    roast.Idea,
		ToneHumor:   roast.Tone.Humor,
		ToneSarcasm: roast.Tone.Sarcasm,
		JudgesData: sqlx.JsonColumn[[]dao.JudgeData]{
			Valid: true,
			Val: slice.Map(roast.Judges, func(idx int, src domain.JudgeEntry) dao.JudgeData {
				return dao.JudgeData{
					Name:     src.Name,
					Scores:   toScoresEntity(src.Response.Scores),
					Roast:    src.Response.Roast,
					Feedback: src.Response.Feedback,
					Verdict:  src.Response.Verdict.String(),
				}
			}),
		},
		FinalVerdict: roast.FinalVerdict.String(),
		Scores: sqlx.JsonColumn[dao.Scores]{
			Valid: true,
			Val:   toScoresEntity(roast.AggregatedScores),
		},
		ErrorLog: sqlx.JsonColumn[map[string]any]{
			Valid: len(roast.ErrorLog) > 0,
			Val:   roast.ErrorLog,
		},
		ProcessedFiles: sqlx.JsonColumn[[]dao.ProcessedFile]{
			Valid: len(roast.ProcessedFiles) > 0,
			Val: slice.Map(roast.ProcessedFiles, func(idx int, src domain.RoastFile) dao.ProcessedFile {
				return dao.ProcessedFile{Type: string(src.Type), URL: src.URL}
			}),
		},
	}
}

func (r *roastRepository) toDomain(entity dao.Roast) domain.Roast {
	return domain.Roast{
		Id:          entity.Id,
		SN:          entity.SN,
		Uid:         entity.Uid.String,
		ProjectName: entity.ProjectName,
		Idea:        entity.IdeaText,
		Tone: domain.Tone{
			Humor:   entity.ToneHumor,
			Sarcasm: entity.ToneSarcasm,
		},
		AggregateResult: domain.AggregateResult{
			Judges: slice.Map(entity.JudgesData.Val, func(idx int, src dao.JudgeData) domain.JudgeEntry {
				return domain.JudgeEntry{
					Name: src.Name,
					Response: domain.JudgeResult{
						Scores:   toScoresDomain(src.Scores),
						Roast:    src.Roast,
						Feedback: src.Feedback,
						Verdict:  domain.Verdict(src.Verdict),
					},
				}
			}),
			AggregatedScores: toScoresDomain(entity.Scores.Val),
			FinalVerdict:     domain.Verdict(entity.FinalVerdict),
		},
		ErrorLog: entity.ErrorLog.Val,
		ProcessedFiles: slice.Map(entity.ProcessedFiles.Val, func(idx int, src dao.ProcessedFile) domain.RoastFile {
			return domain.RoastFile{Type: domain.FileType(src.Type), URL: src.URL}
		}),
		Ctime: time.UnixMilli(entity.Ctime),
		Utime: time.UnixMilli(entity.Utime),
	}
}

func toScoresEntity(s domain.Scores) dao.Scores {
	return dao.Scores{
		Originality:     s.Originality,
		Feasibility:     s.Feasibility,
		WowFactor:       s.WowFactor,
		MarketPotential: s.MarketPotential,
	}
}

func toScoresDomain(s dao.Scores) domain.Scores {
	return domain.Scores{
		Originality:     s.Originality,
		Feasibility:     s.Feasibility,
		WowFactor:       s.WowFactor,
		MarketPotential: s.MarketPotential,
	}
}
