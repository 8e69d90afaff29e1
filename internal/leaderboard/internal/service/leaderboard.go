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
	"context"

	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/repository"
)

const (
	DefaultLimit = 10
	MaxLimit     = repository.CachedSize
)

//go:generate mockgen -source=./leaderboard.go -destination=../../mocks/leaderboard.mock.go -package=leaderboardmocks Service
type Service interface {
	// Save 吐槽记录写入排行榜，重复写入会覆盖
	Save(ctx context.Context, e domain.Entry) error
	// List 按总分倒序，同分的按时间倒序
	List(ctx context.Context, w domain.Window, limit int) ([]domain.Entry, error)
}

type service struct {
	repo repository.LeaderboardRepository
}

func NewService(repo repository.LeaderboardRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, e domain.Entry) error {
	e.TotalScore = e.Scores.Total()
	return s.repo.Save(ctx, e)
}

func (s *service) List(ctx context.Context, w domain.Window, limit int) ([]domain.Entry, error) {
	return s.repo.Top(ctx, domain.ParseWindow(w.String()), NormalizeLimit(limit))
}

// NormalizeLimit 小于等于 0 用默认值，超过上限截断
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
