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

	"github.com/ecodeclub/roastmyidea/internal/agent/internal/domain"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/agent.mock.go -package=agentmocks Service
type Service interface {
	ReviewApp(ctx context.Context, appURL string) (domain.AppAnalysis, error)
	ReviewRepo(ctx context.Context, repoURL string) (domain.RepoAnalysis, error)
}

type service struct {
	app  *AppReviewer
	repo *RepoReviewer
}

func NewService(app *AppReviewer, repo *RepoReviewer) Service {
	return &service{app: app, repo: repo}
}

func (s *service) ReviewApp(ctx context.Context, appURL string) (domain.AppAnalysis, error) {
	return s.app.Review(ctx, appURL)
}

func (s *service) ReviewRepo(ctx context.Context, repoURL string) (domain.RepoAnalysis, error) {
	return s.repo.Review(ctx, repoURL)
}
