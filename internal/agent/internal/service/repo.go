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
	"fmt"
	"regexp"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/roastmyidea/internal/agent/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	readmeLimit    = 2000
	commitsPerPage = 10
	commitsKept    = 5
	branchesLimit  = 5
)

var githubRepoPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/?#]+)`)

// RepoReviewer 通过 GitHub API 汇总仓库信息
type RepoReviewer struct {
	gh     *GitHubClient
	logger *elog.Component
}

func NewRepoReviewer(gh *GitHubClient) *RepoReviewer {
	return &RepoReviewer{
		gh:     gh,
		logger: elog.DefaultLogger,
	}
}

// Review 仓库信息必须拿到，其余的部分拿不到就留空
func (r *RepoReviewer) Review(ctx context.Context, repoURL string) (domain.RepoAnalysis, error) {
	owner, repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return domain.RepoAnalysis{}, err
	}
	var (
		meta      ghRepo
		readme    string
		languages map[string]int64
		commits   []ghCommit
		branches  []ghBranch
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var er error
		meta, er = r.gh.Repo(ctx, owner, repo)
		return er
	})
	eg.Go(func() error {
		var er error
		readme, er = r.gh.Readme(ctx, owner, repo)
		r.warn("readme", owner, repo, er)
		return nil
	})
	eg.Go(func() error {
		var er error
		languages, er = r.gh.Languages(ctx, owner, repo)
		r.warn("languages", owner, repo, er)
		return nil
	})
	eg.Go(func() error {
		var er error
		commits, er = r.gh.Commits(ctx, owner, repo, commitsPerPage)
		r.warn("commits", owner, repo, er)
		return nil
	})
	eg.Go(func() error {
		var er error
		branches, er = r.gh.Branches(ctx, owner, repo, branchesLimit)
		r.warn("branches", owner, repo, er)
		return nil
	})
	if err = eg.Wait(); err != nil {
		return domain.RepoAnalysis{}, err
	}
	if len(commits) > commitsKept {
		commits = commits[:commitsKept]
	}
	if languages == nil {
		languages = map[string]int64{}
	}
	return domain.RepoAnalysis{
		Name:            meta.Name,
		Description:     deref(meta.Description, "No description provided"),
		Stars:           meta.StargazersCount,
		Forks:           meta.ForksCount,
		Watchers:        meta.WatchersCount,
		OpenIssues:      meta.OpenIssuesCount,
		Readme:          domain.Prefix(readme, readmeLimit),
		Languages:       languages,
		PrimaryLanguage: deref(meta.Language, "Unknown"),
		HasWiki:         meta.HasWiki,
		HasPages:        meta.HasPages,
		Branches: slice.Map(branches, func(idx int, src ghBranch) string {
			return src.Name
		}),
		RecentCommits: slice.Map(commits, func(idx int, src ghCommit) domain.Commit {
			c := domain.Commit{
				Message: src.Commit.Message,
				Author:  "Unknown",
				Hash:    domain.Prefix(src.SHA, 7),
			}
			if src.Commit.Author != nil {
				c.Author = orDefault(src.Commit.Author.Name, "Unknown")
				c.Date = src.Commit.Author.Date
			}
			return c
		}),
		License:       licenseName(meta.License),
		DefaultBranch: meta.DefaultBranch,
		CreatedAt:     meta.CreatedAt,
		UpdatedAt:     meta.UpdatedAt,
		Size:          meta.Size,
	}, nil
}

// ParseRepoURL 只支持 github.com/<owner>/<repo>
func ParseRepoURL(repoURL string) (string, string, error) {
	repoURL = strings.TrimSpace(repoURL)
	if repoURL == "" {
		return "", "", fmt.Errorf("%w: Repository URL is required", ErrInvalidInput)
	}
	m := githubRepoPattern.FindStringSubmatch(repoURL)
	if m == nil {
		return "", "", fmt.Errorf("%w: Invalid GitHub URL. Only GitHub repositories are supported.", ErrInvalidInput)
	}
	repo := strings.TrimSuffix(m[2], ".git")
	if repo == "" {
		return "", "", fmt.Errorf("%w: Invalid GitHub URL. Only GitHub repositories are supported.", ErrInvalidInput)
	}
	return m[1], repo, nil
}

func (r *RepoReviewer) warn(part, owner, repo string, err error) {
	if err == nil {
		return
	}
	r.logger.Warn("获取仓库信息失败，忽略",
		elog.String("part", part),
		elog.String("repo", owner+"/"+repo),
		elog.FieldErr(err))
}

func licenseName(l *ghLicense) string {
	if l == nil || l.Name == "" {
		return "No license"
	}
	return l.Name
}

func deref(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
