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
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

type ghRepo struct {
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	StargazersCount int64      `json:"stargazers_count"`
	ForksCount      int64      `json:"forks_count"`
	WatchersCount   int64      `json:"watchers_count"`
	OpenIssuesCount int64      `json:"open_issues_count"`
	Language        *string    `json:"language"`
	HasWiki         bool       `json:"has_wiki"`
	HasPages        bool       `json:"has_pages"`
	License         *ghLicense `json:"license"`
	DefaultBranch   string     `json:"default_branch"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
	Size            int64      `json:"size"`
}

type ghLicense struct {
	Name string `json:"name"`
}

type ghReadme struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type ghCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  *struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

type ghBranch struct {
	Name string `json:"name"`
}

// GitHubClient GitHub REST API 的最小封装
type GitHubClient struct {
	client *resty.Client
}

func NewGitHubClient(cfg Config) *GitHubClient {
	cfg = cfg.WithDefaults()
	client := resty.New().
		SetBaseURL(cfg.GitHubBaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", "2022-11-28").
		SetHeader("User-Agent", userAgent)
	if cfg.GitHubToken != "" {
		client.SetAuthToken(cfg.GitHubToken)
	}
	return &GitHubClient{client: client}
}

func (g *GitHubClient) Repo(ctx context.Context, owner, repo string) (ghRepo, error) {
	var res ghRepo
	err := g.get(ctx, "/repos/{owner}/{repo}", owner, repo, nil, &res)
	return res, err
}

// Readme 返回解码之后的内容
func (g *GitHubClient) Readme(ctx context.Context, owner, repo string) (string, error) {
	var res ghReadme
	err := g.get(ctx, "/repos/{owner}/{repo}/readme", owner, repo, nil, &res)
	if err != nil {
		return "", err
	}
	if res.Encoding != "base64" {
		return res.Content, nil
	}
	// GitHub 返回的 base64 每 60 个字符带一个换行
	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(res.Content, "\n", ""))
	if err != nil {
		return "", classifyError(err)
	}
	return string(data), nil
}

func (g *GitHubClient) Languages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	res := map[string]int64{}
	err := g.get(ctx, "/repos/{owner}/{repo}/languages", owner, repo, nil, &res)
	return res, err
}

func (g *GitHubClient) Commits(ctx context.Context, owner, repo string, perPage int) ([]ghCommit, error) {
	var res []ghCommit
	err := g.get(ctx, "/repos/{owner}/{repo}/commits", owner, repo, perPageQuery(perPage), &res)
	return res, err
}

func (g *GitHubClient) Branches(ctx context.Context, owner, repo string, perPage int) ([]ghBranch, error) {
	var res []ghBranch
	err := g.get(ctx, "/repos/{owner}/{repo}/branches", owner, repo, perPageQuery(perPage), &res)
	return res, err
}

func (g *GitHubClient) get(ctx context.Context, path, owner, repo string, query map[string]string, res any) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"owner": owner, "repo": repo}).
		SetQueryParams(query).
		SetResult(res).
		Get(path)
	if err != nil {
		return classifyError(err)
	}
	if resp.IsError() {
		return statusError(resp.StatusCode(), resp.String())
	}
	return nil
}

func perPageQuery(perPage int) map[string]string {
	return map[string]string{"per_page": strconv.Itoa(perPage)}
}
