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

package web

type ReviewAppReq struct {
	AppURL string `json:"appUrl"`
}

type ReviewRepoReq struct {
	RepoURL string `json:"repoUrl"`
}

type ReviewAppResp struct {
	Success  bool        `json:"success"`
	Analysis AppAnalysis `json:"analysis"`
	Summary  string      `json:"summary"`
}

type ReviewRepoResp struct {
	Success  bool         `json:"success"`
	Analysis RepoAnalysis `json:"analysis"`
	Summary  string       `json:"summary"`
}

type AppFeatures struct {
	HasLogin         bool `json:"hasLogin"`
	HasSignup        bool `json:"hasSignup"`
	HasDashboard     bool `json:"hasDashboard"`
	HasAPI           bool `json:"hasAPI"`
	HasServiceWorker bool `json:"hasServiceWorker"`
	HasAnalytics     bool `json:"hasAnalytics"`
}

type AppAnalysis struct {
	URL         string            `json:"url"`
	Status      int               `json:"status"`
	Headers     map[string]string `json:"headers"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	HasReact    bool              `json:"hasReact"`
	HasVue      bool              `json:"hasVue"`
	HasAngular  bool              `json:"hasAngular"`
	Framework   string            `json:"framework"`
	Features    AppFeatures       `json:"features"`
	IsHTTPS     bool              `json:"isHTTPS"`
	HTMLSize    int               `json:"htmlSize"`
}

type Commit struct {
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Sha     string `json:"sha"`
}

type RepoAnalysis struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Stars           int64            `json:"stars"`
	Forks           int64            `json:"forks"`
	Watchers        int64            `json:"watchers"`
	OpenIssues      int64            `json:"openIssues"`
	Readme          string           `json:"readme"`
	Languages       map[string]int64 `json:"languages"`
	PrimaryLanguage string           `json:"primaryLanguage"`
	HasWiki         bool             `json:"hasWiki"`
	HasPages        bool             `json:"hasPages"`
	Branches        []string         `json:"branches"`
	RecentCommits   []Commit         `json:"recentCommits"`
	License         string           `json:"license"`
	DefaultBranch   string           `json:"defaultBranch"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
	Size            int64            `json:"size"`
}
