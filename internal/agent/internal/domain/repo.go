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

package domain

import (
	"fmt"
	"sort"
	"strings"
)

type Commit struct {
	Message string
	Author  string
	Date    string
	// Hash 前 7 位
	Hash string
}

// RepoAnalysis GitHub 仓库的概况
type RepoAnalysis struct {
	Name            string
	Description     string
	Stars           int64
	Forks           int64
	Watchers        int64
	OpenIssues      int64
	Readme          string
	Languages       map[string]int64
	PrimaryLanguage string
	HasWiki         bool
	HasPages        bool
	Branches        []string
	RecentCommits   []Commit
	License         string
	DefaultBranch   string
	CreatedAt       string
	UpdatedAt       string
	Size            int64
}

// LanguageNames 按代码量从多到少
func (r RepoAnalysis) LanguageNames() []string {
	names := make([]string, 0, len(r.Languages))
	for name := range r.Languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := r.Languages[names[i]], r.Languages[names[j]]
		if li != lj {
			return li > lj
		}
		return names[i] < names[j]
	})
	return names
}

func (r RepoAnalysis) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Repository: %s\n", r.Name)
	fmt.Fprintf(&sb, "Description: %s\n", r.Description)
	fmt.Fprintf(&sb, "Stars: %d | Forks: %d\n", r.Stars, r.Forks)
	fmt.Fprintf(&sb, "Primary Language: %s\n", r.PrimaryLanguage)
	fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(r.LanguageNames(), ", "))
	fmt.Fprintf(&sb, "Recent Activity: %d commits\n", len(r.RecentCommits))
	fmt.Fprintf(&sb, "License: %s\n", r.License)
	fmt.Fprintf(&sb, "README Preview: %s...\n", Prefix(r.Readme, 500))
	return sb.String()
}

// Prefix 按字符截断，不会截出半个 UTF-8 字符
func Prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
