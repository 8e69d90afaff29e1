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
	"strings"
)

type Framework string

const (
	FrameworkReact   Framework = "React/Next.js"
	FrameworkVue     Framework = "Vue.js"
	FrameworkAngular Framework = "Angular"
	FrameworkUnknown Framework = "Unknown or Vanilla"
)

type AppFeatures struct {
	Login         bool
	Signup        bool
	Dashboard     bool
	API           bool
	ServiceWorker bool
	Analytics     bool
}

// AppAnalysis 对网页首页做的静态分析
type AppAnalysis struct {
	URL         string
	Status      int
	Headers     map[string]string
	Title       string
	Description string
	HasReact    bool
	HasVue      bool
	HasAngular  bool
	Features    AppFeatures
	HTTPS       bool
	// HTMLSize 字节数
	HTMLSize int
}

func (a AppAnalysis) Framework() Framework {
	switch {
	case a.HasReact:
		return FrameworkReact
	case a.HasVue:
		return FrameworkVue
	case a.HasAngular:
		return FrameworkAngular
	default:
		return FrameworkUnknown
	}
}

// Summary 给评委看的文本
func (a AppAnalysis) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Web App: %s\n", a.Title)
	fmt.Fprintf(&sb, "URL: %s\n", a.URL)
	fmt.Fprintf(&sb, "Status: %s\n", pick(a.HTTPS, "HTTPS", "HTTP"))
	fmt.Fprintf(&sb, "Description: %s\n\n", a.Description)
	fmt.Fprintf(&sb, "Framework Detected: %s\n\n", a.Framework())
	sb.WriteString("Features Detected:\n")
	sb.WriteString(check(a.Features.Login, "Login functionality", "No login detected"))
	sb.WriteString(check(a.Features.Signup, "Sign up functionality", "No signup detected"))
	sb.WriteString(check(a.Features.Dashboard, "Dashboard/Admin panel", "No dashboard detected"))
	sb.WriteString(check(a.Features.API, "API endpoints", "No API detected"))
	sb.WriteString(check(a.Features.ServiceWorker, "Progressive Web App (PWA)", "Not a PWA"))
	sb.WriteString(check(a.Features.Analytics, "Analytics tracking", "No analytics"))
	sb.WriteString("\nPerformance:\n")
	fmt.Fprintf(&sb, "Page Size: %.2f KB\n", float64(a.HTMLSize)/1024)
	fmt.Fprintf(&sb, "Security: %s\n", pick(a.HTTPS, "HTTPS enabled ✓", "HTTP only (not secure) ✗"))
	return sb.String()
}

func check(ok bool, yes, no string) string {
	if ok {
		return "✓ " + yes + "\n"
	}
	return "✗ " + no + "\n"
}

func pick(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
