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
	"io"
	"net/url"
	"strings"

	"github.com/ecodeclub/roastmyidea/internal/agent/internal/domain"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

// AppReviewer 抓取网页首页并且做静态分析
type AppReviewer struct {
	client      *resty.Client
	maxPageSize int64
}

func NewAppReviewer(cfg Config) *AppReviewer {
	cfg = cfg.WithDefaults()
	return &AppReviewer{
		client: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("User-Agent", userAgent),
		maxPageSize: cfg.MaxPageSize,
	}
}

func (a *AppReviewer) Review(ctx context.Context, rawURL string) (domain.AppAnalysis, error) {
	u, err := parseAppURL(rawURL)
	if err != nil {
		return domain.AppAnalysis{}, err
	}
	// 自己读 body，避免超大的页面全部读进内存
	resp, err := a.client.R().SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		return domain.AppAnalysis{}, classifyError(err)
	}
	body := resp.RawBody()
	defer body.Close()
	if resp.IsError() {
		return domain.AppAnalysis{}, statusError(resp.StatusCode(), "")
	}
	data, err := io.ReadAll(io.LimitReader(body, a.maxPageSize))
	if err != nil {
		return domain.AppAnalysis{}, classifyError(err)
	}
	page := string(data)
	title, desc := extractMeta(page)
	lower := strings.ToLower(page)
	headers := make(map[string]string, len(resp.Header()))
	for k := range resp.Header() {
		headers[strings.ToLower(k)] = resp.Header().Get(k)
	}
	return domain.AppAnalysis{
		URL:         rawURL,
		Status:      resp.StatusCode(),
		Headers:     headers,
		Title:       title,
		Description: desc,
		HasReact:    strings.Contains(page, "react") || strings.Contains(page, "__NEXT_DATA__"),
		HasVue:      strings.Contains(page, "vue") || strings.Contains(page, "data-v-"),
		HasAngular:  strings.Contains(page, "ng-") || strings.Contains(page, "angular"),
		Features: domain.AppFeatures{
			Login:         containsAny(lower, "login", "sign in"),
			Signup:        containsAny(lower, "signup", "sign up", "register"),
			Dashboard:     strings.Contains(lower, "dashboard"),
			API:           strings.Contains(lower, "api"),
			ServiceWorker: containsAny(page, "serviceWorker", "sw.js"),
			Analytics:     containsAny(page, "analytics", "gtag", "plausible"),
		},
		HTTPS:    u.Scheme == "https",
		HTMLSize: len(page),
	}, nil
}

func parseAppURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: App URL is required", ErrInvalidInput)
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: Invalid URL format", ErrInvalidInput)
	}
	return u, nil
}

// extractMeta 取 title 和 meta description，取不到用默认文案
func extractMeta(page string) (string, string) {
	title, desc := "", ""
	z := html.NewTokenizer(strings.NewReader(page))
	inTitle := false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return orDefault(title, "No title"), orDefault(desc, "No description")
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "title":
				inTitle = title == ""
			case "meta":
				if desc == "" && strings.EqualFold(attr(tok, "name"), "description") {
					desc = strings.TrimSpace(attr(tok, "content"))
				}
			}
		case html.TextToken:
			if inTitle {
				title = strings.TrimSpace(string(z.Text()))
				inTitle = false
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
