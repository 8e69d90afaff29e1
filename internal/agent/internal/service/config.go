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
	"errors"
	"fmt"
	"net"
	"time"
)

var (
	ErrInvalidInput = errors.New("参数不合法")
	ErrNotFound     = errors.New("目标不存在或者无权访问")
	ErrTimeout      = errors.New("请求超时")
	ErrFetchFailed  = errors.New("抓取失败")
)

const userAgent = "RoastMyIdea-Bot/1.0"

type Config struct {
	Timeout time.Duration `yaml:"timeout"`
	// GitHubToken 为空的时候只能访问公开仓库，而且限流更严格
	GitHubToken   string `yaml:"githubToken"`
	GitHubBaseURL string `yaml:"githubBaseURL"`
	// MaxPageSize 网页最多读取的字节数，超出部分直接丢弃
	MaxPageSize int64 `yaml:"maxPageSize"`
}

func (c Config) WithDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.GitHubBaseURL == "" {
		c.GitHubBaseURL = "https://api.github.com"
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 2 << 20
	}
	return c
}

// classifyError 把网络错误归类成超时或者抓取失败
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrFetchFailed, err)
}

func statusError(status int, body string) error {
	if status == 404 {
		return fmt.Errorf("%w: status=%d", ErrNotFound, status)
	}
	return fmt.Errorf("%w: status=%d body=%s", ErrFetchFailed, status, body)
}
