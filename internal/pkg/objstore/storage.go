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

package objstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrNotConfigured = errors.New("对象存储未配置")

//go:generate mockgen -source=./storage.go -package=objstoremocks -destination=mocks/storage.mock.go Storage
type Storage interface {
	// Put 上传成功之后返回公开访问的 URL
	Put(ctx context.Context, path string, contentType string, data []byte) (string, error)
}

type Config struct {
	// Supabase 项目地址，例如 https://xxx.supabase.co
	URL        string        `yaml:"url"`
	ServiceKey string        `yaml:"serviceKey"`
	Bucket     string        `yaml:"bucket"`
	Timeout    time.Duration `yaml:"timeout"`
}

// SupabaseStorage 通过 Supabase Storage 的 REST 接口上传文件
type SupabaseStorage struct {
	client *resty.Client
	base   string
	bucket string
}

func NewSupabaseStorage(cfg Config) *SupabaseStorage {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "roast-files"
	}
	base := strings.TrimRight(cfg.URL, "/")
	client := resty.New().
		SetBaseURL(base).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.ServiceKey).
		SetHeader("apikey", cfg.ServiceKey)
	return &SupabaseStorage{
		client: client,
		base:   base,
		bucket: cfg.Bucket,
	}
}

func (s *SupabaseStorage) Put(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	if s.base == "" {
		return "", ErrNotConfigured
	}
	objPath := s.bucket + "/" + escapePath(path)
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("Cache-Control", "3600").
		SetHeader("x-upsert", "false").
		SetBody(data).
		Post("/storage/v1/object/" + objPath)
	if err != nil {
		return "", fmt.Errorf("上传对象 %s 失败: %w", path, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("上传对象 %s 失败: status=%d body=%s", path, resp.StatusCode(), resp.String())
	}
	return s.base + "/storage/v1/object/public/" + objPath, nil
}

func escapePath(path string) string {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.Join(segs, "/")
}
