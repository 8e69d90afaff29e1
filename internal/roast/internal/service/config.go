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

import "time"

const (
	defaultGenerateTimeout = 30 * time.Second
	defaultMaxIdeaLength   = 5000
)

// Config 对应配置里面的 roast 节点
type Config struct {
	// 是否启用多评委
	MultiJudge bool `yaml:"multiJudge"`
	// 多评委模式下参与的评委，为空就是全部
	Judges []string `yaml:"judges"`
	// 单评委模式下，请求没有指定或者指定了不存在的评委时使用
	DefaultJudge    string        `yaml:"defaultJudge"`
	GenerateTimeout time.Duration `yaml:"generateTimeout"`
	// 按照字符数计算
	MaxIdeaLength int `yaml:"maxIdeaLength"`
}

// WithDefaults 补全没有配置的字段
func (c Config) WithDefaults() Config {
	if c.GenerateTimeout <= 0 {
		c.GenerateTimeout = defaultGenerateTimeout
	}
	if c.MaxIdeaLength <= 0 {
		c.MaxIdeaLength = defaultMaxIdeaLength
	}
	return c
}
