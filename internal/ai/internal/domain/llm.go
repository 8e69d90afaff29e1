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

import "errors"

var (
	// ErrQuotaExceeded 平台返回了配额耗尽或者限流
	ErrQuotaExceeded = errors.New("llm 平台配额不足")
	// ErrAuthFailed 平台鉴权失败，一般是 API key 配置错了
	ErrAuthFailed = errors.New("llm 平台鉴权失败")
	// ErrEmptyAnswer 平台正常返回，但是没有任何内容
	ErrEmptyAnswer = errors.New("llm 平台没有返回内容")
)

type LLMRequest struct {
	Biz string
	// 用户 ID，匿名用户为空
	Uid string
	// 请求id
	Tid string
	// 完整的 prompt，由业务方自己拼好
	Prompt string
	// 业务相关的配置
	Config BizConfig
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	// 使用的模型，为空则使用平台默认模型
	Model       string
	Temperature float64
	TopP        float64
	// 系统 Prompt
	SystemPrompt string
	// 要求平台只输出 JSON
	JSONOutput bool
}

type LLMRecord struct {
	Id       int64
	Tid      string
	Uid      string
	Biz      string
	Platform string
	Tokens   int64
	Prompt   string
	Status   RecordStatus
	Answer   string
	Ctime    int64
	Utime    int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
