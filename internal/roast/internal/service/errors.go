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
	"errors"

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository"
)

var (
	ErrEmptyProjectName = errors.New("项目名称不能为空")
	ErrEmptyIdea        = errors.New("创意内容不能为空")
	ErrIdeaTooLong      = errors.New("创意内容过长")
	ErrInvalidTone      = errors.New("语气参数超出范围")
	ErrUnsafeContent    = errors.New("内容审核未通过")

	ErrQuotaExceeded    = errors.New("模型配额不足")
	ErrAuthFailed       = errors.New("模型鉴权失败")
	ErrTimeout          = errors.New("模型生成超时")
	ErrProvider         = errors.New("模型调用失败")
	ErrParseFail        = errors.New("模型输出不是合法的 JSON")
	ErrInvalidStructure = errors.New("模型输出结构不合法")

	ErrNoJudges      = errors.New("没有任何评委结果")
	ErrRoastNotFound = repository.ErrRoastNotFound
)
