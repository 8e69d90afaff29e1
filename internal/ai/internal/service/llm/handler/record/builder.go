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

package record

import (
	"context"
	"time"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/repository"
	"github.com/ecodeclub/roastmyidea/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

type HandlerBuilder struct {
	repo     repository.LLMLogRepo
	platform string
	logger   *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler(repo repository.LLMLogRepo, platform handler.PlatformHandler) *HandlerBuilder {
	return &HandlerBuilder{
		repo:     repo,
		platform: platform.Name(),
		logger:   elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		log := domain.LLMRecord{
			Tid:      req.Tid,
			Biz:      req.Biz,
			Uid:      req.Uid,
			Platform: h.platform,
			Prompt:   req.Prompt,
			Status:   domain.RecordStatusProcessing,
		}
		defer func() {
			// 调用方的 ctx 可能已经超时了，记录还是要落下去
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second*3)
			defer cancel()
			_, err1 := h.repo.SaveLog(sctx, log)
			if err1 != nil {
				h.logger.Error("保存 LLM 访问记录失败", elog.FieldErr(err1))
			}
		}()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			log.Status = domain.RecordStatusFailed
			return domain.LLMResponse{}, err
		}
		log.Tokens = resp.Tokens
		log.Status = domain.RecordStatusSuccess
		log.Answer = resp.Answer
		return resp, err
	})
}
