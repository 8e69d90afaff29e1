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

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/roastmyidea/internal/voice/internal/errs"
	"github.com/ecodeclub/roastmyidea/internal/voice/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/voice", ginx.B[SynthesizeReq](h.Synthesize))
}

// Synthesize 成功的时候直接返回音频
func (h *Handler) Synthesize(ctx *ginx.Context, req SynthesizeReq) (ginx.Result, error) {
	audio, err := h.svc.Synthesize(ctx, req.Text, req.JudgeName)
	if err != nil {
		code := toErrorCode(err)
		if code.Status >= http.StatusInternalServerError {
			h.logger.Error("语音合成失败",
				elog.String("judge", req.JudgeName),
				elog.FieldErr(err))
		}
		ctx.JSON(code.Status, ginx.Result{Code: code.Code, Msg: code.Msg})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	ctx.Data(http.StatusOK, "audio/mpeg", audio)
	return ginx.Result{}, ginx.ErrNoResponse
}

func toErrorCode(err error) errs.ErrorCode {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return errs.InvalidInput
	case errors.Is(err, service.ErrVoiceNotConfigured):
		return errs.NotConfigured
	default:
		return errs.SynthesisFailed
	}
}
