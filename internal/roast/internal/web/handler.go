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
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/errs"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc       service.Service
	uploadSvc service.UploadService
	logger    *elog.Component
}

func NewHandler(svc service.Service, uploadSvc service.UploadService) *Handler {
	return &Handler{
		svc:       svc,
		uploadSvc: uploadSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/roast", ginx.W(h.Roast))
	server.GET("/roast/personas", ginx.W(h.Personas))
	server.GET("/roasts/:id", ginx.W(h.Detail))
	server.POST("/upload", ginx.W(h.Upload))
}

// Roast 请求体自己解析，tone 的类型错误要返回 GENERIC，
// projectName 和 idea 类型不对按照空值处理
func (h *Handler) Roast(ctx *ginx.Context) (ginx.Result, error) {
	var req RoastReq
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil {
		return h.fail(ctx, errs.Generic.WithStatus(http.StatusBadRequest), "Invalid request body", err)
	}
	projectName, idea := parseText(req.ProjectName), parseText(req.Idea)
	if strings.TrimSpace(projectName) == "" {
		return h.fail(ctx, errs.ValidationEmpty, "Project name is required", service.ErrEmptyProjectName)
	}
	if strings.TrimSpace(idea) == "" {
		return h.fail(ctx, errs.ValidationEmpty, "Startup idea is required", service.ErrEmptyIdea)
	}
	tone, err := parseTone(req.Tone)
	if err != nil {
		return h.fail(ctx, errs.Generic.WithStatus(http.StatusBadRequest), "Invalid tone", err)
	}
	roast, err := h.svc.Roast(ctx, domain.RoastRequest{
		ProjectName:   projectName,
		Idea:          idea,
		Tone:          tone,
		SelectedJudge: req.SelectedJudge,
		Uid:           req.UserId,
		AgentAnalysis: req.AgentAnalysis,
	})
	if err != nil {
		code, details := toErrorCode(err)
		return h.fail(ctx, code, details, err)
	}
	return ginx.Result{
		Data: RoastResp{
			Success: true,
			Roast:   newRoast(roast),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	roast, err := h.svc.Find(ctx, ctx.Context.Param("id"))
	if err != nil {
		code, details := toErrorCode(err)
		return h.fail(ctx, code, details, err)
	}
	res := newRoast(roast)
	res.ProjectName = roast.ProjectName
	res.Idea = roast.Idea
	res.Ctime = roast.Ctime.UnixMilli()
	return ginx.Result{
		Data: RoastResp{Success: true, Roast: res},
	}, nil
}

func (h *Handler) Personas(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: PersonaList{
			Personas: slice.Map(h.svc.Personas(), func(idx int, src domain.Persona) Persona {
				return Persona{
					Name:      src.Name,
					Role:      src.Role,
					Style:     src.Style,
					Focus:     src.Focus,
					Expertise: src.Expertise,
					VoiceId:   src.VoiceID,
				}
			}),
		},
	}, nil
}

// fail 错误码对应的 HTTP 状态码各不相同，所以这里自己写响应
func (h *Handler) fail(ctx *ginx.Context, code errs.ErrorCode, details string, err error) (ginx.Result, error) {
	if code.Status >= http.StatusInternalServerError {
		h.logger.Error("处理请求失败",
			elog.String("path", ctx.FullPath()),
			elog.String("code", code.Msg),
			elog.FieldErr(err))
	} else {
		h.logger.Warn("请求被拒绝",
			elog.String("path", ctx.FullPath()),
			elog.String("code", code.Msg),
			elog.FieldErr(err))
	}
	ctx.JSON(code.Status, errorResult(code, details))
	return ginx.Result{}, ginx.ErrNoResponse
}

func newRoast(r domain.Roast) Roast {
	return Roast{
		Id: r.SN,
		Judges: slice.Map(r.Judges, func(idx int, src domain.JudgeEntry) Judge {
			return Judge{
				Name: src.Name,
				Response: JudgeResponse{
					Scores:   newScores(src.Response.Scores),
					Roast:    src.Response.Roast,
					Feedback: src.Response.Feedback,
					Verdict:  src.Response.Verdict.String(),
				},
			}
		}),
		FinalVerdict:     r.FinalVerdict.String(),
		AggregatedScores: newScores(r.AggregatedScores),
	}
}
