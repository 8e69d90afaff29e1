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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/roastmyidea/internal/agent/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/agent/internal/errs"
	"github.com/ecodeclub/roastmyidea/internal/agent/internal/service"
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
	g := server.Group("/agents")
	g.POST("/review-app", ginx.B[ReviewAppReq](h.ReviewApp))
	g.POST("/review-repo", ginx.B[ReviewRepoReq](h.ReviewRepo))
}

func (h *Handler) ReviewApp(ctx *ginx.Context, req ReviewAppReq) (ginx.Result, error) {
	res, err := h.svc.ReviewApp(ctx, req.AppURL)
	if err != nil {
		return h.fail(ctx, "review-app", req.AppURL, err)
	}
	return ginx.Result{
		Data: ReviewAppResp{
			Success:  true,
			Analysis: newAppAnalysis(res),
			Summary:  res.Summary(),
		},
	}, nil
}

func (h *Handler) ReviewRepo(ctx *ginx.Context, req ReviewRepoReq) (ginx.Result, error) {
	res, err := h.svc.ReviewRepo(ctx, req.RepoURL)
	if err != nil {
		return h.fail(ctx, "review-repo", req.RepoURL, err)
	}
	return ginx.Result{
		Data: ReviewRepoResp{
			Success:  true,
			Analysis: newRepoAnalysis(res),
			Summary:  res.Summary(),
		},
	}, nil
}

// fail 参数错误的时候把具体原因带回给前端
func (h *Handler) fail(ctx *ginx.Context, agent, target string, err error) (ginx.Result, error) {
	code := toErrorCode(err)
	msg := code.Msg
	if code == errs.InvalidInput {
		msg = unwrapMsg(err)
	}
	if code.Status >= http.StatusInternalServerError {
		h.logger.Error("分析失败",
			elog.String("agent", agent),
			elog.String("target", target),
			elog.FieldErr(err))
	}
	ctx.JSON(code.Status, ginx.Result{Code: code.Code, Msg: msg})
	return ginx.Result{}, ginx.ErrNoResponse
}

func toErrorCode(err error) errs.ErrorCode {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return errs.InvalidInput
	case errors.Is(err, service.ErrNotFound):
		return errs.NotFound
	case errors.Is(err, service.ErrTimeout):
		return errs.Timeout
	default:
		return errs.FetchFailed
	}
}

// unwrapMsg 去掉哨兵错误的前缀，例如 "参数不合法: App URL is required"
func unwrapMsg(err error) string {
	msg, ok := strings.CutPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	if !ok || msg == "" {
		return errs.InvalidInput.Msg
	}
	return msg
}

func newAppAnalysis(a domain.AppAnalysis) AppAnalysis {
	return AppAnalysis{
		URL:         a.URL,
		Status:      a.Status,
		Headers:     a.Headers,
		Title:       a.Title,
		Description: a.Description,
		HasReact:    a.HasReact,
		HasVue:      a.HasVue,
		HasAngular:  a.HasAngular,
		Framework:   string(a.Framework()),
		Features: AppFeatures{
			HasLogin:         a.Features.Login,
			HasSignup:        a.Features.Signup,
			HasDashboard:     a.Features.Dashboard,
			HasAPI:           a.Features.API,
			HasServiceWorker: a.Features.ServiceWorker,
			HasAnalytics:     a.Features.Analytics,
		},
		IsHTTPS:  a.HTTPS,
		HTMLSize: a.HTMLSize,
	}
}

func newRepoAnalysis(r domain.RepoAnalysis) RepoAnalysis {
	return RepoAnalysis{
		Name:            r.Name,
		Description:     r.Description,
		Stars:           r.Stars,
		Forks:           r.Forks,
		Watchers:        r.Watchers,
		OpenIssues:      r.OpenIssues,
		Readme:          r.Readme,
		Languages:       r.Languages,
		PrimaryLanguage: r.PrimaryLanguage,
		HasWiki:         r.HasWiki,
		HasPages:        r.HasPages,
		Branches:        r.Branches,
		RecentCommits: slice.Map(r.RecentCommits, func(idx int, src domain.Commit) Commit {
			return Commit{
				Message: src.Message,
				Author:  src.Author,
				Date:    src.Date,
				Sha:     src.Hash,
			}
		}),
		License:       r.License,
		DefaultBranch: r.DefaultBranch,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Size:          r.Size,
	}
}
