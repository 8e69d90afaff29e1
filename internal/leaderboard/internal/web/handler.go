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
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/leaderboard", ginx.W(h.List))
}

// List limit 不是数字的时候按照默认值处理
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	limit, _ := strconv.Atoi(ctx.Context.Query("limit"))
	entries, err := h.svc.List(ctx, domain.ParseWindow(ctx.Context.Query("time")), limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LeaderboardResp{
			Success: true,
			Leaderboard: slice.Map(entries, func(idx int, src domain.Entry) Entry {
				return newEntry(src)
			}),
			Count: len(entries),
		},
	}, nil
}

func newEntry(e domain.Entry) Entry {
	return Entry{
		Id:              e.Id,
		RoastId:         e.RoastSN,
		ProjectName:     e.ProjectName,
		IdeaText:        e.Idea,
		TotalScore:      e.TotalScore,
		Originality:     e.Scores.Originality,
		Feasibility:     e.Scores.Feasibility,
		WowFactor:       e.Scores.WowFactor,
		MarketPotential: e.Scores.MarketPotential,
		Verdict:         e.Verdict,
		CreatedAt:       e.Ctime.UnixMilli(),
	}
}
