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

package ioc

import (
	"net/http"
	"slices"
	"strings"

	"github.com/ecodeclub/roastmyidea/internal/agent"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard"
	"github.com/ecodeclub/roastmyidea/internal/pkg/middleware"
	"github.com/ecodeclub/roastmyidea/internal/roast"
	"github.com/ecodeclub/roastmyidea/internal/voice"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(
	roastHdl *roast.Handler,
	lbHdl *leaderboard.Handler,
	voiceHdl *voice.Handler,
	agentHdl *agent.Handler,
) *egin.Component {
	res := egin.Load("server.web").Build()
	origins := econf.GetStringSlice("cors.allowOrigins")
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return slices.Contains(origins, origin)
		},
	}))
	res.Use(middleware.NewMetricsBuilder("roastmyidea", nil).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 没有登录体系，全部都是公开接口
	roastHdl.PublicRoutes(res.Engine)
	lbHdl.PublicRoutes(res.Engine)
	voiceHdl.PublicRoutes(res.Engine)
	agentHdl.PublicRoutes(res.Engine)
	return res
}
