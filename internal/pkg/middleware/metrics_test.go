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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder("roastmyidea", reg)
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(builder.Build())
	server.GET("/roasts/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/roasts/sn-1", "/roasts/sn-2", "/nothing"} {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodGet, "/roasts/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(builder.inflight))
	assert.Equal(t, 2, testutil.CollectAndCount(builder.durationVec))
}
