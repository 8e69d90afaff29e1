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
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	counterVec  *prometheus.CounterVec
	inflight    prometheus.Gauge
}

// NewMetricsBuilder reg 为 nil 时注册到 prometheus 的默认 registry
func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		// 评审一次要等好几个模型，所以桶要放到分钟级
		durationVec: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests being served",
		}),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.inflight.Inc()
		defer b.inflight.Dec()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没命中路由的请求统一归到一起，避免 label 爆炸
			path = "unmatched"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		b.durationVec.WithLabelValues(ctx.Request.Method, path, statusCode).
			Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(ctx.Request.Method, path, statusCode).Inc()
	}
}
