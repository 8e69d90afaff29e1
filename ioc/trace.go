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
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

type TraceConfig struct {
	ServiceName string  `yaml:"serviceName"`
	Endpoint    string  `yaml:"endpoint"`
	SampleRatio float64 `yaml:"sampleRatio"`
}

// InitTracer 没有配置 zipkin 地址的时候只在进程内生成 span，不上报
func InitTracer() *trace.TracerProvider {
	var cfg TraceConfig
	err := econf.UnmarshalKey("trace.zipkin", &cfg)
	if err != nil {
		elog.Panic("读取 trace 配置失败", elog.FieldErr(err))
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "roastmyidea"
	}
	if cfg.SampleRatio <= 0 {
		cfg.SampleRatio = 1
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion("v0.0.1"),
		),
	)
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	opts := []trace.TracerProviderOption{
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))),
	}
	if cfg.Endpoint != "" {
		exporter, er := zipkin.New(cfg.Endpoint)
		if er != nil {
			elog.Panic("init zipkin exporter failed", elog.FieldErr(er))
		}
		opts = append(opts, trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)))
	}
	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}
