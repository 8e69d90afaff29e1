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

package database

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/roastmyidea/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给 GORM 的每一次操作打上 OpenTelemetry span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

// gormCallback 对应 Before / After 返回的注册入口
type gormCallback interface {
	Register(name string, fn func(*gorm.DB)) error
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	ops := []struct {
		op     string
		anchor string
		before func(name string) gormCallback
		after  func(name string) gormCallback
	}{
		{op: "SELECT", anchor: "gorm:query",
			before: func(n string) gormCallback { return cb.Query().Before(n) },
			after:  func(n string) gormCallback { return cb.Query().After(n) }},
		{op: "INSERT", anchor: "gorm:create",
			before: func(n string) gormCallback { return cb.Create().Before(n) },
			after:  func(n string) gormCallback { return cb.Create().After(n) }},
		{op: "UPDATE", anchor: "gorm:update",
			before: func(n string) gormCallback { return cb.Update().Before(n) },
			after:  func(n string) gormCallback { return cb.Update().After(n) }},
		{op: "DELETE", anchor: "gorm:delete",
			before: func(n string) gormCallback { return cb.Delete().Before(n) },
			after:  func(n string) gormCallback { return cb.Delete().After(n) }},
		{op: "RAW", anchor: "gorm:raw",
			before: func(n string) gormCallback { return cb.Raw().Before(n) },
			after:  func(n string) gormCallback { return cb.Raw().After(n) }},
	}
	for _, o := range ops {
		name := strings.ToLower(o.op)
		if err := o.before(o.anchor).Register("tracing:before_"+name, p.start(o.op)); err != nil {
			return err
		}
		if err := o.after(o.anchor).Register("tracing:after_"+name, p.end); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) start(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement != nil && db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		spanName := op
		if db.Statement.Table != "" {
			spanName = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("db.operation", op)))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) end(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	span.SetAttributes(attrs...)
	// 查不到数据不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
