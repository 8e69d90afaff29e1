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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Roast struct {
	Id int64
	SN string
}

func TestGormTracingPlugin(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	// DryRun 只生成 SQL，不会真的连数据库
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:root@tcp(localhost:13316)/roastmyidea",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	require.NoError(t, db.Use(NewGormTracingPlugin()))

	var r Roast
	db.WithContext(context.Background()).Where("sn = ?", "sn-1").First(&r)
	db.WithContext(context.Background()).Create(&Roast{SN: "sn-2"})

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "roasts SELECT", spans[0].Name())
	assert.Equal(t, "roasts INSERT", spans[1].Name())
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "SELECT", attrs["db.operation"])
	assert.Equal(t, "mysql", attrs["db.system"])
	assert.Contains(t, attrs["db.statement"], "SELECT * FROM `roasts`")
}
