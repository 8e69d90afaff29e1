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

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/roastmyidea/internal/pkg/mqx"

// TraceMq 给收发消息打点
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return &TraceMq{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: pro, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMq) Consumer(topic, group string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, group)
	if err != nil {
		return nil, err
	}
	return &TraceConsumer{Consumer: c, topic: topic, group: group, tracer: t.tracer}, nil
}

type TraceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, "mq.produce", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes("produce", t.topic, m)...)
	res, err := t.Producer.Produce(ctx, m)
	endSpan(span, err)
	return res, err
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, "mq.produce", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes("produce", t.topic, m)...)
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	endSpan(span, err)
	return res, err
}

type TraceConsumer struct {
	mq.Consumer
	topic  string
	group  string
	tracer trace.Tracer
}

// Consume 等待消息的时间不算在 span 里面，拿到消息之后才打点
func (t *TraceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	msg, err := t.Consumer.Consume(ctx)
	_, span := t.tracer.Start(ctx, "mq.consume", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(messageAttributes("consume", t.topic, msg)...)
	span.SetAttributes(attribute.String("messaging.consumer_group", t.group))
	endSpan(span, err)
	return msg, err
}

func messageAttributes(op, topic string, m *mq.Message) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "mq"),
		attribute.String("messaging.operation", op),
		attribute.String("messaging.topic", topic),
	}
	if m != nil {
		attrs = append(attrs, attribute.Int("messaging.message_length", len(m.Value)))
		if len(m.Key) > 0 {
			attrs = append(attrs, attribute.String("messaging.key", string(m.Key)))
		}
	}
	return attrs
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
