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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type HandleFunc[T any] func(ctx context.Context, evt T) error

// JSONConsumer 消息体是 JSON 的通用消费者
type JSONConsumer[T any] struct {
	topic    string
	consumer mq.Consumer
	handle   HandleFunc[T]
	logger   *elog.Component
}

func NewJSONConsumer[T any](q mq.MQ, topic, group string, handle HandleFunc[T]) (*JSONConsumer[T], error) {
	c, err := q.Consumer(topic, group)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s group=%s 的消费者失败: %w", topic, group, err)
	}
	return &JSONConsumer[T]{
		topic:    topic,
		consumer: c,
		handle:   handle,
		logger:   elog.DefaultLogger,
	}, nil
}

// Consume 消费一条消息
func (c *JSONConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}

// Start 在后台循环消费，ctx 取消之后退出
func (c *JSONConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费消息失败",
					elog.String("topic", c.topic),
					elog.FieldErr(err))
			}
		}
	}()
}

func (c *JSONConsumer[T]) Stop(_ context.Context) error {
	return c.consumer.Close()
}
