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

package event

import (
	"context"
	"errors"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/service"
	"github.com/ecodeclub/roastmyidea/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
)

const consumerGroup = "leaderboard"

var errInvalidEvent = errors.New("吐槽事件缺少 sn")

type RoastCreatedConsumer struct {
	consumer *mqx.JSONConsumer[RoastCreatedEvent]
	svc      service.Service
	logger   *elog.Component
}

func NewRoastCreatedConsumer(svc service.Service, q mq.MQ) (*RoastCreatedConsumer, error) {
	c := &RoastCreatedConsumer{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
	consumer, err := mqx.NewJSONConsumer[RoastCreatedEvent](q, roastCreatedTopic, consumerGroup, c.handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

func (c *RoastCreatedConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx)
}

func (c *RoastCreatedConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *RoastCreatedConsumer) Stop(ctx context.Context) error {
	return c.consumer.Stop(ctx)
}

func (c *RoastCreatedConsumer) handle(ctx context.Context, evt RoastCreatedEvent) error {
	if evt.SN == "" {
		return errInvalidEvent
	}
	err := c.svc.Save(ctx, evt.toDomain())
	if err != nil {
		c.logger.Error("写入排行榜失败",
			elog.String("sn", evt.SN),
			elog.FieldErr(err))
	}
	return err
}
