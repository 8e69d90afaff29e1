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
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard/internal/domain"
	leaderboardmocks "github.com/ecodeclub/roastmyidea/internal/leaderboard/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoastCreatedConsumer_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), roastCreatedTopic, 1))

	svc := leaderboardmocks.NewMockService(ctrl)
	svc.EXPECT().Save(gomock.Any(), domain.Entry{
		RoastSN:     "sn-1",
		ProjectName: "DogWalk",
		Idea:        "Uber for dogs",
		Scores:      domain.Scores{Originality: 7, Feasibility: 6.5, WowFactor: 8, MarketPotential: 5},
		Verdict:     "PASS",
		Ctime:       time.UnixMilli(1700000000000),
	}).Return(nil)

	consumer, err := NewRoastCreatedConsumer(svc, q)
	require.NoError(t, err)
	producer, err := q.Producer(roastCreatedTopic)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	data, err := json.Marshal(RoastCreatedEvent{
		SN:              "sn-1",
		ProjectName:     "DogWalk",
		Idea:            "Uber for dogs",
		Originality:     7,
		Feasibility:     6.5,
		WowFactor:       8,
		MarketPotential: 5,
		Verdict:         "PASS",
		Ctime:           1700000000000,
	})
	require.NoError(t, err)
	_, err = producer.Produce(ctx, &mq.Message{Value: data})
	require.NoError(t, err)
	assert.NoError(t, consumer.Consume(ctx))

	// 没有 sn 的消息直接丢弃
	_, err = producer.Produce(ctx, &mq.Message{Value: []byte(`{"projectName":"x"}`)})
	require.NoError(t, err)
	assert.ErrorIs(t, consumer.Consume(ctx), errInvalidEvent)

	_, err = producer.Produce(ctx, &mq.Message{Value: []byte(`not json`)})
	require.NoError(t, err)
	assert.Error(t, consumer.Consume(ctx))
	assert.NoError(t, consumer.Stop(ctx))
}
