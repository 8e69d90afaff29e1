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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func TestJSONConsumer(t *testing.T) {
	q := NewTraceMq(memory.NewMQ())
	const topic = "mqx_test_events"
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))

	received := make(chan testEvent, 1)
	consumer, err := NewJSONConsumer[testEvent](q, topic, "mqx_test", func(ctx context.Context, evt testEvent) error {
		received <- evt
		return nil
	})
	require.NoError(t, err)

	producer, err := NewGeneralProducer[testEvent](q, topic, WithKey(func(evt testEvent) string {
		return evt.Id
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err = producer.Produce(ctx, testEvent{Id: "id-1", Name: "DogWalk"})
	require.NoError(t, err)

	err = consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, testEvent{Id: "id-1", Name: "DogWalk"}, <-received)
	assert.NoError(t, consumer.Stop(ctx))
}

func TestJSONConsumer_Start(t *testing.T) {
	q := memory.NewMQ()
	const topic = "mqx_start_events"
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))

	received := make(chan testEvent, 2)
	consumer, err := NewJSONConsumer[testEvent](q, topic, "mqx_test", func(ctx context.Context, evt testEvent) error {
		received <- evt
		return nil
	})
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](q, topic)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	consumer.Start(ctx)
	require.NoError(t, producer.Produce(context.Background(), testEvent{Id: "1"}))
	require.NoError(t, producer.Produce(context.Background(), testEvent{Id: "2"}))

	for _, want := range []string{"1", "2"} {
		select {
		case evt := <-received:
			assert.Equal(t, want, evt.Id)
		case <-time.After(3 * time.Second):
			t.Fatal("没有收到消息")
		}
	}
	cancel()
}
