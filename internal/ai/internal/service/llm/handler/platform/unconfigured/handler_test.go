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

package unconfigured

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Handle(t *testing.T) {
	h := NewHandler("zhipu")
	assert.Equal(t, "zhipu", h.Name())
	resp, err := h.Handle(context.Background(), domain.LLMRequest{Biz: "roast_judge", Prompt: "hi"})
	assert.True(t, errors.Is(err, domain.ErrAuthFailed))
	assert.Equal(t, domain.LLMResponse{}, resp)
}
