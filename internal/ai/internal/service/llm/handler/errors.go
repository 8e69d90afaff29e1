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

package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/roastmyidea/internal/ai/internal/domain"
)

var (
	quotaIndicators = []string{"quota", "resource_exhausted", "rate limit", "too many requests"}
	authIndicators  = []string{"api key", "apikey", "authentication", "unauthenticated",
		"unauthorized", "permission_denied", "invalid_api_key"}
)

// ClassifyError 各家平台的错误类型都不一样，这里只能看错误信息
// 超时和取消原样返回，交给上层判断
func ClassifyError(platform string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	msg := strings.ToLower(err.Error())
	if containsAny(msg, quotaIndicators) {
		return fmt.Errorf("%w: %s: %w", domain.ErrQuotaExceeded, platform, err)
	}
	if containsAny(msg, authIndicators) {
		return fmt.Errorf("%w: %s: %w", domain.ErrAuthFailed, platform, err)
	}
	return fmt.Errorf("%s: %w", platform, err)
}

func containsAny(msg string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(msg, ind) {
			return true
		}
	}
	return false
}
