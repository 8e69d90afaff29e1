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

package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/errs"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/service"
)

func errorResult(code errs.ErrorCode, details string) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
		Data: ErrorData{
			Category: code.Category,
			Headline: code.Headline,
			Detail:   code.Detail,
			Details:  details,
		},
	}
}

// toErrorCode 把业务错误转成对外的错误码
func toErrorCode(err error) (errs.ErrorCode, string) {
	switch {
	case errors.Is(err, service.ErrEmptyProjectName):
		return errs.ValidationEmpty, "Project name is required"
	case errors.Is(err, service.ErrEmptyIdea):
		return errs.ValidationEmpty, "Startup idea is required"
	case errors.Is(err, service.ErrIdeaTooLong):
		return errs.Generic.WithStatus(http.StatusBadRequest), "Startup idea is too long"
	case errors.Is(err, service.ErrInvalidTone):
		return errs.Generic.WithStatus(http.StatusBadRequest), "Tone is out of range"
	case errors.Is(err, service.ErrUnsafeContent):
		return errs.UnsafeContent, ""
	case errors.Is(err, service.ErrParseFail), errors.Is(err, service.ErrInvalidStructure):
		return errs.ParseFail, ""
	case errors.Is(err, service.ErrQuotaExceeded):
		return errs.NetworkQuota, ""
	case errors.Is(err, service.ErrTimeout):
		return errs.Timeout, ""
	case errors.Is(err, service.ErrAuthFailed):
		return errs.Generic, "AI service authentication failed"
	case errors.Is(err, service.ErrProvider):
		return errs.Generic, "AI service error"
	case errors.Is(err, service.ErrRoastNotFound):
		return errs.Generic.WithStatus(http.StatusNotFound), "Roast not found"
	default:
		return errs.Generic, "Database error"
	}
}
