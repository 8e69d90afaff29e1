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

package errs

import "net/http"

var (
	ValidationEmpty = ErrorCode{Code: 521001, Msg: "VALIDATION_EMPTY", Status: http.StatusBadRequest,
		Category: "Validation (empty idea)",
		Headline: "You didn't give us anything to roast!",
		Detail:   "Write a short idea first — the judges need material."}
	Generic = ErrorCode{Code: 521002, Msg: "GENERIC", Status: http.StatusInternalServerError,
		Category: "Generic Error",
		Headline: "Our judge just dropped the mic.",
		Detail:   "Something went wrong behind the scenes. Try again in a few seconds."}
	UnsafeContent = ErrorCode{Code: 521003, Msg: "UNSAFE_CONTENT", Status: http.StatusBadRequest,
		Category: "Unsafe / moral content",
		Headline: "Referee Timeout 🛑",
		Detail: "This idea touches areas the AI can't roast responsibly. " +
			"Rephrase your pitch so we can critique the concept, not the people."}
	ParseFail = ErrorCode{Code: 521004, Msg: "PARSE_FAIL", Status: http.StatusInternalServerError,
		Category: "Parse / JSON fail",
		Headline: "Roast interrupted mid-punchline.",
		Detail:   "The AI lost its train of thought — rerun to get a proper burn."}
	NetworkQuota = ErrorCode{Code: 521005, Msg: "NETWORK_QUOTA", Status: http.StatusTooManyRequests,
		Category: "Network / quota issue",
		Headline: "Judges are catching their breath.",
		Detail:   "Our servers might be full from other pitches. Give them a moment."}
	Timeout = ErrorCode{Code: 521006, Msg: "TIMEOUT", Status: http.StatusGatewayTimeout,
		Category: "Timeout",
		Headline: "The judges are still deliberating.",
		Detail:   "The panel took too long to answer. Try again in a moment."}
)

// ErrorCode Msg 是前端识别用的错误 key，其余字段是展示给用户的文案
type ErrorCode struct {
	Code     int
	Msg      string
	Status   int
	Category string
	Headline string
	Detail   string
}

// WithStatus 同一个错误码在不同场景下 HTTP 状态码不同，比如 GENERIC
func (e ErrorCode) WithStatus(status int) ErrorCode {
	e.Status = status
	return e
}
