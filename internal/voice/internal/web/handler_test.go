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
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/roastmyidea/internal/test"
	"github.com/ecodeclub/roastmyidea/internal/voice/internal/service"
	voicemocks "github.com/ecodeclub/roastmyidea/internal/voice/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Synthesize(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		mock       func(ctrl *gomock.Controller) service.Service
		wantStatus int
		wantCode   int
		wantAudio  []byte
	}{
		{
			name: "成功",
			body: `{"text":"Your idea is mid.","judgeName":"Tech Bro 3000"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := voicemocks.NewMockService(ctrl)
				svc.EXPECT().Synthesize(gomock.Any(), "Your idea is mid.", "Tech Bro 3000").
					Return([]byte("mp3"), nil)
				return svc
			},
			wantStatus: http.StatusOK,
			wantAudio:  []byte("mp3"),
		},
		{
			name: "参数为空",
			body: `{"text":"","judgeName":"Tech Bro 3000"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := voicemocks.NewMockService(ctrl)
				svc.EXPECT().Synthesize(gomock.Any(), "", "Tech Bro 3000").
					Return(nil, service.ErrInvalidInput)
				return svc
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   523001,
		},
		{
			name: "未配置",
			body: `{"text":"hi","judgeName":"Tech Bro 3000"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := voicemocks.NewMockService(ctrl)
				svc.EXPECT().Synthesize(gomock.Any(), "hi", "Tech Bro 3000").
					Return(nil, service.ErrVoiceNotConfigured)
				return svc
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   523002,
		},
		{
			name: "合成失败",
			body: `{"text":"hi","judgeName":"Tech Bro 3000"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := voicemocks.NewMockService(ctrl)
				svc.EXPECT().Synthesize(gomock.Any(), "hi", "Tech Bro 3000").
					Return(nil, errors.Join(service.ErrSynthesisFailed, errors.New("status=500")))
				return svc
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   523003,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gin.SetMode(gin.TestMode)
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req := httptest.NewRequest(http.MethodPost, "/voice", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantStatus, recorder.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "audio/mpeg", recorder.Header().Get("Content-Type"))
				assert.Equal(t, tc.wantAudio, recorder.Body.Bytes())
				return
			}
			var res test.Result[any]
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}
