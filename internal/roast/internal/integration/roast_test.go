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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/roastmyidea/internal/ai"
	aimocks "github.com/ecodeclub/roastmyidea/internal/ai/mocks"
	objstoremocks "github.com/ecodeclub/roastmyidea/internal/pkg/objstore/mocks"
	"github.com/ecodeclub/roastmyidea/internal/roast"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/event"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/integration/startup"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository/dao"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/web"
	"github.com/ecodeclub/roastmyidea/internal/test"
	testioc "github.com/ecodeclub/roastmyidea/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoastSuite struct {
	suite.Suite
	db *egorm.Component
	q  mq.MQ
}

func TestRoastSuite(t *testing.T) {
	suite.Run(t, new(RoastSuite))
}

func (s *RoastSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
}

func (s *RoastSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `roasts`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `roast_files`").Error
	require.NoError(s.T(), err)
}

func (s *RoastSuite) newServer(llmSvc ai.LLMService, store *objstoremocks.MockStorage) *egin.Component {
	module, err := startup.InitModule(s.db, llmSvc, s.q, store, roast.Config{
		MultiJudge: true,
		Judges:     []string{"Tech Bro 3000", "Brutal VC"},
	})
	require.NoError(s.T(), err)
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	return server
}

func (s *RoastSuite) TestRoast() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llmSvc := aimocks.NewMockService(ctrl)
	llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
			switch {
			case req.Biz == "roast_moderation":
				return ai.LLMResponse{Answer: "SAFE"}, nil
			case strings.Contains(req.Prompt, "Tech Bro 3000"):
				return ai.LLMResponse{Answer: "```json\n" + judgeAnswer(7, 6, 8, 5, "PASS") + "\n```"}, nil
			default:
				return ai.LLMResponse{Answer: judgeAnswer(4, 5, 6, 3, "FAIL")}, nil
			}
		}).Times(3)
	server := s.newServer(llmSvc, objstoremocks.NewMockStorage(ctrl))

	consumer, err := s.q.Consumer(event.RoastCreatedTopic, "roast_e2e")
	require.NoError(t, err)

	body := `{"projectName":"DogWalk","idea":"Uber for dogs","tone":{"humor":0.5,"sarcasm":0.2},"userId":"uid-1"}`
	req := httptest.NewRequest(http.MethodPost, "/roast", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var res test.Result[web.RoastResp]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	assert.True(t, res.Data.Success)
	sn := res.Data.Roast.Id
	require.NotEmpty(t, sn)
	assert.Equal(t, "MAYBE", res.Data.Roast.FinalVerdict)
	assert.Equal(t, web.Scores{Originality: 5.5, Feasibility: 5.5, WowFactor: 7, MarketPotential: 4},
		res.Data.Roast.AggregatedScores)
	require.Len(t, res.Data.Roast.Judges, 2)
	assert.Equal(t, "Tech Bro 3000", res.Data.Roast.Judges[0].Name)
	assert.Equal(t, "Brutal VC", res.Data.Roast.Judges[1].Name)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var entity dao.Roast
	err = s.db.WithContext(ctx).Where("sn = ?", sn).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, "DogWalk", entity.ProjectName)
	assert.Equal(t, "Uber for dogs", entity.IdeaText)
	assert.Equal(t, "uid-1", entity.Uid.String)
	assert.Equal(t, "MAYBE", entity.FinalVerdict)
	assert.Equal(t, 0.5, entity.ToneHumor)
	assert.Len(t, entity.JudgesData.Val, 2)
	assert.True(t, entity.Ctime > 0)

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.RoastCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, sn, evt.SN)
	assert.Equal(t, "MAYBE", evt.Verdict)
	assert.Equal(t, 7.0, evt.WowFactor)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/roasts/"+sn, nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	var detail test.Result[web.RoastResp]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&detail))
	assert.Equal(t, "DogWalk", detail.Data.Roast.ProjectName)
	assert.Equal(t, res.Data.Roast.AggregatedScores, detail.Data.Roast.AggregatedScores)
}

func (s *RoastSuite) TestRoast_Unsafe() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llmSvc := aimocks.NewMockService(ctrl)
	llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{Answer: "UNSAFE"}, nil)
	server := s.newServer(llmSvc, objstoremocks.NewMockStorage(ctrl))

	body := `{"projectName":"Bad","idea":"something harmful","tone":{"humor":0.5,"sarcasm":0}}`
	req := httptest.NewRequest(http.MethodPost, "/roast", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var res test.Result[web.ErrorData]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	assert.Equal(t, "UNSAFE_CONTENT", res.Msg)

	var cnt int64
	err := s.db.Model(&dao.Roast{}).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func (s *RoastSuite) TestRoast_AIKeyMissing() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	platform, err := ai.NewPlatform(ai.PlatformConfig{Platform: "gemini"})
	require.NoError(t, err)
	aiModule, err := ai.InitModule(s.db, platform)
	require.NoError(t, err)
	server := s.newServer(aiModule.Svc, objstoremocks.NewMockStorage(ctrl))

	body := `{"projectName":"DogWalk","idea":"Uber for dogs","tone":{"humor":0.5,"sarcasm":0.2}}`
	req := httptest.NewRequest(http.MethodPost, "/roast", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	var res test.Result[web.ErrorData]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	assert.Equal(t, "GENERIC", res.Msg)
	assert.Equal(t, "AI service authentication failed", res.Data.Details)

	var cnt int64
	err = s.db.Model(&dao.Roast{}).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func (s *RoastSuite) TestUpload() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UnixMilli()
	err := s.db.Create(&dao.Roast{
		SN:           "sn-upload",
		ProjectName:  "DogWalk",
		IdeaText:     "Uber for dogs",
		FinalVerdict: "PASS",
		Ctime:        now,
		Utime:        now,
	}).Error
	require.NoError(t, err)

	store := objstoremocks.NewMockStorage(ctrl)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).
		DoAndReturn(func(ctx context.Context, path, contentType string, data []byte) (string, error) {
			return "https://cdn/" + path, nil
		})
	store.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).
		DoAndReturn(func(ctx context.Context, path, contentType string, data []byte) (string, error) {
			return "https://cdn/" + path, nil
		})
	server := s.newServer(aimocks.NewMockService(ctrl), store)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("roastId", "sn-upload"))
	s.writeFile(w, "pitchDeck", "deck.pdf", "application/pdf", []byte("%PDF-1.4 deck"))
	s.writeFile(w, "images", "logo.png", "image/png", []byte("png"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	var res test.Result[web.UploadResp]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	assert.True(t, strings.HasPrefix(res.Data.Files.PitchDeckUrl, "https://cdn/roasts/sn-upload/pitch-deck-"))
	require.Len(t, res.Data.Files.ImageUrls, 1)

	var files []dao.RoastFile
	err = s.db.Where("roast_sn = ?", "sn-upload").Order("id").Find(&files).Error
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "pitch_deck", files[0].FileType)
	assert.Equal(t, "image", files[1].FileType)

	var entity dao.Roast
	err = s.db.Where("sn = ?", "sn-upload").First(&entity).Error
	require.NoError(t, err)
	assert.Len(t, entity.ProcessedFiles.Val, 2)
}

func (s *RoastSuite) writeFile(w *multipart.Writer, field, name, contentType string, data []byte) {
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, name),
	}
	header["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(header)
	require.NoError(s.T(), err)
	_, err = part.Write(data)
	require.NoError(s.T(), err)
}

func judgeAnswer(originality, feasibility, wow, market int, verdict string) string {
	return fmt.Sprintf(`{"scores":{"originality":%d,"feasibility":%d,"wow_factor":%d,"market_potential":%d},
"roast":"roast","feedback":"feedback","verdict":"%s"}`, originality, feasibility, wow, market, verdict)
}
