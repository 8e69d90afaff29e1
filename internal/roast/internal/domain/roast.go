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

package domain

import "time"

type Roast struct {
	Id  int64
	SN  string
	Uid string

	ProjectName string
	Idea        string
	Tone        Tone

	AggregateResult

	ErrorLog       map[string]any
	ProcessedFiles []RoastFile

	Ctime time.Time
	Utime time.Time
}

type FileType string

const (
	FileTypePitchDeck FileType = "pitch_deck"
	FileTypeImage     FileType = "image"
)

type RoastFile struct {
	Id    int64
	Type  FileType
	URL   string
	Ctime time.Time
}

// RoastRequest 一次吐槽请求
type RoastRequest struct {
	ProjectName   string
	Idea          string
	Tone          Tone
	SelectedJudge string
	Uid           string
	// 外部 agent 分析的结果，可以为空
	AgentAnalysis string
}

// File 待上传的文件
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type UploadResult struct {
	PitchDeckURL string
	ImageURLs    []string
}

// ModerationResult 内容审核的结果
type ModerationResult struct {
	Safe bool
	// 审核调用本身失败了，这时候 Safe 一定是 true
	Err error
}
