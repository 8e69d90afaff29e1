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

// Persona 评委人设，进程启动后不会再变
type Persona struct {
	Name      string
	Role      string
	Style     string
	Focus     string
	Expertise string
	// 语音配置表里面的 key
	VoiceID string
	// 多评委模式下对语气参数的偏移
	ToneOffset Tone
}
