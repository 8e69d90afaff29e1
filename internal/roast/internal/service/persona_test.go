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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonaRegistry(t *testing.T) {
	r := NewPersonaRegistry()
	list := r.List()
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
		assert.Equal(t, p.Name, p.VoiceID)
		assert.NotEmpty(t, p.Expertise)
	}
	assert.Equal(t, []string{"Tech Bro 3000", "Brutal VC", "Supportive Comedian",
		"Zen Mentor", "Middle-Aged CEO"}, names)

	// 返回的是副本
	list[0].Name = "changed"
	assert.Equal(t, "Tech Bro 3000", r.List()[0].Name)

	p, ok := r.Find("Zen Mentor")
	assert.True(t, ok)
	assert.Equal(t, "Customer Success Director", p.Role)

	_, ok = r.Find("Unknown Judge")
	assert.False(t, ok)
}
