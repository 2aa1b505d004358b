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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStats(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		person1  int64
		person2  int64
		wantP1   int
		wantP2   int
		wantZero bool
	}{
		{name: "没人投票百分比都是0", person1: 0, person2: 0, wantZero: true},
		{name: "只有一边有票", person1: 3, person2: 0, wantP1: 100, wantP2: 0},
		{name: "五五开", person1: 2, person2: 2, wantP1: 50, wantP2: 50},
		{name: "三分之一向下取整后补齐", person1: 1, person2: 2, wantP1: 33, wantP2: 67},
		{name: "三分之二四舍五入", person1: 2, person2: 1, wantP1: 67, wantP2: 33},
		{name: "七票对三票", person1: 7, person2: 3, wantP1: 70, wantP2: 30},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := NewStats(1, tc.person1, tc.person2)
			assert.Equal(t, tc.person1+tc.person2, stats.TotalVotes)
			if tc.wantZero {
				assert.Zero(t, stats.Person1Percentage)
				assert.Zero(t, stats.Person2Percentage)
				return
			}
			assert.Equal(t, tc.wantP1, stats.Person1Percentage)
			assert.Equal(t, tc.wantP2, stats.Person2Percentage)
			// 取整之后两边必须加起来刚好100
			assert.Equal(t, 100, stats.Person1Percentage+stats.Person2Percentage)
		})
	}
}

func TestNewStats_SumAlways100(t *testing.T) {
	t.Parallel()
	for p1 := int64(0); p1 <= 30; p1++ {
		for p2 := int64(0); p2 <= 30; p2++ {
			if p1+p2 == 0 {
				continue
			}
			stats := NewStats(1, p1, p2)
			assert.Equal(t, 100, stats.Person1Percentage+stats.Person2Percentage,
				"p1=%d p2=%d", p1, p2)
		}
	}
}
