// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package slicex

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		src    []int
		expRes []int
	}{
		{uc: "nil source", src: nil, expRes: []int{}},
		{uc: "nothing matches", src: []int{1, 3, 5}, expRes: []int{}},
		{uc: "order preserved", src: []int{4, 1, 2, 8}, expRes: []int{4, 2, 8}},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			res := Filter(tc.src, func(v int) bool { return v%2 == 0 })

			assert.Equal(t, tc.expRes, res)
		})
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	res := Map([]int{1, 2}, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, res)
}
