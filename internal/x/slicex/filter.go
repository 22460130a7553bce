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

// Filter returns the elements of src, apply returns true for. The order is preserved and
// the result is never nil.
func Filter[T any](src []T, apply func(T) bool) []T {
	dst := make([]T, 0, len(src))

	for _, n := range src {
		if apply(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

func Map[T, R any](src []T, apply func(T) R) []R {
	dst := make([]R, len(src))

	for i, n := range src {
		dst[i] = apply(n)
	}

	return dst
}
