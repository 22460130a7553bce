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

package material

// Factory creates materials. It never touches a Pool.
type Factory struct {
	naming NamingStrategy
}

func NewFactory(naming NamingStrategy) *Factory {
	if naming == nil {
		naming = DefaultNaming
	}

	return &Factory{naming: naming}
}

func (f *Factory) Create(typ Type, name, color string) *Material {
	return f.CreateWithDisplayName(typ, name, color, "")
}

// CreateWithDisplayName uses the given display name. An empty one is computed by the
// naming strategy.
func (f *Factory) CreateWithDisplayName(typ Type, name, color, displayName string) *Material {
	if len(displayName) == 0 {
		displayName = f.naming(typ, name, color)
	}

	return &Material{
		Type:        typ,
		Name:        name,
		Color:       color,
		DisplayName: displayName,
	}
}

func (f *Factory) CreateFromString(val string) (*Material, error) {
	typ, name, color, err := ParseString(val)
	if err != nil {
		return nil, err
	}

	return f.Create(typ, name, color), nil
}
