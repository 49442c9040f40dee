// Copyright 2025 Notary Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"fmt"
	"strings"
)

// TypeTag is a ledger-native Move-style type string, such as "vector<u8>",
// "u64", or "0x1::string::String"
type TypeTag string

// Well-known type tags
const (
	TypeTagVectorU8 TypeTag = "vector<u8>"
	TypeTagString   TypeTag = "0x1::string::String"
)

func (t TypeTag) String() string {
	return string(t)
}

// IsVectorU8 reports whether the tag is a byte vector
func (t TypeTag) IsVectorU8() bool {
	return t == TypeTagVectorU8
}

// IsString reports whether the tag is the stdlib string type
func (t TypeTag) IsString() bool {
	return strings.Contains(string(t), "::string::String")
}

// ParseTypeParam extracts the generic type parameter list from a full Move
// type string: the substring between the first '<' and the last '>'. Nested
// generics and multi-parameter lists are returned verbatim
func ParseTypeParam(fullType string) (string, error) {
	start := strings.Index(fullType, "<")
	end := strings.LastIndex(fullType, ">")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf(
			"%w: could not parse type parameter from %q",
			ErrFailedToParseTag,
			fullType,
		)
	}
	return fullType[start+1 : end], nil
}
