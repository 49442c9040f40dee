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

// Package bcs implements the canonical binary serialization format used for
// instruction arguments and on-chain object content (Binary Canonical
// Serialization).
//
// Unsigned integers are little-endian and fixed width. Sequence lengths and
// enum variant indexes use ULEB128. Options encode as a single 0x00/0x01
// byte optionally followed by the value; Go pointer types map to Options.
// Structs encode their exported fields in declaration order with no framing.
// Types with a variant discriminant implement the Marshaler and Unmarshaler
// interfaces to control their own wire layout.
package bcs
