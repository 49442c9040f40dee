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

package bcs

import (
	"errors"
	"io"
)

// Maximum number of bytes in a ULEB128-encoded length value. BCS limits
// sequence lengths to 32 bits
const maxUleb128Bytes = 5

// MaxSequenceLength is the largest sequence length accepted by the decoder
const MaxSequenceLength = (1 << 31) - 1

var (
	ErrUnsupportedType   = errors.New("unsupported type for BCS")
	ErrSequenceTooLong   = errors.New("sequence length exceeds maximum")
	ErrInvalidOptionFlag = errors.New("invalid option flag")
)

// Marshaler is implemented by types that provide their own canonical BCS
// encoding, such as enum types whose variant index is part of the wire format
type Marshaler interface {
	MarshalBCS() ([]byte, error)
}

// Unmarshaler is implemented by types that provide their own canonical BCS
// decoding
type Unmarshaler interface {
	UnmarshalBCS(r io.Reader) error
}
