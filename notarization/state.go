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

package notarization

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
)

// DataKind discriminates Data values
type DataKind uint8

const (
	// DataKindBytes is raw binary data
	DataKindBytes DataKind = iota
	// DataKindText is UTF-8 text data
	DataKindText
)

// Data is the payload of a notarization state: either raw bytes or UTF-8
// text
type Data struct {
	Kind  DataKind
	Bytes []byte
	Text  string
}

// BytesData returns a byte payload
func BytesData(data []byte) Data {
	return Data{Kind: DataKindBytes, Bytes: data}
}

// TextData returns a text payload
func TextData(data string) Data {
	return Data{Kind: DataKindText, Text: data}
}

// AsBytes extracts the payload as bytes, failing if it holds text
func (d Data) AsBytes() ([]byte, error) {
	if d.Kind != DataKindBytes {
		return nil, fmt.Errorf(
			"%w: data is not a byte vector",
			ledger.ErrInvalidArgument,
		)
	}
	return d.Bytes, nil
}

// AsText extracts the payload as text, failing if it holds bytes
func (d Data) AsText() (string, error) {
	if d.Kind != DataKindText {
		return "", fmt.Errorf(
			"%w: data is not a string",
			ledger.ErrInvalidArgument,
		)
	}
	return d.Text, nil
}

// Tag returns the type tag for the payload, used as the generic type
// argument on creation calls
func (d Data) Tag() ledger.TypeTag {
	if d.Kind == DataKindText {
		return ledger.TypeTagString
	}
	return ledger.TypeTagVectorU8
}

// MarshalBCS encodes the payload as a plain length-prefixed byte sequence.
// Byte vectors and strings share this layout on the wire; the variant is a
// decode-side concern
func (d Data) MarshalBCS() ([]byte, error) {
	if d.Kind == DataKindText {
		return bcs.Encode(d.Text)
	}
	return bcs.Encode(d.Bytes)
}

// UnmarshalBCS decodes a length-prefixed payload and classifies it. The
// payload is treated as text only if it is valid UTF-8 and every rune is
// printable ASCII or ASCII whitespace; anything else is kept as opaque
// bytes, even technically valid UTF-8. This heuristic can misclassify
// binary data that happens to be printable ASCII and is preserved for
// wire compatibility with existing records
func (d *Data) UnmarshalBCS(r io.Reader) error {
	dec := bcs.NewDecoder(r)
	raw, err := dec.ReadBytes()
	if err != nil {
		return err
	}
	if looksLikeText(raw) {
		*d = TextData(string(raw))
	} else {
		*d = BytesData(raw)
	}
	return nil
}

func looksLikeText(raw []byte) bool {
	if !utf8.Valid(raw) {
		return false
	}
	// The whitespace set deliberately excludes vertical tab to stay
	// byte-compatible with existing records
	for _, b := range raw {
		printable := b >= 0x21 && b <= 0x7e
		whitespace := b == ' ' || b == '\t' || b == '\n' || b == '\f' ||
			b == '\r'
		if !printable && !whitespace {
			return false
		}
	}
	return true
}

// State is the content container of a notarization: the data being attested
// plus optional descriptive metadata
type State struct {
	Data     Data
	Metadata *string
}

// NewStateFromBytes returns a state holding raw binary data
func NewStateFromBytes(data []byte, metadata *string) State {
	return State{Data: BytesData(data), Metadata: metadata}
}

// NewStateFromString returns a state holding UTF-8 text
func NewStateFromString(data string, metadata *string) State {
	return State{Data: TextData(data), Metadata: metadata}
}

// TypedState is a state whose payload was deserialized into a caller
// supplied type, bypassing the byte/text classification
type TypedState[T any] struct {
	Data     T
	Metadata *string
}

// compile adds the contract call constructing this state on-chain and
// returns the resulting argument
func (s State) compile(
	b *ledger.Builder,
	packageID ledger.ObjectID,
) (ledger.Argument, error) {
	var dataArg ledger.Argument
	var err error
	function := "new_state_from_bytes"
	if s.Data.Kind == DataKindText {
		function = "new_state_from_string"
		dataArg, err = pure(b, "data", s.Data.Text)
	} else {
		dataArg, err = pure(b, "data", s.Data.Bytes)
	}
	if err != nil {
		return ledger.Argument{}, err
	}
	metadataArg, err := pure(b, "metadata", s.Metadata)
	if err != nil {
		return ledger.Argument{}, err
	}
	return b.MoveCall(
		packageID,
		moduleNotarization,
		function,
		nil,
		[]ledger.Argument{dataArg, metadataArg},
	), nil
}
