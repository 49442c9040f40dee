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
	"bytes"
	"errors"
	"testing"

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
)

func TestStateAccessors(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0xff}
	state := NewStateFromBytes(payload, nil)
	got, err := state.Data.AsBytes()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %x, expected %x", got, payload)
	}
	if _, err := state.Data.AsText(); !errors.Is(
		err,
		ledger.ErrInvalidArgument,
	) {
		t.Errorf("expected ErrInvalidArgument from AsText, got %v", err)
	}

	text := "attested document"
	state = NewStateFromString(text, nil)
	gotText, err := state.Data.AsText()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if gotText != text {
		t.Errorf("got %q, expected %q", gotText, text)
	}
	if _, err := state.Data.AsBytes(); !errors.Is(
		err,
		ledger.ErrInvalidArgument,
	) {
		t.Errorf("expected ErrInvalidArgument from AsBytes, got %v", err)
	}
}

func TestStateTag(t *testing.T) {
	if tag := BytesData(nil).Tag(); tag != ledger.TypeTagVectorU8 {
		t.Errorf("got %q, expected %q", tag, ledger.TypeTagVectorU8)
	}
	if tag := TextData("x").Tag(); tag != ledger.TypeTagString {
		t.Errorf("got %q, expected %q", tag, ledger.TypeTagString)
	}
}

// The decode heuristic classifies a payload as text only when it is valid
// UTF-8 and entirely printable ASCII or ASCII whitespace. That means
// printable binary data decodes as text and non-ASCII text decodes as bytes;
// both quirks are load-bearing for existing records and pinned here
func TestDataDecodeHeuristic(t *testing.T) {
	testDefs := []struct {
		label    string
		data     Data
		expected DataKind
	}{
		{"plain text", TextData("hello world"), DataKindText},
		{"text with newlines", TextData("line one\nline two\t."), DataKindText},
		// Vertical tab is not in the whitespace set
		{"vertical tab", BytesData([]byte("a\x0bb")), DataKindBytes},
		{"binary", BytesData([]byte{0x00, 0x01, 0x02}), DataKindBytes},
		{"high bytes", BytesData([]byte{0xde, 0xad, 0xbe, 0xef}), DataKindBytes},
		// Printable ASCII bytes are misclassified as text
		{"printable binary", BytesData([]byte("12345")), DataKindText},
		// Non-ASCII UTF-8 text is misclassified as bytes
		{"accented text", TextData("héllo"), DataKindBytes},
		{"empty bytes", BytesData(nil), DataKindText},
	}
	for _, testDef := range testDefs {
		encoded, err := bcs.Encode(testDef.data)
		if err != nil {
			t.Fatalf("%s: unexpected encode error: %s", testDef.label, err)
		}
		var decoded Data
		if _, err := bcs.Decode(encoded, &decoded); err != nil {
			t.Fatalf("%s: unexpected decode error: %s", testDef.label, err)
		}
		if decoded.Kind != testDef.expected {
			t.Errorf(
				"%s: got kind %d, expected %d",
				testDef.label,
				decoded.Kind,
				testDef.expected,
			)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	metadata := "checksum sha256:abc123"
	state := NewStateFromBytes([]byte{0x80, 0x81}, &metadata)
	encoded, err := bcs.Encode(state)
	if err != nil {
		t.Fatalf("unexpected encode error: %s", err)
	}
	var decoded State
	if _, err := bcs.Decode(encoded, &decoded); err != nil {
		t.Fatalf("unexpected decode error: %s", err)
	}
	got, err := decoded.Data.AsBytes()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(got, []byte{0x80, 0x81}) {
		t.Errorf("unexpected payload %x", got)
	}
	if decoded.Metadata == nil || *decoded.Metadata != metadata {
		t.Errorf("unexpected metadata %v", decoded.Metadata)
	}
}
