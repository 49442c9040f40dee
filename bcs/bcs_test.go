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
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
)

func TestEncodePrimitives(t *testing.T) {
	testDefs := []struct {
		value    any
		expected []byte
	}{
		{uint8(0xab), []byte{0xab}},
		{uint16(0x1234), []byte{0x34, 0x12}},
		{uint32(0xdeadbeef), []byte{0xef, 0xbe, 0xad, 0xde}},
		{
			uint64(0x0102030405060708),
			[]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		},
		{true, []byte{0x01}},
		{false, []byte{0x00}},
		{"abc", []byte{0x03, 0x61, 0x62, 0x63}},
		{[]byte{0x01, 0x02}, []byte{0x02, 0x01, 0x02}},
	}
	for _, testDef := range testDefs {
		data, err := Encode(testDef.value)
		if err != nil {
			t.Fatalf("unexpected error encoding %v: %s", testDef.value, err)
		}
		if !bytes.Equal(data, testDef.expected) {
			t.Errorf(
				"encoding %v: got %x, expected %x",
				testDef.value,
				data,
				testDef.expected,
			)
		}
	}
}

func TestUleb128(t *testing.T) {
	testDefs := []struct {
		value    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}
	for _, testDef := range testDefs {
		buf := bytes.NewBuffer(nil)
		enc := NewEncoder(buf)
		if err := enc.WriteUleb128(testDef.value); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !bytes.Equal(buf.Bytes(), testDef.expected) {
			t.Errorf(
				"encoding %d: got %x, expected %x",
				testDef.value,
				buf.Bytes(),
				testDef.expected,
			)
		}
		dec := NewDecoder(bytes.NewReader(testDef.expected))
		decoded, err := dec.ReadUleb128()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if decoded != testDef.value {
			t.Errorf("decoding %x: got %d", testDef.expected, decoded)
		}
	}
}

func TestOptionEncoding(t *testing.T) {
	var none *string
	data, err := Encode(none)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(data, []byte{0x00}) {
		t.Errorf("None: got %x, expected 00", data)
	}
	val := "hi"
	data, err = Encode(&val)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(data, []byte{0x01, 0x02, 0x68, 0x69}) {
		t.Errorf("Some: got %x", data)
	}
	var decoded *string
	if _, err := Decode(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded == nil || *decoded != "hi" {
		t.Errorf("Some decode: got %v", decoded)
	}
}

type testStruct struct {
	Count    uint64
	Name     string
	Payload  []byte
	Optional *uint32
	Fixed    [4]byte
}

func TestStructRoundTrip(t *testing.T) {
	opt := uint32(7)
	src := testStruct{
		Count:    42,
		Name:     "notary",
		Payload:  []byte{0xde, 0xad},
		Optional: &opt,
		Fixed:    [4]byte{1, 2, 3, 4},
	}
	data, err := Encode(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var dest testStruct
	consumed, err := Decode(data, &dest)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if consumed != len(data) {
		t.Errorf("consumed %d bytes, expected %d", consumed, len(data))
	}
	if !reflect.DeepEqual(src, dest) {
		t.Errorf("got %+v, expected %+v", dest, src)
	}
}

type testEnum struct {
	variant uint8
}

func (e testEnum) MarshalBCS() ([]byte, error) {
	return []byte{e.variant}, nil
}

func (e *testEnum) UnmarshalBCS(r io.Reader) error {
	var tmp [1]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		return err
	}
	e.variant = tmp[0]
	return nil
}

func TestCustomMarshaler(t *testing.T) {
	type wrapper struct {
		Before uint8
		Enum   testEnum
		After  uint8
	}
	src := wrapper{Before: 1, Enum: testEnum{variant: 2}, After: 3}
	data, err := Encode(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Fatalf("got %x, expected 010203", data)
	}
	var dest wrapper
	if _, err := Decode(data, &dest); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if dest != src {
		t.Errorf("got %+v, expected %+v", dest, src)
	}
}

func TestDecodeTruncated(t *testing.T) {
	var dest testStruct
	if _, err := Decode([]byte{0x01}, &dest); err == nil {
		t.Error("expected error decoding truncated input")
	}
}

func TestUnsupportedType(t *testing.T) {
	if _, err := Encode(map[string]string{}); !errors.Is(
		err,
		ErrUnsupportedType,
	) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}
