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
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
)

// Encode encodes the specified object to canonical BCS
func Encode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := NewEncoder(buf)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes BCS values to an underlying writer
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new Encoder that writes to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the BCS encoding of v
func (e *Encoder) Encode(v any) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrUnsupportedType)
	}
	return e.encodeValue(reflect.ValueOf(v))
}

// WriteBool writes a bool as a single byte (0x00 or 0x01)
func (e *Encoder) WriteBool(v bool) error {
	b := byte(0)
	if v {
		b = 1
	}
	return e.writeByte(b)
}

// WriteUint8 writes a u8
func (e *Encoder) WriteUint8(v uint8) error {
	return e.writeByte(v)
}

// WriteUint16 writes a u16 in little-endian byte order
func (e *Encoder) WriteUint16(v uint16) error {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	_, err := e.w.Write(tmp[:])
	return err
}

// WriteUint32 writes a u32 in little-endian byte order
func (e *Encoder) WriteUint32(v uint32) error {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	_, err := e.w.Write(tmp[:])
	return err
}

// WriteUint64 writes a u64 in little-endian byte order
func (e *Encoder) WriteUint64(v uint64) error {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	_, err := e.w.Write(tmp[:])
	return err
}

// WriteUleb128 writes an unsigned integer in ULEB128 form. BCS uses this for
// sequence lengths and enum variant indexes
func (e *Encoder) WriteUleb128(v uint64) error {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if err := e.writeByte(b); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// WriteBytes writes a length-prefixed byte sequence
func (e *Encoder) WriteBytes(v []byte) error {
	if err := e.WriteUleb128(uint64(len(v))); err != nil {
		return err
	}
	_, err := e.w.Write(v)
	return err
}

// WriteString writes a length-prefixed UTF-8 string
func (e *Encoder) WriteString(v string) error {
	return e.WriteBytes([]byte(v))
}

// WriteOptionFlag writes the single-byte Option discriminant
func (e *Encoder) WriteOptionFlag(some bool) error {
	return e.WriteBool(some)
}

func (e *Encoder) writeByte(b byte) error {
	_, err := e.w.Write([]byte{b})
	return err
}

var marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()

func (e *Encoder) encodeValue(v reflect.Value) error {
	// Custom marshalers take precedence, except for nil pointers which
	// always encode as Option::None
	if v.Kind() != reflect.Pointer || !v.IsNil() {
		if v.Type().Implements(marshalerType) {
			data, err := v.Interface().(Marshaler).MarshalBCS()
			if err != nil {
				return err
			}
			_, err = e.w.Write(data)
			return err
		}
		if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(marshalerType) {
			data, err := v.Addr().Interface().(Marshaler).MarshalBCS()
			if err != nil {
				return err
			}
			_, err = e.w.Write(data)
			return err
		}
	}
	switch v.Kind() {
	case reflect.Bool:
		return e.WriteBool(v.Bool())
	case reflect.Uint8:
		return e.WriteUint8(uint8(v.Uint()))
	case reflect.Uint16:
		return e.WriteUint16(uint16(v.Uint()))
	case reflect.Uint32:
		return e.WriteUint32(uint32(v.Uint()))
	case reflect.Uint64:
		return e.WriteUint64(v.Uint())
	case reflect.String:
		return e.WriteString(v.String())
	case reflect.Pointer:
		// Pointers encode as Option<T>
		if v.IsNil() {
			return e.WriteOptionFlag(false)
		}
		if err := e.WriteOptionFlag(true); err != nil {
			return err
		}
		return e.encodeValue(v.Elem())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return e.WriteBytes(v.Bytes())
		}
		if err := e.WriteUleb128(uint64(v.Len())); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := e.encodeValue(v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Array:
		// Fixed-size arrays carry no length prefix
		for i := 0; i < v.Len(); i++ {
			if err := e.encodeValue(v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := e.encodeValue(v.Field(i)); err != nil {
				return fmt.Errorf(
					"field %s.%s: %w",
					t.Name(),
					t.Field(i).Name,
					err,
				)
			}
		}
		return nil
	case reflect.Interface:
		if v.IsNil() {
			return fmt.Errorf("%w: nil interface", ErrUnsupportedType)
		}
		return e.encodeValue(v.Elem())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Kind())
	}
}
