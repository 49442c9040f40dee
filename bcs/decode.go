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

// Decode decodes the specified BCS data into the destination object. It
// returns the number of bytes consumed
func Decode(data []byte, dest any) (int, error) {
	r := bytes.NewReader(data)
	dec := NewDecoder(r)
	if err := dec.Decode(dest); err != nil {
		return dec.BytesRead(), err
	}
	return dec.BytesRead(), nil
}

// Decoder reads BCS values from an underlying reader
type Decoder struct {
	r *countingReader
}

// NewDecoder returns a new Decoder that reads from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: &countingReader{r: r}}
}

// BytesRead returns the number of bytes consumed so far
func (d *Decoder) BytesRead() int {
	return d.r.count
}

// Decode reads the BCS encoding of the value pointed to by dest
func (d *Decoder) Decode(dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf(
			"%w: destination must be a non-nil pointer",
			ErrUnsupportedType,
		)
	}
	return d.decodeValue(v.Elem())
}

// ReadBool reads a single-byte bool
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x", ErrInvalidOptionFlag, b)
	}
}

// ReadUint8 reads a u8
func (d *Decoder) ReadUint8() (uint8, error) {
	return d.readByte()
}

// ReadUint16 reads a little-endian u16
func (d *Decoder) ReadUint16() (uint16, error) {
	var tmp [2]byte
	if _, err := io.ReadFull(d.r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(tmp[:]), nil
}

// ReadUint32 reads a little-endian u32
func (d *Decoder) ReadUint32() (uint32, error) {
	var tmp [4]byte
	if _, err := io.ReadFull(d.r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(tmp[:]), nil
}

// ReadUint64 reads a little-endian u64
func (d *Decoder) ReadUint64() (uint64, error) {
	var tmp [8]byte
	if _, err := io.ReadFull(d.r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(tmp[:]), nil
}

// ReadUleb128 reads a ULEB128-encoded unsigned integer
func (d *Decoder) ReadUleb128() (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxUleb128Bytes; i++ {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, fmt.Errorf("%w: ULEB128 value too large", ErrSequenceTooLong)
}

// ReadBytes reads a length-prefixed byte sequence
func (d *Decoder) ReadBytes() ([]byte, error) {
	length, err := d.ReadUleb128()
	if err != nil {
		return nil, err
	}
	if length > MaxSequenceLength {
		return nil, fmt.Errorf("%w: %d", ErrSequenceTooLong, length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadString reads a length-prefixed UTF-8 string
func (d *Decoder) ReadString() (string, error) {
	buf, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadOptionFlag reads the single-byte Option discriminant
func (d *Decoder) ReadOptionFlag() (bool, error) {
	return d.ReadBool()
}

func (d *Decoder) readByte() (byte, error) {
	var tmp [1]byte
	if _, err := io.ReadFull(d.r, tmp[:]); err != nil {
		return 0, err
	}
	return tmp[0], nil
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

func (d *Decoder) decodeValue(v reflect.Value) error {
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(unmarshalerType) {
		return v.Addr().Interface().(Unmarshaler).UnmarshalBCS(d.r)
	}
	switch v.Kind() {
	case reflect.Bool:
		val, err := d.ReadBool()
		if err != nil {
			return err
		}
		v.SetBool(val)
		return nil
	case reflect.Uint8:
		val, err := d.ReadUint8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(val))
		return nil
	case reflect.Uint16:
		val, err := d.ReadUint16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(val))
		return nil
	case reflect.Uint32:
		val, err := d.ReadUint32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(val))
		return nil
	case reflect.Uint64:
		val, err := d.ReadUint64()
		if err != nil {
			return err
		}
		v.SetUint(val)
		return nil
	case reflect.String:
		val, err := d.ReadString()
		if err != nil {
			return err
		}
		v.SetString(val)
		return nil
	case reflect.Pointer:
		// Pointers decode as Option<T>
		some, err := d.ReadOptionFlag()
		if err != nil {
			return err
		}
		if !some {
			v.SetZero()
			return nil
		}
		elem := reflect.New(v.Type().Elem())
		if err := d.decodeValue(elem.Elem()); err != nil {
			return err
		}
		v.Set(elem)
		return nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			buf, err := d.ReadBytes()
			if err != nil {
				return err
			}
			v.SetBytes(buf)
			return nil
		}
		length, err := d.ReadUleb128()
		if err != nil {
			return err
		}
		if length > MaxSequenceLength {
			return fmt.Errorf("%w: %d", ErrSequenceTooLong, length)
		}
		tmpSlice := reflect.MakeSlice(v.Type(), int(length), int(length))
		for i := 0; i < int(length); i++ {
			if err := d.decodeValue(tmpSlice.Index(i)); err != nil {
				return err
			}
		}
		v.Set(tmpSlice)
		return nil
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := d.decodeValue(v.Index(i)); err != nil {
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
			if err := d.decodeValue(v.Field(i)); err != nil {
				return fmt.Errorf(
					"field %s.%s: %w",
					t.Name(),
					t.Field(i).Name,
					err,
				)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Kind())
	}
}

// countingReader tracks the number of bytes consumed from the wrapped reader
type countingReader struct {
	r     io.Reader
	count int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += n
	return n, err
}
