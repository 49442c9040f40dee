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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"
)

const (
	// AddressSize is the length in bytes of account addresses and object ids
	AddressSize = 32

	// SignatureSchemeFlagEd25519 prefixes an ed25519 public key when
	// deriving the account address from it
	SignatureSchemeFlagEd25519 uint8 = 0x00
)

// ZeroAddress is the all-zero sender address used for read-only simulation
var ZeroAddress = Address{}

// Address is a 32-byte account address
type Address [AddressSize]byte

// NewAddress returns an Address from the provided bytes
func NewAddress(data []byte) Address {
	a := Address{}
	copy(a[:], data)
	return a
}

// AddressFromHex parses an optionally 0x-prefixed hex string into an Address.
// Short values are left-padded with zeroes
func AddressFromHex(s string) (Address, error) {
	data, err := decodeHex32(s)
	if err != nil {
		return Address{}, err
	}
	return NewAddress(data), nil
}

// AddressFromPublicKey derives the account address for an ed25519 public
// key: BLAKE2b-256 over the signature scheme flag followed by the key bytes.
// The key is rejected if it does not decode to a valid curve point
func AddressFromPublicKey(pub []byte) (Address, error) {
	if len(pub) != 32 {
		return Address{}, fmt.Errorf(
			"%w: ed25519 public key must be 32 bytes, got %d",
			ErrInvalidArgument,
			len(pub),
		)
	}
	if _, err := (&edwards25519.Point{}).SetBytes(pub); err != nil {
		return Address{}, fmt.Errorf(
			"%w: invalid ed25519 public key: %s",
			ErrInvalidArgument,
			err,
		)
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails with a bad key argument
		panic(fmt.Sprintf("unexpected error creating blake2b hash: %s", err))
	}
	h.Write([]byte{SignatureSchemeFlagEd25519})
	h.Write(pub)
	return NewAddress(h.Sum(nil)), nil
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	decoded, err := decodeHex32(tmp)
	if err != nil {
		return err
	}
	copy(a[:], decoded)
	return nil
}

// MarshalBCS encodes the address as 32 raw bytes with no length prefix
func (a Address) MarshalBCS() ([]byte, error) {
	return a[:], nil
}

func (a *Address) UnmarshalBCS(r io.Reader) error {
	_, err := io.ReadFull(r, a[:])
	return err
}

// ObjectID is the 32-byte unique identifier of an on-chain object
type ObjectID [AddressSize]byte

// NewObjectID returns an ObjectID from the provided bytes
func NewObjectID(data []byte) ObjectID {
	o := ObjectID{}
	copy(o[:], data)
	return o
}

// ObjectIDFromHex parses an optionally 0x-prefixed hex string into an
// ObjectID. Short values are left-padded with zeroes
func ObjectIDFromHex(s string) (ObjectID, error) {
	data, err := decodeHex32(s)
	if err != nil {
		return ObjectID{}, err
	}
	return NewObjectID(data), nil
}

func (o ObjectID) String() string {
	return "0x" + hex.EncodeToString(o[:])
}

func (o ObjectID) Bytes() []byte {
	return o[:]
}

func (o ObjectID) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *ObjectID) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	decoded, err := decodeHex32(tmp)
	if err != nil {
		return err
	}
	copy(o[:], decoded)
	return nil
}

// MarshalBCS encodes the object id as 32 raw bytes with no length prefix
func (o ObjectID) MarshalBCS() ([]byte, error) {
	return o[:], nil
}

func (o *ObjectID) UnmarshalBCS(r io.Reader) error {
	_, err := io.ReadFull(r, o[:])
	return err
}

// ObjectRef is a versioned reference to an existing on-chain object
type ObjectRef struct {
	ObjectID ObjectID
	Version  uint64
	Digest   []byte
}

func decodeHex32(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) > AddressSize*2 {
		return nil, fmt.Errorf(
			"%w: hex value %q longer than %d bytes",
			ErrInvalidArgument,
			s,
			AddressSize,
		)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: invalid hex value %q: %s",
			ErrInvalidArgument,
			s,
			err,
		)
	}
	// Left-pad to the full size
	buf := make([]byte, AddressSize)
	copy(buf[AddressSize-len(decoded):], decoded)
	return buf, nil
}
