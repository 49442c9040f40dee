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
	"fmt"
	"io"

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
)

// Method indicates how a notarization behaves after creation. The numeric
// values are the canonical enum variant indexes and must not be reordered
type Method uint8

const (
	// MethodDynamic notarizations can be updated and optionally
	// transferred
	MethodDynamic Method = iota
	// MethodLocked notarizations are immutable after creation
	MethodLocked
)

func (m Method) String() string {
	switch m {
	case MethodDynamic:
		return "Dynamic"
	case MethodLocked:
		return "Locked"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// MarshalBCS encodes the method as its variant index
func (m Method) MarshalBCS() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := bcs.NewEncoder(buf).WriteUleb128(uint64(m)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Method) UnmarshalBCS(r io.Reader) error {
	variant, err := bcs.NewDecoder(r).ReadUleb128()
	if err != nil {
		return err
	}
	switch Method(variant) {
	case MethodDynamic, MethodLocked:
		*m = Method(variant)
	default:
		return fmt.Errorf(
			"%w: unknown notarization method variant %d",
			ledger.ErrInvalidArgument,
			variant,
		)
	}
	return nil
}

// ImmutableMetadata is the part of a notarization fixed at creation
type ImmutableMetadata struct {
	// CreatedAt is the creation timestamp
	CreatedAt uint64
	// Description is an optional permanent description
	Description *string
	// Locking holds the access locks, if any
	Locking *LockMetadata
}

// OnChainNotarization is the materialized read model of a notarization
// record. It is only ever produced by decoding a ledger response
type OnChainNotarization struct {
	// ID is the unique identifier of the record
	ID ledger.ObjectID
	// State is the attested content
	State State
	// ImmutableMetadata is fixed at creation
	ImmutableMetadata ImmutableMetadata
	// UpdatableMetadata may change after creation
	UpdatableMetadata *string
	// LastStateChangeAt is the timestamp of the most recent state change
	LastStateChangeAt uint64
	// StateVersionCount is the number of state changes
	StateVersionCount uint64
	// Method is the notarization method
	Method Method
}
