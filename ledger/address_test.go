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
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressHexRoundTrip(t *testing.T) {
	orig := "0x1f00000000000000000000000000000000000000000000000000000000000042"
	addr, err := AddressFromHex(orig)
	require.NoError(t, err)
	require.Equal(t, orig, addr.String())
}

func TestAddressFromHexShortValue(t *testing.T) {
	addr, err := AddressFromHex("0x6")
	require.NoError(t, err)
	require.Equal(t, ClockObjectID.Bytes(), addr.Bytes())
}

func TestAddressFromHexInvalid(t *testing.T) {
	_, err := AddressFromHex("0xzz")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	_, err = AddressFromHex(
		"0x010203040506070809000102030405060708090001020304050607080900010203",
	)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for oversize value, got %v", err)
	}
}

func TestObjectIDJSON(t *testing.T) {
	id, err := ObjectIDFromHex("0xabcd")
	require.NoError(t, err)
	data, err := json.Marshal(id)
	require.NoError(t, err)
	var decoded ObjectID
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, id, decoded)
}

func TestAddressFromPublicKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	addr, err := AddressFromPublicKey(pub)
	require.NoError(t, err)
	require.NotEqual(t, ZeroAddress, addr)
	// Derivation is deterministic
	addr2, err := AddressFromPublicKey(pub)
	require.NoError(t, err)
	require.Equal(t, addr, addr2)
}

func TestAddressFromPublicKeyBadLength(t *testing.T) {
	_, err := AddressFromPublicKey([]byte{0x01, 0x02})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
