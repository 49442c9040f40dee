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

package mock

import (
	"context"
	"testing"

	"github.com/notarylabs/gonotary/ledger"
	"github.com/notarylabs/gonotary/notarization"
)

// Malformed call sequences must surface as failed effects, never as a panic
func TestExecuteMalformedMutation(t *testing.T) {
	objectID := ledger.ObjectID{31: 0x01}
	m := NewLedgerClient(1700000000)
	m.objects[objectID] = &record{
		notarization: notarization.OnChainNotarization{
			ID:    objectID,
			State: notarization.NewStateFromBytes([]byte{0x00}, nil),
			ImmutableMetadata: notarization.ImmutableMetadata{
				CreatedAt: 1700000000,
			},
			LastStateChangeAt: 1700000000,
			Method:            notarization.MethodDynamic,
		},
		version: 1,
	}

	for _, function := range []string{"update_state", "update_metadata"} {
		b := ledger.NewBuilder()
		obj, err := b.Object(ledger.ObjectArg{
			ImmOrOwned: &ledger.ObjectRef{ObjectID: objectID, Version: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		// The value argument is missing
		b.MoveCall(
			packageID(),
			"notarization",
			function,
			nil,
			[]ledger.Argument{obj},
		)
		response, err := m.ExecuteTransaction(context.Background(), b.Finish())
		if err != nil {
			t.Fatalf("%s: unexpected transport error: %s", function, err)
		}
		if response.Effects.Status.Success {
			t.Errorf("%s: expected failed effects for malformed call", function)
		}
	}
}
