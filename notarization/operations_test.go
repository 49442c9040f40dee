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
	"context"
	"fmt"
	"testing"

	"github.com/notarylabs/gonotary/ledger"
)

// Accessor calls must target the contract's exported function names exactly;
// a renamed call compiles fine but fails against a real deployment
func TestAccessorFunctionNames(t *testing.T) {
	objectID := ledger.ObjectID{31: 0x07}
	client := newStubClient()
	client.objects[objectID] = &ledger.ObjectData{
		ObjectID: objectID,
		Version:  1,
		Type: fmt.Sprintf(
			"%s::notarization::Notarization<vector<u8>>",
			testPackageID,
		),
	}
	type accessorTx func(
		context.Context,
		ReadClient,
		ledger.ObjectID,
	) (*ledger.ProgrammableTransaction, error)
	testDefs := []struct {
		compile  accessorTx
		expected string
	}{
		{DescriptionTx, "description"},
		{UpdatableMetadataTx, "updatable_metadata"},
		{CreatedAtTx, "created_at"},
		{LastStateChangeTx, "last_change"},
		{VersionCountTx, "version_count"},
		{StateTx, "state"},
		{MethodTx, "notarization_method"},
		{LockMetadataTx, "lock_metadata"},
		{IsUpdateLockedTx, "is_update_locked"},
		{IsDestroyAllowedTx, "is_destroy_allowed"},
		{IsTransferLockedTx, "is_transfer_locked"},
	}
	for _, testDef := range testDefs {
		tx, err := testDef.compile(context.Background(), client, objectID)
		if err != nil {
			t.Fatalf(
				"unexpected error compiling %s: %s",
				testDef.expected,
				err,
			)
		}
		last := tx.Commands[len(tx.Commands)-1]
		if last.Function != testDef.expected {
			t.Errorf(
				"compiled call targets %q, contract exposes %q",
				last.Function,
				testDef.expected,
			)
		}
		if last.Module != moduleNotarization {
			t.Errorf(
				"accessor %s compiled on module %q, expected %q",
				testDef.expected,
				last.Module,
				moduleNotarization,
			)
		}
	}
}
