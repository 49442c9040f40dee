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
	"sync/atomic"

	"github.com/notarylabs/gonotary/ledger"
)

// TransferNotarization moves a dynamic notarization to a new owner, subject
// to its transfer lock. Locked notarizations can never be transferred
type TransferNotarization struct {
	objectID  ledger.ObjectID
	recipient ledger.Address
	cache     txCache
	consumed  atomic.Bool
}

// NewTransfer returns a transfer transaction object
func NewTransfer(
	objectID ledger.ObjectID,
	recipient ledger.Address,
) *TransferNotarization {
	return &TransferNotarization{
		objectID:  objectID,
		recipient: recipient,
	}
}

// BuildTransaction compiles the transfer call sequence. The result is
// cached; failures are not and may be retried
func (t *TransferNotarization) BuildTransaction(
	ctx context.Context,
	client ReadClient,
) (*ledger.ProgrammableTransaction, error) {
	return t.cache.getOrCompile(
		func() (*ledger.ProgrammableTransaction, error) {
			return transferTx(ctx, client, t.objectID, t.recipient)
		},
	)
}

// Apply consumes the transaction object and checks the submission outcome
func (t *TransferNotarization) Apply(
	response *ledger.TransactionResponse,
) error {
	if !t.consumed.CompareAndSwap(false, true) {
		return fmt.Errorf(
			"%w: transfer transaction was already applied",
			ledger.ErrTransactionConsumed,
		)
	}
	return checkStatus(response)
}
