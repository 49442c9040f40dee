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

// DestroyNotarization deletes an existing notarization, subject to its
// delete lock
type DestroyNotarization struct {
	objectID ledger.ObjectID
	cache    txCache
	consumed atomic.Bool
}

// NewDestroy returns a destroy transaction object
func NewDestroy(objectID ledger.ObjectID) *DestroyNotarization {
	return &DestroyNotarization{
		objectID: objectID,
	}
}

// BuildTransaction compiles the destroy call sequence. The result is cached;
// failures are not and may be retried
func (d *DestroyNotarization) BuildTransaction(
	ctx context.Context,
	client ReadClient,
) (*ledger.ProgrammableTransaction, error) {
	return d.cache.getOrCompile(
		func() (*ledger.ProgrammableTransaction, error) {
			return buildTransaction(
				ctx,
				client,
				d.objectID,
				methodDestroy,
				func(b *ledger.Builder) ([]ledger.Argument, error) {
					clock, err := clockRef(b)
					if err != nil {
						return nil, err
					}
					return []ledger.Argument{clock}, nil
				},
			)
		},
	)
}

// Apply consumes the transaction object and checks the submission outcome
func (d *DestroyNotarization) Apply(response *ledger.TransactionResponse) error {
	if !d.consumed.CompareAndSwap(false, true) {
		return fmt.Errorf(
			"%w: destroy transaction was already applied",
			ledger.ErrTransactionConsumed,
		)
	}
	return checkStatus(response)
}
