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

// UpdateMetadata replaces the updatable metadata of an existing dynamic
// notarization. Metadata changes do not bump the state version counter
type UpdateMetadata struct {
	objectID ledger.ObjectID
	metadata *string
	cache    txCache
	consumed atomic.Bool
}

// NewUpdateMetadata returns an update-metadata transaction object. A nil
// metadata clears the field
func NewUpdateMetadata(
	objectID ledger.ObjectID,
	metadata *string,
) *UpdateMetadata {
	return &UpdateMetadata{
		objectID: objectID,
		metadata: metadata,
	}
}

// BuildTransaction compiles the update call sequence. The result is cached;
// failures are not and may be retried
func (u *UpdateMetadata) BuildTransaction(
	ctx context.Context,
	client ReadClient,
) (*ledger.ProgrammableTransaction, error) {
	return u.cache.getOrCompile(
		func() (*ledger.ProgrammableTransaction, error) {
			return buildTransaction(
				ctx,
				client,
				u.objectID,
				methodUpdateMetadata,
				func(b *ledger.Builder) ([]ledger.Argument, error) {
					metadataArg, err := pure(b, "metadata", u.metadata)
					if err != nil {
						return nil, err
					}
					clock, err := clockRef(b)
					if err != nil {
						return nil, err
					}
					return []ledger.Argument{metadataArg, clock}, nil
				},
			)
		},
	)
}

// Apply consumes the transaction object and checks the submission outcome
func (u *UpdateMetadata) Apply(response *ledger.TransactionResponse) error {
	if !u.consumed.CompareAndSwap(false, true) {
		return fmt.Errorf(
			"%w: update-metadata transaction was already applied",
			ledger.ErrTransactionConsumed,
		)
	}
	return checkStatus(response)
}
