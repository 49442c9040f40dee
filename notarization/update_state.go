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

// UpdateState replaces the state of an existing dynamic notarization,
// bumping its version counter and state-change timestamp on-chain
type UpdateState struct {
	objectID ledger.ObjectID
	state    State
	cache    txCache
	consumed atomic.Bool
}

// NewUpdateState returns an update-state transaction object
func NewUpdateState(objectID ledger.ObjectID, state State) *UpdateState {
	return &UpdateState{
		objectID: objectID,
		state:    state,
	}
}

// BuildTransaction compiles the update call sequence. The result is cached;
// failures (e.g. a failed object lookup) are not and may be retried
func (u *UpdateState) BuildTransaction(
	ctx context.Context,
	client ReadClient,
) (*ledger.ProgrammableTransaction, error) {
	return u.cache.getOrCompile(
		func() (*ledger.ProgrammableTransaction, error) {
			return buildTransaction(
				ctx,
				client,
				u.objectID,
				methodUpdateState,
				func(b *ledger.Builder) ([]ledger.Argument, error) {
					stateArg, err := u.state.compile(b, client.PackageID())
					if err != nil {
						return nil, err
					}
					clock, err := clockRef(b)
					if err != nil {
						return nil, err
					}
					return []ledger.Argument{stateArg, clock}, nil
				},
			)
		},
	)
}

// Apply consumes the transaction object and checks the submission outcome
func (u *UpdateState) Apply(response *ledger.TransactionResponse) error {
	if !u.consumed.CompareAndSwap(false, true) {
		return fmt.Errorf(
			"%w: update-state transaction was already applied",
			ledger.ErrTransactionConsumed,
		)
	}
	return checkStatus(response)
}
