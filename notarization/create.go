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

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
)

// CreateNotarization compiles and materializes the creation of a new
// notarization. Produced by LockedBuilder.Finish or DynamicBuilder.Finish,
// never constructed directly
type CreateNotarization struct {
	method   Method
	core     builderCore
	cache    txCache
	consumed atomic.Bool
}

func newCreateNotarization(method Method, core builderCore) *CreateNotarization {
	return &CreateNotarization{
		method: method,
		core:   core,
	}
}

// Method returns the notarization method the transaction was built for
func (c *CreateNotarization) Method() Method {
	return c.method
}

// lockMetadata derives the lock metadata for the configured method. Dynamic
// notarizations without a transfer lock carry no lock metadata at all rather
// than an all-open structure
func (c *CreateNotarization) lockMetadata() *LockMetadata {
	if c.method == MethodLocked {
		deleteLock := NoLock()
		if c.core.deleteLock != nil {
			deleteLock = *c.core.deleteLock
		}
		return &LockMetadata{
			UpdateLock:   UntilDestroyed(),
			DeleteLock:   deleteLock,
			TransferLock: UntilDestroyed(),
		}
	}
	if c.core.transferLock == nil {
		return nil
	}
	return &LockMetadata{
		UpdateLock:   NoLock(),
		DeleteLock:   NoLock(),
		TransferLock: *c.core.transferLock,
	}
}

// dynamicInvariantsOK reports whether lock metadata is legal for a dynamic
// notarization: either absent entirely, or open for update and delete with a
// real transfer lock
func dynamicInvariantsOK(meta *LockMetadata) bool {
	if meta == nil {
		return true
	}
	return meta.UpdateLock.IsNone() &&
		meta.DeleteLock.IsNone() &&
		!meta.TransferLock.IsNone()
}

// lockedInvariantsOK reports whether lock metadata is legal for a locked
// notarization: it must exist with update and transfer locked until
// destruction. The delete lock is unconstrained
func lockedInvariantsOK(meta *LockMetadata) bool {
	if meta == nil {
		return false
	}
	return meta.UpdateLock.Kind == TimeLockUntilDestroyed &&
		meta.TransferLock.Kind == TimeLockUntilDestroyed
}

// validate checks the configuration before any compile work: required state
// first, then method/lock compatibility, then the derived lock-metadata
// invariants
func (c *CreateNotarization) validate() error {
	if c.core.state == nil {
		return fmt.Errorf(
			"%w: state must be set before creating a notarization",
			ledger.ErrInvalidArgument,
		)
	}
	switch c.method {
	case MethodDynamic:
		if c.core.deleteLock != nil {
			return fmt.Errorf(
				"%w: delete locks are not available for dynamic notarizations",
				ledger.ErrInvalidArgument,
			)
		}
	case MethodLocked:
		if c.core.transferLock != nil {
			return fmt.Errorf(
				"%w: transfer locks are not available for locked notarizations",
				ledger.ErrInvalidArgument,
			)
		}
	}
	meta := c.lockMetadata()
	if c.method == MethodLocked {
		if !lockedInvariantsOK(meta) {
			return fmt.Errorf(
				"%w: locked notarizations must lock updates and transfers until destroyed",
				ledger.ErrInvalidArgument,
			)
		}
	} else if !dynamicInvariantsOK(meta) {
		return fmt.Errorf(
			"%w: dynamic notarizations only support a transfer lock",
			ledger.ErrInvalidArgument,
		)
	}
	return nil
}

// createLock returns the single lock the contract's create entry point takes:
// the delete lock for locked notarizations, the transfer lock for dynamic
func (c *CreateNotarization) createLock() TimeLock {
	if c.method == MethodLocked {
		if c.core.deleteLock != nil {
			return *c.core.deleteLock
		}
		return NoLock()
	}
	if c.core.transferLock != nil {
		return *c.core.transferLock
	}
	return NoLock()
}

// BuildTransaction validates the configuration and compiles the creation
// call sequence. The compiled transaction is cached; invalid configurations
// fail before any work and are never cached
func (c *CreateNotarization) BuildTransaction(
	client ReadClient,
) (*ledger.ProgrammableTransaction, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c.cache.getOrCompile(
		func() (*ledger.ProgrammableTransaction, error) {
			return newCreateTx(
				client.PackageID(),
				c.method,
				*c.core.state,
				c.createLock(),
				c.core.immutableDescription,
				c.core.updatableMetadata,
			)
		},
	)
}

// Apply consumes the transaction object and materializes the created
// notarization from the submission response: it reads the new object's id
// from the first emitted event and fetches the full record. A transaction
// can be applied at most once
func (c *CreateNotarization) Apply(
	ctx context.Context,
	client ReadClient,
	response *ledger.TransactionResponse,
) (*OnChainNotarization, error) {
	if !c.consumed.CompareAndSwap(false, true) {
		return nil, fmt.Errorf(
			"%w: create transaction was already applied",
			ledger.ErrTransactionConsumed,
		)
	}
	if err := checkStatus(response); err != nil {
		return nil, err
	}
	objectID, err := createdObjectID(&response.Events, c.method)
	if err != nil {
		return nil, err
	}
	return FetchNotarization(ctx, client, objectID)
}

// checkStatus surfaces an on-chain execution failure as an error
func checkStatus(response *ledger.TransactionResponse) error {
	if response == nil {
		return fmt.Errorf(
			"%w: missing transaction response",
			ledger.ErrTransactionResponse,
		)
	}
	if !response.Effects.Status.Success {
		return fmt.Errorf(
			"%w: transaction failed: %s",
			ledger.ErrTransactionResponse,
			response.Effects.Status.Error,
		)
	}
	return nil
}

// FetchNotarization resolves a notarization object by id and decodes its
// canonical content
func FetchNotarization(
	ctx context.Context,
	client ledger.Client,
	objectID ledger.ObjectID,
) (*OnChainNotarization, error) {
	data, err := client.GetObject(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: could not get notarization %s: %s",
			ledger.ErrObjectLookup,
			objectID,
			err,
		)
	}
	var ret OnChainNotarization
	if _, err := bcs.Decode(data.BCS, &ret); err != nil {
		return nil, fmt.Errorf(
			"%w: could not decode notarization %s: %s",
			ledger.ErrUnexpectedResponse,
			objectID,
			err,
		)
	}
	return &ret, nil
}
