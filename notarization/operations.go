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

	"github.com/notarylabs/gonotary/ledger"
)

// Contract module names
const (
	moduleNotarization = "notarization"
	moduleLocked       = "locked_notarization"
	moduleDynamic      = "dynamic_notarization"
)

// Method names on the notarization module. Mutations take the clock as a
// trailing argument so the contract can evaluate time locks; accessors do not
const (
	methodUpdateState        = "update_state"
	methodUpdateMetadata     = "update_metadata"
	methodDestroy            = "destroy"
	methodDescription        = "description"
	methodUpdatableMetadata  = "updatable_metadata"
	methodCreatedAt          = "created_at"
	methodLastChange         = "last_change"
	methodVersionCount       = "version_count"
	methodState              = "state"
	methodNotarizationMethod = "notarization_method"
	methodIsUpdateLocked     = "is_update_locked"
	methodIsDestroyAllowed   = "is_destroy_allowed"
	methodIsTransferLocked   = "is_transfer_locked"
	methodLockMetadata       = "lock_metadata"
	methodCreate             = "create"
	methodTransfer           = "transfer"
)

// ReadClient is the client surface needed to compile and inspect
// notarization transactions: a ledger connection plus the resolved contract
// package for its network
type ReadClient interface {
	ledger.Client
	// PackageID returns the notarization contract package on the connected
	// network
	PackageID() ledger.ObjectID
	// Network returns the resolved network name
	Network() string
}

// pure serializes a value into a transaction input, naming the value in the
// error so compile failures point at the offending field
func pure(
	b *ledger.Builder,
	name string,
	value any,
) (ledger.Argument, error) {
	arg, err := b.Pure(value)
	if err != nil {
		return ledger.Argument{}, fmt.Errorf(
			"%w: could not serialize pure value %s with value %+v: %s",
			ledger.ErrInvalidArgument,
			name,
			value,
			err,
		)
	}
	return arg, nil
}

// clockRef adds the shared clock object as a read-only input
func clockRef(b *ledger.Builder) (ledger.Argument, error) {
	return b.Object(
		ledger.ObjectArg{
			Shared: &ledger.SharedObjectArg{
				ObjectID:             ledger.ClockObjectID,
				InitialSharedVersion: ledger.ClockObjectSharedVersion,
				Mutable:              false,
			},
		},
	)
}

// typeTag resolves the generic state type of an existing notarization from
// its full on-chain type string
func typeTag(
	ctx context.Context,
	client ledger.Client,
	objectID ledger.ObjectID,
) (ledger.TypeTag, error) {
	data, err := client.GetObject(ctx, objectID)
	if err != nil {
		return "", fmt.Errorf(
			"%w: could not get object %s: %s",
			ledger.ErrObjectLookup,
			objectID,
			err,
		)
	}
	tag, err := ledger.ParseTypeParam(data.Type)
	if err != nil {
		return "", err
	}
	return ledger.TypeTag(tag), nil
}

// objectRef resolves the current versioned reference of an object
func objectRef(
	ctx context.Context,
	client ledger.Client,
	objectID ledger.ObjectID,
) (ledger.ObjectRef, error) {
	data, err := client.GetObject(ctx, objectID)
	if err != nil {
		return ledger.ObjectRef{}, fmt.Errorf(
			"%w: could not get object %s: %s",
			ledger.ErrObjectLookup,
			objectID,
			err,
		)
	}
	return data.Ref(), nil
}

// buildTransaction compiles a single call on an existing notarization: the
// object itself is the first argument, extraArgs supplies the rest, and the
// call is parameterized by the object's resolved state type
func buildTransaction(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
	method string,
	extraArgs func(b *ledger.Builder) ([]ledger.Argument, error),
) (*ledger.ProgrammableTransaction, error) {
	tag, err := typeTag(ctx, client, objectID)
	if err != nil {
		return nil, err
	}
	ref, err := objectRef(ctx, client, objectID)
	if err != nil {
		return nil, err
	}
	b := ledger.NewBuilder()
	obj, err := b.Object(ledger.ObjectArg{ImmOrOwned: &ref})
	if err != nil {
		return nil, err
	}
	args := []ledger.Argument{obj}
	if extraArgs != nil {
		extra, err := extraArgs(b)
		if err != nil {
			return nil, err
		}
		args = append(args, extra...)
	}
	b.MoveCall(
		client.PackageID(),
		moduleNotarization,
		method,
		[]ledger.TypeTag{tag},
		args,
	)
	return b.Finish(), nil
}

// newCreateTx compiles a creation transaction: the state and lock are
// constructed by earlier commands whose results feed the final create call
func newCreateTx(
	packageID ledger.ObjectID,
	method Method,
	state State,
	lock TimeLock,
	immutableDescription *string,
	updatableMetadata *string,
) (*ledger.ProgrammableTransaction, error) {
	b := ledger.NewBuilder()
	stateArg, err := state.compile(b, packageID)
	if err != nil {
		return nil, err
	}
	descriptionArg, err := pure(b, "immutable_description", immutableDescription)
	if err != nil {
		return nil, err
	}
	metadataArg, err := pure(b, "updatable_metadata", updatableMetadata)
	if err != nil {
		return nil, err
	}
	lockArg, err := lock.compile(b, packageID)
	if err != nil {
		return nil, err
	}
	clock, err := clockRef(b)
	if err != nil {
		return nil, err
	}
	module := moduleDynamic
	if method == MethodLocked {
		module = moduleLocked
	}
	b.MoveCall(
		packageID,
		module,
		methodCreate,
		[]ledger.TypeTag{state.Data.Tag()},
		[]ledger.Argument{stateArg, descriptionArg, metadataArg, lockArg, clock},
	)
	return b.Finish(), nil
}

// Accessor transactions. Each compiles a single zero-argument read call on
// an existing notarization; the caller simulates it and decodes the return
// value

// DescriptionTx compiles a read of the immutable description
func DescriptionTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodDescription, nil)
}

// UpdatableMetadataTx compiles a read of the updatable metadata
func UpdatableMetadataTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodUpdatableMetadata, nil)
}

// CreatedAtTx compiles a read of the creation timestamp
func CreatedAtTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodCreatedAt, nil)
}

// LastStateChangeTx compiles a read of the last state-change timestamp
func LastStateChangeTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodLastChange, nil)
}

// VersionCountTx compiles a read of the state version counter
func VersionCountTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodVersionCount, nil)
}

// StateTx compiles a read of the current state
func StateTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodState, nil)
}

// MethodTx compiles a read of the notarization method
func MethodTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodNotarizationMethod, nil)
}

// LockMetadataTx compiles a read of the lock metadata
func LockMetadataTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(ctx, client, objectID, methodLockMetadata, nil)
}

// IsUpdateLockedTx compiles a read of the update-lock predicate. Predicate
// calls take the clock so the contract can evaluate time locks
func IsUpdateLockedTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(
		ctx,
		client,
		objectID,
		methodIsUpdateLocked,
		clockArgs,
	)
}

// IsDestroyAllowedTx compiles a read of the destroy-allowed predicate
func IsDestroyAllowedTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(
		ctx,
		client,
		objectID,
		methodIsDestroyAllowed,
		clockArgs,
	)
}

// IsTransferLockedTx compiles a read of the transfer-lock predicate
func IsTransferLockedTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
) (*ledger.ProgrammableTransaction, error) {
	return buildTransaction(
		ctx,
		client,
		objectID,
		methodIsTransferLocked,
		clockArgs,
	)
}

func clockArgs(b *ledger.Builder) ([]ledger.Argument, error) {
	clock, err := clockRef(b)
	if err != nil {
		return nil, err
	}
	return []ledger.Argument{clock}, nil
}

// transferTx compiles a transfer of a dynamic notarization to a recipient
func transferTx(
	ctx context.Context,
	client ReadClient,
	objectID ledger.ObjectID,
	recipient ledger.Address,
) (*ledger.ProgrammableTransaction, error) {
	tag, err := typeTag(ctx, client, objectID)
	if err != nil {
		return nil, err
	}
	ref, err := objectRef(ctx, client, objectID)
	if err != nil {
		return nil, err
	}
	b := ledger.NewBuilder()
	obj, err := b.Object(ledger.ObjectArg{ImmOrOwned: &ref})
	if err != nil {
		return nil, err
	}
	recipientArg, err := pure(b, "recipient", recipient)
	if err != nil {
		return nil, err
	}
	clock, err := clockRef(b)
	if err != nil {
		return nil, err
	}
	b.MoveCall(
		client.PackageID(),
		moduleDynamic,
		methodTransfer,
		[]ledger.TypeTag{tag},
		[]ledger.Argument{obj, recipientArg, clock},
	)
	return b.Finish(), nil
}
