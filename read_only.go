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

package gonotary

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
	"github.com/notarylabs/gonotary/notarization"
	"github.com/notarylabs/gonotary/registry"
)

// ReadOnlyClient reads notarization records without submitting transactions.
// Accessor calls are compiled like mutating calls but executed via the
// ledger's simulation from a zero-valued sender, so no signer is needed
type ReadOnlyClient struct {
	ledger.Client
	logger    *slog.Logger
	registry  *registry.Registry
	network   string
	packageID ledger.ObjectID
}

// NewReadOnlyClient returns a read-only client for the given upstream
// connection, resolving the contract package from the connected chain's
// identity
func NewReadOnlyClient(
	ctx context.Context,
	upstream ledger.Client,
	options ...ClientOptionFunc,
) (*ReadOnlyClient, error) {
	c := newReadOnlyClient(upstream, options...)
	network, err := c.resolveNetwork(ctx)
	if err != nil {
		return nil, err
	}
	packageID, err := c.registry.PackageID(network)
	if err != nil {
		return nil, err
	}
	c.network = network
	c.packageID = packageID
	c.logger.Debug(
		"resolved notarization package",
		"network", network,
		"package_id", packageID.String(),
	)
	return c, nil
}

// NewReadOnlyClientWithPackageID returns a read-only client pinned to an
// explicit contract package, registering it as an override for the connected
// network
func NewReadOnlyClientWithPackageID(
	ctx context.Context,
	upstream ledger.Client,
	packageID ledger.ObjectID,
	options ...ClientOptionFunc,
) (*ReadOnlyClient, error) {
	c := newReadOnlyClient(upstream, options...)
	network, err := c.resolveNetwork(ctx)
	if err != nil {
		return nil, err
	}
	c.registry.Register(network, packageID)
	c.network = network
	c.packageID = packageID
	c.logger.Debug(
		"registered notarization package override",
		"network", network,
		"package_id", packageID.String(),
	)
	return c, nil
}

func newReadOnlyClient(
	upstream ledger.Client,
	options ...ClientOptionFunc,
) *ReadOnlyClient {
	c := &ReadOnlyClient{
		Client:   upstream,
		registry: registry.Default(),
	}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// resolveNetwork maps the chain identifier reported by the node to a network
// name. Unknown identifiers are used verbatim so locally deployed networks
// can be registered under their raw chain id
func (c *ReadOnlyClient) resolveNetwork(ctx context.Context) (string, error) {
	chainID, err := c.ChainIdentifier(ctx)
	if err != nil {
		return "", fmt.Errorf(
			"%w: could not resolve chain identifier: %s",
			ledger.ErrUnexpectedResponse,
			err,
		)
	}
	if network, ok := c.registry.ChainAlias(chainID); ok {
		return network, nil
	}
	return chainID, nil
}

// PackageID returns the notarization contract package on the connected
// network
func (c *ReadOnlyClient) PackageID() ledger.ObjectID {
	return c.packageID
}

// Network returns the resolved network name
func (c *ReadOnlyClient) Network() string {
	return c.network
}

// GetNotarizationByID fetches and decodes a full notarization record
func (c *ReadOnlyClient) GetNotarizationByID(
	ctx context.Context,
	objectID ledger.ObjectID,
) (*notarization.OnChainNotarization, error) {
	return notarization.FetchNotarization(ctx, c, objectID)
}

// Description reads the immutable description
func (c *ReadOnlyClient) Description(
	ctx context.Context,
	objectID ledger.ObjectID,
) (*string, error) {
	tx, err := notarization.DescriptionTx(ctx, c, objectID)
	if err != nil {
		return nil, err
	}
	return inspect[*string](ctx, c, tx)
}

// UpdatableMetadata reads the updatable metadata
func (c *ReadOnlyClient) UpdatableMetadata(
	ctx context.Context,
	objectID ledger.ObjectID,
) (*string, error) {
	tx, err := notarization.UpdatableMetadataTx(ctx, c, objectID)
	if err != nil {
		return nil, err
	}
	return inspect[*string](ctx, c, tx)
}

// CreatedAt reads the creation timestamp
func (c *ReadOnlyClient) CreatedAt(
	ctx context.Context,
	objectID ledger.ObjectID,
) (uint64, error) {
	tx, err := notarization.CreatedAtTx(ctx, c, objectID)
	if err != nil {
		return 0, err
	}
	return inspect[uint64](ctx, c, tx)
}

// LastStateChange reads the timestamp of the most recent state change
func (c *ReadOnlyClient) LastStateChange(
	ctx context.Context,
	objectID ledger.ObjectID,
) (uint64, error) {
	tx, err := notarization.LastStateChangeTx(ctx, c, objectID)
	if err != nil {
		return 0, err
	}
	return inspect[uint64](ctx, c, tx)
}

// StateVersionCount reads the number of state changes
func (c *ReadOnlyClient) StateVersionCount(
	ctx context.Context,
	objectID ledger.ObjectID,
) (uint64, error) {
	tx, err := notarization.VersionCountTx(ctx, c, objectID)
	if err != nil {
		return 0, err
	}
	return inspect[uint64](ctx, c, tx)
}

// NotarizationMethod reads the notarization method
func (c *ReadOnlyClient) NotarizationMethod(
	ctx context.Context,
	objectID ledger.ObjectID,
) (notarization.Method, error) {
	tx, err := notarization.MethodTx(ctx, c, objectID)
	if err != nil {
		return 0, err
	}
	return inspect[notarization.Method](ctx, c, tx)
}

// LockMetadata reads the lock metadata, if any
func (c *ReadOnlyClient) LockMetadata(
	ctx context.Context,
	objectID ledger.ObjectID,
) (*notarization.LockMetadata, error) {
	tx, err := notarization.LockMetadataTx(ctx, c, objectID)
	if err != nil {
		return nil, err
	}
	return inspect[*notarization.LockMetadata](ctx, c, tx)
}

// IsUpdateLocked reports whether state updates are currently locked
func (c *ReadOnlyClient) IsUpdateLocked(
	ctx context.Context,
	objectID ledger.ObjectID,
) (bool, error) {
	tx, err := notarization.IsUpdateLockedTx(ctx, c, objectID)
	if err != nil {
		return false, err
	}
	return inspect[bool](ctx, c, tx)
}

// IsDestroyAllowed reports whether the record may currently be destroyed
func (c *ReadOnlyClient) IsDestroyAllowed(
	ctx context.Context,
	objectID ledger.ObjectID,
) (bool, error) {
	tx, err := notarization.IsDestroyAllowedTx(ctx, c, objectID)
	if err != nil {
		return false, err
	}
	return inspect[bool](ctx, c, tx)
}

// IsTransferLocked reports whether ownership transfer is currently locked
func (c *ReadOnlyClient) IsTransferLocked(
	ctx context.Context,
	objectID ledger.ObjectID,
) (bool, error) {
	tx, err := notarization.IsTransferLockedTx(ctx, c, objectID)
	if err != nil {
		return false, err
	}
	return inspect[bool](ctx, c, tx)
}

// State reads the current state. The payload type of a notarization is not
// known in advance, so the object's type tag is resolved first to pick the
// decode shape; unrecognized tags are a hard error, never a fallback
func (c *ReadOnlyClient) State(
	ctx context.Context,
	objectID ledger.ObjectID,
) (*notarization.State, error) {
	data, err := c.GetObject(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: could not get object %s: %s",
			ledger.ErrObjectLookup,
			objectID,
			err,
		)
	}
	param, err := ledger.ParseTypeParam(data.Type)
	if err != nil {
		return nil, err
	}
	tag := ledger.TypeTag(param)
	tx, err := notarization.StateTx(ctx, c, objectID)
	if err != nil {
		return nil, err
	}
	switch {
	case tag.IsVectorU8():
		raw, err := inspect[rawState[[]byte]](ctx, c, tx)
		if err != nil {
			return nil, err
		}
		state := notarization.NewStateFromBytes(raw.Data, raw.Metadata)
		return &state, nil
	case tag.IsString():
		raw, err := inspect[rawState[string]](ctx, c, tx)
		if err != nil {
			return nil, err
		}
		state := notarization.NewStateFromString(raw.Data, raw.Metadata)
		return &state, nil
	default:
		return nil, fmt.Errorf(
			"%w: unsupported state type %q",
			ledger.ErrInvalidArgument,
			tag,
		)
	}
}

// StateAs reads the current state, decoding the payload directly into a
// caller-supplied type and bypassing the tag inspection entirely
func StateAs[T any](
	ctx context.Context,
	c *ReadOnlyClient,
	objectID ledger.ObjectID,
) (*notarization.TypedState[T], error) {
	tx, err := notarization.StateTx(ctx, c, objectID)
	if err != nil {
		return nil, err
	}
	raw, err := inspect[rawState[T]](ctx, c, tx)
	if err != nil {
		return nil, err
	}
	return &notarization.TypedState[T]{
		Data:     raw.Data,
		Metadata: raw.Metadata,
	}, nil
}

// rawState mirrors the on-chain state layout for direct decoding
type rawState[T any] struct {
	Data     T
	Metadata *string
}

// inspect simulates a compiled call sequence from the zero sender and
// decodes the first return value of the first execution result
func inspect[T any](
	ctx context.Context,
	c *ReadOnlyClient,
	tx *ledger.ProgrammableTransaction,
) (T, error) {
	var ret T
	results, err := c.DevInspect(ctx, ledger.ZeroAddress, tx)
	if err != nil {
		return ret, fmt.Errorf(
			"%w: dev inspect failed: %s",
			ledger.ErrUnexpectedResponse,
			err,
		)
	}
	if results.Error != "" {
		return ret, fmt.Errorf(
			"%w: dev inspect failed: %s",
			ledger.ErrUnexpectedResponse,
			results.Error,
		)
	}
	if len(results.Results) == 0 ||
		len(results.Results[0].ReturnValues) == 0 {
		return ret, fmt.Errorf(
			"%w: dev inspect returned no value",
			ledger.ErrUnexpectedResponse,
		)
	}
	if _, err := bcs.Decode(
		results.Results[0].ReturnValues[0],
		&ret,
	); err != nil {
		return ret, fmt.Errorf(
			"%w: could not decode return value: %s",
			ledger.ErrUnexpectedResponse,
			err,
		)
	}
	return ret, nil
}
