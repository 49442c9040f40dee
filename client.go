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

	"github.com/notarylabs/gonotary/ledger"
	"github.com/notarylabs/gonotary/notarization"
)

// Client extends the read-only client with transaction submission. Signing,
// gas, and transport stay with the upstream ledger client; this client only
// compiles call sequences and materializes their results
type Client struct {
	*ReadOnlyClient
}

// NewClient returns a full client for the given upstream connection
func NewClient(
	ctx context.Context,
	upstream ledger.Client,
	options ...ClientOptionFunc,
) (*Client, error) {
	readOnly, err := NewReadOnlyClient(ctx, upstream, options...)
	if err != nil {
		return nil, err
	}
	return &Client{ReadOnlyClient: readOnly}, nil
}

// NewClientWithPackageID returns a full client pinned to an explicit
// contract package
func NewClientWithPackageID(
	ctx context.Context,
	upstream ledger.Client,
	packageID ledger.ObjectID,
	options ...ClientOptionFunc,
) (*Client, error) {
	readOnly, err := NewReadOnlyClientWithPackageID(
		ctx,
		upstream,
		packageID,
		options...,
	)
	if err != nil {
		return nil, err
	}
	return &Client{ReadOnlyClient: readOnly}, nil
}

// ExecuteCreate compiles, submits, and materializes a creation transaction,
// returning the full created record
func (c *Client) ExecuteCreate(
	ctx context.Context,
	create *notarization.CreateNotarization,
) (*notarization.OnChainNotarization, error) {
	tx, err := create.BuildTransaction(c)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(
		"submitting create transaction",
		"method", create.Method().String(),
		"commands", len(tx.Commands),
	)
	response, err := c.ExecuteTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: could not execute transaction: %s",
			ledger.ErrTransactionResponse,
			err,
		)
	}
	return create.Apply(ctx, c, response)
}

// ExecuteUpdateState compiles and submits a state update
func (c *Client) ExecuteUpdateState(
	ctx context.Context,
	objectID ledger.ObjectID,
	state notarization.State,
) error {
	update := notarization.NewUpdateState(objectID, state)
	tx, err := update.BuildTransaction(ctx, c)
	if err != nil {
		return err
	}
	return update.Apply(c.submit(ctx, "update_state", objectID, tx))
}

// ExecuteUpdateMetadata compiles and submits a metadata update. A nil
// metadata clears the field
func (c *Client) ExecuteUpdateMetadata(
	ctx context.Context,
	objectID ledger.ObjectID,
	metadata *string,
) error {
	update := notarization.NewUpdateMetadata(objectID, metadata)
	tx, err := update.BuildTransaction(ctx, c)
	if err != nil {
		return err
	}
	return update.Apply(c.submit(ctx, "update_metadata", objectID, tx))
}

// ExecuteDestroy compiles and submits a destroy transaction
func (c *Client) ExecuteDestroy(
	ctx context.Context,
	objectID ledger.ObjectID,
) error {
	destroy := notarization.NewDestroy(objectID)
	tx, err := destroy.BuildTransaction(ctx, c)
	if err != nil {
		return err
	}
	return destroy.Apply(c.submit(ctx, "destroy", objectID, tx))
}

// ExecuteTransfer compiles and submits an ownership transfer
func (c *Client) ExecuteTransfer(
	ctx context.Context,
	objectID ledger.ObjectID,
	recipient ledger.Address,
) error {
	transfer := notarization.NewTransfer(objectID, recipient)
	tx, err := transfer.BuildTransaction(ctx, c)
	if err != nil {
		return err
	}
	return transfer.Apply(c.submit(ctx, "transfer", objectID, tx))
}

// submit sends a compiled transaction upstream. Transport failures are
// folded into the response so the caller's Apply sees a single outcome
func (c *Client) submit(
	ctx context.Context,
	operation string,
	objectID ledger.ObjectID,
	tx *ledger.ProgrammableTransaction,
) *ledger.TransactionResponse {
	c.logger.Debug(
		"submitting transaction",
		"operation", operation,
		"object_id", objectID.String(),
		"commands", len(tx.Commands),
	)
	response, err := c.ExecuteTransaction(ctx, tx)
	if err != nil {
		return &ledger.TransactionResponse{
			Effects: ledger.TransactionEffects{
				Status: ledger.ExecutionStatus{
					Success: false,
					Error:   err.Error(),
				},
			},
		}
	}
	return response
}
