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

package ledger

import (
	"context"
	"encoding/json"
)

// Client is the upstream node interface consumed by the SDK. Implementations
// own transport, retries, timeouts, signing, and gas handling; the SDK only
// encodes requests and decodes answers.
//
// GetObject implementations return an error wrapping ErrObjectLookup when
// the object does not exist or has no content
type Client interface {
	// GetObject resolves an object by id, including its full Move type
	// string, versioned reference, and BCS-encoded content
	GetObject(ctx context.Context, id ObjectID) (*ObjectData, error)
	// DevInspect simulates a transaction against current ledger state
	// without committing changes or charging fees
	DevInspect(
		ctx context.Context,
		sender Address,
		tx *ProgrammableTransaction,
	) (*DevInspectResults, error)
	// ExecuteTransaction signs and submits a transaction, returning its
	// effects and emitted events
	ExecuteTransaction(
		ctx context.Context,
		tx *ProgrammableTransaction,
	) (*TransactionResponse, error)
	// ChainIdentifier returns the chain id of the connected network
	ChainIdentifier(ctx context.Context) (string, error)
}

// ObjectData is the resolved content of an on-chain object
type ObjectData struct {
	ObjectID ObjectID
	Version  uint64
	Digest   []byte
	// Type is the full Move type string, e.g.
	// "0x..::notarization::Notarization<vector<u8>>"
	Type string
	// BCS is the canonical encoding of the object content
	BCS []byte
}

// Ref returns the versioned reference for the object
func (o *ObjectData) Ref() ObjectRef {
	return ObjectRef{
		ObjectID: o.ObjectID,
		Version:  o.Version,
		Digest:   o.Digest,
	}
}

// ExecutionResult holds the return values of a single executed command
type ExecutionResult struct {
	ReturnValues [][]byte
}

// DevInspectResults is the outcome of a simulated transaction
type DevInspectResults struct {
	Results []ExecutionResult
	Error   string
}

// Event is a single event emitted during transaction execution. The payload
// is the node's JSON rendering of the event struct
type Event struct {
	Type       string
	ParsedJSON json.RawMessage
}

// TransactionEvents holds the events emitted by an executed transaction
type TransactionEvents struct {
	Data []Event
}

// ExecutionStatus reports whether on-chain execution succeeded
type ExecutionStatus struct {
	Success bool
	Error   string
}

// TransactionEffects summarizes the outcome of an executed transaction
type TransactionEffects struct {
	Status ExecutionStatus
}

// TransactionResponse is the result of submitting a transaction
type TransactionResponse struct {
	Effects TransactionEffects
	Events  TransactionEvents
}
