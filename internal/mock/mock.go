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

// Package mock provides an in-process ledger for tests. It implements the
// upstream client interface, interprets compiled call sequences against an
// in-memory object store, evaluates time locks against a controllable clock,
// and counts calls so tests can assert caching behavior
package mock

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
	"github.com/notarylabs/gonotary/notarization"
)

// ChainID is the chain identifier reported by the mock, aliased to devnet in
// the bundled package manifest
const ChainID = "e678123a"

type record struct {
	notarization notarization.OnChainNotarization
	version      uint64
}

// LedgerClient is an in-memory ledger.Client
type LedgerClient struct {
	mu      sync.Mutex
	now     uint64
	nextID  uint64
	objects map[ledger.ObjectID]*record

	// Call counters, for cache-idempotence assertions
	GetObjectCalls  int
	DevInspectCalls int
	ExecuteCalls    int
}

// NewLedgerClient returns an empty mock ledger with its clock at the given
// Unix time
func NewLedgerClient(now uint64) *LedgerClient {
	return &LedgerClient{
		now:     now,
		objects: make(map[ledger.ObjectID]*record),
	}
}

// SetNow moves the mock clock to the given Unix time
func (m *LedgerClient) SetNow(now uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// AdvanceTime moves the mock clock forward
func (m *LedgerClient) AdvanceTime(seconds uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += seconds
}

// ChainIdentifier implements ledger.Client
func (m *LedgerClient) ChainIdentifier(ctx context.Context) (string, error) {
	return ChainID, nil
}

// GetObject implements ledger.Client
func (m *LedgerClient) GetObject(
	ctx context.Context,
	id ledger.ObjectID,
) (*ledger.ObjectData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetObjectCalls++
	rec, ok := m.objects[id]
	if !ok {
		return nil, fmt.Errorf(
			"%w: object %s not found",
			ledger.ErrObjectLookup,
			id,
		)
	}
	content, err := bcs.Encode(rec.notarization)
	if err != nil {
		return nil, err
	}
	return &ledger.ObjectData{
		ObjectID: id,
		Version:  rec.version,
		Digest:   digest(id, rec.version),
		Type: fmt.Sprintf(
			"%s::notarization::Notarization<%s>",
			packageID(),
			rec.notarization.State.Data.Tag(),
		),
		BCS: content,
	}, nil
}

// DevInspect implements ledger.Client by interpreting the final accessor
// call of the sequence against the stored record
func (m *LedgerClient) DevInspect(
	ctx context.Context,
	sender ledger.Address,
	tx *ledger.ProgrammableTransaction,
) (*ledger.DevInspectResults, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DevInspectCalls++
	if len(tx.Commands) == 0 {
		return &ledger.DevInspectResults{Error: "empty transaction"}, nil
	}
	call := tx.Commands[len(tx.Commands)-1]
	rec, errMsg := m.targetOf(tx, call)
	if errMsg != "" {
		return &ledger.DevInspectResults{Error: errMsg}, nil
	}
	value, err := m.accessorValue(rec, call.Function)
	if err != nil {
		return &ledger.DevInspectResults{Error: err.Error()}, nil
	}
	return &ledger.DevInspectResults{
		Results: []ledger.ExecutionResult{
			{ReturnValues: [][]byte{value}},
		},
	}, nil
}

func (m *LedgerClient) accessorValue(
	rec *record,
	function string,
) ([]byte, error) {
	n := &rec.notarization
	switch function {
	case "description":
		return bcs.Encode(n.ImmutableMetadata.Description)
	case "updatable_metadata":
		return bcs.Encode(n.UpdatableMetadata)
	case "created_at":
		return bcs.Encode(n.ImmutableMetadata.CreatedAt)
	case "last_change":
		return bcs.Encode(n.LastStateChangeAt)
	case "version_count":
		return bcs.Encode(n.StateVersionCount)
	case "notarization_method":
		return bcs.Encode(n.Method)
	case "lock_metadata":
		return bcs.Encode(n.ImmutableMetadata.Locking)
	case "state":
		return bcs.Encode(n.State)
	case "is_update_locked":
		return bcs.Encode(!m.lockOpen(lockOf(n).UpdateLock))
	case "is_destroy_allowed":
		return bcs.Encode(m.lockOpen(lockOf(n).DeleteLock))
	case "is_transfer_locked":
		return bcs.Encode(!m.lockOpen(lockOf(n).TransferLock))
	default:
		return nil, fmt.Errorf("unknown accessor %q", function)
	}
}

// ExecuteTransaction implements ledger.Client by interpreting the full call
// sequence: lock and state constructor calls produce intermediate values,
// and the final call mutates the object store. Contract-level failures are
// reported in the effects status, not as transport errors
func (m *LedgerClient) ExecuteTransaction(
	ctx context.Context,
	tx *ledger.ProgrammableTransaction,
) (*ledger.TransactionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExecuteCalls++
	if len(tx.Commands) == 0 {
		return failure("empty transaction"), nil
	}
	eval := &evaluation{tx: tx, results: make([]intermediate, 0)}
	for _, call := range tx.Commands {
		switch {
		case call.Module == "timelock":
			lock, errMsg := evalTimeLock(tx, call)
			if errMsg != "" {
				return failure(errMsg), nil
			}
			eval.results = append(eval.results, intermediate{lock: &lock})
		case call.Module == "notarization" &&
			(call.Function == "new_state_from_bytes" ||
				call.Function == "new_state_from_string"):
			state, errMsg := evalState(tx, call)
			if errMsg != "" {
				return failure(errMsg), nil
			}
			eval.results = append(eval.results, intermediate{state: &state})
		case call.Function == "create":
			return m.execCreate(eval, call)
		case call.Function == "transfer":
			eval.results = append(eval.results, intermediate{})
			return m.execTransfer(tx, call)
		case call.Module == "notarization":
			eval.results = append(eval.results, intermediate{})
			return m.execMutation(eval, call)
		default:
			return failure(
				fmt.Sprintf(
					"unknown call %s::%s",
					call.Module,
					call.Function,
				),
			), nil
		}
	}
	return failure("transaction has no terminal call"), nil
}

type intermediate struct {
	lock  *notarization.TimeLock
	state *notarization.State
}

type evaluation struct {
	tx      *ledger.ProgrammableTransaction
	results []intermediate
}

func (e *evaluation) lockAt(arg ledger.Argument) (notarization.TimeLock, string) {
	if arg.Kind != ledger.ArgumentResult ||
		int(arg.Index) >= len(e.results) ||
		e.results[arg.Index].lock == nil {
		return notarization.TimeLock{}, "argument is not a lock result"
	}
	return *e.results[arg.Index].lock, ""
}

func (e *evaluation) stateAt(arg ledger.Argument) (notarization.State, string) {
	if arg.Kind != ledger.ArgumentResult ||
		int(arg.Index) >= len(e.results) ||
		e.results[arg.Index].state == nil {
		return notarization.State{}, "argument is not a state result"
	}
	return *e.results[arg.Index].state, ""
}

func evalTimeLock(
	tx *ledger.ProgrammableTransaction,
	call ledger.MoveCall,
) (notarization.TimeLock, string) {
	switch call.Function {
	case "none":
		return notarization.NoLock(), ""
	case "until_destroyed":
		return notarization.UntilDestroyed(), ""
	case "unlock_at":
		if len(call.Arguments) < 1 {
			return notarization.TimeLock{}, "unlock_at needs an argument"
		}
		var unlockTime uint32
		if errMsg := decodePure(tx, call.Arguments[0], &unlockTime); errMsg != "" {
			return notarization.TimeLock{}, errMsg
		}
		return notarization.UnlockAt(unlockTime), ""
	default:
		return notarization.TimeLock{}, fmt.Sprintf(
			"unknown timelock constructor %q",
			call.Function,
		)
	}
}

func evalState(
	tx *ledger.ProgrammableTransaction,
	call ledger.MoveCall,
) (notarization.State, string) {
	if len(call.Arguments) < 2 {
		return notarization.State{}, "state constructor needs two arguments"
	}
	var metadata *string
	if errMsg := decodePure(tx, call.Arguments[1], &metadata); errMsg != "" {
		return notarization.State{}, errMsg
	}
	if call.Function == "new_state_from_string" {
		var data string
		if errMsg := decodePure(tx, call.Arguments[0], &data); errMsg != "" {
			return notarization.State{}, errMsg
		}
		return notarization.NewStateFromString(data, metadata), ""
	}
	var data []byte
	if errMsg := decodePure(tx, call.Arguments[0], &data); errMsg != "" {
		return notarization.State{}, errMsg
	}
	return notarization.NewStateFromBytes(data, metadata), ""
}

func (m *LedgerClient) execCreate(
	eval *evaluation,
	call ledger.MoveCall,
) (*ledger.TransactionResponse, error) {
	if len(call.Arguments) < 5 {
		return failure("create needs five arguments"), nil
	}
	state, errMsg := eval.stateAt(call.Arguments[0])
	if errMsg != "" {
		return failure(errMsg), nil
	}
	var description *string
	if errMsg := decodePure(eval.tx, call.Arguments[1], &description); errMsg != "" {
		return failure(errMsg), nil
	}
	var metadata *string
	if errMsg := decodePure(eval.tx, call.Arguments[2], &metadata); errMsg != "" {
		return failure(errMsg), nil
	}
	lock, errMsg := eval.lockAt(call.Arguments[3])
	if errMsg != "" {
		return failure(errMsg), nil
	}
	method := notarization.MethodDynamic
	eventType := "DynamicNotarizationCreated"
	var locking *notarization.LockMetadata
	if call.Module == "locked_notarization" {
		method = notarization.MethodLocked
		eventType = "LockedNotarizationCreated"
		locking = &notarization.LockMetadata{
			UpdateLock:   notarization.UntilDestroyed(),
			DeleteLock:   lock,
			TransferLock: notarization.UntilDestroyed(),
		}
	} else if !lock.IsNone() {
		locking = &notarization.LockMetadata{
			UpdateLock:   notarization.NoLock(),
			DeleteLock:   notarization.NoLock(),
			TransferLock: lock,
		}
	}

	m.nextID++
	var id ledger.ObjectID
	binary.BigEndian.PutUint64(id[24:], m.nextID)
	m.objects[id] = &record{
		notarization: notarization.OnChainNotarization{
			ID:    id,
			State: state,
			ImmutableMetadata: notarization.ImmutableMetadata{
				CreatedAt:   m.now,
				Description: description,
				Locking:     locking,
			},
			UpdatableMetadata: metadata,
			LastStateChangeAt: m.now,
			Method:            method,
		},
		version: 1,
	}

	payload, err := json.Marshal(map[string]ledger.ObjectID{
		"notarization_id": id,
	})
	if err != nil {
		return nil, err
	}
	return &ledger.TransactionResponse{
		Effects: ledger.TransactionEffects{
			Status: ledger.ExecutionStatus{Success: true},
		},
		Events: ledger.TransactionEvents{
			Data: []ledger.Event{
				{
					Type: fmt.Sprintf(
						"%s::%s::%s",
						packageID(),
						call.Module,
						eventType,
					),
					ParsedJSON: payload,
				},
			},
		},
	}, nil
}

func (m *LedgerClient) execMutation(
	eval *evaluation,
	call ledger.MoveCall,
) (*ledger.TransactionResponse, error) {
	rec, errMsg := m.targetOf(eval.tx, call)
	if errMsg != "" {
		return failure(errMsg), nil
	}
	n := &rec.notarization
	switch call.Function {
	case "update_state":
		if len(call.Arguments) < 2 {
			return failure("update_state needs two arguments"), nil
		}
		if !m.lockOpen(lockOf(n).UpdateLock) {
			return failure("state updates are locked"), nil
		}
		state, errMsg := eval.stateAt(call.Arguments[1])
		if errMsg != "" {
			return failure(errMsg), nil
		}
		n.State = state
		n.LastStateChangeAt = m.now
		n.StateVersionCount++
		rec.version++
	case "update_metadata":
		if len(call.Arguments) < 2 {
			return failure("update_metadata needs two arguments"), nil
		}
		var metadata *string
		if errMsg := decodePure(eval.tx, call.Arguments[1], &metadata); errMsg != "" {
			return failure(errMsg), nil
		}
		n.UpdatableMetadata = metadata
		rec.version++
	case "destroy":
		if !m.lockOpen(lockOf(n).DeleteLock) {
			return failure("notarization is not destroyable yet"), nil
		}
		delete(m.objects, n.ID)
	default:
		return failure(
			fmt.Sprintf("unknown mutation %q", call.Function),
		), nil
	}
	return success(), nil
}

func (m *LedgerClient) execTransfer(
	tx *ledger.ProgrammableTransaction,
	call ledger.MoveCall,
) (*ledger.TransactionResponse, error) {
	rec, errMsg := m.targetOf(tx, call)
	if errMsg != "" {
		return failure(errMsg), nil
	}
	n := &rec.notarization
	if n.Method == notarization.MethodLocked {
		return failure("locked notarizations cannot be transferred"), nil
	}
	if !m.lockOpen(lockOf(n).TransferLock) {
		return failure("notarization transfer is locked"), nil
	}
	rec.version++
	return success(), nil
}

// targetOf resolves the object a call operates on from its first argument
func (m *LedgerClient) targetOf(
	tx *ledger.ProgrammableTransaction,
	call ledger.MoveCall,
) (*record, string) {
	if len(call.Arguments) == 0 {
		return nil, "call has no target object"
	}
	arg := call.Arguments[0]
	if arg.Kind != ledger.ArgumentInput || int(arg.Index) >= len(tx.Inputs) {
		return nil, "target argument is not an input"
	}
	input := tx.Inputs[arg.Index]
	if input.Object == nil || input.Object.ImmOrOwned == nil {
		return nil, "target argument is not an owned object"
	}
	rec, ok := m.objects[input.Object.ImmOrOwned.ObjectID]
	if !ok {
		return nil, fmt.Sprintf(
			"object %s not found",
			input.Object.ImmOrOwned.ObjectID,
		)
	}
	return rec, ""
}

// lockOf returns the effective lock metadata, treating absent metadata as
// all-open
func lockOf(n *notarization.OnChainNotarization) notarization.LockMetadata {
	if n.ImmutableMetadata.Locking != nil {
		return *n.ImmutableMetadata.Locking
	}
	return notarization.LockMetadata{
		UpdateLock:   notarization.NoLock(),
		DeleteLock:   notarization.NoLock(),
		TransferLock: notarization.NoLock(),
	}
}

// lockOpen evaluates a lock against the mock clock
func (m *LedgerClient) lockOpen(lock notarization.TimeLock) bool {
	switch lock.Kind {
	case notarization.TimeLockNone:
		return true
	case notarization.TimeLockUnlockAt:
		return m.now >= uint64(lock.UnlockTime)
	default:
		return false
	}
}

func decodePure(
	tx *ledger.ProgrammableTransaction,
	arg ledger.Argument,
	dest any,
) string {
	if arg.Kind != ledger.ArgumentInput || int(arg.Index) >= len(tx.Inputs) {
		return "argument is not an input"
	}
	input := tx.Inputs[arg.Index]
	if input.Pure == nil {
		return "argument is not a pure input"
	}
	if _, err := bcs.Decode(input.Pure, dest); err != nil {
		return fmt.Sprintf("could not decode pure input: %s", err)
	}
	return ""
}

func failure(msg string) *ledger.TransactionResponse {
	return &ledger.TransactionResponse{
		Effects: ledger.TransactionEffects{
			Status: ledger.ExecutionStatus{Success: false, Error: msg},
		},
	}
}

func success() *ledger.TransactionResponse {
	return &ledger.TransactionResponse{
		Effects: ledger.TransactionEffects{
			Status: ledger.ExecutionStatus{Success: true},
		},
	}
}

func digest(id ledger.ObjectID, version uint64) []byte {
	d := make([]byte, 8)
	binary.BigEndian.PutUint64(d, version)
	return append(id.Bytes(), d...)
}

func packageID() ledger.ObjectID {
	// The devnet package from the bundled manifest; tests resolve the same
	// id through the registry
	id, err := ledger.ObjectIDFromHex(
		"0xa16e4cc54fbc4f696ad2eb520b4b3a0e2bfd5f028e4b36da8ff06861cd4a0b1d",
	)
	if err != nil {
		panic(err)
	}
	return id
}
