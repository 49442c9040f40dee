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
	"fmt"

	"github.com/notarylabs/gonotary/bcs"
)

// The singleton on-chain clock object. Lock-checking and state-mutating
// calls take a read-only reference to it so the contract can evaluate
// time-based locks against current time
var (
	ClockObjectID            = ObjectID{31: 0x06}
	ClockObjectSharedVersion = uint64(1)
)

// ArgumentKind discriminates Argument values
type ArgumentKind uint8

const (
	// ArgumentInput references an entry in the transaction's input list
	ArgumentInput ArgumentKind = iota
	// ArgumentResult references the result of a previous command
	ArgumentResult
)

// Argument is a reference to either a transaction input or the result of a
// previous command
type Argument struct {
	Kind  ArgumentKind
	Index uint16
}

// CallArg is a resolved transaction input: either an opaque BCS-serialized
// pure value or an object reference. Exactly one field is set
type CallArg struct {
	Pure   []byte
	Object *ObjectArg
}

// ObjectArg references an on-chain object as a call input. Exactly one
// field is set
type ObjectArg struct {
	ImmOrOwned *ObjectRef
	Shared     *SharedObjectArg
}

// SharedObjectArg references a shared object such as the clock
type SharedObjectArg struct {
	ObjectID             ObjectID
	InitialSharedVersion uint64
	Mutable              bool
}

// MoveCall is a single call to a function published on the ledger
type MoveCall struct {
	Package       ObjectID
	Module        string
	Function      string
	TypeArguments []TypeTag
	Arguments     []Argument
}

// ProgrammableTransaction is an ordered list of calls with resolved inputs,
// submitted atomically to the ledger
type ProgrammableTransaction struct {
	Inputs   []CallArg
	Commands []MoveCall
}

// Builder assembles a ProgrammableTransaction, deduplicating object inputs
// and tracking command results
type Builder struct {
	inputs   []CallArg
	commands []MoveCall
	objects  map[ObjectID]uint16
}

// NewBuilder returns an empty transaction builder
func NewBuilder() *Builder {
	return &Builder{
		objects: make(map[ObjectID]uint16),
	}
}

// Pure serializes an arbitrary value into an opaque input and returns an
// argument referencing it
func (b *Builder) Pure(value any) (Argument, error) {
	data, err := bcs.Encode(value)
	if err != nil {
		return Argument{}, fmt.Errorf(
			"%w: could not serialize pure value: %s",
			ErrInvalidArgument,
			err,
		)
	}
	b.inputs = append(b.inputs, CallArg{Pure: data})
	return Argument{
		Kind:  ArgumentInput,
		Index: uint16(len(b.inputs) - 1), //nolint:gosec
	}, nil
}

// Object adds an object input and returns an argument referencing it.
// Repeated references to the same object reuse the existing input
func (b *Builder) Object(arg ObjectArg) (Argument, error) {
	var id ObjectID
	switch {
	case arg.ImmOrOwned != nil:
		id = arg.ImmOrOwned.ObjectID
	case arg.Shared != nil:
		id = arg.Shared.ObjectID
	default:
		return Argument{}, fmt.Errorf(
			"%w: object argument must reference an object",
			ErrInvalidArgument,
		)
	}
	if idx, ok := b.objects[id]; ok {
		return Argument{Kind: ArgumentInput, Index: idx}, nil
	}
	b.inputs = append(b.inputs, CallArg{Object: &arg})
	idx := uint16(len(b.inputs) - 1) //nolint:gosec
	b.objects[id] = idx
	return Argument{Kind: ArgumentInput, Index: idx}, nil
}

// MoveCall appends a call command and returns an argument referencing its
// result
func (b *Builder) MoveCall(
	pkg ObjectID,
	module string,
	function string,
	typeArgs []TypeTag,
	args []Argument,
) Argument {
	b.commands = append(
		b.commands,
		MoveCall{
			Package:       pkg,
			Module:        module,
			Function:      function,
			TypeArguments: typeArgs,
			Arguments:     args,
		},
	)
	return Argument{
		Kind:  ArgumentResult,
		Index: uint16(len(b.commands) - 1), //nolint:gosec
	}
}

// Finish returns the assembled transaction
func (b *Builder) Finish() *ProgrammableTransaction {
	return &ProgrammableTransaction{
		Inputs:   b.inputs,
		Commands: b.commands,
	}
}
