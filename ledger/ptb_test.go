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
	"bytes"
	"testing"
)

func TestBuilderPure(t *testing.T) {
	b := NewBuilder()
	arg, err := b.Pure(uint64(7))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if arg.Kind != ArgumentInput || arg.Index != 0 {
		t.Errorf("unexpected argument: %+v", arg)
	}
	tx := b.Finish()
	if len(tx.Inputs) != 1 {
		t.Fatalf("expected 1 input, got %d", len(tx.Inputs))
	}
	expected := []byte{0x07, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(tx.Inputs[0].Pure, expected) {
		t.Errorf("got %x, expected %x", tx.Inputs[0].Pure, expected)
	}
}

func TestBuilderObjectDedup(t *testing.T) {
	b := NewBuilder()
	ref := ObjectRef{ObjectID: ObjectID{1}, Version: 3}
	arg1, err := b.Object(ObjectArg{ImmOrOwned: &ref})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	arg2, err := b.Object(ObjectArg{ImmOrOwned: &ref})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if arg1 != arg2 {
		t.Errorf("expected deduplicated object input: %+v != %+v", arg1, arg2)
	}
	if len(b.Finish().Inputs) != 1 {
		t.Errorf("expected a single input after dedup")
	}
}

func TestBuilderMoveCallResult(t *testing.T) {
	b := NewBuilder()
	result := b.MoveCall(ObjectID{2}, "timelock", "none", nil, nil)
	if result.Kind != ArgumentResult || result.Index != 0 {
		t.Errorf("unexpected result argument: %+v", result)
	}
	result2 := b.MoveCall(
		ObjectID{2},
		"notarization",
		"destroy",
		[]TypeTag{TypeTagVectorU8},
		[]Argument{result},
	)
	if result2.Index != 1 {
		t.Errorf("unexpected second result index: %d", result2.Index)
	}
	tx := b.Finish()
	if len(tx.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(tx.Commands))
	}
	if tx.Commands[1].Function != "destroy" {
		t.Errorf("unexpected function: %s", tx.Commands[1].Function)
	}
}

func TestBuilderEmptyObjectArg(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Object(ObjectArg{}); err == nil {
		t.Error("expected error for empty object argument")
	}
}
