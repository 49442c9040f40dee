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
	"errors"
	"testing"
	"time"

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
)

func TestTimeLockOrdering(t *testing.T) {
	testDefs := []struct {
		a        TimeLock
		b        TimeLock
		expected int
	}{
		{UnlockAt(100), UnlockAt(100), 0},
		{UnlockAt(100), UnlockAt(200), -1},
		{UnlockAt(200), UnlockAt(100), 1},
		{UnlockAt(100), UntilDestroyed(), -1},
		{UntilDestroyed(), NoLock(), -1},
		{NoLock(), UnlockAt(100), 1},
		{NoLock(), NoLock(), 0},
		{UntilDestroyed(), UntilDestroyed(), 0},
	}
	for _, testDef := range testDefs {
		if got := testDef.a.Compare(testDef.b); got != testDef.expected {
			t.Errorf(
				"%s.Compare(%s): got %d, expected %d",
				testDef.a,
				testDef.b,
				got,
				testDef.expected,
			)
		}
	}
}

func TestNewUnlockAtRejectsPast(t *testing.T) {
	past := uint32(time.Now().Unix() - 3600) //nolint:gosec
	if _, err := NewUnlockAt(past); !errors.Is(err, ledger.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for past timestamp, got %v", err)
	}
	future := uint32(time.Now().Unix() + 3600) //nolint:gosec
	lock, err := NewUnlockAt(future)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if lock.Kind != TimeLockUnlockAt || lock.UnlockTime != future {
		t.Errorf("unexpected lock %s", lock)
	}
}

func TestTimeLockRoundTrip(t *testing.T) {
	testDefs := []TimeLock{
		UnlockAt(1700000000),
		UntilDestroyed(),
		NoLock(),
	}
	for _, testDef := range testDefs {
		data, err := bcs.Encode(testDef)
		if err != nil {
			t.Fatalf("unexpected encode error: %s", err)
		}
		var decoded TimeLock
		if _, err := bcs.Decode(data, &decoded); err != nil {
			t.Fatalf("unexpected decode error: %s", err)
		}
		if decoded != testDef {
			t.Errorf("got %s, expected %s", decoded, testDef)
		}
	}
}

func TestTimeLockUnknownVariant(t *testing.T) {
	var decoded TimeLock
	if _, err := bcs.Decode([]byte{0x07}, &decoded); !errors.Is(
		err,
		ledger.ErrInvalidArgument,
	) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestTimeLockIsNone(t *testing.T) {
	if !NoLock().IsNone() {
		t.Error("expected NoLock to report IsNone")
	}
	if UnlockAt(1).IsNone() || UntilDestroyed().IsNone() {
		t.Error("unexpected IsNone for non-empty lock")
	}
}
