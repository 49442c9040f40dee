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
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/notarylabs/gonotary/bcs"
	"github.com/notarylabs/gonotary/ledger"
)

// TimeLockKind discriminates TimeLock values. The numeric values are the
// canonical enum variant indexes and must not be reordered
type TimeLockKind uint8

const (
	// TimeLockUnlockAt unlocks at a specific time
	TimeLockUnlockAt TimeLockKind = iota
	// TimeLockUntilDestroyed unlocks only when the notarization is
	// destroyed
	TimeLockUntilDestroyed
	// TimeLockNone applies no lock
	TimeLockNone
)

func (k TimeLockKind) String() string {
	switch k {
	case TimeLockUnlockAt:
		return "UnlockAt"
	case TimeLockUntilDestroyed:
		return "UntilDestroyed"
	case TimeLockNone:
		return "None"
	default:
		return fmt.Sprintf("TimeLockKind(%d)", uint8(k))
	}
}

// TimeLock is a time-based access restriction: always open (None), open
// after a timestamp (UnlockAt), or never open except by destruction
// (UntilDestroyed)
type TimeLock struct {
	Kind TimeLockKind
	// UnlockTime is the unlock time in Unix seconds. Only meaningful for
	// TimeLockUnlockAt
	UnlockTime uint32
}

// UnlockAt returns a lock that opens at the given Unix timestamp
func UnlockAt(unlockTime uint32) TimeLock {
	return TimeLock{Kind: TimeLockUnlockAt, UnlockTime: unlockTime}
}

// NewUnlockAt returns a lock that opens at the given Unix timestamp,
// rejecting timestamps that are not in the future
func NewUnlockAt(unlockTime uint32) (TimeLock, error) {
	if int64(unlockTime) <= time.Now().Unix() {
		return TimeLock{}, fmt.Errorf(
			"%w: unlock time must be in the future",
			ledger.ErrInvalidArgument,
		)
	}
	return UnlockAt(unlockTime), nil
}

// UntilDestroyed returns a lock that only opens on destruction
func UntilDestroyed() TimeLock {
	return TimeLock{Kind: TimeLockUntilDestroyed}
}

// NoLock returns the absent lock
func NoLock() TimeLock {
	return TimeLock{Kind: TimeLockNone}
}

// IsNone reports whether no lock is applied
func (t TimeLock) IsNone() bool {
	return t.Kind == TimeLockNone
}

func (t TimeLock) String() string {
	if t.Kind == TimeLockUnlockAt {
		return fmt.Sprintf("UnlockAt(%d)", t.UnlockTime)
	}
	return t.Kind.String()
}

// Compare defines a total ordering over locks: by variant, then by unlock
// time. It returns -1, 0, or 1
func (t TimeLock) Compare(other TimeLock) int {
	if t.Kind != other.Kind {
		if t.Kind < other.Kind {
			return -1
		}
		return 1
	}
	if t.Kind == TimeLockUnlockAt && t.UnlockTime != other.UnlockTime {
		if t.UnlockTime < other.UnlockTime {
			return -1
		}
		return 1
	}
	return 0
}

// MarshalBCS encodes the lock as its variant index followed by the unlock
// time for UnlockAt
func (t TimeLock) MarshalBCS() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := bcs.NewEncoder(buf)
	if err := enc.WriteUleb128(uint64(t.Kind)); err != nil {
		return nil, err
	}
	if t.Kind == TimeLockUnlockAt {
		if err := enc.WriteUint32(t.UnlockTime); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (t *TimeLock) UnmarshalBCS(r io.Reader) error {
	dec := bcs.NewDecoder(r)
	variant, err := dec.ReadUleb128()
	if err != nil {
		return err
	}
	switch TimeLockKind(variant) {
	case TimeLockUnlockAt:
		unlockTime, err := dec.ReadUint32()
		if err != nil {
			return err
		}
		*t = UnlockAt(unlockTime)
	case TimeLockUntilDestroyed:
		*t = UntilDestroyed()
	case TimeLockNone:
		*t = NoLock()
	default:
		return fmt.Errorf(
			"%w: unknown TimeLock variant %d",
			ledger.ErrInvalidArgument,
			variant,
		)
	}
	return nil
}

// compile adds the contract calls constructing this lock on-chain and
// returns the resulting argument
func (t TimeLock) compile(
	b *ledger.Builder,
	packageID ledger.ObjectID,
) (ledger.Argument, error) {
	switch t.Kind {
	case TimeLockUnlockAt:
		clock, err := clockRef(b)
		if err != nil {
			return ledger.Argument{}, err
		}
		unlockTime, err := pure(b, "unlock_time", t.UnlockTime)
		if err != nil {
			return ledger.Argument{}, err
		}
		return b.MoveCall(
			packageID,
			"timelock",
			"unlock_at",
			nil,
			[]ledger.Argument{unlockTime, clock},
		), nil
	case TimeLockUntilDestroyed:
		return b.MoveCall(packageID, "timelock", "until_destroyed", nil, nil), nil
	default:
		return b.MoveCall(packageID, "timelock", "none", nil, nil), nil
	}
}

// LockMetadata holds the time-based access restrictions of a notarization.
// It is derived from the notarization method and the caller-supplied lock,
// never constructed directly by callers
type LockMetadata struct {
	UpdateLock   TimeLock
	DeleteLock   TimeLock
	TransferLock TimeLock
}
