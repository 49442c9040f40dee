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
	"sync/atomic"

	"github.com/jinzhu/copier"

	"github.com/notarylabs/gonotary/ledger"
)

// txCache is a write-once cell for a compiled transaction. The first
// successful compile wins; failures are never stored, so a failed compile
// can be retried. Concurrent first compiles are safe, at most one result is
// kept
type txCache struct {
	tx atomic.Pointer[ledger.ProgrammableTransaction]
}

// getOrCompile returns the cached transaction, compiling and storing it on
// first use. Callers receive a deep copy so the cached value stays pristine
func (c *txCache) getOrCompile(
	compile func() (*ledger.ProgrammableTransaction, error),
) (*ledger.ProgrammableTransaction, error) {
	if cached := c.tx.Load(); cached != nil {
		return copyTx(cached)
	}
	tx, err := compile()
	if err != nil {
		return nil, err
	}
	// A concurrent compile may have won the race; keep whichever landed
	// first
	c.tx.CompareAndSwap(nil, tx)
	return copyTx(c.tx.Load())
}

func copyTx(
	tx *ledger.ProgrammableTransaction,
) (*ledger.ProgrammableTransaction, error) {
	var ret ledger.ProgrammableTransaction
	if err := copier.CopyWithOption(
		&ret,
		tx,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, err
	}
	return &ret, nil
}
