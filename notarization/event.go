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
	"encoding/json"
	"fmt"

	"github.com/notarylabs/gonotary/ledger"
)

// DynamicNotarizationCreated is emitted when a new dynamic notarization is
// created
type DynamicNotarizationCreated struct {
	NotarizationID ledger.ObjectID `json:"notarization_id"`
}

// LockedNotarizationCreated is emitted when a new locked notarization is
// created
type LockedNotarizationCreated struct {
	NotarizationID ledger.ObjectID `json:"notarization_id"`
}

// createdObjectID extracts the new object's id from the first emitted
// creation event, dispatching on the method the transaction was built with
func createdObjectID(
	events *ledger.TransactionEvents,
	method Method,
) (ledger.ObjectID, error) {
	if events == nil || len(events.Data) == 0 {
		return ledger.ObjectID{}, fmt.Errorf(
			"%w: events should be provided",
			ledger.ErrTransactionResponse,
		)
	}
	payload := events.Data[0].ParsedJSON
	switch method {
	case MethodLocked:
		var event LockedNotarizationCreated
		if err := json.Unmarshal(payload, &event); err != nil {
			return ledger.ObjectID{}, fmt.Errorf(
				"%w: failed to parse event: %s",
				ledger.ErrTransactionResponse,
				err,
			)
		}
		return event.NotarizationID, nil
	default:
		var event DynamicNotarizationCreated
		if err := json.Unmarshal(payload, &event); err != nil {
			return ledger.ObjectID{}, fmt.Errorf(
				"%w: failed to parse event: %s",
				ledger.ErrTransactionResponse,
				err,
			)
		}
		return event.NotarizationID, nil
	}
}
