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
	"github.com/notarylabs/gonotary/ledger"
)

// Aliases for the SDK error taxonomy, re-exported for convenience so callers
// matching with errors.Is need only this package
var (
	ErrInvalidArgument     = ledger.ErrInvalidArgument
	ErrInvalidConfig       = ledger.ErrInvalidConfig
	ErrObjectLookup        = ledger.ErrObjectLookup
	ErrFailedToParseTag    = ledger.ErrFailedToParseTag
	ErrUnexpectedResponse  = ledger.ErrUnexpectedResponse
	ErrTransactionResponse = ledger.ErrTransactionResponse
	ErrTransactionConsumed = ledger.ErrTransactionConsumed
)
