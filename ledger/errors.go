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

import "errors"

// Error kinds shared across the SDK. These are wrapped with context via
// fmt.Errorf("%w: ...") and matched with errors.Is
var (
	// ErrInvalidArgument indicates malformed or forbidden caller input
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidConfig indicates a missing contract package id for the
	// current network
	ErrInvalidConfig = errors.New("invalid config")
	// ErrObjectLookup indicates that resolving an object's reference or
	// content failed or returned no data
	ErrObjectLookup = errors.New("object lookup failed")
	// ErrFailedToParseTag indicates a type tag string that did not match
	// the expected shape
	ErrFailedToParseTag = errors.New("failed to parse type tag")
	// ErrUnexpectedResponse indicates a structurally unexpected simulation
	// payload, such as missing execution results
	ErrUnexpectedResponse = errors.New("unexpected API response")
	// ErrTransactionResponse indicates a structurally unexpected submission
	// payload, such as missing events, or a ledger-reported execution
	// failure
	ErrTransactionResponse = errors.New("unexpected transaction response")
	// ErrTransactionConsumed indicates reuse of a transaction object whose
	// result was already materialized
	ErrTransactionConsumed = errors.New("transaction already consumed")
)
