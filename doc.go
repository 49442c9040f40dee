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

// Package gonotary is a client SDK for notarization records on a Move-style
// ledger. It constructs, validates, and compiles programmable transactions
// that create, mutate, inspect, and destroy notarizations, and decodes the
// ledger's answers back into typed values.
//
// Transport, signing, gas, and retries stay with the caller: both clients
// wrap a ledger.Client implementation supplied from outside. ReadOnlyClient
// answers queries through simulation without a signer; Client adds the
// compile/submit/apply flow for mutations.
package gonotary
