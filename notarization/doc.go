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

// Package notarization holds the domain core: the value model (State,
// TimeLock, LockMetadata, OnChainNotarization), the builders that assemble a
// creation, the instruction compiler that turns domain values into
// programmable-transaction call sequences, and the transaction objects that
// cache a compiled sequence and materialize its result.
//
// Locked notarizations are immutable after creation; only their destruction
// is governed by a configurable delete lock. Dynamic notarizations stay
// updatable and may optionally lock-gate ownership transfer. Which lock can
// be set is enforced by the builder types themselves: LockedBuilder has no
// transfer-lock setter and DynamicBuilder has no delete-lock setter, so an
// illegal combination cannot be expressed.
//
// Transaction objects compile lazily and memoize the first successful
// result; applying a submission response consumes the object, so a
// transaction cannot be resubmitted by accident.
package notarization
