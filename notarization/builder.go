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

// builderCore accumulates the fields common to both builder flavors. Lock
// fields stay unset until explicitly configured; validation happens when the
// creation transaction compiles, not while building
type builderCore struct {
	state                *State
	immutableDescription *string
	updatableMetadata    *string
	deleteLock           *TimeLock
	transferLock         *TimeLock
}

func (c *builderCore) setState(state State) {
	c.state = &state
}

// LockedBuilder assembles a locked notarization creation. Locked
// notarizations are immutable, so only the delete lock is configurable;
// update and transfer are permanently locked until destroyed
type LockedBuilder struct {
	core builderCore
}

// NewLocked returns an empty builder for a locked notarization
func NewLocked() *LockedBuilder {
	return &LockedBuilder{}
}

// WithState sets the initial state
func (b *LockedBuilder) WithState(state State) *LockedBuilder {
	b.core.setState(state)
	return b
}

// WithBytesState sets the initial state from raw bytes
func (b *LockedBuilder) WithBytesState(
	data []byte,
	metadata *string,
) *LockedBuilder {
	b.core.setState(NewStateFromBytes(data, metadata))
	return b
}

// WithStringState sets the initial state from UTF-8 text
func (b *LockedBuilder) WithStringState(
	data string,
	metadata *string,
) *LockedBuilder {
	b.core.setState(NewStateFromString(data, metadata))
	return b
}

// WithImmutableDescription sets the permanent description
func (b *LockedBuilder) WithImmutableDescription(
	description string,
) *LockedBuilder {
	b.core.immutableDescription = &description
	return b
}

// WithUpdatableMetadata sets the initial updatable metadata
func (b *LockedBuilder) WithUpdatableMetadata(
	metadata string,
) *LockedBuilder {
	b.core.updatableMetadata = &metadata
	return b
}

// WithDeleteLock restricts when the notarization may be destroyed
func (b *LockedBuilder) WithDeleteLock(lock TimeLock) *LockedBuilder {
	b.core.deleteLock = &lock
	return b
}

// Finish produces the creation transaction object. The error return exists
// for symmetry; required-field and lock invariants are validated when the
// transaction compiles
func (b *LockedBuilder) Finish() (*CreateNotarization, error) {
	return newCreateNotarization(MethodLocked, b.core), nil
}

// DynamicBuilder assembles a dynamic notarization creation. Dynamic
// notarizations stay updatable; only transfer may be lock-gated, and
// deletion is unconditionally disabled by the contract
type DynamicBuilder struct {
	core builderCore
}

// NewDynamic returns an empty builder for a dynamic notarization
func NewDynamic() *DynamicBuilder {
	return &DynamicBuilder{}
}

// WithState sets the initial state
func (b *DynamicBuilder) WithState(state State) *DynamicBuilder {
	b.core.setState(state)
	return b
}

// WithBytesState sets the initial state from raw bytes
func (b *DynamicBuilder) WithBytesState(
	data []byte,
	metadata *string,
) *DynamicBuilder {
	b.core.setState(NewStateFromBytes(data, metadata))
	return b
}

// WithStringState sets the initial state from UTF-8 text
func (b *DynamicBuilder) WithStringState(
	data string,
	metadata *string,
) *DynamicBuilder {
	b.core.setState(NewStateFromString(data, metadata))
	return b
}

// WithImmutableDescription sets the permanent description
func (b *DynamicBuilder) WithImmutableDescription(
	description string,
) *DynamicBuilder {
	b.core.immutableDescription = &description
	return b
}

// WithUpdatableMetadata sets the initial updatable metadata
func (b *DynamicBuilder) WithUpdatableMetadata(
	metadata string,
) *DynamicBuilder {
	b.core.updatableMetadata = &metadata
	return b
}

// WithTransferLock restricts when the notarization may change owners
func (b *DynamicBuilder) WithTransferLock(lock TimeLock) *DynamicBuilder {
	b.core.transferLock = &lock
	return b
}

// Finish produces the creation transaction object. No field is
// unconditionally required at this point, so it cannot fail
func (b *DynamicBuilder) Finish() *CreateNotarization {
	return newCreateNotarization(MethodDynamic, b.core)
}
