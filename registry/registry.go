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

// Package registry maps network names to the deployed notarization contract
// package id. The default registry is loaded once from a bundled manifest at
// package initialization, keeping startup ordering deterministic, and can be
// overridden at runtime with explicit package ids.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/notarylabs/gonotary/ledger"
)

//go:embed packages.json
var defaultManifest []byte

// Registry is a read-mostly mapping of network name to contract package id.
// Lookups may proceed concurrently; overrides exclude all readers and
// writers for their duration
type Registry struct {
	mu       sync.RWMutex
	packages map[string]ledger.ObjectID
	aliases  map[string]string
}

type manifest struct {
	Networks map[string]string `json:"networks"`
	Aliases  map[string]string `json:"aliases"`
}

// New returns an empty registry
func New() *Registry {
	return &Registry{
		packages: make(map[string]ledger.ObjectID),
		aliases:  make(map[string]string),
	}
}

// FromManifest parses a JSON manifest into a registry
func FromManifest(data []byte) (*Registry, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(
			"%w: invalid package manifest: %s",
			ledger.ErrInvalidConfig,
			err,
		)
	}
	r := New()
	for network, pkgHex := range m.Networks {
		pkgID, err := ledger.ObjectIDFromHex(pkgHex)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: invalid package id %q for network %s: %s",
				ledger.ErrInvalidConfig,
				pkgHex,
				network,
				err,
			)
		}
		r.packages[network] = pkgID
	}
	for chainID, network := range m.Aliases {
		r.aliases[chainID] = network
	}
	return r, nil
}

var defaultRegistry = func() *Registry {
	r, err := FromManifest(defaultManifest)
	if err != nil {
		// The bundled manifest is validated by tests
		panic(fmt.Sprintf("invalid bundled package manifest: %s", err))
	}
	return r
}()

// Default returns the process-wide registry loaded from the bundled manifest
func Default() *Registry {
	return defaultRegistry
}

// PackageID returns the contract package id deployed on the named network
func (r *Registry) PackageID(network string) (ledger.ObjectID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pkgID, ok := r.packages[network]
	if !ok {
		return ledger.ObjectID{}, fmt.Errorf(
			"%w: no known notarization package id for network %q",
			ledger.ErrInvalidConfig,
			network,
		)
	}
	return pkgID, nil
}

// Register adds or overrides the package id for a network
func (r *Registry) Register(network string, pkgID ledger.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packages[network] = pkgID
}

// ChainAlias resolves a raw chain identifier to a network name, if known
func (r *Registry) ChainAlias(chainID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	network, ok := r.aliases[chainID]
	return network, ok
}
