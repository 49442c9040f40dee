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

package registry

import (
	"errors"
	"testing"

	"github.com/notarylabs/gonotary/ledger"
)

func TestDefaultManifest(t *testing.T) {
	for _, network := range []string{"mainnet", "testnet", "devnet"} {
		pkgID, err := Default().PackageID(network)
		if err != nil {
			t.Fatalf("unexpected error for %s: %s", network, err)
		}
		if pkgID == (ledger.ObjectID{}) {
			t.Errorf("zero package id for %s", network)
		}
	}
}

func TestUnknownNetwork(t *testing.T) {
	_, err := Default().PackageID("localnet-bogus")
	if !errors.Is(err, ledger.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRegisterOverride(t *testing.T) {
	r := New()
	pkgID, err := ledger.ObjectIDFromHex("0x42")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	r.Register("localnet", pkgID)
	got, err := r.PackageID("localnet")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != pkgID {
		t.Errorf("got %s, expected %s", got, pkgID)
	}
	// Overrides replace existing entries
	pkgID2, _ := ledger.ObjectIDFromHex("0x43")
	r.Register("localnet", pkgID2)
	got, _ = r.PackageID("localnet")
	if got != pkgID2 {
		t.Errorf("override did not replace entry")
	}
}

func TestChainAlias(t *testing.T) {
	network, ok := Default().ChainAlias("6364aad5")
	if !ok || network != "mainnet" {
		t.Errorf("got %q/%v, expected mainnet alias", network, ok)
	}
	if _, ok := Default().ChainAlias("ffffffff"); ok {
		t.Error("unexpected alias for unknown chain id")
	}
}

func TestFromManifestInvalid(t *testing.T) {
	if _, err := FromManifest([]byte("{")); !errors.Is(
		err,
		ledger.ErrInvalidConfig,
	) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := FromManifest(
		[]byte(`{"networks":{"x":"0xzz"}}`),
	); !errors.Is(err, ledger.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for bad package id, got %v", err)
	}
}
