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
	"log/slog"

	"github.com/notarylabs/gonotary/registry"
)

// ClientOptionFunc is a type that represents functions that modify the client
// config
type ClientOptionFunc func(*ReadOnlyClient)

// WithLogger specifies the logger to use. If none is provided, logging is
// discarded
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *ReadOnlyClient) {
		c.logger = logger
	}
}

// WithRegistry specifies the package registry used to resolve the contract
// package id. If none is provided, the process-wide default registry is used
func WithRegistry(reg *registry.Registry) ClientOptionFunc {
	return func(c *ReadOnlyClient) {
		c.registry = reg
	}
}
