/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package locale

import "sync"

var (
	defaultMu       sync.Mutex
	defaultResolver *Resolver
)

// Default returns the process-wide shared resolver, creating it with the
// seed mapping on first use. The same instance is returned on every call
// until ResetDefault discards it, so configuration applied through it is
// visible to all call sites. Library code that must not mutate global state
// should use NewResolver or NewFixedResolver instead.
func Default() *Resolver {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultResolver == nil {
		defaultResolver = NewResolver()
	}
	return defaultResolver
}

// ResetDefault discards the shared resolver and replaces it with a fresh
// seeded instance, dropping all registered mappings and custom regions. It
// fails with ErrNotInitialized if Default has never been called.
func ResetDefault() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultResolver == nil {
		return ErrNotInitialized
	}
	defaultResolver = NewResolver()
	return nil
}
