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

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Seed mapping installed by every constructor and by Reset: Traditional
// Chinese with no region defaults to the Taiwan region. Callers may override
// it with Register and replace set to true.
const (
	seedLanguage = "zh"
	seedScript   = "Hant"
	seedRegion   = "TW"
)

// Resolver owns a mapping table from (language, script) pairs to region
// codes and converts structured locales into the "language" or
// "language_REGION" string form.
//
// Every table key has a present script and an absent region; every table
// value is a two-letter uppercase code that was a known or custom region
// code at the time it was registered. A Resolver is safe for concurrent use;
// mutations take effect atomically with respect to Resolve.
type Resolver struct {
	mu            sync.RWMutex
	table         map[Locale]string
	customRegions map[string]struct{}
	regionsFixed  bool
}

// NewResolver creates an isolated resolver pre-registered with the seed
// mapping (zh, Hant) -> TW and with no custom regions.
func NewResolver() *Resolver {
	return &Resolver{table: seedTable()}
}

// NewFixedResolver creates an isolated resolver whose custom regions are
// validated once and then frozen: SetCustomRegions on the returned resolver
// always fails with ErrCustomRegionsFixed. The mapping table itself remains
// mutable through Register and Unregister.
//
// The codes follow the SetCustomRegions rules: nil means no custom regions,
// a non-nil empty slice is rejected with ErrEmptyCustomRegions, and every
// element must be exactly two uppercase ASCII letters.
func NewFixedResolver(codes []string) (*Resolver, error) {
	custom, err := buildCustomRegions(codes)
	if err != nil {
		return nil, err
	}
	return &Resolver{table: seedTable(), customRegions: custom, regionsFixed: true}, nil
}

// seedTable returns a fresh mapping table holding only the seed entry.
func seedTable() map[Locale]string {
	return map[Locale]string{
		New(seedLanguage).WithScript(seedScript): seedRegion,
	}
}

// Register adds a batch of mappings from script keys to region codes.
//
// The whole batch is validated before any mutation: every key must have a
// present script and an absent region (ErrInvalidKey otherwise), and every
// value, after uppercasing, must be a known ISO 3166-1 code or one of the
// resolver's custom regions (ErrInvalidRegionCode otherwise). A failed call
// leaves the table untouched.
//
// If validation passes, each entry is stored with its value uppercased.
// Entries whose key is already registered are silently skipped unless
// replace is true; first write wins unless told otherwise. Keys that are
// already present never fail a batch. A nil or empty batch is a no-op.
func (r *Resolver) Register(entries map[Locale]string, replace bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, value := range entries {
		if !key.hasScript || key.hasRegion {
			return fmt.Errorf("register %q: %w", key.String(), ErrInvalidKey)
		}
		if !r.isAcceptedRegion(strings.ToUpper(value)) {
			return fmt.Errorf("register %q -> %q: %w", key.String(), value, ErrInvalidRegionCode)
		}
	}

	for key, value := range entries {
		if _, exists := r.table[key]; exists && !replace {
			continue
		}
		r.table[key] = strings.ToUpper(value)
	}
	return nil
}

// isAcceptedRegion checks an uppercased code against the built-in reference
// set and the current custom regions. Callers must hold the lock.
func (r *Resolver) isAcceptedRegion(code string) bool {
	if isKnownRegion(code) {
		return true
	}
	_, ok := r.customRegions[code]
	return ok
}

// IsRegistered returns whether the locale, compared by exact component
// equality, is a key in the mapping table.
func (r *Resolver) IsRegistered(loc Locale) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.table[loc]
	return ok
}

// Unregister removes the locale from the mapping table. Removing a key that
// is not present is a no-op.
func (r *Resolver) Unregister(loc Locale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.table, loc)
}

// SetCustomRegions replaces the resolver's custom region codes.
//
// A nil slice clears the custom regions. A non-nil empty slice is ambiguous
// with clearing and is rejected with ErrEmptyCustomRegions. Every element
// must be exactly two uppercase ASCII letters; any non-conforming elements
// fail the whole call with a RegionFormatError listing them, and nothing is
// mutated. Elements that duplicate the built-in ISO 3166-1 set are silently
// dropped.
//
// On a resolver created with NewFixedResolver this method always fails with
// ErrCustomRegionsFixed.
func (r *Resolver) SetCustomRegions(codes []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.regionsFixed {
		return ErrCustomRegionsFixed
	}

	custom, err := buildCustomRegions(codes)
	if err != nil {
		return err
	}
	r.customRegions = custom
	return nil
}

// buildCustomRegions validates custom region codes and returns them as a
// set, minus any that duplicate the built-in reference set. A nil input
// yields a nil set.
func buildCustomRegions(codes []string) (map[string]struct{}, error) {
	if codes == nil {
		return nil, nil
	}
	if len(codes) == 0 {
		return nil, ErrEmptyCustomRegions
	}

	var malformed []string
	for _, code := range codes {
		if !isCustomRegionShape(code) {
			malformed = append(malformed, code)
		}
	}
	if len(malformed) > 0 {
		return nil, &RegionFormatError{Codes: malformed}
	}

	custom := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if isKnownRegion(code) {
			continue
		}
		custom[code] = struct{}{}
	}
	return custom, nil
}

// CustomRegions returns the current custom region codes in sorted order, or
// nil if there are none.
func (r *Resolver) CustomRegions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.customRegions) == 0 {
		return nil
	}
	codes := make([]string, 0, len(r.customRegions))
	for code := range r.customRegions {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Resolve converts a locale into the string form understood by formatters
// that accept only "language" or "language_REGION".
//
// A nil locale yields ("", false); every other input yields a string. A
// caller-supplied region always wins and is appended verbatim with no table
// lookup. Otherwise, if the locale's (language, script) pair is registered,
// the stored region code is appended. Otherwise the bare language is
// returned. The output never contains a script subtag.
func (r *Resolver) Resolve(loc *Locale) (string, bool) {
	if loc == nil {
		return "", false
	}

	if loc.hasRegion {
		return loc.language + "_" + loc.region, true
	}

	if loc.hasScript {
		r.mu.RLock()
		region, ok := r.table[loc.scriptKey()]
		r.mu.RUnlock()
		if ok {
			return loc.language + "_" + region, true
		}
	}

	return loc.language, true
}

// Reset restores the resolver to its seed state: the mapping table is
// discarded and re-registered with only the seed entry, and the custom
// regions are cleared. On a resolver created with NewFixedResolver the
// custom regions are part of its construction and are kept.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table = seedTable()
	if !r.regionsFixed {
		r.customRegions = nil
	}
}
