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

// Package locale resolves structured locale identifiers into the string form
// accepted by formatting libraries that only understand "language" or
// "language_REGION", never "language_SCRIPT".
//
// A Locale is a (language, script, region) triple in which script and region
// are optional. When a locale carries a script but no region, a naive
// rendering would drop the script and hand the formatter a bare language
// code, which can select linguistically wrong conventions (for example
// simplified instead of traditional Chinese characters). The Resolver closes
// that gap with an explicit mapping table from (language, script) pairs to
// region codes, consulted only when the caller did not supply a region.
//
// # Key Features
//
//   - Deterministic Resolution: Resolve produces exactly one of "language"
//     or "language_REGION"; a caller-supplied region always wins over the
//     mapping table.
//   - Validated Mutation: Register validates an entire batch of mappings
//     before touching the table, so a failed call never leaves the table
//     partially updated.
//   - Region Validation: Proposed region codes are checked against the
//     ISO 3166-1 registry, optionally extended with caller-supplied custom
//     codes.
//   - Shared or Isolated: A process-wide default instance is available for
//     codebases that configure one resolver globally; isolated instances,
//     including a variant with custom regions frozen at construction, are
//     available for library code that must not touch global state.
package locale

import (
	"encoding/json"
	"strings"
)

// Locale is a structured locale identifier: a required language subtag plus
// an optional script and an optional region. The zero value has an empty
// language and is not a useful locale; build values with New and the
// WithScript/WithRegion builders, or with Parse.
//
// Locale is a comparable value type. Two locales are equal only if all three
// components match exactly, where an absent script or region is distinct
// from any concrete value, including the empty string. This makes Locale
// directly usable as a map key.
type Locale struct {
	language  string
	script    string
	region    string
	hasScript bool
	hasRegion bool
}

// New returns a Locale with the given language and no script or region.
// The language is stored as given; by convention callers supply it in
// lowercase (Parse normalizes case for string input).
func New(language string) Locale {
	return Locale{language: language}
}

// WithScript returns a copy of the locale with the script set to the given
// value. The script is then present even if the value is empty.
func (l Locale) WithScript(script string) Locale {
	l.script = script
	l.hasScript = true
	return l
}

// WithRegion returns a copy of the locale with the region set to the given
// value. The region is then present even if the value is empty.
func (l Locale) WithRegion(region string) Locale {
	l.region = region
	l.hasRegion = true
	return l
}

// Language returns the language subtag.
func (l Locale) Language() string {
	return l.language
}

// Script returns the script subtag.
func (l Locale) Script() (string, bool) {
	return l.script, l.hasScript
}

// Region returns the region subtag.
func (l Locale) Region() (string, bool) {
	return l.region, l.hasRegion
}

// scriptKey returns the locale reduced to its (language, script) pair with
// the region absent. Mapping-table keys are stored in this form.
func (l Locale) scriptKey() Locale {
	return Locale{language: l.language, script: l.script, hasScript: l.hasScript}
}

// String returns the locale in its "language[-Script][-REGION]" display
// form. Components are rendered as stored; Parse normalizes case, so
// locales built from strings display in canonical BCP 47 casing. It
// implements the fmt.Stringer interface.
//
// Note that this is the display form, not the resolver output: Resolve
// produces the underscore-separated form without a script.
func (l Locale) String() string {
	var builder strings.Builder
	builder.Grow(len(l.language) + len(l.script) + len(l.region) + 2)
	builder.WriteString(l.language)
	if l.hasScript {
		builder.WriteByte('-')
		builder.WriteString(l.script)
	}
	if l.hasRegion {
		builder.WriteByte('-')
		builder.WriteString(l.region)
	}
	return builder.String()
}

// MarshalJSON implements the json.Marshaler interface. It marshals the
// locale as a JSON string in its String form.
func (l Locale) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. An empty JSON
// string yields the zero Locale; any other string is parsed with Parse.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*l = Locale{}
		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
