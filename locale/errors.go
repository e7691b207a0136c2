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
	"errors"
	"strings"
)

// Errors that can occur during resolver mutation and locale parsing. All of
// them report caller mistakes; none are transient, and a failed call never
// leaves the resolver partially mutated.
var (
	ErrInvalidKey         = errors.New("a mapping key must have a script and must not have a region")
	ErrInvalidRegionCode  = errors.New("a mapping value is not a known or custom region code")
	ErrEmptyCustomRegions = errors.New("custom regions must not be empty; pass nil to clear them")
	ErrCustomRegionsFixed = errors.New("custom regions are fixed at construction on this resolver")
	ErrNotInitialized     = errors.New("the shared resolver has not been created yet")
	ErrInvalidLanguage    = errors.New("the language subtag must be two to eight ASCII letters")
	ErrInvalidSubtag      = errors.New("a subtag is neither a script nor a region subtag")
)

// RegionFormatError reports custom region codes that do not match the
// required shape of exactly two uppercase ASCII letters. Codes holds every
// offending element of the rejected call.
type RegionFormatError struct {
	Codes []string
}

// Error formats the message with the offending codes.
func (e *RegionFormatError) Error() string {
	return "custom region codes must be two uppercase ASCII letters, got: " +
		strings.Join(e.Codes, ", ")
}
