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

import "golang.org/x/text/language"

// Subtag length constants.
const (
	regionLen      = 2 // A region code is always 2 letters.
	scriptLen      = 4 // A script subtag is always 4 letters.
	maxLanguageLen = 8 // Maximum length of a language subtag.
	minLanguageLen = 2 // Minimum length of a language subtag.
)

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isUpperAlpha checks if a byte is an uppercase ASCII letter.
func isUpperAlpha(b byte) bool { return b >= 'A' && b <= 'Z' }

// isAlphabetic checks if a string contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isCustomRegionShape checks if a string has the shape required of a custom
// region code: exactly two uppercase ASCII letters.
func isCustomRegionShape(s string) bool {
	return len(s) == regionLen && isUpperAlpha(s[0]) && isUpperAlpha(s[1])
}

// isKnownRegion checks a two-letter code against the ISO 3166-1 registry.
// Codes of any other length, unassigned codes, and user-assigned codes such
// as "XK" or "ZZ" are not part of the built-in reference set. IsCountry
// alone is not enough here: CLDR treats the user-assigned "XK" (Kosovo) as
// a country, so user-assigned codes must be excluded explicitly.
func isKnownRegion(code string) bool {
	if len(code) != regionLen {
		return false
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return false
	}
	return region.IsCountry() && !region.IsPrivateUse()
}
