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

import "strings"

// Parse builds a Locale from its "language[-Script][-REGION]" string form.
//
// The check is purely structural: the language subtag must be two to eight
// ASCII letters, a script subtag must be four ASCII letters, and a region
// subtag must be two ASCII letters. Subtags are not validated against any
// registry; Parse does not know whether a language or script exists. Case is
// normalized to the conventional lowercase language, titlecase script, and
// uppercase region.
func Parse(tag string) (Locale, error) {
	subtags := strings.Split(tag, "-")

	language := subtags[0]
	if len(language) < minLanguageLen || len(language) > maxLanguageLen || !isAlphabetic(language) {
		return Locale{}, ErrInvalidLanguage
	}
	loc := New(strings.ToLower(language))

	rest := subtags[1:]
	if len(rest) > 0 && len(rest[0]) == scriptLen && isAlphabetic(rest[0]) {
		loc = loc.WithScript(titleCase(rest[0]))
		rest = rest[1:]
	}
	if len(rest) > 0 && len(rest[0]) == regionLen && isAlphabetic(rest[0]) {
		loc = loc.WithRegion(strings.ToUpper(rest[0]))
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return Locale{}, ErrInvalidSubtag
	}
	return loc, nil
}

// titleCase renders a subtag in title case (e.g., "Hant").
func titleCase(s string) string {
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
