// Package xregexp provides helpers to process regexp expressions.
package xregexp

import "regexp"

// SubmatchCaptures find submatches in s with re applied and returns all named
// and unnamed submatch groups. Groups that did not participate in the match
// are present with an empty value.
func SubmatchCaptures(re *regexp.Regexp, s string) (named map[string]string, unnamed []string) {
	matches := re.FindStringSubmatch(s)
	if len(matches) == 0 {
		// not match
		return
	}
	for i, name := range re.SubexpNames() {
		if i == 0 {
			continue
		}
		if name == "" {
			unnamed = append(unnamed, matches[i])
			continue
		}
		if named == nil {
			named = make(map[string]string)
		}
		named[name] = matches[i]
	}
	return
}
