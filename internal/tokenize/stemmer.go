//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package tokenize

import "strings"

// Stem reduces an ASCII word to its stem using the Porter stemming algorithm
// (M.F. Porter, 1980). Words of length one or two are returned unchanged.
func Stem(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 {
		return word
	}
	word = step1a(word)
	word = step1b(word)
	word = step1c(word)
	word = step2(word)
	word = step3(word)
	word = step4(word)
	word = step5a(word)
	word = step5b(word)
	return word
}

// isConsonant reports whether the letter at index i acts as a consonant.
// 'y' is a consonant when it starts the word or follows a vowel.
func isConsonant(w string, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(w, i-1)
	default:
		return true
	}
}

// measure returns the Porter measure m, the number of vowel-consonant
// sequences in the word.
func measure(w string) int {
	m := 0
	inVowelRun := false
	for i := 0; i < len(w); i++ {
		if isConsonant(w, i) {
			if inVowelRun {
				m++
			}
			inVowelRun = false
			continue
		}
		inVowelRun = true
	}
	return m
}

// hasVowel reports whether the word contains at least one vowel.
func hasVowel(w string) bool {
	for i := 0; i < len(w); i++ {
		if !isConsonant(w, i) {
			return true
		}
	}
	return false
}

// endsDouble reports whether the word ends with a doubled consonant.
func endsDouble(w string) bool {
	n := len(w)
	return n >= 2 && w[n-1] == w[n-2] && isConsonant(w, n-1)
}

// endsCVC reports whether the word ends consonant-vowel-consonant where the
// final consonant is not w, x, or y.
func endsCVC(w string) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	last := w[n-1]
	return isConsonant(w, n-3) && !isConsonant(w, n-2) && isConsonant(w, n-1) &&
		last != 'w' && last != 'x' && last != 'y'
}

// suffixRule rewrites a suffix when the condition holds for the remaining stem.
type suffixRule struct {
	suffix  string
	repl    string
	minM    int
	condSuf func(stem string) bool
}

// applyRules applies the first rule whose suffix matches. Matching a suffix
// consumes the word even when the condition fails, per the longest-match
// semantics of the algorithm.
func applyRules(w string, rules []suffixRule) string {
	for _, r := range rules {
		if !strings.HasSuffix(w, r.suffix) {
			continue
		}
		stem := w[:len(w)-len(r.suffix)]
		if measure(stem) < r.minM {
			return w
		}
		if r.condSuf != nil && !r.condSuf(stem) {
			return w
		}
		return stem + r.repl
	}
	return w
}

func step1a(w string) string {
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ies"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

func step1b(w string) string {
	if strings.HasSuffix(w, "eed") {
		if stem := w[:len(w)-3]; measure(stem) > 0 {
			return stem + "ee"
		}
		return w
	}
	var stem string
	switch {
	case strings.HasSuffix(w, "ed") && hasVowel(w[:len(w)-2]):
		stem = w[:len(w)-2]
	case strings.HasSuffix(w, "ing") && hasVowel(w[:len(w)-3]):
		stem = w[:len(w)-3]
	default:
		return w
	}
	switch {
	case strings.HasSuffix(stem, "at"), strings.HasSuffix(stem, "bl"), strings.HasSuffix(stem, "iz"):
		return stem + "e"
	case endsDouble(stem):
		if last := stem[len(stem)-1]; last != 'l' && last != 's' && last != 'z' {
			return stem[:len(stem)-1]
		}
		return stem
	case measure(stem) == 1 && endsCVC(stem):
		return stem + "e"
	}
	return stem
}

func step1c(w string) string {
	if strings.HasSuffix(w, "y") && hasVowel(w[:len(w)-1]) {
		return w[:len(w)-1] + "i"
	}
	return w
}

func step2(w string) string {
	return applyRules(w, []suffixRule{
		{suffix: "ational", repl: "ate", minM: 1},
		{suffix: "tional", repl: "tion", minM: 1},
		{suffix: "enci", repl: "ence", minM: 1},
		{suffix: "anci", repl: "ance", minM: 1},
		{suffix: "izer", repl: "ize", minM: 1},
		{suffix: "abli", repl: "able", minM: 1},
		{suffix: "alli", repl: "al", minM: 1},
		{suffix: "entli", repl: "ent", minM: 1},
		{suffix: "eli", repl: "e", minM: 1},
		{suffix: "ousli", repl: "ous", minM: 1},
		{suffix: "ization", repl: "ize", minM: 1},
		{suffix: "ation", repl: "ate", minM: 1},
		{suffix: "ator", repl: "ate", minM: 1},
		{suffix: "alism", repl: "al", minM: 1},
		{suffix: "iveness", repl: "ive", minM: 1},
		{suffix: "fulness", repl: "ful", minM: 1},
		{suffix: "ousness", repl: "ous", minM: 1},
		{suffix: "aliti", repl: "al", minM: 1},
		{suffix: "iviti", repl: "ive", minM: 1},
		{suffix: "biliti", repl: "ble", minM: 1},
	})
}

func step3(w string) string {
	return applyRules(w, []suffixRule{
		{suffix: "icate", repl: "ic", minM: 1},
		{suffix: "ative", repl: "", minM: 1},
		{suffix: "alize", repl: "al", minM: 1},
		{suffix: "iciti", repl: "ic", minM: 1},
		{suffix: "ical", repl: "ic", minM: 1},
		{suffix: "ful", repl: "", minM: 1},
		{suffix: "ness", repl: "", minM: 1},
	})
}

func step4(w string) string {
	return applyRules(w, []suffixRule{
		{suffix: "al", minM: 2},
		{suffix: "ance", minM: 2},
		{suffix: "ence", minM: 2},
		{suffix: "er", minM: 2},
		{suffix: "ic", minM: 2},
		{suffix: "able", minM: 2},
		{suffix: "ible", minM: 2},
		{suffix: "ant", minM: 2},
		{suffix: "ement", minM: 2},
		{suffix: "ment", minM: 2},
		{suffix: "ent", minM: 2},
		{suffix: "ion", minM: 2, condSuf: func(stem string) bool {
			return stem != "" && (stem[len(stem)-1] == 's' || stem[len(stem)-1] == 't')
		}},
		{suffix: "ou", minM: 2},
		{suffix: "ism", minM: 2},
		{suffix: "ate", minM: 2},
		{suffix: "iti", minM: 2},
		{suffix: "ous", minM: 2},
		{suffix: "ive", minM: 2},
		{suffix: "ize", minM: 2},
	})
}

func step5a(w string) string {
	if !strings.HasSuffix(w, "e") {
		return w
	}
	stem := w[:len(w)-1]
	if m := measure(stem); m > 1 || (m == 1 && !endsCVC(stem)) {
		return stem
	}
	return w
}

func step5b(w string) string {
	if strings.HasSuffix(w, "ll") && measure(w[:len(w)-1]) > 1 {
		return w[:len(w)-1]
	}
	return w
}
