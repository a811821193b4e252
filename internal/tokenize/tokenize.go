//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package tokenize provides the shared word and sentence tokenization used by
// the BLEU and ROUGE scorers.
package tokenize

import (
	"regexp"
	"strings"
)

var (
	// nonAlphaNumRE matches one or more non-alphanumeric characters for normalization.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// validTokenRE matches a token consisting only of lowercase ASCII letters and digits.
	validTokenRE = regexp.MustCompile(`^[a-z0-9]+$`)
)

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// wordTokenizer replicates the tokenization used by google-research/rouge:
// lowercase, replace every non-alphanumeric run with a space, split, and
// optionally stem surviving tokens.
type wordTokenizer struct {
	// stem enables Porter stemming for tokens longer than 3 characters.
	stem bool
}

// New creates the default word tokenizer with optional Porter stemming.
func New(stem bool) Tokenizer {
	return &wordTokenizer{stem: stem}
}

// Tokenize lowercases, normalizes punctuation, splits on whitespace, and
// optionally stems tokens.
func (t *wordTokenizer) Tokenize(text string) []string {
	text = nonAlphaNumRE.ReplaceAllString(strings.ToLower(text), " ")
	parts := strings.Fields(text)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if !validTokenRE.MatchString(token) {
			continue
		}
		if t.stem && len(token) > 3 {
			token = Stem(token)
		}
		if token == "" || !validTokenRE.MatchString(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Whitespace is a tokenizer that splits on whitespace without any
// normalization. BLEU uses it as the default to match the reference
// whitespace-splitting behavior of common BLEU implementations.
type Whitespace struct{}

// Tokenize splits text on whitespace.
func (Whitespace) Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
