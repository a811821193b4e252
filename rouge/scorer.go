//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/texteval/texteval-go/internal/tokenize"
)

// Compute returns ROUGE scores for a prediction against one or more
// references. Scores from multiple references are combined per the configured
// aggregation, keeping the best F1 per variant by default.
func Compute(ctx context.Context, prediction string, references []string, opt ...Option) (map[string]Score, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(prediction) == "" {
		return nil, errors.New("prediction is empty")
	}
	if len(references) == 0 {
		return nil, errors.New("references are empty")
	}

	opts := newOptions(opt...)
	if len(opts.variants) == 0 {
		return map[string]Score{}, nil
	}
	for _, variant := range opts.variants {
		if err := validateVariant(variant); err != nil {
			return nil, err
		}
	}
	switch opts.aggregation {
	case AggregationBest, AggregationAverage:
	default:
		return nil, fmt.Errorf("unsupported aggregation: %s", opts.aggregation)
	}

	tok := opts.tokenizer
	if tok == nil {
		tok = tokenize.New(opts.stemming)
	}

	perRef := make([]map[string]Score, 0, len(references))
	for _, reference := range references {
		scores, err := computeSingle(ctx, prediction, reference, opts, tok)
		if err != nil {
			return nil, err
		}
		perRef = append(perRef, scores)
	}
	return aggregate(perRef, opts.aggregation), nil
}

// computeSingle computes all configured variants for one prediction/reference pair.
func computeSingle(ctx context.Context, prediction, reference string, opts *options, tok tokenize.Tokenizer) (map[string]Score, error) {
	predTokens := tok.Tokenize(prediction)
	refTokens := tok.Tokenize(reference)

	result := make(map[string]Score, len(opts.variants))
	for _, variant := range opts.variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch variant {
		case VariantL:
			result[variant] = scoreLCS(predTokens, refTokens)
		case VariantLsum:
			score, err := scoreSummaryLCS(prediction, reference, tok, opts.splitSentences)
			if err != nil {
				return nil, err
			}
			result[variant] = score
		default:
			n, err := parseN(variant)
			if err != nil {
				return nil, err
			}
			result[variant] = scoreNGrams(predTokens, refTokens, n)
		}
	}
	return result, nil
}

// aggregate combines per-reference scores into a single score per variant.
func aggregate(perRef []map[string]Score, mode Aggregation) map[string]Score {
	out := make(map[string]Score)
	if mode == AggregationBest {
		for i, scores := range perRef {
			for variant, score := range scores {
				if i == 0 || score.F1 > out[variant].F1 {
					out[variant] = score
				}
			}
		}
		return out
	}
	for _, scores := range perRef {
		for variant, score := range scores {
			sum := out[variant]
			sum.Precision += score.Precision
			sum.Recall += score.Recall
			sum.F1 += score.F1
			out[variant] = sum
		}
	}
	n := float64(len(perRef))
	for variant, sum := range out {
		out[variant] = Score{Precision: sum.Precision / n, Recall: sum.Recall / n, F1: sum.F1 / n}
	}
	return out
}

// scoreNGrams computes ROUGE-N precision, recall, and F1 for tokenized inputs.
func scoreNGrams(predTokens, refTokens []string, n int) Score {
	if len(predTokens) == 0 || len(refTokens) == 0 {
		return Score{}
	}
	predNGrams := countNGrams(predTokens, n)
	refNGrams := countNGrams(refTokens, n)

	var overlap, refTotal, predTotal int
	for key, refCnt := range refNGrams {
		refTotal += refCnt
		overlap += min(refCnt, predNGrams[key])
	}
	for _, cnt := range predNGrams {
		predTotal += cnt
	}

	precision := float64(overlap) / float64(max(predTotal, 1))
	recall := float64(overlap) / float64(max(refTotal, 1))
	return Score{Precision: precision, Recall: recall, F1: fMeasure(precision, recall)}
}

// countNGrams builds a multiset of n-grams keyed by a delimiter-joined token sequence.
func countNGrams(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	ngrams := make(map[string]int, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		ngrams[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return ngrams
}

// scoreLCS computes ROUGE-L precision, recall, and F1 using the LCS length.
func scoreLCS(predTokens, refTokens []string) Score {
	if len(predTokens) == 0 || len(refTokens) == 0 {
		return Score{}
	}
	lcs := lcsLength(refTokens, predTokens)
	precision := float64(lcs) / float64(len(predTokens))
	recall := float64(lcs) / float64(len(refTokens))
	return Score{Precision: precision, Recall: recall, F1: fMeasure(precision, recall)}
}

// lcsLength computes the length of the longest common subsequence using two
// rolling rows.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// scoreSummaryLCS computes rougeLsum using summary-level LCS aggregation.
func scoreSummaryLCS(prediction, reference string, tok tokenize.Tokenizer, splitSentences bool) (Score, error) {
	predSents, err := sentencesOf(prediction, splitSentences)
	if err != nil {
		return Score{}, err
	}
	refSents, err := sentencesOf(reference, splitSentences)
	if err != nil {
		return Score{}, err
	}

	predTokenized := make([][]string, 0, len(predSents))
	for _, s := range predSents {
		predTokenized = append(predTokenized, tok.Tokenize(s))
	}
	refTokenized := make([][]string, 0, len(refSents))
	for _, s := range refSents {
		refTokenized = append(refTokenized, tok.Tokenize(s))
	}
	return summaryLevelLCS(refTokenized, predTokenized), nil
}

// sentencesOf returns sentence strings using either newline splitting or the
// Punkt sentence tokenizer.
func sentencesOf(text string, splitSentences bool) ([]string, error) {
	if splitSentences {
		return tokenize.SplitSentences(text)
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// summaryLevelLCS computes rougeLsum, counting each token at most as often as
// it occurs on both sides.
func summaryLevelLCS(refSents, predSents [][]string) Score {
	refTotal := 0
	for _, s := range refSents {
		refTotal += len(s)
	}
	predTotal := 0
	for _, s := range predSents {
		predTotal += len(s)
	}
	if refTotal == 0 || predTotal == 0 {
		return Score{}
	}

	refCounts := make(map[string]int)
	predCounts := make(map[string]int)
	for _, s := range refSents {
		for _, token := range s {
			refCounts[token]++
		}
	}
	for _, s := range predSents {
		for _, token := range s {
			predCounts[token]++
		}
	}

	hits := 0
	for _, refSent := range refSents {
		for _, token := range unionLCS(refSent, predSents) {
			if refCounts[token] <= 0 || predCounts[token] <= 0 {
				continue
			}
			hits++
			refCounts[token]--
			predCounts[token]--
		}
	}

	precision := float64(hits) / float64(predTotal)
	recall := float64(hits) / float64(refTotal)
	return Score{Precision: precision, Recall: recall, F1: fMeasure(precision, recall)}
}

// unionLCS returns the reference tokens covered by the union of LCS matches
// against every prediction sentence.
func unionLCS(refSent []string, predSents [][]string) []string {
	covered := make(map[int]struct{})
	for _, predSent := range predSents {
		for _, idx := range lcsIndices(refSent, predSent) {
			covered[idx] = struct{}{}
		}
	}
	indices := make([]int, 0, len(covered))
	for idx := range covered {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	tokens := make([]string, 0, len(indices))
	for _, idx := range indices {
		tokens = append(tokens, refSent[idx])
	}
	return tokens
}

// lcsIndices returns the indices into ref of one longest common subsequence
// between ref and can, reconstructed by backtracking the DP table.
func lcsIndices(ref, can []string) []int {
	if len(ref) == 0 || len(can) == 0 {
		return nil
	}
	table := make([][]int, len(ref)+1)
	for i := range table {
		table[i] = make([]int, len(can)+1)
	}
	for i := 1; i <= len(ref); i++ {
		for j := 1; j <= len(can); j++ {
			switch {
			case ref[i-1] == can[j-1]:
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}

	i, j := len(ref), len(can)
	indices := make([]int, 0, table[i][j])
	for i > 0 && j > 0 {
		switch {
		case ref[i-1] == can[j-1]:
			indices = append(indices, i-1)
			i--
			j--
		case table[i][j-1] > table[i-1][j]:
			j--
		default:
			i--
		}
	}
	for l, r := 0, len(indices)-1; l < r; l, r = l+1, r-1 {
		indices[l], indices[r] = indices[r], indices[l]
	}
	return indices
}
