//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package texteval evaluates predicted text against reference texts with
// BLEU and ROUGE, both as a one-shot call that prints a report and as a
// batch evaluator over stored eval sets.
package texteval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/texteval/texteval-go/bleu"
	"github.com/texteval/texteval-go/rouge"
)

// Report carries the BLEU and ROUGE results for one prediction.
type Report struct {
	// Bleu is the BLEU result.
	Bleu bleu.Score `json:"bleu"`
	// Rouge maps ROUGE variant to its result.
	Rouge map[string]rouge.Score `json:"rouge"`
}

// Evaluate computes BLEU and ROUGE for the prediction against the
// references, writes a report with one labeled section per metric to the
// configured writer (os.Stdout unless overridden), and returns both results.
func Evaluate(ctx context.Context, prediction string, references []string, opt ...EvalOption) (*Report, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	opts := newEvalOptions(opt...)
	bleuScore, err := bleu.Compute(ctx, prediction, references, opts.bleuOptions...)
	if err != nil {
		return nil, fmt.Errorf("compute bleu: %w", err)
	}
	rougeScores, err := rouge.Compute(ctx, prediction, references, opts.rougeOptions...)
	if err != nil {
		return nil, fmt.Errorf("compute rouge: %w", err)
	}
	report := &Report{Bleu: bleuScore, Rouge: rougeScores}
	if err := report.write(opts.writer); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return report, nil
}

// write prints the report as two labeled sections, BLEU then ROUGE, with
// ROUGE variants in sorted order.
func (r *Report) write(w io.Writer) error {
	if w == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "BLEU\n  score: %.6f\n  precisions: %s\n  brevity_penalty: %.6f\n",
		r.Bleu.BLEU, formatPrecisions(r.Bleu.Precisions), r.Bleu.BrevityPenalty); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ROUGE\n"); err != nil {
		return err
	}
	variants := make([]string, 0, len(r.Rouge))
	for variant := range r.Rouge {
		variants = append(variants, variant)
	}
	sort.Strings(variants)
	for _, variant := range variants {
		score := r.Rouge[variant]
		if _, err := fmt.Fprintf(w, "  %s: precision=%.6f recall=%.6f f1=%.6f\n",
			variant, score.Precision, score.Recall, score.F1); err != nil {
			return err
		}
	}
	return nil
}

func formatPrecisions(precisions []float64) string {
	parts := make([]string, len(precisions))
	for i, p := range precisions {
		parts[i] = fmt.Sprintf("%.6f", p)
	}
	out := "["
	for i, part := range parts {
		if i > 0 {
			out += " "
		}
		out += part
	}
	return out + "]"
}
