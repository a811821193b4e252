//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package rouge implements the ROUGE metric family: ROUGE-N n-gram overlap,
// ROUGE-L longest-common-subsequence, and ROUGE-Lsum summary-level LCS.
package rouge

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// VariantL is the sentence-level LCS variant.
	VariantL = "rougeL"
	// VariantLsum is the summary-level LCS variant.
	VariantLsum = "rougeLsum"
)

// DefaultVariants lists the variants computed when none are configured,
// matching the common rouge-1/rouge-2/rouge-l reporting set.
var DefaultVariants = []string{"rouge1", "rouge2", VariantL}

// Score holds ROUGE precision, recall and F1.
type Score struct {
	// Precision is the fraction of predicted units that match the reference in range [0, 1].
	Precision float64 `json:"precision"`
	// Recall is the fraction of reference units that are matched by the prediction in range [0, 1].
	Recall float64 `json:"recall"`
	// F1 is the harmonic mean of precision and recall in range [0, 1].
	F1 float64 `json:"f1"`
}

// fMeasure computes the harmonic mean of precision and recall.
func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}

// validateVariant validates a ROUGE variant identifier such as rouge1,
// rougeL, or rougeLsum.
func validateVariant(variant string) error {
	if variant == VariantL || variant == VariantLsum {
		return nil
	}
	_, err := parseN(variant)
	return err
}

// parseN parses a rougeN variant string and returns the N value.
func parseN(variant string) (int, error) {
	nStr, ok := strings.CutPrefix(variant, "rouge")
	if !ok || nStr == "" {
		return 0, fmt.Errorf("invalid rouge variant: %s", variant)
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid rouge variant: %s", variant)
	}
	return n, nil
}
