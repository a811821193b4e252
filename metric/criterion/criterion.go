//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package criterion defines the scoring criteria carried by metrics.
package criterion

import (
	cbleu "github.com/texteval/texteval-go/metric/criterion/bleu"
	crouge "github.com/texteval/texteval-go/metric/criterion/rouge"
)

// Criterion holds the configuration for one metric's scoring. Exactly one
// field is expected to be set.
type Criterion struct {
	// Bleu configures BLEU scoring.
	Bleu *cbleu.BleuCriterion `json:"bleu,omitempty"`
	// Rouge configures ROUGE scoring.
	Rouge *crouge.RougeCriterion `json:"rouge,omitempty"`
}
