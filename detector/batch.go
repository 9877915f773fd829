// SPDX-License-Identifier: GPL-3.0-only

package detector

import (
	"encoding/json"
	"errors"
	"fmt"
)

const MaxBatchSize = 100

var ErrTooManyItems = errors.New(ReasonTooManyItems.Message())

// DetectBatch detects every number independently, preserving input order.
// Inputs longer than MaxBatchSize are rejected without partial results.
func (d *Detector) DetectBatch(raws []string) (BatchResult, error) {
	if len(raws) > MaxBatchSize {
		return BatchResult{}, fmt.Errorf("%d numbers given: %w", len(raws), ErrTooManyItems)
	}

	results := make([]Result, len(raws))
	for i, raw := range raws {
		results[i] = d.Detect(raw)
	}
	return BatchResult{Results: results, Total: len(results)}, nil
}

// Rejection is the payload reported when a whole request is refused.
type Rejection struct {
	Reason Reason
}

func (r Rejection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Reason  Reason `json:"reason"`
	}{false, r.Reason.Message(), r.Reason})
}
