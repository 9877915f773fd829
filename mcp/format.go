// SPDX-License-Identifier: GPL-3.0-only

package mcp

import (
	"fmt"
	"sms-mcp-server/detector"
	"strings"
)

func formatText(payload any) string {
	switch p := payload.(type) {
	case *detector.Match:
		return formatMatch(p)
	case *detector.Failure:
		return fmt.Sprintf("Detection failed for %s: %s", p.PhoneNumber, p.Reason.Message())
	case detector.BatchResult:
		return formatBatch(p)
	case detector.Rejection:
		return "Detection failed: " + p.Reason.Message()
	default:
		return fmt.Sprint(payload)
	}
}

func formatMatch(m *detector.Match) string {
	var b strings.Builder
	b.WriteString("Phone carrier detection result\n\n")
	fmt.Fprintf(&b, "Number: %s\n", m.PhoneNumber)
	fmt.Fprintf(&b, "Carrier: %s (%s)\n", m.Carrier, m.CarrierLocalized)
	fmt.Fprintf(&b, "Location: %s %s\n", m.Province, m.City)
	fmt.Fprintf(&b, "Prefix: %s\n", m.Prefix)
	return b.String()
}

func formatBatch(batch detector.BatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch carrier detection results (%d)\n\n", batch.Total)
	for i, result := range batch.Results {
		switch r := result.(type) {
		case *detector.Match:
			fmt.Fprintf(&b, "%d. %s - %s (%s %s)\n", i+1, r.PhoneNumber, r.Carrier, r.Province, r.City)
		case *detector.Failure:
			fmt.Fprintf(&b, "%d. %s - %s\n", i+1, r.PhoneNumber, r.Reason.Message())
		}
	}
	return b.String()
}
