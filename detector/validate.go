// SPDX-License-Identifier: GPL-3.0-only

package detector

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/width"
)

const (
	NumberLength       = 11
	chinaCountryCode   = 86
	chinaRegion        = "CN"
	chinaCountryPrefix = "86"
)

type Reason int

const (
	ReasonInvalidLength Reason = iota + 1
	ReasonInvalidFormat
	ReasonPrefixNotFound
	ReasonTooManyItems
)

var reasonCodes = map[Reason]string{
	ReasonInvalidLength:  "invalid_length",
	ReasonInvalidFormat:  "invalid_format",
	ReasonPrefixNotFound: "prefix_not_found",
	ReasonTooManyItems:   "too_many_items",
}

var reasonMessages = map[Reason]string{
	ReasonInvalidLength:  "Invalid phone number length",
	ReasonInvalidFormat:  "Invalid phone number format",
	ReasonPrefixNotFound: "Phone number prefix not found",
	ReasonTooManyItems:   fmt.Sprintf("Maximum %d phone numbers allowed", MaxBatchSize),
}

func (r Reason) String() string {
	return reasonCodes[r]
}

func (r Reason) Message() string {
	return reasonMessages[r]
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type ValidationError struct {
	Input  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason.Message(), e.Input)
}

// Normalize folds full-width characters, removes a leading +86 or 0086
// country code and strips everything that is not a decimal digit.
// International numbers are parsed with phonenumbers so a trunk "(0)" after
// the country code is dropped as well.
func Normalize(raw string) string {
	s := strings.TrimSpace(width.Narrow.String(raw))
	digits := stripNonDigits(s)
	if !strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "00") {
		return digits
	}

	num, err := phonenumbers.Parse(s, chinaRegion)
	if err != nil {
		return trimChinaCountryCode(s, digits)
	}
	if num.GetCountryCode() != chinaCountryCode {
		return digits
	}
	// phonenumbers may read a leading 12xxx or 179xx as a carrier selection
	// code and drop it; only an 11-digit national number is trusted.
	if nsn := phonenumbers.GetNationalSignificantNumber(num); len(nsn) == NumberLength {
		return nsn
	}
	return trimChinaCountryCode(s, digits)
}

// trimChinaCountryCode removes "00" and "86" by hand when the library
// cannot produce a national number.
func trimChinaCountryCode(s, digits string) string {
	rest := digits
	if strings.HasPrefix(s, "00") {
		rest = rest[2:]
	}
	if national, ok := strings.CutPrefix(rest, chinaCountryPrefix); ok {
		return national
	}
	return digits
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate normalizes raw and checks it is an 11-digit mainland mobile
// number starting with 1. It returns a *ValidationError on failure.
func Validate(raw string) (string, error) {
	return validate(raw, false)
}

// ValidateStrict additionally requires the second digit to be in [3-9].
func ValidateStrict(raw string) (string, error) {
	return validate(raw, true)
}

func validate(raw string, strict bool) (string, error) {
	number := Normalize(raw)
	if len(number) != NumberLength {
		return "", &ValidationError{Input: raw, Reason: ReasonInvalidLength}
	}
	if number[0] != '1' {
		return "", &ValidationError{Input: raw, Reason: ReasonInvalidFormat}
	}
	if strict && (number[1] < '3' || number[1] > '9') {
		return "", &ValidationError{Input: raw, Reason: ReasonInvalidFormat}
	}
	return number, nil
}
