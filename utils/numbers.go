package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// digitMap converts Persian and Arabic-Indic digits to their ASCII equivalents.
var digitMap = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// mobileRegex matches normalized Iranian mobile numbers.
var mobileRegex = regexp.MustCompile(`^09[0-9]{9}$`)

// FixNumbers converts Persian and Arabic digits in s to ASCII digits and
// strips thousands separators.
func FixNumbers(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, ",", "")
	return strings.Map(func(r rune) rune {
		if ascii, ok := digitMap[r]; ok {
			return ascii
		}
		return r
	}, s)
}

// FixFormNumbers normalizes digits in every value of a submitted form.
func FixFormNumbers(form url.Values) {
	for key, values := range form {
		for i, v := range values {
			values[i] = FixNumbers(v)
		}
		form[key] = values
	}
}

// IsValidMobile reports whether mobile is a valid phone number after
// normalization.
func IsValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}
