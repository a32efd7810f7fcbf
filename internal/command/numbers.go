package command

import "strings"

// numberWords maps spoken number words to digit strings so dictated
// commands like "delete last three words" parse the same as their
// typed forms. Compound tens ("twenty one") are not folded; the
// vocabulary covers the counts dictation realistically produces.
var numberWords = map[string]string{
	"zero":      "0",
	"one":       "1",
	"two":       "2",
	"three":     "3",
	"four":      "4",
	"five":      "5",
	"six":       "6",
	"seven":     "7",
	"eight":     "8",
	"nine":      "9",
	"ten":       "10",
	"eleven":    "11",
	"twelve":    "12",
	"thirteen":  "13",
	"fourteen":  "14",
	"fifteen":   "15",
	"sixteen":   "16",
	"seventeen": "17",
	"eighteen":  "18",
	"nineteen":  "19",
	"twenty":    "20",
	"thirty":    "30",
	"forty":     "40",
	"fifty":     "50",
	"sixty":     "60",
	"seventy":   "70",
	"eighty":    "80",
	"ninety":    "90",
}

// normalizeNumbers replaces standalone number words with digits. Text
// containing a quote character is left untouched so quoted type_text
// literals are never rewritten.
func normalizeNumbers(text string) string {
	if strings.ContainsAny(text, `"'`) {
		return text
	}

	fields := strings.Fields(text)
	changed := false
	for i, f := range fields {
		if digits, ok := numberWords[f]; ok {
			fields[i] = digits
			changed = true
		}
	}
	if !changed {
		return text
	}
	return strings.Join(fields, " ")
}
