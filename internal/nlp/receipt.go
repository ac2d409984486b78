package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Tried in order: a "total" line, the first amount with cents, then any run
// of three or more digits.
var receiptAmounts = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\btotal\b[^\d\n]*(\d+\.\d{2})`),
	regexp.MustCompile(`\$?\s*(\d+\.\d{2})\b`),
	regexp.MustCompile(`\$?\s*(\d+\.?\d{2})`),
}

var receiptDate = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)

var receiptDateLayouts = []string{"1/2/2006", "1/2/06"}

// Receipt is what could be read from receipt text. Missing parts stay zero.
type Receipt struct {
	Merchant string     `json:"merchant,omitempty"`
	Amount   *float64   `json:"amount,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

// ParseReceipt reads scanned receipt text: the total, the first month/day/year
// date and the first line as the merchant.
func ParseReceipt(text string) Receipt {
	text = strings.ToValidUTF8(text, "\uFFFD")
	var r Receipt

	// dates are not amounts
	amounts := receiptDate.ReplaceAllString(text, " ")
	for _, re := range receiptAmounts {
		m := re.FindStringSubmatch(amounts)
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			r.Amount = &v
			break
		}
	}

	if m := receiptDate.FindString(text); m != "" {
		m = strings.ReplaceAll(m, "-", "/")
		for _, layout := range receiptDateLayouts {
			if d, err := time.Parse(layout, m); err == nil {
				r.Date = &d
				break
			}
		}
	}

	first, _, _ := strings.Cut(text, "\n")
	r.Merchant = strings.TrimSpace(first)
	return r
}
