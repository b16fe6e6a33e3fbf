package intake

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// Permissive, case-insensitive answer parsing. A false return means the
// utterance carried no usable value for the field: the engine re-asks when
// the field is required and records an explicit skip when it is optional.

var (
	dateRe  = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)
	digitRe = regexp.MustCompile(`[0-9]+`)
)

var auStates = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}

func isSkipWord(t string) bool {
	switch t {
	case "", "skip", "n/a", "no":
		return true
	}
	return false
}

// parseDate extracts a d/m/y date and normalizes it to ISO (YYYY-MM-DD).
// Two-digit years are taken as 2000-based. Free text that is not a date is
// kept verbatim (lowercased), matching the lenient intake behavior.
func parseDate(s string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if isSkipWord(t) {
		return "", false
	}
	m := dateRe.FindStringSubmatch(t)
	if m == nil {
		return t, true
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// parseNumber concatenates every digit in the utterance ("about 1,500" ->
// 1500).
func parseNumber(s string) (int, bool) {
	digits := strings.Join(digitRe.FindAllString(s, -1), "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseServiceType(s string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(t, "burial") {
		return "burial", true
	}
	if strings.Contains(t, "cremation") {
		return "cremation", true
	}
	return "", false
}

func parseAUState(s string) (string, bool) {
	u := strings.ToUpper(strings.TrimSpace(s))
	if len(u) > 3 {
		u = u[:3]
	}
	for _, st := range auStates {
		if strings.HasPrefix(st, u) || strings.HasPrefix(u, st) {
			return st, true
		}
	}
	return "", false
}

// parseAddOns matches known add-on keywords in free text and returns the
// canonical flag set as JSON. "none"/"no" yields an empty flag set rather
// than a skip so the question is not re-asked.
func parseAddOns(s string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return "", false
	}
	var flags entities.AddOnFlags
	if t != "none" && t != "no" {
		flags = entities.AddOnFlags{
			Invitations:   strings.Contains(t, "invitations"),
			Livestream:    strings.Contains(t, "livestream"),
			Flowers:       strings.Contains(t, "flowers") || strings.Contains(t, "floral"),
			PrintedSheets: strings.Contains(t, "printed sheets") || strings.Contains(t, "printedsheets"),
			Slideshow:     strings.Contains(t, "slideshow"),
			Catering:      strings.Contains(t, "catering"),
			MemorialPage:  strings.Contains(t, "memorial page") || strings.Contains(t, "memorialpage"),
		}
	}
	b, err := json.Marshal(flags)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// ParseAnswer interprets an utterance against one field's expected shape and
// returns the normalized value to collect.
func ParseAnswer(field Field, raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	switch field.Kind {
	case KindDate:
		return parseDate(s)
	case KindNumber:
		n, ok := parseNumber(s)
		if !ok {
			return "", false
		}
		return strconv.Itoa(n), true
	case KindServiceType:
		return parseServiceType(s)
	case KindState:
		return parseAUState(s)
	case KindAddOns:
		return parseAddOns(s)
	case KindPreferredName:
		if s == "" || strings.EqualFold(s, "same") {
			return "", false
		}
		return s, true
	default:
		t := strings.ToLower(s)
		if s == "" || t == "skip" || t == "n/a" {
			return "", false
		}
		return s, true
	}
}
