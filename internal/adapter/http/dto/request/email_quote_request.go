package request

import "strings"

// EmailQuoteRequest optionally overrides the quote recipient. When To is
// empty the server falls back to the case's next-of-kin email.
type EmailQuoteRequest struct {
	To string `json:"to"`
}

func (r EmailQuoteRequest) ResolveTo() string {
	return strings.TrimSpace(r.To)
}
