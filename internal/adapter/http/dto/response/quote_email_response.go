package response

type QuoteEmailResponse struct {
	MessageID string `json:"message_id"`
}
