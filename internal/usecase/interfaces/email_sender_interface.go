package interfaces

import "context"

// IEmailSender abstracts the outbound email provider (e.g. SES).
//
// Send returns the provider's external message id for traceability; mock
// implementations return a synthetic id.
type IEmailSender interface {
	Send(ctx context.Context, to, subject, html string) (externalID string, err error)
}
