package email

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/infrastructure/database"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrMissingEmailFromAddress = errors.New("missing EMAIL_FROM_ADDRESS")
var ErrEmailSenderNotConfigured = errors.New("email sender not configured")

// SESSender delivers quote emails through Amazon SES v2.
//
// EMAIL_SENDER_MOCK=true (or 1) short-circuits delivery for local runs and
// returns a synthetic message id.
type SESSender struct {
	client   *sesv2.Client
	from     string
	mockMode bool
}

var _ interfaces.IEmailSender = (*SESSender)(nil)

func NewSESSender(ctx context.Context, from string) (*SESSender, error) {
	if isEmailSenderMockEnabled() {
		log.Printf("[email][sender] mock mode enabled")
		return &SESSender{mockMode: true}, nil
	}

	if from == "" {
		log.Printf("[email][sender] missing EMAIL_FROM_ADDRESS")
		return nil, ErrMissingEmailFromAddress
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Printf("[email][sender] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[email][sender] SES client initialized from=%s", from)

	return &SESSender{client: sesv2.NewFromConfig(cfg), from: from}, nil
}

func (s *SESSender) Send(ctx context.Context, to, subject, html string) (string, error) {
	if s != nil && s.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[email][sender] mock send success to=%s subject=%q message_id=%s", to, subject, id)
		return id, nil
	}

	if s == nil || s.client == nil {
		return "", ErrEmailSenderNotConfigured
	}

	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(html)},
				},
			},
		},
	})
	if err != nil {
		log.Printf("[email][sender] send failed to=%s err=%v", to, err)
		return "", err
	}

	id := aws.ToString(out.MessageId)
	log.Printf("[email][sender] send success to=%s message_id=%s", to, id)
	return id, nil
}

func isEmailSenderMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_SENDER_MOCK")))
	return v == "1" || v == "true" || v == "yes"
}
