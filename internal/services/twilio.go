package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers a text message to a student's WhatsApp number
type Notifier interface {
	SendWhatsAppMessage(to string, message string) error
}

var _ Notifier = (*TwilioService)(nil)

type TwilioService struct {
	client *twilio.RestClient
	from   string // Twilio WhatsApp sender, "whatsapp:+14155238886"
}

// NewTwilioService creates a new Twilio service instance
func NewTwilioService(accountSid, authToken, from string) (*TwilioService, error) {
	if accountSid == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio credentials")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	if !strings.HasPrefix(from, "whatsapp:") {
		from = "whatsapp:" + from
	}

	return &TwilioService{
		client: client,
		from:   from,
	}, nil
}

// SendWhatsAppMessage sends a WhatsApp message via Twilio
func (t *TwilioService) SendWhatsAppMessage(to string, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo("whatsapp:" + strings.TrimPrefix(to, "whatsapp:"))
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp message: %v", err)
		return err
	}

	sid, err := messageResult(resp)
	if err != nil {
		return err
	}

	log.Printf("✅ WhatsApp message sent! SID: %s", sid)
	return nil
}

// messageResult extracts the SID or the Twilio error from a create response.
// Every field of the response is optional.
func messageResult(resp *twilioApi.ApiV2010Message) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("twilio returned no message")
	}
	if resp.ErrorCode != nil && *resp.ErrorCode != 0 {
		detail := "unknown error"
		if resp.ErrorMessage != nil {
			detail = *resp.ErrorMessage
		}
		return "", fmt.Errorf("twilio error %d: %s", *resp.ErrorCode, detail)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
