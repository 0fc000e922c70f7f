package services

import (
	"strings"
	"testing"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

func TestMessageResultToleratesMissingFields(t *testing.T) {
	if _, err := messageResult(nil); err == nil {
		t.Fatalf("expected an error for a nil response")
	}

	sid, err := messageResult(&twilioApi.ApiV2010Message{})
	if err != nil || sid != "" {
		t.Fatalf("empty response: sid %q err %v", sid, err)
	}

	code := 63016
	_, err = messageResult(&twilioApi.ApiV2010Message{ErrorCode: &code})
	if err == nil || !strings.Contains(err.Error(), "63016") || !strings.Contains(err.Error(), "unknown error") {
		t.Fatalf("error code without message: %v", err)
	}

	msg := "outside the allowed window"
	_, err = messageResult(&twilioApi.ApiV2010Message{ErrorCode: &code, ErrorMessage: &msg})
	if err == nil || !strings.Contains(err.Error(), msg) {
		t.Fatalf("expected the Twilio message, got %v", err)
	}

	want := "SM123"
	sid, err = messageResult(&twilioApi.ApiV2010Message{Sid: &want})
	if err != nil || sid != want {
		t.Fatalf("expected sid %q, got %q %v", want, sid, err)
	}
}
