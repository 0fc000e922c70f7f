package services

import (
	"strings"
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	svc := NewTemplateService(nil)

	body, err := svc.Render("college_apply", map[string]string{"name": "Loyola College"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(body, "To apply to Loyola College") {
		t.Fatalf("name not interpolated: %s", body)
	}
	if strings.Contains(body, "{{") {
		t.Fatalf("unrendered placeholder left in body: %s", body)
	}
}

func TestRenderTemplateMissingParameter(t *testing.T) {
	svc := NewTemplateService(nil)

	if _, err := svc.Render("booking_confirmation", map[string]string{"counselor": "x"}); err == nil {
		t.Fatalf("expected error for missing parameters")
	}
	if _, err := svc.Render("does_not_exist", nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestSendTemplateUsesNotifier(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewTemplateService(notifier)

	err := svc.SendTemplate("+919800000000", "college_apply", map[string]string{"name": "Anna University"})
	if err != nil {
		t.Fatalf("SendTemplate failed: %v", err)
	}
	sent := notifier.Sent()
	if len(sent) != 1 || sent[0].To != "+919800000000" {
		t.Fatalf("expected one message to the student, got %+v", sent)
	}
}

func TestSendTemplateWithoutNotifier(t *testing.T) {
	svc := NewTemplateService(nil)
	if err := svc.SendTemplate("+91", "college_apply", map[string]string{"name": "x"}); err == nil {
		t.Fatalf("expected error without notifier")
	}
}
