package services

import (
	"fmt"
	"strings"
)

// TemplateConfig holds template configuration
type TemplateConfig struct {
	Description string
	Parameters  []string
	Body        string // placeholders are written as {{name}}
}

// TemplateService renders assistant messages and sends them over WhatsApp
type TemplateService struct {
	notifier Notifier
}

// NewTemplateService creates a new template service. notifier may be nil.
func NewTemplateService(notifier Notifier) *TemplateService {
	return &TemplateService{
		notifier: notifier,
	}
}

// MessageTemplates maps template names to their bodies
var MessageTemplates = map[string]TemplateConfig{
	"welcome": {
		Description: "First assistant message after onboarding",
		Parameters:  []string{"greeting_name", "preferred_course", "preferred_location"},
		Body: `Hello{{greeting_name}}! I'm EduGuide AI, your friendly virtual counselor.

I'm here to help you find the perfect college and course for your future. Based on your profile, I can see you're interested in {{preferred_course}} in {{preferred_location}}.

How can I help you today?`,
	},
	"booking_confirmation": {
		Description: "Counseling session confirmed",
		Parameters:  []string{"counselor", "date", "time", "mode"},
		Body: `Your counseling session has been confirmed!

Counselor: {{counselor}}
Date & Time: {{date}} at {{time}}
Mode: {{mode}}

We've sent confirmation details to your email and WhatsApp. You'll receive reminders 24 hours and 1 hour before your session.

Looking forward to helping you choose the perfect college!`,
	},
	"college_details": {
		Description: "Details of a selected college",
		Parameters:  []string{"name", "description", "city", "state", "type", "fee_band"},
		Body: `You're viewing details for {{name}}:

{{description}}

Location: {{city}}, {{state}}
Type: {{type}}
Annual Fees: {{fee_band}}

Would you like to:
• Apply to this college
• Book a counseling session to discuss this option
• Get more information about courses offered`,
	},
	"college_apply": {
		Description: "Application checklist for a selected college",
		Parameters:  []string{"name"},
		Body: `Great choice! To apply to {{name}}, you'll need:

Required Documents:
• 10th & 12th mark sheets
• Transfer certificate
• ID proof (Aadhar/Passport)
• Recent passport-size photos

Application Process:
1. Fill out the online application form
2. Upload required documents
3. Pay application fee (if applicable)
4. Submit and track your application

Would you like me to guide you through the application process, or would you prefer to book a counseling session to discuss this further?`,
	},
	"session_reminder": {
		Description: "Reminder before a counseling session",
		Parameters:  []string{"lead_time", "counselor", "date", "time", "mode"},
		Body: `⏰ Reminder: your counseling session starts in {{lead_time}}.

Counselor: {{counselor}}
Date & Time: {{date}} at {{time}}
Mode: {{mode}}

Reply HELP on WhatsApp if you need to reschedule.`,
	},
}

// Render fills the named template with params. Every declared parameter is required.
func (s *TemplateService) Render(templateName string, params map[string]string) (string, error) {
	template, exists := MessageTemplates[templateName]
	if !exists {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	pairs := make([]string, 0, len(template.Parameters)*2)
	for _, param := range template.Parameters {
		value, ok := params[param]
		if !ok {
			return "", fmt.Errorf("template %s: missing parameter %s", templateName, param)
		}
		pairs = append(pairs, "{{"+param+"}}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template.Body), nil
}

// SendTemplate renders the template and sends it to a WhatsApp number
func (s *TemplateService) SendTemplate(to string, templateName string, params map[string]string) error {
	if s.notifier == nil {
		return fmt.Errorf("whatsapp notifier not configured")
	}

	body, err := s.Render(templateName, params)
	if err != nil {
		return err
	}
	return s.notifier.SendWhatsAppMessage(to, body)
}
