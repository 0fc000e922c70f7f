package services

import (
	"fmt"
	"strings"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
)

// Action tells the client which auxiliary panel to reveal next to a reply
type Action string

const (
	ActionNone            Action = ""
	ActionShowColleges    Action = "show_colleges"
	ActionShowCourses     Action = "show_courses"
	ActionShowBooking     Action = "show_booking"
	ActionShowContact     Action = "show_contact"
	ActionShowApplication Action = "show_application"
)

// Response is a canned assistant reply
type Response struct {
	Message string `json:"message"`
	Action  Action `json:"action,omitempty"`
}

// ContactInfo is where students can reach the counseling team
var ContactInfo = struct {
	WhatsApp   string `json:"whatsapp"`
	Email      string `json:"email"`
	LivePortal string `json:"live_portal"`
}{
	WhatsApp:   "+91-XXXXXXXXXX",
	Email:      "support@mycollegeguide.in",
	LivePortal: "https://mycollegeguide.in/live",
}

// replyRule pairs a predicate over the lowercased message with its reply
type replyRule struct {
	name    string
	matches func(msg string) bool
	reply   Response
}

func containsAny(msg string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

// replyRules is evaluated top to bottom and the first match wins.
// Keywords overlap ("hi" is inside "which"), so the order is part of the behavior.
var replyRules = []replyRule{
	{
		name:    "greeting",
		matches: func(m string) bool { return containsAny(m, "hello", "hi", "hey") },
		reply:   Response{Message: greetingReply},
	},
	{
		name: "find_colleges",
		matches: func(m string) bool {
			return strings.Contains(m, "find") && containsAny(m, "college", "university")
		},
		reply: Response{Message: findCollegesReply, Action: ActionShowColleges},
	},
	{
		name: "recommend_courses",
		matches: func(m string) bool {
			return strings.Contains(m, "course") && containsAny(m, "recommend", "suggest", "which")
		},
		reply: Response{Message: recommendCoursesReply},
	},
	{
		name:    "counseling",
		matches: func(m string) bool { return containsAny(m, "counseling", "book", "appointment") },
		reply:   Response{Message: counselingReply, Action: ActionShowBooking},
	},
	{
		name:    "contact",
		matches: func(m string) bool { return containsAny(m, "whatsapp", "contact", "call") },
		reply:   Response{Message: contactReply, Action: ActionShowContact},
	},
	{
		name: "application_status",
		matches: func(m string) bool {
			return strings.Contains(m, "application") && containsAny(m, "status", "check", "track")
		},
		reply: Response{Message: applicationStatusReply, Action: ActionShowApplication},
	},
	{
		name: "live_classes",
		matches: func(m string) bool {
			return strings.Contains(m, "live") && containsAny(m, "class", "session")
		},
		reply: Response{Message: liveClassesReply},
	},
	{
		name:    "scholarships",
		matches: func(m string) bool { return containsAny(m, "scholarship", "financial", "fees") },
		reply:   Response{Message: scholarshipReply},
	},
	{
		name:    "placements",
		matches: func(m string) bool { return containsAny(m, "placement", "job", "career") },
		reply:   Response{Message: placementReply},
	},
	{
		name:    "hostel",
		matches: func(m string) bool { return containsAny(m, "hostel", "accommodation", "stay") },
		reply:   Response{Message: hostelReply},
	},
	{
		name:    "thanks",
		matches: func(m string) bool { return containsAny(m, "thank", "thanks") },
		reply:   Response{Message: thanksReply},
	},
}

// GenerateResponse maps a student's free-text message to a canned reply.
// The profile is accepted for future personalization and is currently unused.
func GenerateResponse(message string, profile *models.Profile) Response {
	msg := strings.ToLower(message)
	for _, rule := range replyRules {
		if rule.matches(msg) {
			return rule.reply
		}
	}
	return Response{Message: fallbackReply}
}

// MatchedRule returns the name of the rule that answers message, or "fallback"
func MatchedRule(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range replyRules {
		if rule.matches(msg) {
			return rule.name
		}
	}
	return "fallback"
}

const greetingReply = `Hello! I'm EduGuide AI, your friendly virtual counselor. I'm here to help you find the perfect college and course for your future.

Let me know what you're looking for:
• Find colleges that match your needs
• Get course recommendations
• Book a free counseling session
• Check your application status
• Join our live classes

How can I help you today?`

const findCollegesReply = `I'd love to help you find the perfect college! To show you the best matches, I need to know:

1. What course or subject are you interested in?
2. Which city or state do you prefer?
3. What's your budget range per year?

You can also use the "Find Colleges" button below to browse options!`

const recommendCoursesReply = `Great question! Choosing the right course is important for your career.

To give you the best recommendations, tell me:
• What subjects do you enjoy most?
• What are your career goals?
• Do you prefer technical, creative, or business fields?

Based on your interests, I can suggest courses in:
• Engineering & Technology (CSE, AI, ECE, Mechanical)
• Medical & Healthcare (MBBS, Nursing, Pharmacy)
• Arts & Humanities (Psychology, Literature, Design)
• Commerce & Business (B.Com, BBA, CA)
• Science (Physics, Chemistry, Biotechnology)

Would you like to book a free counseling session to discuss your options in detail?`

const counselingReply = `Excellent! Our expert counselors are here to guide you.

Free counseling sessions include:
• One-on-one personalized guidance
• Course and college recommendations
• Career path discussion
• Application assistance

Available modes:
• WhatsApp Call
• Zoom Video Call
• Phone Call

Would you like to schedule a session? I can show you available time slots!`

var contactReply = fmt.Sprintf(`You can reach us directly on WhatsApp!

📱 WhatsApp: %s

Message format:
"Hi, I'm [Your Name]. I want free counseling for [Course Interest]. Preferred time: [Your Available Time]."

Our team will reply within 24 hours!

You can also:
📧 Email: %s
🌐 Live Portal: %s`, ContactInfo.WhatsApp, ContactInfo.Email, ContactInfo.LivePortal)

const applicationStatusReply = `I can help you check your application status!

To view your application details, please provide:
• Your Application ID, OR
• The email you used during registration

Once you share this, I'll show you:
✓ Current status
✓ College and course details
✓ Next steps required
✓ Important deadlines`

const liveClassesReply = `Join our FREE live classes!

Our upcoming sessions cover:
• How to choose the right college
• Entrance exam preparation tips
• Scholarship opportunities
• Career guidance workshops

Classes are conducted via Zoom with expert counselors. After each class, you'll receive:
• Recording link
• Presentation slides
• Additional resources

Would you like to see upcoming live class schedules?`

const scholarshipReply = `Great question! Many colleges offer scholarships based on:

• Academic merit (80%+ marks)
• Sports achievements
• Financial need
• State/category quotas

Scholarship benefits:
• 25-100% fee waiver
• Hostel fee concessions
• Stipend for books and supplies

To find colleges with scholarships matching your profile, I recommend booking a free counseling session where we can:
• Review your eligibility
• Identify suitable scholarships
• Help with applications

Would you like to book a counseling session?`

const placementReply = `Excellent thinking about placements!

Top colleges we recommend offer:
• 80-95% placement rates
• Average packages: ₹4-8 LPA
• Top packages: ₹15-40 LPA
• Training in soft skills & interviews

Companies recruiting:
• TCS, Infosys, Wipro (IT sector)
• Amazon, Flipkart (E-commerce)
• ICICI, HDFC (Banking)
• Healthcare & Manufacturing sectors

Want to explore colleges with strong placement records? I can show you options based on your course preference!`

const hostelReply = `Most colleges offer hostel facilities with:

Amenities:
• AC/Non-AC rooms
• Wi-Fi connectivity
• Mess with nutritious food
• 24/7 security
• Laundry services
• Recreation rooms

Hostel fees typically range from:
• ₹40,000 - ₹1,00,000 per year

Some colleges also have:
• Girls-only hostels with extra security
• Day scholar options
• PG tie-ups nearby

Would you like me to show colleges with good hostel facilities in your preferred location?`

const thanksReply = `You're very welcome! I'm here to help you anytime.

Feel free to reach out whenever you have questions about:
• College selection
• Course guidance
• Application process
• Counseling sessions

Your future is bright, and we're here to support you every step of the way!

Best wishes on your college journey! 🎓`

const fallbackReply = `I'd love to help you with that!

I can assist you with:
🔍 Finding colleges that match your preferences
🎓 Recommending courses based on your interests
🗓️ Booking free counseling sessions
📞 Connecting you with our team via WhatsApp
💌 Checking application status
🧑‍🏫 Joining live classes

Could you tell me more about what you're looking for, or click one of the quick action buttons below?`
