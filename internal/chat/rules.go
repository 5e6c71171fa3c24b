package chat

import "strings"

// intentRule is one keyword category. Rules are evaluated in order and the
// first match wins, so greeting stays ahead of everything else.
type intentRule struct {
	name     string
	keywords []string
	response string
}

var intentRules = []intentRule{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey"},
		response: "Hello! I'm Alex, your CodeBridge assistant. I'm here to help you explore how technology can empower your business. What questions can I answer for you today?",
	},
	{
		name:     "services",
		keywords: []string{"service", "help", "what do you do"},
		response: "CodeBridge specializes in making technology simple and accessible for small businesses. We offer technology audits, cloud setup, workflow automation, and ongoing support. Would you like to schedule a free consultation to discuss your specific needs?",
	},
	{
		name:     "pricing",
		keywords: []string{"cost", "price", "expensive"},
		response: "We believe technology solutions should be affordable for small businesses. Our pricing varies based on your specific needs, but we always start with a free consultation to understand your situation. Would you like to book a call to discuss pricing?",
	},
	{
		name:     "overwhelm",
		keywords: []string{"difficult", "complicated", "overwhelm"},
		response: "I completely understand that feeling - technology can seem overwhelming! That's exactly why CodeBridge exists. We specialize in making tech simple and providing clear, jargon-free guidance. Our clients often tell us we make the complex feel manageable. Would you like to chat with one of our consultants?",
	},
	{
		name:     "booking",
		keywords: []string{"appointment", "schedule", "book", "call"},
		response: "I'd be happy to help you schedule a consultation! Our free initial calls typically last 30 minutes and help us understand your business needs. You can book directly through our calendar or I can connect you with our team. Which would you prefer?",
	},
	{
		name:     "urgent",
		keywords: []string{"urgent", "emergency", "down", "broken"},
		response: "It sounds like you might have an urgent technology issue. While I can provide some immediate guidance through chat, for urgent technical problems, I recommend calling our emergency support line or booking an immediate consultation. Can you tell me more about what's happening?",
	},
}

const defaultResponse = "That's a great question! Based on what you've shared, I think a conversation with one of our technology consultants would be really valuable. They can provide personalized guidance for your specific situation. Would you like me to help you schedule that, or do you have other questions I can answer first?"

// ScriptedResponse matches the message against the intent rules and returns
// the first matching canned reply, or the generic fallback inviting a
// consultation.
func ScriptedResponse(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.response
			}
		}
	}
	return defaultResponse
}
