// Package fallback produces deterministic, brand-parameterized replies for
// when the language model is unavailable or returns nothing useful. It is
// a pure function of its inputs: intent table first, then best retrieved
// snippet, then a generic catch-all.
package fallback

import (
	"fmt"

	"support-chat-be/pkg/brand"
	"support-chat-be/pkg/intent"
	"support-chat-be/pkg/rag"
)

// Respond returns a canned reply. It never fails and has no side effects.
func Respond(profile *brand.Profile, userMessage string, snippets []rag.Snippet, detected string) string {
	if reply := intentReply(profile, detected); reply != "" {
		return reply
	}

	// No intent matched (or the intent has no answer for this brand):
	// fall back to the best knowledge match.
	if len(snippets) > 0 {
		return snippets[0].Answer
	}

	return fmt.Sprintf("I can help you with %s! Ask me about events, pricing, features, or how to get started.", profile.Name)
}

// intentReply maps a detected intent to its canned template. An empty
// return means "no answer for this intent/brand", letting Respond continue
// down the chain. The cities branch intentionally answers only for
// ticket99; the other brand falls through.
func intentReply(p *brand.Profile, detected string) string {
	switch detected {
	case intent.Greeting:
		return fmt.Sprintf("Hello! Welcome to %s. How can I help you today? You can ask me about events, pricing, features, or partnerships!", p.Name)

	case intent.Farewell:
		return fmt.Sprintf("Goodbye! Visit %s anytime. Have a great day!", p.Website)

	case intent.Gratitude:
		return fmt.Sprintf("You're welcome! Let me know if you have more questions about %s.", p.Name)

	case intent.Support:
		return fmt.Sprintf("I'm sorry to hear that! Please reach our support team at %s and they'll help you sort it out.", p.SupportEmail)

	case intent.Contact:
		reply := fmt.Sprintf("You can reach us at %s", p.SupportEmail)
		if p.SupportPhone != "" {
			reply += fmt.Sprintf(" or call %s", p.SupportPhone)
		}
		return reply + ". Our team usually responds within a few hours!"

	case intent.Refund:
		return fmt.Sprintf("Refund policies are set by each event organizer. Check the event page for details, or email %s with your booking ID and we'll help sort it out.", p.SupportEmail)

	case intent.Cancel:
		return fmt.Sprintf("To cancel a ticket, check the event page for the cancellation policy. You can also email %s with your booking details and we'll assist you.", p.SupportEmail)

	case intent.Pricing:
		if p.Key == brand.Ticket99 {
			return "Tickets99 pricing is simple: free to list events, 2-5% commission on ticket sales only. Payment processing is 2% + GST. Zero upfront costs!"
		}
		return "We offer three tiers: Starter (Free) - up to 3 events/month; Pro (Rs 2,999/month) - unlimited events with advanced features; Enterprise (Custom) - white-label solution with dedicated support."

	case intent.Organizer:
		return fmt.Sprintf("%s makes it easy to organize events! Free to start, quick setup, and powerful tools. What type of event are you planning?", p.Name)

	case intent.Attendee:
		return fmt.Sprintf("You can browse and buy tickets at %s! We have events across multiple cities. Any specific event type you're looking for?", p.Website)

	case intent.Partnership:
		return "We'd love to explore partnerships! Tell me more about what kind of collaboration you're interested in - sponsorship, venue, corporate, or reseller?"

	case intent.Features:
		if p.Key == brand.Ticket99 {
			return "Key features: online ticketing, QR code check-in, real-time analytics, mobile app, discount codes, and direct bank payments. Which feature interests you?"
		}
		return "Key features: event planning tools, venue management, vendor marketplace, budget tracking, team collaboration, marketing automation, and analytics dashboard."

	case intent.About:
		if p.Key == brand.Ticket99 {
			return "Tickets99 is India's premier event ticketing platform. 1,999+ events hosted, 499,999+ attendees, 599+ organizers across 7+ cities. Want to know about our features or pricing?"
		}
		return "Eventitans is a full-service event management platform providing end-to-end tools for planning, venues, vendors, budgets, marketing, and analytics."

	case intent.GettingStarted:
		return fmt.Sprintf("Just head to %s, sign up for free, and get started! It takes under 5 minutes. Want me to help you with anything specific?", p.Website)

	case intent.Cities:
		if p.Key == brand.Ticket99 {
			return "We're active in Hyderabad, Delhi, Mumbai, Bangalore, Jaipur, Chennai, and Noida - with more cities coming soon! Which city are you in?"
		}
		return ""

	case intent.Checkin:
		return "Every ticket gets a unique QR code. Organizers can scan it with our mobile app for instant check-in at the venue. Fast, secure, and no duplicate entries!"

	case intent.Payment:
		return "We support UPI, credit/debit cards, net banking, and digital wallets. Payments are processed securely through trusted payment partners."

	case intent.Analytics:
		return "We provide a real-time analytics dashboard showing ticket sales, revenue, attendee demographics, and marketing insights. All included with your account!"

	case intent.Security:
		return "We use industry-standard encryption for all transactions. Payment data is processed securely and never stored on our servers."

	case intent.Discount:
		return "Organizers can create unlimited discount codes, early bird pricing, group discounts, and special promos. All built into the platform!"
	}

	return ""
}
