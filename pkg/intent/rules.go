package intent

// Rule maps a set of trigger keywords to an intent label. Lower priority
// numbers are checked first. The ordering is deliberate policy: social
// pleasantries and refund/cancellation must win over the broader pricing
// and organizer triggers, so do not reorder when editing.
type Rule struct {
	Label    string
	Priority int
	Keywords []string
}

// Intent labels returned by Classify.
const (
	Greeting       = "greeting"
	Farewell       = "farewell"
	Gratitude      = "gratitude"
	Refund         = "refund"
	Cancel         = "cancel"
	Pricing        = "pricing"
	Organizer      = "organizer"
	Attendee       = "attendee"
	Partnership    = "partnership"
	Support        = "support"
	Contact        = "contact"
	Features       = "features"
	About          = "about"
	Payment        = "payment"
	Checkin        = "checkin"
	Analytics      = "analytics"
	Security       = "security"
	GettingStarted = "getting_started"
	Cities         = "cities"
	Discount       = "discount"
)

// rules is static, process-wide configuration; changing it is a redeploy.
// Kept sorted by ascending priority.
var rules = []Rule{
	{
		Label:    Greeting,
		Priority: 1,
		Keywords: []string{
			"hi", "hello", "hey", "hii", "hiii", "howdy", "namaste",
			"good morning", "good afternoon", "good evening",
			"greetings", "sup", "yo", "heya", "hola", "hy",
		},
	},
	{
		Label:    Farewell,
		Priority: 2,
		Keywords: []string{
			"bye", "goodbye", "see you", "see ya", "cya", "later",
			"gtg", "gotta go", "take care", "good night", "goodnight",
			"bye bye", "byebye",
		},
	},
	{
		Label:    Gratitude,
		Priority: 3,
		Keywords: []string{
			"thanks", "thank you", "thank u", "thankyou", "thx", "ty",
			"tysm", "appreciate", "thanks a lot", "thanks so much",
		},
	},
	{
		Label:    Refund,
		Priority: 4,
		Keywords: []string{"refund", "money back", "refund policy"},
	},
	{
		Label:    Cancel,
		Priority: 5,
		Keywords: []string{"cancel", "cancellation"},
	},
	{
		Label:    Pricing,
		Priority: 6,
		Keywords: []string{
			"price", "pricing", "cost", "fee", "fees", "commission",
			"charge", "charges", "how much", "expensive", "cheap",
			"free", "money", "subscription", "plans", "rate", "rates",
		},
	},
	{
		Label:    Organizer,
		Priority: 7,
		Keywords: []string{
			"organize", "organizer", "organiser", "host", "hosting",
			"create event", "sell tickets", "start selling", "my event",
			"list event", "manage event", "event management",
			"event platform", "how to create",
		},
	},
	{
		Label:    Attendee,
		Priority: 8,
		Keywords: []string{
			"buy ticket", "purchase ticket", "book ticket", "find event",
			"attend", "attending", "upcoming event", "events near",
			"browse event", "looking for event", "want to attend",
			"find tickets", "get tickets", "show me events",
		},
	},
	{
		Label:    Partnership,
		Priority: 9,
		Keywords: []string{
			"partner", "partnership", "sponsor", "sponsorship",
			"collaborate", "collaboration", "b2b", "bulk",
			"reseller", "venue partnership", "corporate solutions",
		},
	},
	{
		Label:    Support,
		Priority: 10,
		Keywords: []string{
			"support", "help me", "problem", "issue", "complaint",
			"not working", "bug", "error", "something went wrong",
			"broken", "doesnt work", "cant access",
		},
	},
	{
		Label:    Contact,
		Priority: 11,
		Keywords: []string{
			"contact", "reach", "call", "phone", "email",
			"whatsapp", "address", "office",
		},
	},
	{
		Label:    Features,
		Priority: 12,
		Keywords: []string{
			"feature", "features", "what do you offer",
			"services", "functionality", "capabilities",
		},
	},
	{
		Label:    About,
		Priority: 13,
		Keywords: []string{
			"what is tickets99", "about tickets99", "tell me about tickets99",
			"what does tickets99 do", "about your company", "about your platform",
			"what is eventitans", "about eventitans", "tell me about eventitans",
		},
	},
	{
		Label:    Payment,
		Priority: 14,
		Keywords: []string{
			"payment", "pay", "upi", "card", "net banking",
			"stripe", "gpay", "paytm", "payment method",
			"how to pay", "payment options",
		},
	},
	{
		Label:    Checkin,
		Priority: 15,
		Keywords: []string{
			"check-in", "checkin", "qr code", "qr",
			"scan", "entry", "barcode",
		},
	},
	{
		Label:    Analytics,
		Priority: 16,
		Keywords: []string{
			"analytics", "dashboard", "reports",
			"insights", "statistics",
		},
	},
	{
		Label:    Security,
		Priority: 17,
		Keywords: []string{
			"secure", "security", "safe", "trust",
			"reliable", "encryption", "privacy", "data protection",
		},
	},
	{
		Label:    GettingStarted,
		Priority: 18,
		Keywords: []string{
			"get started", "how to start", "sign up", "register",
			"create account", "onboard", "how do i begin",
			"how do i start", "getting started",
		},
	},
	{
		Label:    Cities,
		Priority: 19,
		Keywords: []string{
			"which cities", "what cities", "where do you operate",
			"locations", "which city", "available cities",
			"where are you available", "which places",
			"hyderabad", "delhi", "mumbai", "bangalore", "bengaluru",
			"jaipur", "chennai", "noida",
		},
	},
	{
		Label:    Discount,
		Priority: 20,
		Keywords: []string{
			"discount", "promo", "coupon", "offer",
			"early bird", "group discount", "promo code",
		},
	},
}

// Rules exposes the ordered rule table (read-only by convention).
func Rules() []Rule {
	return rules
}
