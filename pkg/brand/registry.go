package brand

import (
	"fmt"
	"os"
	"path/filepath"
)

// Brand keys. The two tenants are fixed at build time; adding a brand is a
// deploy, not a runtime operation.
const (
	Ticket99   = "ticket99"
	Eventitans = "eventitans"
)

// Profile is the immutable per-tenant configuration: persona, knowledge
// collection, support contacts and widget theming.
type Profile struct {
	Key            string
	Name           string
	Tagline        string
	Collection     string
	PromptFile     string
	FAQFile        string
	DocsDir        string
	SupportEmail   string
	SupportPhone   string
	Website        string
	PrimaryColor   string
	SecondaryColor string
}

// Registry holds all brand profiles, loaded once at startup.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// NewRegistry builds the static brand table. promptsDir and knowledgeDir
// anchor the per-brand data files.
func NewRegistry(promptsDir, knowledgeDir string) *Registry {
	profiles := []*Profile{
		{
			Key:            Ticket99,
			Name:           "Tickets99",
			Tagline:        "India's Premier Event Ticketing Platform",
			Collection:     "ticket99_knowledge",
			PromptFile:     filepath.Join(promptsDir, "ticket99_system.txt"),
			FAQFile:        filepath.Join(knowledgeDir, "ticket99_faqs.json"),
			DocsDir:        filepath.Join(knowledgeDir, "ticket99_docs"),
			SupportEmail:   "support@tickets99.com",
			SupportPhone:   "+91 9876543210",
			Website:        "https://www.tickets99.com",
			PrimaryColor:   "#f97316",
			SecondaryColor: "#ef4444",
		},
		{
			Key:            Eventitans,
			Name:           "Eventitans",
			Tagline:        "Full-Service Event Management Platform",
			Collection:     "eventitans_knowledge",
			PromptFile:     filepath.Join(promptsDir, "eventitans_system.txt"),
			FAQFile:        filepath.Join(knowledgeDir, "eventitans_faqs.json"),
			DocsDir:        filepath.Join(knowledgeDir, "eventitans_docs"),
			SupportEmail:   "support@eventitans.com",
			SupportPhone:   "",
			Website:        "https://www.eventitans.com",
			PrimaryColor:   "#6366f1",
			SecondaryColor: "#8b5cf6",
		},
	}

	m := make(map[string]*Profile, len(profiles))
	order := make([]string, 0, len(profiles))
	for _, p := range profiles {
		m[p.Key] = p
		order = append(order, p.Key)
	}

	return &Registry{profiles: m, order: order}
}

// Get returns the profile for a brand key. Unknown keys are an error for
// every consumer.
func (r *Registry) Get(key string) (*Profile, error) {
	p, ok := r.profiles[key]
	if !ok {
		return nil, fmt.Errorf("unknown brand: %s", key)
	}
	return p, nil
}

// Keys returns all brand keys in registration order.
func (r *Registry) Keys() []string {
	return r.order
}

// All returns all profiles in registration order.
func (r *Registry) All() []*Profile {
	out := make([]*Profile, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.profiles[k])
	}
	return out
}

// Persona loads the brand's system-prompt file. A missing file degrades to
// a generated one-liner, never an error.
func (p *Profile) Persona() string {
	data, err := os.ReadFile(p.PromptFile)
	if err != nil || len(data) == 0 {
		return fmt.Sprintf("You are a helpful assistant for %s.", p.Name)
	}
	return string(data)
}
