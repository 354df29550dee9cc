// Package response orchestrates the reply pipeline: detect language,
// classify intent, retrieve knowledge, assemble the prompt, call the
// model, and collapse every downstream failure into a deterministic
// fallback reply. The pipeline never fails outward except on caller
// cancellation.
package response

import (
	"context"
	"log"
	"regexp"
	"strings"

	"support-chat-be/pkg/brand"
	"support-chat-be/pkg/intent"
	"support-chat-be/pkg/lang"
	"support-chat-be/pkg/llm"
	"support-chat-be/pkg/rag"
	"support-chat-be/pkg/rag/fallback"
	"support-chat-be/pkg/rag/prompt"
)

// Reply sources reported in Result.Source.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// DirectiveLeadForm asks the caller's UI to render a lead-capture form.
const DirectiveLeadForm = "lead_form"

// Directive is a typed instruction extracted from model output, replacing
// inline string markers the caller would otherwise have to scrape.
type Directive struct {
	Kind string
	Form string
}

// Result is the structured outcome of one pipeline run.
type Result struct {
	Reply     string
	Directive *Directive
	Intent    string
	Language  string
	Source    string
}

// leadFormMarker is the inline marker some persona prompts instruct the
// model to emit when the user should see a lead form.
var leadFormMarker = regexp.MustCompile(`\s*\[SHOW_LEAD_FORM:(\w+)\]`)

// Generator runs the pipeline against injected collaborators so tests can
// substitute fakes for the model, retriever and history store.
type Generator struct {
	provider    llm.LLMProvider
	retriever   rag.Retriever
	history     rag.HistoryStore
	temperature float64
	maxTokens   int
	logger      *log.Logger
}

func NewGenerator(provider llm.LLMProvider, retriever rag.Retriever, history rag.HistoryStore, logger *log.Logger) *Generator {
	return &Generator{
		provider:  provider,
		retriever: retriever,
		history:   history,
		// Deterministic-leaning decoding with a bounded output cap
		temperature: 0.3,
		maxTokens:   256,
		logger:      logger,
	}
}

// Generate produces a reply for one user message. The error return is
// non-nil only when ctx is done, so callers can avoid persisting partial
// replies; every other failure mode degrades to fallback text.
func (g *Generator) Generate(ctx context.Context, profile *brand.Profile, userMessage, sessionID string) (*Result, error) {
	// Step 1: best-effort language detection, silently absorbed
	language := lang.Detect(userMessage)

	// Step 2: intent classification
	label, confidence := intent.Classify(userMessage)
	if label != "" {
		g.logger.Printf("[INTENT] %s (%.2f) session=%s", label, confidence, sessionID)
	}

	// Step 3: knowledge retrieval; unavailability means empty context
	snippets, err := g.retriever.Search(ctx, profile.Key, userMessage, rag.DefaultTopK)
	if err != nil {
		g.logger.Printf("[WARN] retrieval failed for %s: %v", profile.Key, err)
		snippets = nil
	}

	// Step 4: prompt assembly
	messages := prompt.NewBuilder(profile.Persona(), userMessage).
		WithIntent(label).
		WithLanguage(language).
		WithSnippets(snippets).
		WithHistory(g.history.Recent(sessionID, prompt.HistoryWindow)).
		Build()

	// Step 5: model call
	reply, err := g.provider.Chat(ctx, messages,
		llm.WithTemperature(g.temperature),
		llm.WithMaxTokens(g.maxTokens),
	)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err == nil {
		reply = strings.TrimSpace(reply)
		if reply != "" {
			result := &Result{Reply: reply, Intent: label, Language: language, Source: SourceModel}
			extractDirective(result)
			return result, nil
		}
		g.logger.Printf("[WARN] model returned empty response, using fallback")
	} else {
		g.logger.Printf("[WARN] model error: %v", err)
	}

	// Steps 1-3 are never repeated; the fallback reuses their outputs.
	return &Result{
		Reply:    fallback.Respond(profile, userMessage, snippets, label),
		Intent:   label,
		Language: language,
		Source:   SourceFallback,
	}, nil
}

// extractDirective strips the lead-form marker out of the reply text and
// records it as a typed directive.
func extractDirective(r *Result) {
	m := leadFormMarker.FindStringSubmatch(r.Reply)
	if m == nil {
		return
	}
	r.Directive = &Directive{Kind: DirectiveLeadForm, Form: m[1]}
	r.Reply = strings.TrimSpace(leadFormMarker.ReplaceAllString(r.Reply, ""))
}
