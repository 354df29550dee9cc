package response

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"support-chat-be/pkg/brand"
	"support-chat-be/pkg/intent"
	"support-chat-be/pkg/llm"
	"support-chat-be/pkg/rag"
)

type fakeProvider struct {
	reply    string
	err      error
	lastSent []llm.Message
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastSent = history
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeProvider) Health(ctx context.Context) bool { return f.err == nil }

type fakeRetriever struct {
	snippets []rag.Snippet
	err      error
}

func (f *fakeRetriever) Search(ctx context.Context, brand, query string, topK int) ([]rag.Snippet, error) {
	return f.snippets, f.err
}

type fakeHistory struct {
	messages []llm.Message
}

func (f *fakeHistory) Recent(sessionID string, maxN int) []llm.Message { return f.messages }

func testProfile(t *testing.T) *brand.Profile {
	t.Helper()
	p, err := brand.NewRegistry("testdata", "testdata").Get(brand.Ticket99)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func newTestGenerator(p llm.LLMProvider, r rag.Retriever, h rag.HistoryStore) *Generator {
	return NewGenerator(p, r, h, log.New(io.Discard, "", 0))
}

func TestGenerateModelSuccess(t *testing.T) {
	provider := &fakeProvider{reply: "  You can book tickets on our site.  "}
	g := newTestGenerator(provider, &fakeRetriever{}, &fakeHistory{})

	result, err := g.Generate(context.Background(), testProfile(t), "how do i book?", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Source != SourceModel {
		t.Errorf("source = %q, want %q", result.Source, SourceModel)
	}
	if result.Reply != "You can book tickets on our site." {
		t.Errorf("reply not trimmed: %q", result.Reply)
	}
	if result.Directive != nil {
		t.Errorf("unexpected directive: %+v", result.Directive)
	}
}

func TestGenerateFallbackOnModelError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	g := newTestGenerator(provider, &fakeRetriever{}, &fakeHistory{})

	result, err := g.Generate(context.Background(), testProfile(t), "hello!", "s1")
	if err != nil {
		t.Fatalf("model failure must not surface: %v", err)
	}

	if result.Source != SourceFallback {
		t.Errorf("source = %q, want %q", result.Source, SourceFallback)
	}
	if result.Intent != intent.Greeting {
		t.Errorf("intent = %q, want %q", result.Intent, intent.Greeting)
	}
	if !strings.Contains(result.Reply, "Tickets99") {
		t.Errorf("fallback reply %q does not carry brand name", result.Reply)
	}
}

func TestGenerateFallbackOnEmptyReply(t *testing.T) {
	provider := &fakeProvider{reply: "   \n  "}
	g := newTestGenerator(provider, &fakeRetriever{}, &fakeHistory{})

	result, err := g.Generate(context.Background(), testProfile(t), "hello", "s1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Source != SourceFallback {
		t.Errorf("source = %q, want %q", result.Source, SourceFallback)
	}
}

func TestGenerateFallbackUsesSnippets(t *testing.T) {
	provider := &fakeProvider{err: errors.New("down")}
	retriever := &fakeRetriever{snippets: []rag.Snippet{{Answer: "From the knowledge base."}}}
	g := newTestGenerator(provider, retriever, &fakeHistory{})

	result, err := g.Generate(context.Background(), testProfile(t), "zxqw unclassifiable", "s1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Reply != "From the knowledge base." {
		t.Errorf("reply = %q, want best snippet", result.Reply)
	}
}

func TestGenerateRetrievalFailureDegrades(t *testing.T) {
	provider := &fakeProvider{reply: "answered without context"}
	retriever := &fakeRetriever{err: errors.New("vector store down")}
	g := newTestGenerator(provider, retriever, &fakeHistory{})

	result, err := g.Generate(context.Background(), testProfile(t), "how do i book?", "s1")
	if err != nil {
		t.Fatalf("retrieval failure must not surface: %v", err)
	}
	if result.Reply != "answered without context" {
		t.Errorf("reply = %q", result.Reply)
	}
}

func TestGenerateExtractsLeadFormDirective(t *testing.T) {
	provider := &fakeProvider{reply: "Happy to set up a demo! [SHOW_LEAD_FORM:organizer]"}
	g := newTestGenerator(provider, &fakeRetriever{}, &fakeHistory{})

	result, err := g.Generate(context.Background(), testProfile(t), "i want to sell tickets", "s1")
	if err != nil {
		t.Fatal(err)
	}

	if result.Directive == nil {
		t.Fatal("directive not extracted")
	}
	if result.Directive.Kind != DirectiveLeadForm || result.Directive.Form != "organizer" {
		t.Errorf("directive = %+v", result.Directive)
	}
	if strings.Contains(result.Reply, "SHOW_LEAD_FORM") {
		t.Errorf("marker not stripped from reply: %q", result.Reply)
	}
	if result.Reply != "Happy to set up a demo!" {
		t.Errorf("reply = %q", result.Reply)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &fakeProvider{err: context.Canceled}
	g := newTestGenerator(provider, &fakeRetriever{}, &fakeHistory{})

	_, err := g.Generate(ctx, testProfile(t), "hello", "s1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGenerateIncludesHistory(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	history := &fakeHistory{messages: []llm.Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}}
	g := newTestGenerator(provider, &fakeRetriever{}, history)

	if _, err := g.Generate(context.Background(), testProfile(t), "follow-up", "s1"); err != nil {
		t.Fatal(err)
	}

	var found bool
	for _, m := range provider.lastSent {
		if m.Content == "earlier answer" {
			found = true
		}
	}
	if !found {
		t.Errorf("history turn missing from prompt: %+v", provider.lastSent)
	}
}
