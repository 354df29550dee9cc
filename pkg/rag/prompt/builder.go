// Package prompt assembles the instruction sequence sent to the language
// model: one system message built up in a fixed order, prior turns, then
// the current user message.
package prompt

import (
	"fmt"
	"strings"

	"support-chat-be/pkg/lang"
	"support-chat-be/pkg/llm"
	"support-chat-be/pkg/rag"
)

// HistoryWindow is the number of prior turns carried into the prompt.
const HistoryWindow = 6

// Builder collects the pieces of one request's prompt.
type Builder struct {
	persona  string
	message  string
	intent   string
	language string
	snippets []rag.Snippet
	history  []llm.Message
}

func NewBuilder(persona, userMessage string) *Builder {
	return &Builder{
		persona:  persona,
		message:  userMessage,
		language: lang.Default,
	}
}

func (b *Builder) WithIntent(intent string) *Builder {
	b.intent = intent
	return b
}

func (b *Builder) WithLanguage(language string) *Builder {
	if language != "" {
		b.language = language
	}
	return b
}

func (b *Builder) WithSnippets(snippets []rag.Snippet) *Builder {
	b.snippets = snippets
	return b
}

func (b *Builder) WithHistory(history []llm.Message) *Builder {
	b.history = history
	return b
}

// Build produces the ordered message sequence. The system text is appended
// in a fixed order: persona, knowledge block, intent hint, language
// instruction.
func (b *Builder) Build() []llm.Message {
	var system strings.Builder
	system.WriteString(b.persona)

	b.writeKnowledgeBlock(&system)
	b.writeIntentHint(&system)
	b.writeLanguageInstruction(&system)

	messages := make([]llm.Message, 0, len(b.history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: system.String()})

	// Prior turns, oldest to newest
	messages = append(messages, b.history...)

	messages = append(messages, llm.Message{Role: "user", Content: b.message})
	return messages
}

func (b *Builder) writeKnowledgeBlock(system *strings.Builder) {
	if len(b.snippets) == 0 {
		return
	}
	system.WriteString("\n\nRelevant information from our knowledge base:\n")
	for i, s := range b.snippets {
		if s.Question != "" {
			system.WriteString(fmt.Sprintf("%d. Q: %s\n   A: %s\n", i+1, s.Question, s.Answer))
		} else {
			system.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Answer))
		}
	}
}

func (b *Builder) writeIntentHint(system *strings.Builder) {
	if b.intent == "" {
		return
	}
	system.WriteString(fmt.Sprintf("\n\nDetected user intent: %s. Tailor your response accordingly.", b.intent))
}

func (b *Builder) writeLanguageInstruction(system *strings.Builder) {
	if b.language == lang.Default {
		return
	}
	system.WriteString(fmt.Sprintf("\n\nIMPORTANT: The user is writing in '%s'. You MUST respond in the same language.", b.language))
}
