package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 500, 50)
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Errorf("got %v, want the input unchanged", chunks)
	}
}

func TestSplitTextShortMultibyteInput(t *testing.T) {
	// 400 runes but well over 500 bytes; rune count decides the early out
	text := strings.Repeat("ü", 400)
	chunks := SplitText(text, 500, 50)
	if len(chunks) != 1 || chunks[0] != text {
		t.Errorf("got %d chunks, want the input unchanged", len(chunks))
	}
}

func TestSplitTextChunksAndOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 chars

	chunks := SplitText(text, 100, 20)
	if len(chunks) != 4 {
		t.Fatalf("got %d chunks, want 4", len(chunks))
	}

	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d has %d chars, want <= 100", i, len(c))
		}
	}

	// Consecutive chunks share the overlap region
	tail := chunks[0][len(chunks[0])-20:]
	if !strings.HasPrefix(chunks[1], tail) {
		t.Errorf("chunk 1 does not start with chunk 0's tail")
	}
}

func TestSplitTextReassembles(t *testing.T) {
	text := strings.Repeat("0123456789", 25)

	chunks := SplitText(text, 80, 10)

	var rebuilt strings.Builder
	for i, c := range chunks {
		if i == 0 {
			rebuilt.WriteString(c)
			continue
		}
		rebuilt.WriteString(c[10:])
	}
	if rebuilt.String() != text {
		t.Errorf("chunks do not reassemble to the original text")
	}
}

func TestSplitTextOverlapAtLeastChunkSize(t *testing.T) {
	text := strings.Repeat("x", 250)

	// overlap >= chunkSize would never advance; the splitter must not hang
	chunks := SplitText(text, 100, 100)
	if len(chunks) == 0 {
		t.Fatal("no chunks returned")
	}

	var total int
	for _, c := range chunks {
		total += len(c)
	}
	if total < len(text) {
		t.Errorf("chunks cover %d chars, want at least %d", total, len(text))
	}
}

func TestSplitTextMultibyte(t *testing.T) {
	text := strings.Repeat("日本語のテキスト分割", 40)

	chunks := SplitText(text, 100, 10)
	for i, c := range chunks {
		if len([]rune(c)) > 100 {
			t.Errorf("chunk %d has %d runes, want <= 100", i, len([]rune(c)))
		}
	}
}
