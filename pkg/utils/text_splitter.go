package utils

// SplitText splits long document text into chunks of approximately
// 'chunkSize' characters with 'overlap' characters repeated across
// boundaries so context survives the cut. Character-based on purpose;
// FAQ docs are short enough that a tokenizer-aware splitter buys nothing.
func SplitText(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	totalLen := len(runes)

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
