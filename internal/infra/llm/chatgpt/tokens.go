package chatgpt

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TokenCounter estimates token counts with the model's BPE encoding.
type TokenCounter struct {
	mu        sync.Mutex
	encodings map[string]*tiktoken.Tiktoken
}

// NewTokenCounter constructs an empty counter; encodings load lazily per model.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{encodings: make(map[string]*tiktoken.Tiktoken)}
}

// Count returns the token count of text, or a rough length based estimate when no encoding can be loaded.
func (c *TokenCounter) Count(model, text string) int {
	if text == "" {
		return 0
	}
	enc := c.encoding(model)
	if enc == nil {
		return (len(text) + 3) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

// CountMessages sums message contents plus the per-message framing overhead.
func (c *TokenCounter) CountMessages(model string, messages []Message) int {
	total := 3
	for _, msg := range messages {
		total += 4 + c.Count(model, msg.Role) + c.Count(model, msg.Content)
	}
	return total
}

func (c *TokenCounter) encoding(model string) *tiktoken.Tiktoken {
	c.mu.Lock()
	defer c.mu.Unlock()
	if enc, ok := c.encodings[model]; ok {
		return enc
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
	}
	if err != nil {
		enc = nil
	}
	c.encodings[model] = enc
	return enc
}
