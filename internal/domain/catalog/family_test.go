package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferFamily(t *testing.T) {
	tests := []struct {
		modelID string
		family  string
	}{
		{"gpt-5.2", "gpt-5.2"},
		{"gpt-5.2-mini", "gpt-5.2"},
		{"gpt-5.1-chat-latest", "gpt-5.1"},
		{"gpt-5-nano", "gpt-5"},
		{"gpt-4.1-mini", "gpt-4.1"},
		{"gpt-4o-audio-preview", "gpt-4o"},
		{"gpt-4-turbo-2024-04-09", "gpt-4"},
		{"gpt-4-0613", "gpt-4"},
		{"gpt-3.5-turbo", "gpt-3.5"},
		{"gpt-oss-120b", "gpt-oss"},
		{"o4-mini", "o4"},
		{"o3-pro", "o3"},
		{"o1-preview", "o1"},
		{"dall-e-3", "dall-e"},
		{"tts-1-hd", "tts"},
		{"whisper-1", "whisper"},
		{"text-embedding-3-large", "text-embedding"},
		{"claude-opus-4-5", "claude-opus-4"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4"},
		{"claude-3-haiku-20240307", "claude-3"},
		{"gemini-2.5-pro", "gemini-2.5"},
		{"gemini-1.5-flash", "gemini-1.5"},
		{"completely-unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.modelID, func(t *testing.T) {
			assert.Equal(t, tt.family, InferFamily(tt.modelID))
		})
	}
}
