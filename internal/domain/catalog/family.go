package catalog

import "regexp"

// Patterns for inferring a model family from its id. Order matters: the
// first match wins, so more specific prefixes come first.
var familyPatterns = []struct {
	re     *regexp.Regexp
	family string
}{
	{regexp.MustCompile(`^gpt-5\.2`), "gpt-5.2"},
	{regexp.MustCompile(`^gpt-5\.1`), "gpt-5.1"},
	{regexp.MustCompile(`^gpt-5`), "gpt-5"},
	{regexp.MustCompile(`^gpt-4\.1`), "gpt-4.1"},
	{regexp.MustCompile(`^gpt-4o`), "gpt-4o"},
	{regexp.MustCompile(`^gpt-4-turbo`), "gpt-4"},
	{regexp.MustCompile(`^gpt-4`), "gpt-4"},
	{regexp.MustCompile(`^gpt-3\.5`), "gpt-3.5"},
	{regexp.MustCompile(`^gpt-oss`), "gpt-oss"},
	{regexp.MustCompile(`^o4`), "o4"},
	{regexp.MustCompile(`^o3`), "o3"},
	{regexp.MustCompile(`^o1`), "o1"},
	{regexp.MustCompile(`^dall-e`), "dall-e"},
	{regexp.MustCompile(`^tts`), "tts"},
	{regexp.MustCompile(`^whisper`), "whisper"},
	{regexp.MustCompile(`^text-embedding`), "text-embedding"},
	{regexp.MustCompile(`^text-moderation`), "text-moderation"},
	{regexp.MustCompile(`^claude-opus-4`), "claude-opus-4"},
	{regexp.MustCompile(`^claude-sonnet-4`), "claude-sonnet-4"},
	{regexp.MustCompile(`^claude-haiku-4`), "claude-haiku-4"},
	{regexp.MustCompile(`^claude-3`), "claude-3"},
	{regexp.MustCompile(`^gemini-2\.5`), "gemini-2.5"},
	{regexp.MustCompile(`^gemini-2\.0`), "gemini-2.0"},
	{regexp.MustCompile(`^gemini-1\.5`), "gemini-1.5"},
}

// InferFamily infers the model family from a model id. Returns "" when no
// pattern matches.
func InferFamily(modelID string) string {
	for _, p := range familyPatterns {
		if p.re.MatchString(modelID) {
			return p.family
		}
	}
	return ""
}
