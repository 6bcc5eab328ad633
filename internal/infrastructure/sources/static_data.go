package sources

// Built-in fallback tables, one per provider. Last verified: 2026-02-20.
// These are the last-resort data source when every scrape fails; field
// values here lose to any scraped value during the merge.

var staticTables = map[string]map[string]staticEntry{
	"openai":    openaiStaticTable,
	"anthropic": anthropicStaticTable,
	"google":    geminiStaticTable,
}

var openaiStaticTable = map[string]staticEntry{
	// GPT-5.2 family
	"gpt-5.2": {
		name: "GPT-5.2", family: "gpt-5.2",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 1.75, outputPer1M: 14.00, cachedInputPer1M: 0.175,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5.2-pro": {
		name: "GPT-5.2 Pro", family: "gpt-5.2",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 21.00, outputPer1M: 168.00,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5.2-chat": {
		name: "GPT-5.2 Chat", family: "gpt-5.2",
		contextWindow: 128_000, maxOutputTokens: 128_000,
		inputPer1M: 1.75, outputPer1M: 14.00, cachedInputPer1M: 0.175,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5.2-codex": {
		name: "GPT-5.2 Codex", family: "gpt-5.2",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 1.75, outputPer1M: 14.00, cachedInputPer1M: 0.175,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},

	// GPT-5.1 family
	"gpt-5.1": {
		name: "GPT-5.1", family: "gpt-5.1",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 1.25, outputPer1M: 10.00, cachedInputPer1M: 0.125,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5.1-codex": {
		name: "GPT-5.1 Codex", family: "gpt-5.1",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 1.25, outputPer1M: 10.00, cachedInputPer1M: 0.125,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5.1-codex-mini": {
		name: "GPT-5.1 Codex Mini", family: "gpt-5.1",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 0.25, outputPer1M: 2.00, cachedInputPer1M: 0.025,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5.1-codex-max": {
		name: "GPT-5.1 Codex Max", family: "gpt-5.1",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 1.25, outputPer1M: 10.00, cachedInputPer1M: 0.125,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5.1-chat": {
		name: "GPT-5.1 Chat", family: "gpt-5.1",
		contextWindow: 128_000, maxOutputTokens: 128_000,
		inputPer1M: 1.25, outputPer1M: 10.00, cachedInputPer1M: 0.125,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},

	// GPT-5 family
	"gpt-5": {
		name: "GPT-5", family: "gpt-5",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 1.25, outputPer1M: 10.00, cachedInputPer1M: 0.125,
		reasoning: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gpt-5-mini": {
		name: "GPT-5 Mini", family: "gpt-5",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 0.25, outputPer1M: 2.00, cachedInputPer1M: 0.025,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5-nano": {
		name: "GPT-5 Nano", family: "gpt-5",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 0.05, outputPer1M: 0.40, cachedInputPer1M: 0.005,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5-pro": {
		name: "GPT-5 Pro", family: "gpt-5",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 15.00, outputPer1M: 120.00,
		reasoning: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gpt-5-chat": {
		name: "GPT-5 Chat", family: "gpt-5",
		contextWindow: 128_000, maxOutputTokens: 128_000,
		inputPer1M: 1.25, outputPer1M: 10.00, cachedInputPer1M: 0.125,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gpt-5-codex": {
		name: "GPT-5 Codex", family: "gpt-5",
		contextWindow: 400_000, maxOutputTokens: 128_000,
		inputPer1M: 1.25, outputPer1M: 10.00, cachedInputPer1M: 0.125,
		functionCalling: true, structuredOutput: true, streaming: true, jsonMode: true,
	},

	// GPT-4.1 family
	"gpt-4.1": {
		name: "GPT-4.1", family: "gpt-4.1",
		contextWindow: 1_048_000, maxOutputTokens: 32_000,
		inputPer1M: 2.00, outputPer1M: 8.00, cachedInputPer1M: 0.50,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gpt-4.1-mini": {
		name: "GPT-4.1 Mini", family: "gpt-4.1",
		contextWindow: 1_048_000, maxOutputTokens: 32_000,
		inputPer1M: 0.40, outputPer1M: 1.60, cachedInputPer1M: 0.10,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gpt-4.1-nano": {
		name: "GPT-4.1 Nano", family: "gpt-4.1",
		contextWindow: 1_048_000, maxOutputTokens: 32_000,
		inputPer1M: 0.10, outputPer1M: 0.40, cachedInputPer1M: 0.025,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},

	// o-series reasoning models
	"o4-mini": {
		name: "o4-mini", family: "o4",
		contextWindow: 200_000, maxOutputTokens: 100_000,
		inputPer1M: 1.10, outputPer1M: 4.40, cachedInputPer1M: 0.275,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true, jsonMode: true,
	},
	"o3": {
		name: "o3", family: "o3",
		contextWindow: 200_000, maxOutputTokens: 100_000,
		inputPer1M: 2.00, outputPer1M: 8.00, cachedInputPer1M: 0.50,
		reasoning: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"o3-mini": {
		name: "o3-mini", family: "o3",
		contextWindow: 200_000, maxOutputTokens: 100_000,
		inputPer1M: 1.10, outputPer1M: 4.40, cachedInputPer1M: 0.55,
		reasoning: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"o3-pro": {
		name: "o3-pro", family: "o3",
		contextWindow: 200_000, maxOutputTokens: 100_000,
		inputPer1M: 20.00, outputPer1M: 80.00,
		reasoning: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"o1": {
		name: "o1", family: "o1",
		contextWindow: 200_000, maxOutputTokens: 100_000,
		inputPer1M: 15.00, outputPer1M: 60.00, cachedInputPer1M: 7.50,
		reasoning: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"o1-pro": {
		name: "o1-pro", family: "o1",
		contextWindow: 200_000, maxOutputTokens: 100_000,
		inputPer1M: 150.00, outputPer1M: 600.00,
		reasoning: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},

	// GPT-4o family
	"gpt-4o": {
		name: "GPT-4o", family: "gpt-4o",
		contextWindow: 128_000, maxOutputTokens: 16_000,
		inputPer1M: 2.50, outputPer1M: 10.00, cachedInputPer1M: 1.25,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gpt-4o-mini": {
		name: "GPT-4o Mini", family: "gpt-4o",
		contextWindow: 128_000, maxOutputTokens: 16_000,
		inputPer1M: 0.15, outputPer1M: 0.60, cachedInputPer1M: 0.075,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},

	// Open-weight
	"gpt-oss-120b": {
		name: "GPT-OSS 120B", family: "gpt-oss",
		contextWindow: 131_000,
		inputPer1M:    0.039, outputPer1M: 0.19,
		streaming: true,
	},
	"gpt-oss-20b": {
		name: "GPT-OSS 20B", family: "gpt-oss",
		contextWindow: 131_000,
		inputPer1M:    0.03, outputPer1M: 0.14,
		streaming: true,
	},

	// Legacy
	"gpt-4-turbo": {
		name: "GPT-4 Turbo", family: "gpt-4",
		contextWindow: 128_000, maxOutputTokens: 4_000,
		inputPer1M: 10.00, outputPer1M: 30.00,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gpt-4": {
		name: "GPT-4", family: "gpt-4",
		contextWindow: 8_000, maxOutputTokens: 8_000,
		inputPer1M: 30.00, outputPer1M: 60.00,
		functionCalling: true, streaming: true, jsonMode: true,
	},
	"gpt-3.5-turbo": {
		name: "GPT-3.5 Turbo", family: "gpt-3.5",
		contextWindow: 16_000, maxOutputTokens: 4_000,
		deprecated: true,
		inputPer1M: 0.50, outputPer1M: 1.50,
		functionCalling: true, streaming: true, jsonMode: true,
	},
}

var anthropicStaticTable = map[string]staticEntry{
	"claude-opus-4-5": {
		name: "Claude Opus 4.5", family: "claude-opus-4",
		contextWindow: 200_000, maxOutputTokens: 64_000,
		inputPer1M: 5.00, outputPer1M: 25.00, cachedInputPer1M: 0.50,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true,
	},
	"claude-sonnet-4-5-20250929": {
		name: "Claude Sonnet 4.5", family: "claude-sonnet-4",
		contextWindow: 200_000, maxOutputTokens: 64_000,
		inputPer1M: 3.00, outputPer1M: 15.00, cachedInputPer1M: 0.30,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true,
	},
	"claude-haiku-4-5-20251001": {
		name: "Claude Haiku 4.5", family: "claude-haiku-4",
		contextWindow: 200_000, maxOutputTokens: 64_000,
		inputPer1M: 1.00, outputPer1M: 5.00, cachedInputPer1M: 0.10,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true,
	},
	"claude-sonnet-4-20250514": {
		name: "Claude Sonnet 4", family: "claude-sonnet-4",
		contextWindow: 200_000, maxOutputTokens: 64_000,
		inputPer1M: 3.00, outputPer1M: 15.00, cachedInputPer1M: 0.30,
		vision: true, functionCalling: true, structuredOutput: true, streaming: true,
	},
	"claude-3-5-haiku-20241022": {
		name: "Claude Haiku 3.5", family: "claude-3",
		contextWindow: 200_000, maxOutputTokens: 8_000,
		inputPer1M: 0.80, outputPer1M: 4.00, cachedInputPer1M: 0.08,
		vision: true, functionCalling: true, streaming: true,
	},
	"claude-3-haiku-20240307": {
		name: "Claude 3 Haiku", family: "claude-3",
		contextWindow: 200_000, maxOutputTokens: 4_000,
		deprecated: true,
		inputPer1M: 0.25, outputPer1M: 1.25,
		vision: true, functionCalling: true, streaming: true,
	},
}

var geminiStaticTable = map[string]staticEntry{
	"gemini-2.5-pro": {
		name: "Gemini 2.5 Pro", family: "gemini-2.5",
		contextWindow: 1_048_576, maxOutputTokens: 65_536,
		inputPer1M: 1.25, outputPer1M: 10.00,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gemini-2.5-flash": {
		name: "Gemini 2.5 Flash", family: "gemini-2.5",
		contextWindow: 1_048_576, maxOutputTokens: 65_536,
		inputPer1M: 0.30, outputPer1M: 2.50,
		reasoning: true, vision: true, functionCalling: true,
		structuredOutput: true, streaming: true, jsonMode: true,
	},
	"gemini-2.5-flash-lite": {
		name: "Gemini 2.5 Flash-Lite", family: "gemini-2.5",
		contextWindow: 1_048_576, maxOutputTokens: 65_536,
		inputPer1M: 0.10, outputPer1M: 0.40,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gemini-2.0-flash": {
		name: "Gemini 2.0 Flash", family: "gemini-2.0",
		contextWindow: 1_048_576, maxOutputTokens: 8_192,
		inputPer1M: 0.10, outputPer1M: 0.40,
		vision: true, functionCalling: true, structuredOutput: true,
		streaming: true, jsonMode: true,
	},
	"gemini-1.5-pro": {
		name: "Gemini 1.5 Pro", family: "gemini-1.5",
		contextWindow: 2_097_152, maxOutputTokens: 8_192,
		deprecated: true,
		inputPer1M: 1.25, outputPer1M: 5.00,
		vision: true, functionCalling: true, streaming: true, jsonMode: true,
	},
	"gemini-1.5-flash": {
		name: "Gemini 1.5 Flash", family: "gemini-1.5",
		contextWindow: 1_048_576, maxOutputTokens: 8_192,
		deprecated: true,
		inputPer1M: 0.075, outputPer1M: 0.30,
		vision: true, functionCalling: true, streaming: true, jsonMode: true,
	},
}
