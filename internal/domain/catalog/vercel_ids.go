package catalog

// vercelIDByOpenRouterID maps vendor-qualified OpenRouter identifiers onto
// the provider-native identifiers used by the Vercel AI SDK. Exact match
// only; identifiers without an entry have no SDK mapping.
var vercelIDByOpenRouterID = map[string]string{
	// Anthropic
	"anthropic/claude-opus-4":     "claude-opus-4-20250514",
	"anthropic/claude-sonnet-4":   "claude-sonnet-4-20250514",
	"anthropic/claude-3.5-sonnet": "claude-3-5-sonnet-20241022",
	"anthropic/claude-3.5-haiku":  "claude-3-5-haiku-20241022",
	"anthropic/claude-3-opus":     "claude-3-opus-20240229",
	"anthropic/claude-3-sonnet":   "claude-3-sonnet-20240229",
	"anthropic/claude-3-haiku":    "claude-3-haiku-20240307",

	// OpenAI
	"openai/gpt-4o":        "gpt-4o",
	"openai/gpt-4o-mini":   "gpt-4o-mini",
	"openai/gpt-4-turbo":   "gpt-4-turbo",
	"openai/gpt-4":         "gpt-4",
	"openai/gpt-3.5-turbo": "gpt-3.5-turbo",
	"openai/o1":            "o1",
	"openai/o1-mini":       "o1-mini",
	"openai/o1-preview":    "o1-preview",
	"openai/o3-mini":       "o3-mini",

	// Google
	"google/gemini-2.0-pro-exp":            "gemini-2.0-pro-exp",
	"google/gemini-2.0-flash-exp":          "gemini-2.0-flash-exp",
	"google/gemini-2.0-flash-thinking-exp": "gemini-2.0-flash-thinking-exp",
	"google/gemini-1.5-pro":                "gemini-1.5-pro",
	"google/gemini-1.5-flash":              "gemini-1.5-flash",
	"google/gemini-pro":                    "gemini-pro",

	// Meta Llama
	"meta-llama/llama-3.3-70b-instruct":  "llama-3.3-70b-instruct",
	"meta-llama/llama-3.1-405b-instruct": "llama-3.1-405b-instruct",
	"meta-llama/llama-3.1-70b-instruct":  "llama-3.1-70b-instruct",
	"meta-llama/llama-3.1-8b-instruct":   "llama-3.1-8b-instruct",

	// Mistral
	"mistralai/mistral-large":          "mistral-large-latest",
	"mistralai/mistral-medium":         "mistral-medium-latest",
	"mistralai/mistral-small":          "mistral-small-latest",
	"mistralai/mixtral-8x7b-instruct":  "open-mixtral-8x7b",
	"mistralai/mixtral-8x22b-instruct": "open-mixtral-8x22b",

	// DeepSeek
	"deepseek/deepseek-chat":     "deepseek-chat",
	"deepseek/deepseek-coder":    "deepseek-coder",
	"deepseek/deepseek-reasoner": "deepseek-reasoner",

	// Cohere
	"cohere/command-r-plus": "command-r-plus",
	"cohere/command-r":      "command-r",
}

// VercelID resolves the Vercel AI SDK identifier for an OpenRouter
// identifier, or nil when no mapping exists.
func VercelID(openRouterID string) *string {
	if id, ok := vercelIDByOpenRouterID[openRouterID]; ok {
		return &id
	}
	return nil
}
