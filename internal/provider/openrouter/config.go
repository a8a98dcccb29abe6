package openrouter

// Config contains OpenRouter adapter configuration.
// All fields map to OpenAI SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Response header timeout of the option.WithHTTPClient() transport (in seconds)
//   - Referer, Title: Sent as HTTP-Referer and X-Title via option.WithHeader()
type Config struct {
	APIKey      string  `env:"OPENROUTER_API_KEY"`
	BaseURL     string  `env:"OPENROUTER_BASE_URL"    envDefault:"https://openrouter.ai/api/v1"`
	Timeout     int     `env:"OPENROUTER_TIMEOUT"     envDefault:"60"`
	Referer     string  `env:"OPENROUTER_REFERER"     envDefault:"https://multimind-ai-chat.app"`
	Title       string  `env:"OPENROUTER_TITLE"       envDefault:"MultiMind AI Chat App"`
	Temperature float64 `env:"OPENROUTER_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"OPENROUTER_MAX_TOKENS"  envDefault:"2048"`
}
