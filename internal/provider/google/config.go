package google

// Config contains Gemini adapter configuration.
//   - Timeout bounds the wait for response headers (seconds), not the stream.
type Config struct {
	APIKey          string  `env:"GOOGLE_API_KEY"`
	BaseURL         string  `env:"GOOGLE_BASE_URL"          envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout         int     `env:"GOOGLE_TIMEOUT"           envDefault:"60"`
	Temperature     float64 `env:"GOOGLE_TEMPERATURE"       envDefault:"0.7"`
	MaxOutputTokens int     `env:"GOOGLE_MAX_OUTPUT_TOKENS" envDefault:"2048"`
}
