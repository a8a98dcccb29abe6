package alibaba

// Config contains DashScope adapter configuration.
type Config struct {
	APIKey      string  `env:"ALIBABA_API_KEY"`
	BaseURL     string  `env:"ALIBABA_BASE_URL"    envDefault:"https://dashscope.aliyuncs.com/api/v1"`
	Timeout     int     `env:"ALIBABA_TIMEOUT"     envDefault:"60"`
	Temperature float64 `env:"ALIBABA_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"ALIBABA_MAX_TOKENS"  envDefault:"2048"`
}
