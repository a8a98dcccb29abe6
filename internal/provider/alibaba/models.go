package alibaba

const (
	textGenerationPath       = "/services/aigc/text-generation/generation"
	multimodalGenerationPath = "/services/aigc/multimodal-generation/generation"
)

// Request is the DashScope generation body.
type Request struct {
	Model      string     `json:"model"`
	Input      Input      `json:"input"`
	Parameters Parameters `json:"parameters"`

	// Multimodal selects the multimodal-generation endpoint; message
	// content is then a []ContentBlock instead of a string.
	Multimodal bool `json:"-"`
}

// UpstreamModel implements domain.Payload.
func (r *Request) UpstreamModel() string {
	return r.Model
}

func (r *Request) path() string {
	if r.Multimodal {
		return multimodalGenerationPath
	}
	return textGenerationPath
}

type Input struct {
	Messages []Message `json:"messages"`
}

// Message content is a string for text generation or []ContentBlock for multimodal.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentBlock holds exactly one of Image (a data-URI) or Text.
type ContentBlock struct {
	Image string `json:"image,omitempty"`
	Text  string `json:"text,omitempty"`
}

type Parameters struct {
	ResultFormat      string  `json:"result_format"`
	IncrementalOutput bool    `json:"incremental_output"`
	Temperature       float64 `json:"temperature,omitempty"`
	MaxTokens         int     `json:"max_tokens,omitempty"`
}
