package google

// Request is the streamGenerateContent body.
type Request struct {
	Model             string           `json:"-"`
	Contents          []Content        `json:"contents"`
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

// UpstreamModel implements domain.Payload.
func (r *Request) UpstreamModel() string {
	return r.Model
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries raw base64 with a separate MIME type.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type streamResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text    string `json:"text"`
				Thought bool   `json:"thought"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// delta returns the text of the first candidate and whether it finished.
// Thought parts are not part of the answer.
func (r *streamResponse) delta() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}

	candidate := r.Candidates[0]
	var text string
	if candidate.Content != nil {
		for _, p := range candidate.Content.Parts {
			if !p.Thought {
				text += p.Text
			}
		}
	}

	return text, candidate.FinishReason != ""
}
