package domain

// Kind identifies the type of a generation request and its response.
type Kind string

const (
	// KindRouting generates the Routing.elm module from the Symfony router dump.
	KindRouting Kind = "routing"
	// KindTranslation generates one Elm module from a translation catalog.
	KindTranslation Kind = "translation"
)

// RoutingRequest asks the worker to transpile the Symfony routing table.
type RoutingRequest struct {
	URLPrefix    string             `json:"urlPrefix"`
	Content      string             `json:"content"`
	Version      string             `json:"version"`
	EnvVariables map[string]*string `json:"envVariables"`
}

// TranslationRequest asks the worker to transpile one translation catalog.
type TranslationRequest struct {
	Name         string             `json:"name"`
	Content      string             `json:"content"`
	Version      string             `json:"version"`
	EnvVariables map[string]*string `json:"envVariables"`
}

// GenerationRequest is one unit of work for the worker.
// Exactly one of Routing and Translation is set, matching Kind.
type GenerationRequest struct {
	Kind        Kind
	Routing     *RoutingRequest
	Translation *TranslationRequest
}

// NewRoutingRequest builds a routing GenerationRequest.
func NewRoutingRequest(r RoutingRequest) GenerationRequest {
	return GenerationRequest{Kind: KindRouting, Routing: &r}
}

// NewTranslationRequest builds a translation GenerationRequest.
func NewTranslationRequest(r TranslationRequest) GenerationRequest {
	return GenerationRequest{Kind: KindTranslation, Translation: &r}
}

// GeneratedFile is a translation module produced by the worker.
type GeneratedFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// GenerationResponse is the worker's answer to a GenerationRequest.
type GenerationResponse struct {
	ID        string         `json:"id"`
	Type      Kind           `json:"type"`
	Succeeded bool           `json:"succeeded"`
	Content   string         `json:"content,omitempty"`
	File      *GeneratedFile `json:"file,omitempty"`
	Error     string         `json:"error,omitempty"`
}
