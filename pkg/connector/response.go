package connector

// Completion is one element of Response.Completions: either a model result or
// a per-prompt error. The marker method keeps the set closed so consumers can
// switch exhaustively.
type Completion interface{ isCompletion() }

// ModelCompletion is the success outcome for one prompt.
type ModelCompletion struct {
	Content    string `json:"Content"`
	TokenUsage int32  `json:"TokenUsage,omitempty"`
}

func (ModelCompletion) isCompletion() {}

// ErrorCompletion is the failure outcome for one prompt.
type ErrorCompletion struct {
	Error string `json:"Error"`
}

func (ErrorCompletion) isCompletion() {}

// Response is the serializable result of one batch run. Completions carries
// one element per input prompt in input order, except after a setup failure,
// where it collapses to a single ErrorCompletion.
type Response struct {
	Completions []Completion `json:"Completions"`
	ModelType   string       `json:"ModelType,omitempty"`
}
