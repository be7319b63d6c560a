package ai

import (
	"context"
	"strings"
)

// Generator is a generative-text backend
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (*GenerateResponse, error)
}

// ResponseKind tags which shape a GenerateResponse carries
type ResponseKind int

const (
	// ResponseKindText carries the answer in a single direct text field
	ResponseKindText ResponseKind = iota + 1
	// ResponseKindCandidates carries candidates made of content parts
	ResponseKindCandidates
)

// Candidate is one generated alternative split into text parts
type Candidate struct {
	Parts []string
}

// GenerateResponse is a tagged union over the response shapes returned by
// the supported backends. Only the field matching Kind is meaningful.
type GenerateResponse struct {
	Kind       ResponseKind
	Text       string
	Candidates []Candidate
}

// TextResponse builds a direct-text response
func TextResponse(text string) *GenerateResponse {
	return &GenerateResponse{Kind: ResponseKindText, Text: text}
}

// CandidatesResponse builds a candidates/parts response
func CandidatesResponse(candidates ...Candidate) *GenerateResponse {
	return &GenerateResponse{Kind: ResponseKindCandidates, Candidates: candidates}
}

// ExtractText returns the usable text of the response: the direct text
// field, or the concatenated parts of the first candidate. Any other shape
// yields "".
func (r *GenerateResponse) ExtractText() string {
	if r == nil {
		return ""
	}
	switch r.Kind {
	case ResponseKindText:
		return r.Text
	case ResponseKindCandidates:
		if len(r.Candidates) == 0 {
			return ""
		}
		return strings.Join(r.Candidates[0].Parts, "")
	default:
		return ""
	}
}
