package utils

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestFirstText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{name: "nil response", resp: nil, want: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: ""},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"summary":`), genai.Text(`"Rome"}`)}}},
			}},
			want: `{"summary":"Rome"}`,
		},
		{
			name: "skips non text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png", Data: []byte{1}}, genai.Text("{}")}}},
			}},
			want: "{}",
		},
		{
			name: "falls through nil and empty candidates",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: nil},
				{Content: &genai.Content{Parts: []genai.Part{}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("second")}}},
			}},
			want: "second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstText(tt.resp))
		})
	}
}
