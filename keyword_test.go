package seolint_test

import (
	"testing"

	"github.com/fwojciec/seolint"
	"github.com/stretchr/testify/assert"
)

func TestInferKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"keeps first three significant words", "Pet Dental Health: Complete Care Guide for Dogs and Cats", "pet dental health"},
		{"drops stop-words", "The Ultimate Guide to SEO Audits", "seo audits"},
		{"drops short words", "Go vs Rust in AI", "rust"},
		{"splits on hyphens and commas", "Cat-friendly, dog-safe plants", "cat friendly dog"},
		{"falls back to first word", "How to Do It", "how"},
		{"empty title", "", ""},
		{"whitespace title", "   ", ""},
		{"trims surrounding punctuation", "Cats vs. Dogs: Which?", "cats dogs"},
		{"keeps inner apostrophes", "\"Puppy's\" First Vet Visit!", "puppy's first vet"},
		{"keeps non-ascii words", "Café Crème Brûlée", "café crème brûlée"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, seolint.InferKeyword(tt.title))
		})
	}
}

func TestInferKeyword_Deterministic(t *testing.T) {
	t.Parallel()

	title := "Dog Training Basics for Every New Puppy Owner"

	assert.Equal(t, seolint.InferKeyword(title), seolint.InferKeyword(title))
}
