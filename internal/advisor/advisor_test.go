package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"resumeapi/internal/resume"
)

type fakeGenerator struct {
	model    string
	prompt   string
	deadline bool
	text     string
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.prompt = contents[0].Parts[0].Text
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func sampleRecord() *resume.Record {
	year := "2019"
	return &resume.Record{
		Status:  resume.StatusSuccess,
		Name:    "Jane Doe",
		Skills:  []string{"Python", "Docker"},
		Summary: "Backend engineer",
		Education: []resume.EducationEntry{
			{Degree: "B.Tech Computer Science 2019", Year: &year, Institution: resume.UnknownInstitution},
		},
		WorkExperience:    []resume.ExperienceEntry{},
		ExperienceSummary: resume.NoWorkExperience,
	}
}

func TestGemini_Advise(t *testing.T) {
	ctx := context.Background()

	t.Run("formats the response", func(t *testing.T) {
		gen := &fakeGenerator{text: "Intro. 1. Cloud roles 2. Learn Go"}
		g := newGemini(gen, Config{Timeout: time.Second})

		got, err := g.Advise(ctx, sampleRecord(), []string{"Python Developer"})
		require.NoError(t, err)

		assert.Equal(t, "**Career Guidance**\n\nIntro. \n\n**1.** Cloud roles \n\n**2.** Learn Go", got)
		assert.Equal(t, DefaultModel, gen.model)
		assert.True(t, gen.deadline)
		assert.Contains(t, gen.prompt, "- Name: Jane Doe")
		assert.Contains(t, gen.prompt, "- Skills: Python, Docker")
		assert.Contains(t, gen.prompt, "- Education: B.Tech Computer Science 2019 from Unknown (2019)")
		assert.Contains(t, gen.prompt, "- Work Experience: No work experience found")
		assert.Contains(t, gen.prompt, "- Suggested Roles: Python Developer")
	})

	t.Run("model error", func(t *testing.T) {
		g := newGemini(&fakeGenerator{err: errors.New("quota exceeded")}, Config{Model: "gemini-pro"})

		_, err := g.Advise(ctx, sampleRecord(), nil)
		assert.EqualError(t, err, "generate content: quota exceeded")
	})

	t.Run("empty response", func(t *testing.T) {
		gen := &fakeGenerator{text: "  "}
		g := newGemini(gen, Config{})

		_, err := g.Advise(ctx, sampleRecord(), nil)
		assert.ErrorIs(t, err, ErrEmptyResponse)
		assert.False(t, gen.deadline)
	})
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), Config{})
	assert.Error(t, err)
}

func TestBuildPrompt_Defaults(t *testing.T) {
	rec := &resume.Record{Name: resume.NameNotFound}
	p := BuildPrompt(rec, nil)

	assert.Contains(t, p, "- Name: Candidate")
	assert.Contains(t, p, "- Skills: No specific skills")
	assert.Contains(t, p, "- Education: No education details")
	assert.Contains(t, p, "- Projects: No projects listed")
	assert.NotContains(t, p, "Suggested Roles")
}

func TestFormatWithHeadings(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
		want  string
	}{
		{
			name: "no title",
			text: "1. a 2. b",
			want: "**1.** a \n\n**2.** b",
		},
		{
			name: "numbers inside values are kept",
			text: "Since 2019. Aim for 1.5x growth",
			want: "Since 2019. Aim for 1.5x growth",
		},
		{
			name: "ten points",
			text: "9. nine 10. ten",
			want: "**9.** nine \n\n**10.** ten",
		},
		{
			name:  "already formatted",
			text:  "**1.** a",
			title: "Career Guidance",
			want:  "**Career Guidance**\n\n**1.** a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithHeadings(tt.text, tt.title))
		})
	}
}

func TestFallbackAdvice(t *testing.T) {
	got := FallbackAdvice(errors.New("timeout"))
	assert.Contains(t, got, "**Career Guidance Unavailable**")
	assert.Contains(t, got, "**Error:** timeout")
	assert.Contains(t, got, "**Fallback Suggestions:**")
}
