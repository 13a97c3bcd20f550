package resume

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Software Engineer
jane.doe@example.com | 415-555-0100

Summary
Backend engineer building Go services for payments and logistics teams.

Experience
Senior Software Engineer 2019 - present
Software Developer 2015 - 2019

Education
B.Tech Computer Science 2015

Skills
Go, Docker, Kubernetes, PostgreSQL

Certifications
Certified Kubernetes Administrator
`

func TestParser_Parse(t *testing.T) {
	p := newTestParser(t, Config{})

	rec := p.Parse(sampleResume, "pdf-plaintext")
	require.True(t, rec.OK())

	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "jane.doe@example.com", rec.Email)
	assert.Equal(t, "415-555-0100", rec.Phone)
	assert.Equal(t, []string{"Postgresql", "Docker", "Kubernetes"}, rec.Skills)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "B.Tech Computer Science 2015", rec.Education[0].Degree)

	assert.Len(t, rec.WorkExperience, 4)
	assert.Equal(t, "Found 2 work experience entries", rec.ExperienceSummary)

	assert.Equal(t, "Backend engineer building Go services for payments and logistics teams.", rec.Summary)
	assert.Equal(t, rec.Summary, rec.Sections[SectionSummary])
	assert.Equal(t, "Senior Software Engineer 2019 - present\nSoftware Developer 2015 - 2019", rec.Sections[SectionExperience])
	assert.Equal(t, "B.Tech Computer Science 2015", rec.Sections[SectionEducation])
	assert.Equal(t, "Go, Docker, Kubernetes, PostgreSQL", rec.Sections[SectionSkills])
	assert.NotContains(t, rec.Sections, SectionProjects)

	assert.Contains(t, rec.Certifications, "Certified Kubernetes Administrator")
	assert.NotNil(t, rec.Projects)
	assert.Empty(t, rec.Projects)

	assert.Equal(t, "pdf-plaintext", rec.ExtractionMethod)
	assert.Equal(t, strings.TrimSpace(sampleResume), rec.TextPreview)
	assert.Equal(t, len(rec.TextPreview), rec.TotalTextLength)
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	p := newTestParser(t, Config{})

	for _, in := range []string{"", "   ", "\n\n\t"} {
		rec := p.Parse(in, "text")
		assert.False(t, rec.OK())
		assert.Equal(t, StatusError, rec.Status)
		assert.Equal(t, ErrEmptyInput.Error(), rec.Error)
		assert.Empty(t, rec.Name)
	}
}

func TestParser_Parse_NonLatinScripts(t *testing.T) {
	p := newTestParser(t, Config{})

	rec := p.Parse("张伟\n软件工程师", "text")
	assert.True(t, rec.OK())
	assert.Empty(t, rec.Error)

	rec = p.Parse("Иван Петров\nРазработчик Python", "text")
	require.True(t, rec.OK())
	assert.Equal(t, "Ivan Petrov", rec.Name)
	assert.Equal(t, []string{"Python"}, rec.Skills)
}

func TestParser_Parse_SentinelsWhenNothingMatches(t *testing.T) {
	p := newTestParser(t, Config{})

	rec := p.Parse("lorem ipsum dolor sit amet", "text")
	require.True(t, rec.OK())

	assert.Equal(t, NameNotFound, rec.Name)
	assert.Equal(t, EmailNotFound, rec.Email)
	assert.Equal(t, PhoneNotFound, rec.Phone)
	assert.Equal(t, NoSummary, rec.Summary)
	assert.Equal(t, NoWorkExperience, rec.ExperienceSummary)
	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.WorkExperience)
	assert.NotNil(t, rec.Sections)
	assert.NotNil(t, rec.Certifications)
	assert.NotNil(t, rec.Projects)
}

func TestParser_Parse_SummaryFallsBackToLongLine(t *testing.T) {
	p := newTestParser(t, Config{})

	line := "Passionate builder of reliable distributed systems and developer tools."
	rec := p.Parse("Short line\n"+line, "text")
	assert.Equal(t, line, rec.Summary)
}

func TestParser_Parse_PreviewIsTruncated(t *testing.T) {
	p := newTestParser(t, Config{})

	rec := p.Parse(strings.Repeat("a", 600), "text")
	assert.Equal(t, 600, rec.TotalTextLength)
	assert.Len(t, rec.TextPreview, previewLimit+len(previewEllipsis))
	assert.True(t, strings.HasSuffix(rec.TextPreview, previewEllipsis))
}

func TestParser_Parse_Concurrent(t *testing.T) {
	p := newTestParser(t, Config{})
	want := p.Parse(sampleResume, "text")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, p.Parse(sampleResume, "text"))
		}()
	}
	wg.Wait()
}

func TestNew_DictionaryOverride(t *testing.T) {
	p := newTestParser(t, Config{Dictionary: &Dictionary{
		SkillCategories: []SkillCategory{{Name: "Languages", Keywords: []string{"Elixir"}}},
	}})

	rec := p.Parse("Elixir and Python", "text")
	assert.Equal(t, []string{"Elixir"}, rec.Skills)

	// Fields left empty still use the defaults.
	assert.Equal(t, "4155550100", p.ExtractPhone(Normalize("call 4155550100")))
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(Config{Dictionary: &Dictionary{PhonePatterns: []string{"("}}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "compile phone pattern")
}

func TestRecord_MarshalJSON(t *testing.T) {
	t.Run("error record", func(t *testing.T) {
		b, err := json.Marshal(ErrorRecord("boom"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"error","error":"boom"}`, string(b))
	})

	t.Run("success record has every field", func(t *testing.T) {
		p := newTestParser(t, Config{})
		b, err := json.Marshal(p.Parse("lorem ipsum dolor sit amet", "text"))
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(b, &out))
		for _, key := range []string{
			"status", "name", "email", "phone", "skills", "education", "work_experience",
			"work_experience_summary", "sections", "summary", "certifications", "projects",
			"extraction_method", "text_preview", "total_text_length",
		} {
			assert.Contains(t, out, key)
		}
		assert.NotContains(t, out, "error")
		assert.Equal(t, []any{}, out["skills"])
	})
}

func TestFound(t *testing.T) {
	assert.True(t, Found("Jane Doe"))
	assert.False(t, Found(NameNotFound))
	assert.False(t, Found(EmailNotFound))
	assert.False(t, Found(""))
}
