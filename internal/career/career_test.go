package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Suggest(t *testing.T) {
	table := NewTable(nil)

	tests := []struct {
		name   string
		skills []string
		want   []string
	}{
		{
			name:   "no skills",
			skills: nil,
			want:   []string{NoSkills},
		},
		{
			name:   "no matching role",
			skills: []string{"Underwater Basket Weaving"},
			want:   []string{GeneralCareer},
		},
		{
			name:   "sorted and case-insensitive",
			skills: []string{"Python", "Django"},
			want:   []string{"Data Scientist", "Python Developer"},
		},
		{
			name:   "multi-word keywords and title-cased skills",
			skills: []string{"Node.Js", "Machine Learning", "Docker"},
			want:   []string{"Backend Developer", "DevOps Engineer", "Full Stack Developer", "ML Engineer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Suggest(tt.skills))
		})
	}
}

func TestNewTable_CustomRoles(t *testing.T) {
	table := NewTable([]Role{
		{Name: "Gopher", Keywords: []string{" GO ", "golang"}},
		{Name: "Gopher", Keywords: []string{"goroutines"}},
	})

	assert.Equal(t, []string{"Gopher"}, table.Suggest([]string{"golang", "goroutines"}))
	assert.Equal(t, []string{GeneralCareer}, table.Suggest([]string{"python"}))
}

func TestDefaultRoles_IsACopy(t *testing.T) {
	roles := DefaultRoles()
	roles[0].Name = "changed"
	assert.Equal(t, "Python Developer", DefaultRoles()[0].Name)
}
