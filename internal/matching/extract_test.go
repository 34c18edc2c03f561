package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobmatch-backend/internal/domain"
)

func TestSplitSkills(t *testing.T) {
	t.Run("Should split on commas, semicolons and newlines", func(t *testing.T) {
		skills := SplitSkills("Carpentry, Welding; Plumbing\nMasonry")
		assert.Equal(t, []string{"carpentry", "welding", "plumbing", "masonry"}, skills)
	})

	t.Run("Should de-duplicate preserving first-seen order", func(t *testing.T) {
		skills := SplitSkills("Welding, welding,  WELDING , carpentry")
		assert.Equal(t, []string{"welding", "carpentry"}, skills)
	})

	t.Run("Should return empty slice for empty input", func(t *testing.T) {
		assert.Empty(t, SplitSkills(""))
		assert.Empty(t, SplitSkills(" ,; \n "))
	})
}

func TestParseEducation(t *testing.T) {
	cases := []struct {
		raw   string
		rank  int
		known bool
	}{
		{"Master of Science", EduGraduate, true},
		{"College Graduate (BS Civil Engineering)", EduCollege, true},
		{"Bachelor of Science", EduCollege, true},
		{"Vocational / Technical Course", EduVocational, true},
		{"High School Graduate", EduHighSchool, true},
		{"Elementary Level", EduElementary, true},
		{"", EduElementary, false},
		{"n/a", EduElementary, false},
	}
	for _, tc := range cases {
		rank, known := parseEducation(tc.raw)
		assert.Equal(t, tc.rank, rank, tc.raw)
		assert.Equal(t, tc.known, known, tc.raw)
	}
}

func TestParseNumber(t *testing.T) {
	t.Run("Should coerce text with units and separators", func(t *testing.T) {
		v, ok := parseNumber("2 years")
		assert.True(t, ok)
		assert.Equal(t, 2.0, v)

		v, ok = parseNumber("PHP 15,000")
		assert.True(t, ok)
		assert.Equal(t, 15000.0, v)

		v, ok = parseNumber("3.5")
		assert.True(t, ok)
		assert.Equal(t, 3.5, v)
	})

	t.Run("Should mark non-numeric input absent, not zero-valued", func(t *testing.T) {
		_, ok := parseNumber("")
		assert.False(t, ok)
		_, ok = parseNumber("negotiable")
		assert.False(t, ok)
	})
}

func TestNewProfileNeverFails(t *testing.T) {
	// A fully malformed record still yields a usable profile; dropping the
	// candidate is a ranking decision, not an extraction one.
	a := &domain.Applicant{
		ID:                 7,
		FullName:           "Juan Dela Cruz",
		Skills:             "",
		HighestEducation:   "unknown level",
		ExperienceYears:    "n/a",
		ExpectedSalary:     "negotiable",
		Location:           "",
		AvailabilityStatus: "???",
	}
	p := NewProfile(a)

	assert.Empty(t, p.Skills)
	assert.False(t, p.EducationKnown)
	assert.False(t, p.HasExperience)
	assert.False(t, p.HasSalary)
	assert.True(t, p.Location.Empty())
}

func TestParseLocation(t *testing.T) {
	loc := parseLocation("Barangay San Isidro, Quezon City, Metro Manila")
	assert.Len(t, loc.Segments, 3)
	assert.Equal(t, []string{"barangay", "san", "isidro"}, loc.Locality())

	assert.True(t, parseLocation("  ").Empty())
}
