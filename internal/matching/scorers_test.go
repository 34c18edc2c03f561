package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobmatch-backend/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestScoreSkills(t *testing.T) {
	t.Run("Should be the matched ratio of required skills", func(t *testing.T) {
		c := JobCriteria{Skills: []string{"welding", "carpentry", "plumbing"}}
		p := Profile{Skills: []string{"welding", "carpentry", "driving"}}
		assert.InDelta(t, 2.0/3.0, scoreSkills(c, p), 1e-9)
	})

	t.Run("Should be trivially satisfied when job requires no skills", func(t *testing.T) {
		c := JobCriteria{}
		assert.Equal(t, 1.0, scoreSkills(c, Profile{}))
		assert.Equal(t, 1.0, scoreSkills(c, Profile{Skills: []string{"anything"}}))
	})
}

func TestPartitionSkills(t *testing.T) {
	c := JobCriteria{Skills: []string{"a", "b", "c"}}
	p := Profile{Skills: []string{"c", "a", "x"}}

	matched, missing := PartitionSkills(c, p)

	// Exact partition of the required set: no duplication, no omission.
	assert.Equal(t, []string{"a", "c"}, matched)
	assert.Equal(t, []string{"b"}, missing)
	assert.Equal(t, len(c.Skills), len(matched)+len(missing))
}

func TestScoreEducation(t *testing.T) {
	college := JobCriteria{EducationRank: EduCollege, EducationKnown: true}

	t.Run("Should give full credit at or above the requirement", func(t *testing.T) {
		assert.Equal(t, 1.0, scoreEducation(college, Profile{EducationRank: EduCollege, EducationKnown: true}))
		assert.Equal(t, 1.0, scoreEducation(college, Profile{EducationRank: EduGraduate, EducationKnown: true}))
	})

	t.Run("Should fall off linearly below the requirement", func(t *testing.T) {
		assert.Equal(t, 0.75, scoreEducation(college, Profile{EducationRank: EduVocational, EducationKnown: true}))
		assert.Equal(t, 0.5, scoreEducation(college, Profile{EducationRank: EduHighSchool, EducationKnown: true}))
	})

	t.Run("Should keep one-level near-misses at or above the floor", func(t *testing.T) {
		score := scoreEducation(college, Profile{EducationRank: EduVocational, EducationKnown: true})
		assert.GreaterOrEqual(t, score, educationOneLevelFloor)
	})

	t.Run("Should stay neutral on unknown candidate level", func(t *testing.T) {
		assert.Equal(t, neutralScore, scoreEducation(college, Profile{EducationKnown: false}))
	})
}

func TestScoreLocation(t *testing.T) {
	job := JobCriteria{Location: parseLocation("Quezon City, Metro Manila")}

	t.Run("Should give full credit for a locality match", func(t *testing.T) {
		p := Profile{Location: parseLocation("Quezon City, Metro Manila")}
		assert.Equal(t, 1.0, scoreLocation(job, p))
	})

	t.Run("Should give partial credit for a region match", func(t *testing.T) {
		p := Profile{Location: parseLocation("Makati, Metro Manila")}
		assert.Equal(t, regionMatchScore, scoreLocation(job, p))
	})

	t.Run("Should give zero for no overlap", func(t *testing.T) {
		p := Profile{Location: parseLocation("Cebu City, Cebu")}
		assert.Equal(t, 0.0, scoreLocation(job, p))
	})

	t.Run("Should not match on generic address words alone", func(t *testing.T) {
		// "city" and "metro" appear on both sides but name different places.
		p := Profile{Location: parseLocation("Davao City, Metro Davao")}
		assert.Equal(t, 0.0, scoreLocation(job, p))

		same := Profile{Location: parseLocation("Quezon City")}
		assert.Equal(t, 1.0, scoreLocation(job, same))
	})

	t.Run("Should stay neutral when location is absent", func(t *testing.T) {
		assert.Equal(t, neutralScore, scoreLocation(job, Profile{}))
	})
}

func TestScoreSalary(t *testing.T) {
	job := JobCriteria{SalaryMin: 10000, SalaryMax: 20000, HasSalary: true}

	t.Run("Should give full credit within or below the range", func(t *testing.T) {
		assert.Equal(t, 1.0, scoreSalary(job, Profile{ExpectedSalary: 15000, HasSalary: true}))
		assert.Equal(t, 1.0, scoreSalary(job, Profile{ExpectedSalary: 8000, HasSalary: true}))
	})

	t.Run("Should fall off linearly above the maximum", func(t *testing.T) {
		assert.InDelta(t, 0.75, scoreSalary(job, Profile{ExpectedSalary: 25000, HasSalary: true}), 1e-9)
		assert.Equal(t, 0.0, scoreSalary(job, Profile{ExpectedSalary: 50000, HasSalary: true}))
	})

	t.Run("Should stay neutral when expectation is absent", func(t *testing.T) {
		assert.Equal(t, neutralScore, scoreSalary(job, Profile{}))
	})
}

func TestScoreAvailability(t *testing.T) {
	assert.Equal(t, 1.0, scoreAvailability(JobCriteria{}, Profile{Availability: domain.AvailabilityUnemployed}))
	assert.Equal(t, 0.9, scoreAvailability(JobCriteria{}, Profile{Availability: domain.AvailabilityNewEntrant}))
	assert.Equal(t, 0.5, scoreAvailability(JobCriteria{}, Profile{Availability: domain.AvailabilityEmployed}))
	assert.Equal(t, neutralScore, scoreAvailability(JobCriteria{}, Profile{Availability: "SOMETHING_ELSE"}))
}

func TestScoreExperience(t *testing.T) {
	job := JobCriteria{ExperienceYears: 4}

	t.Run("Should give full credit at or above the requirement", func(t *testing.T) {
		assert.Equal(t, 1.0, scoreExperience(job, Profile{ExperienceYears: 4, HasExperience: true}))
		assert.Equal(t, 1.0, scoreExperience(job, Profile{ExperienceYears: 10, HasExperience: true}))
	})

	t.Run("Should fall off linearly to zero at zero years", func(t *testing.T) {
		assert.Equal(t, 0.5, scoreExperience(job, Profile{ExperienceYears: 2, HasExperience: true}))
		assert.Equal(t, 0.0, scoreExperience(job, Profile{ExperienceYears: 0, HasExperience: true}))
	})

	t.Run("Should always pass a requirement of zero", func(t *testing.T) {
		assert.Equal(t, 1.0, scoreExperience(JobCriteria{}, Profile{}))
	})

	t.Run("Should stay neutral with no work history", func(t *testing.T) {
		assert.Equal(t, neutralScore, scoreExperience(job, Profile{}))
	})
}

func TestScoreDemographic(t *testing.T) {
	t.Run("Should give full credit with no declared preference", func(t *testing.T) {
		assert.Equal(t, 1.0, scoreDemographic(JobCriteria{}, Profile{Age: intPtr(35)}))
	})

	t.Run("Should give full credit when the preference is met", func(t *testing.T) {
		c := JobCriteria{AgeMin: intPtr(21), AgeMax: intPtr(40)}
		assert.Equal(t, 1.0, scoreDemographic(c, Profile{Age: intPtr(30)}))
	})

	t.Run("Should reduce but never zero out on a miss", func(t *testing.T) {
		c := JobCriteria{AgeMin: intPtr(21), AgeMax: intPtr(40)}
		score := scoreDemographic(c, Profile{Age: intPtr(55)})
		assert.Equal(t, demographicMissScore, score)
		assert.Greater(t, score, 0.0)
	})
}

func TestWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, d := range dimensions {
		sum += d.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScoreRange(t *testing.T) {
	// Every dimension stays in [0,1] even for adversarial input.
	c := JobCriteria{
		Skills:          []string{"a", "b"},
		EducationRank:   EduGraduate,
		EducationKnown:  true,
		ExperienceYears: 10,
		SalaryMin:       1,
		SalaryMax:       2,
		HasSalary:       true,
		AgeMin:          intPtr(18),
		AgeMax:          intPtr(20),
	}
	p := Profile{
		EducationRank:  EduElementary,
		EducationKnown: true,
		HasExperience:  true,
		ExpectedSalary: 1e9,
		HasSalary:      true,
		Age:            intPtr(99),
	}
	b := Score(c, p)
	for _, d := range dimensions {
		v := d.Value(b)
		assert.GreaterOrEqual(t, v, 0.0, d.Name)
		assert.LessOrEqual(t, v, 1.0, d.Name)
	}
}
