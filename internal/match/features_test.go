package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobradar/pkg/models"
)

func TestSkillSimilarityNeutralWhenJobListsNoSkills(t *testing.T) {
	assert.Equal(t, 0.5, SkillSimilarity(nil, []string{"Go", "React"}))
	assert.Equal(t, 0.5, SkillSimilarity([]string{}, []string{"Go"}))
}

func TestSkillSimilarityFullOverlap(t *testing.T) {
	score := SkillSimilarity([]string{"Go", "Docker"}, []string{"go", "docker"})
	assert.Equal(t, 1.0, score)
}

func TestSkillSimilarityNoOverlap(t *testing.T) {
	score := SkillSimilarity([]string{"Rust"}, []string{"PHP"})
	assert.Equal(t, 0.0, score)
}

func TestSkillSimilarityCaseAndWhitespaceInsensitive(t *testing.T) {
	exact := SkillSimilarity([]string{"React"}, []string{"React"})
	sloppy := SkillSimilarity([]string{"React"}, []string{"  react "})
	assert.Equal(t, exact, sloppy)
}

func TestSkillSimilarityDuplicateJobSkillsCountedOnce(t *testing.T) {
	once := SkillSimilarity([]string{"Go"}, []string{"Go"})
	dup := SkillSimilarity([]string{"Go", "go", " GO "}, []string{"Go"})
	assert.Equal(t, once, dup)
}

func TestSkillSimilarityCandidateOnlySkillsDiluteScore(t *testing.T) {
	focused := SkillSimilarity([]string{"Go"}, []string{"Go"})
	scattered := SkillSimilarity([]string{"Go"}, []string{"Go", "Photoshop", "Excel"})
	assert.Greater(t, focused, scattered)
	assert.Greater(t, scattered, 0.0)
}

func TestExperienceMatchTiers(t *testing.T) {
	tests := []struct {
		name      string
		candidate int
		required  int
		want      float64
	}{
		{"no requirement", 0, 0, 1.0},
		{"meets requirement", 5, 5, 1.0},
		{"exceeds requirement", 8, 5, 1.0},
		{"slightly under", 4, 5, 0.9},
		{"well under", 3, 5, 0.7},
		{"half", 2, 5, 0.5},
		{"far under", 1, 5, 0.3},
		{"zero experience", 0, 5, 0.3},
		{"negative clamped", -2, 5, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceMatch(tt.candidate, tt.required))
		})
	}
}

func TestLocationPreference(t *testing.T) {
	assert.Equal(t, 0.8, LocationPreference("Berlin, Germany", nil))
	assert.Equal(t, 1.0, LocationPreference("Berlin, Germany", []string{"berlin"}))
	assert.Equal(t, 1.0, LocationPreference("Remote - Berlin", []string{"Paris", "Berlin"}))

	// Unmatched preference falls back to the hub table, then the floor
	hubScore := LocationPreference("London, UK", []string{"Tokyo"})
	assert.Greater(t, hubScore, defaultLocationMultiplier)

	assert.Equal(t, defaultLocationMultiplier, LocationPreference("Smalltown", []string{"Tokyo"}))
}

func TestSalaryAlignmentNeutralOnMissingData(t *testing.T) {
	band := &models.SalaryRange{Min: 80000, Max: 120000, Currency: "EUR"}
	assert.Equal(t, 0.7, SalaryAlignment(nil, band))
	assert.Equal(t, 0.7, SalaryAlignment(band, nil))
	assert.Equal(t, 0.7, SalaryAlignment(&models.SalaryRange{}, band))
}

func TestSalaryAlignmentTiers(t *testing.T) {
	job := &models.SalaryRange{Min: 90000, Max: 110000, Currency: "EUR"} // midpoint 100k

	tests := []struct {
		name     string
		expected int
		want     float64
	}{
		{"within 10 percent", 105000, 1.0},
		{"within 20 percent", 115000, 0.9},
		{"within 30 percent", 125000, 0.8},
		{"far off", 200000, 0.6},
		{"expecting less is still aligned", 95000, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectation := &models.SalaryRange{Max: tt.expected}
			assert.Equal(t, tt.want, SalaryAlignment(job, expectation))
		})
	}
}

func TestIndustryFit(t *testing.T) {
	assert.Equal(t, 0.8, IndustryFit("Fintech", nil))
	assert.Equal(t, 1.0, IndustryFit("Financial Technology", []string{"financial"}))
	assert.Equal(t, 1.0, IndustryFit("tech", []string{"fintech"}), "substring match runs both directions")

	// No preference hit: static demand table decides
	assert.Equal(t, defaultIndustryDemand, IndustryFit("Forestry", []string{"aerospace"}))
}

func TestEducationMatch(t *testing.T) {
	assert.Equal(t, 1.0, EducationMatch(nil, nil))
	assert.Equal(t, 1.0, EducationMatch(nil, []string{"BSc Computer Science"}))

	assert.Equal(t, 1.0, EducationMatch(
		[]string{"Computer Science"},
		[]string{"BSc Computer Science, TU Berlin"}))

	assert.Equal(t, 0.5, EducationMatch(
		[]string{"Computer Science", "MBA"},
		[]string{"BSc Computer Science"}))

	assert.Equal(t, 0.0, EducationMatch([]string{"PhD Physics"}, []string{"BA History"}))
}

func TestRemoteCompatibility(t *testing.T) {
	assert.Equal(t, 1.0, RemoteCompatibility(true, models.RemotePreferenceRemote))
	assert.Equal(t, 0.6, RemoteCompatibility(false, models.RemotePreferenceRemote))
	assert.Equal(t, 1.0, RemoteCompatibility(false, models.RemotePreferenceOffice))
	assert.Equal(t, 0.6, RemoteCompatibility(true, models.RemotePreferenceOffice))
	assert.Equal(t, 0.9, RemoteCompatibility(true, models.RemotePreferenceFlexible))
	assert.Equal(t, 0.9, RemoteCompatibility(false, ""), "unspecified preference is treated as flexible")
}

func TestExtractFeaturesAllWithinUnitInterval(t *testing.T) {
	job := models.JobPosting{
		Title:       "Senior Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin, Germany",
		Remote:      true,
		Skills:      []string{"Go", "PostgreSQL", "Kubernetes"},
		Experience:  5,
		Industry:    "Fintech",
		Description: "Growth-minded team with flexible hours and learning budget",
		Salary:      &models.SalaryRange{Min: 80000, Max: 100000, Currency: "EUR"},
	}
	profile := models.CandidateProfile{
		Skills:            []string{"Go", "Docker"},
		ExperienceYears:   4,
		Location:          "Berlin",
		SalaryExpectation: &models.SalaryRange{Max: 95000},
		RemotePreference:  models.RemotePreferenceRemote,
	}

	features := ExtractFeatures(job, profile)
	for i, v := range features.Values() {
		assert.GreaterOrEqual(t, v, 0.0, "feature %d below range", i)
		assert.LessOrEqual(t, v, 1.0, "feature %d above range", i)
	}
}
