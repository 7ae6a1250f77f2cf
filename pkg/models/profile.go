package models

// RemotePreference is the candidate's preferred work mode
type RemotePreference string

const (
	RemotePreferenceRemote   RemotePreference = "remote"
	RemotePreferenceOffice   RemotePreference = "office"
	RemotePreferenceFlexible RemotePreference = "flexible"
)

// CandidateProfile describes a candidate for match scoring. Owned by the
// caller; the scorer only reads it.
type CandidateProfile struct {
	Skills              []string         `json:"skills"`
	ExperienceYears     int              `json:"experience_years"`
	Location            string           `json:"location"`
	PreferredLocations  []string         `json:"preferred_locations"`
	SalaryExpectation   *SalaryRange     `json:"salary_expectation,omitempty"`
	PreferredIndustries []string         `json:"preferred_industries"`
	RemotePreference    RemotePreference `json:"remote_preference,omitempty"`
	Education           []string         `json:"education"`
}
