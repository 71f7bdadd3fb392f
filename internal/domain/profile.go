package domain

// Project is one portfolio entry on the candidate profile. The shape is
// free-form apart from Name and Highlights, which the kit builder reads.
type Project struct {
	Name       string            `json:"name" validate:"required"`
	Highlights []string          `json:"highlights"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// CandidateProfile is the immutable matching profile, loaded once per run.
// Skill list order doubles as priority order.
type CandidateProfile struct {
	Name              string            `json:"name" validate:"required"`
	Email             string            `json:"email" validate:"required,email"`
	Phone             string            `json:"phone,omitempty"`
	Location          string            `json:"location" validate:"required"`
	RemoteOK          bool              `json:"remote_ok"`
	Titles            []string          `json:"titles"`
	CoreSkills        []string          `json:"core_skills"`
	NiceSkills        []string          `json:"nice_skills"`
	MinSalary         int               `json:"min_salary,omitempty" validate:"gte=0"`
	Seniority         string            `json:"seniority,omitempty"`
	WorkAuthorization string            `json:"work_authorization,omitempty"`
	Links             map[string]string `json:"links,omitempty"`
	Projects          []Project         `json:"projects,omitempty" validate:"dive"`
}
