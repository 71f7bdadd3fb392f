// Package kit assembles an application kit (keywords, fit bullets, a cover
// letter draft) for one stored posting. Naive keyword presence only; the
// ranking logic lives in rank.
package kit

import (
	"strings"
	"text/template"

	"jobscout/internal/domain"
)

const (
	maxKeywords = 35
	maxBullets  = 8
)

// stackKeywords drive fit-bullet selection.
var stackKeywords = []string{"rails", "ruby", "react", "redux", "jwt", "oauth", "postgres", "sql", "api"}

var fallbackBullets = []string{
	"Built full-stack web applications using Ruby on Rails and JavaScript.",
	"Implemented authentication/authorization using JWT and OAuth2 flows.",
	"Designed REST APIs and integrated React front-ends for responsive UX.",
}

type JobSummary struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	URL      string `json:"url"`
	Source   string `json:"source"`
}

type Kit struct {
	Job         JobSummary `json:"job"`
	FitBullets  []string   `json:"fit_bullets"`
	Keywords    []string   `json:"keywords"`
	CoverLetter string     `json:"cover_letter"`
}

func Build(profile domain.CandidateProfile, job domain.Posting) Kit {
	bullets := fitBullets(profile, job)
	return Kit{
		Job: JobSummary{
			Company:  job.Company,
			Title:    job.Title,
			Location: job.Location,
			URL:      job.URL,
			Source:   string(job.Source),
		},
		FitBullets:  bullets,
		Keywords:    keywords(profile, job),
		CoverLetter: coverLetter(profile, job, bullets),
	}
}

// keywords lists the profile skills present in the job text, then any
// remaining core skills, capped.
func keywords(profile domain.CandidateProfile, job domain.Posting) []string {
	text := strings.ToLower(job.Title + " " + job.Description)

	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, s := range append(append([]string{}, profile.CoreSkills...), profile.NiceSkills...) {
		if strings.Contains(text, strings.ToLower(s)) {
			add(s)
		}
	}
	for _, s := range profile.CoreSkills {
		add(s)
	}

	if len(out) > maxKeywords {
		out = out[:maxKeywords]
	}
	return out
}

// fitBullets picks project highlights sharing a stack keyword with the job
// text, deduplicated and capped, with a generic fallback set.
func fitBullets(profile domain.CandidateProfile, job domain.Posting) []string {
	text := strings.ToLower(job.Title + " " + job.Description)

	seen := map[string]bool{}
	var out []string
	for _, proj := range profile.Projects {
		for _, h := range proj.Highlights {
			hl := strings.ToLower(h)
			matched := false
			for _, kw := range stackKeywords {
				if strings.Contains(hl, kw) && strings.Contains(text, kw) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
			b := proj.Name + ": " + h
			if seen[b] {
				continue
			}
			seen[b] = true
			out = append(out, b)
		}
	}

	if len(out) == 0 {
		return append([]string{}, fallbackBullets...)
	}
	if len(out) > maxBullets {
		out = out[:maxBullets]
	}
	return out
}

var letterTmpl = template.Must(template.New("cover").Parse(`Dear Hiring Team,

I am applying for the {{.Title}} role. I build full-stack web applications with Ruby on Rails, JavaScript, React, and SQL databases, and I focus on clear communication, reliable delivery, and maintainable code.

Relevant highlights:
{{range .Bullets}}- {{.}}
{{end}}
I would welcome the opportunity to discuss how I can contribute to your team.

Sincerely,
{{.Name}}`))

func coverLetter(profile domain.CandidateProfile, job domain.Posting, bullets []string) string {
	if len(bullets) > 4 {
		bullets = bullets[:4]
	}
	var sb strings.Builder
	_ = letterTmpl.Execute(&sb, struct {
		Title   string
		Name    string
		Bullets []string
	}{Title: job.Title, Name: profile.Name, Bullets: bullets})
	return sb.String()
}
