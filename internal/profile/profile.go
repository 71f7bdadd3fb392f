// Package profile loads the candidate profile handed to the scorer.
// An invalid profile is fatal to the run; there is no degraded mode.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"jobscout/internal/domain"
)

var validate = validator.New()

func Load(path string) (domain.CandidateProfile, error) {
	var p domain.CandidateProfile

	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse profile: %w", err)
	}
	if err := validate.Struct(p); err != nil {
		return p, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}
