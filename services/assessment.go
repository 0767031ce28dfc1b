package services

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DamageAssessment is the structured output of the external damage analysis.
// This core never computes an assessment; it only parses, validates and
// echoes the record.
type DamageAssessment struct {
	AssessmentID              string         `json:"assessment_id"`
	DamageDetected            bool           `json:"damage_detected"`
	DamageSeverity            string         `json:"damage_severity"`
	TotalEstimatedRepairHours float64        `json:"total_estimated_repair_hours"`
	PartsToRepair             []AssessedPart `json:"parts_to_repair"`
}

// AssessedPart is one damaged part in the assessment.
type AssessedPart struct {
	PartName            string  `json:"part_name"`
	Condition           string  `json:"condition"`
	Action              string  `json:"action"`
	EstimatedLaborHours float64 `json:"estimated_labor_hours"`
}

func (p AssessedPart) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PartName, validation.Required),
		validation.Field(&p.EstimatedLaborHours, validation.Min(0.0)),
	)
}

func (a DamageAssessment) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.AssessmentID, validation.Required),
		validation.Field(&a.DamageSeverity,
			validation.Required.When(a.DamageDetected),
			validation.When(a.DamageDetected, validation.In("Minor", "Moderate", "Severe"))),
		validation.Field(&a.TotalEstimatedRepairHours, validation.Min(0.0)),
		validation.Field(&a.PartsToRepair),
	)
}

// ParseAssessment decodes and validates an assessment record in one step.
// Callers keep the returned value instead of re-parsing the raw bytes.
func ParseAssessment(raw []byte) (*DamageAssessment, error) {
	var a DamageAssessment
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("assessment is not valid JSON: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assessment: %w", err)
	}
	return &a, nil
}
