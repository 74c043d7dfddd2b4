// ABOUTME: UserProfile model captured at onboarding.
// ABOUTME: Holds surgery context, restrictions, medications and baselines.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimeAvailable is the workout time budget when none is set.
const DefaultTimeAvailable = 30

// Surgery describes the procedure the user is recovering from.
type Surgery struct {
	Type        string `json:"type" yaml:"type"`
	Date        string `json:"date" yaml:"date"`
	WeeksPostOp int    `json:"weeksPostOp" yaml:"weeks_post_op"`
}

// UserProfile is the single per-device profile.
type UserProfile struct {
	ID                uuid.UUID `json:"id" yaml:"id"`
	CreatedAt         time.Time `json:"createdAt" yaml:"created_at"`
	Name              *string   `json:"name,omitempty" yaml:"name,omitempty"`
	Age               *int      `json:"age,omitempty" yaml:"age,omitempty"`
	Surgery           *Surgery  `json:"surgery,omitempty" yaml:"surgery,omitempty"`
	Restrictions      []string  `json:"restrictions" yaml:"restrictions"`
	Medications       []string  `json:"medications" yaml:"medications"`
	Goals             []string  `json:"goals,omitempty" yaml:"goals,omitempty"`
	Equipment         []string  `json:"equipment" yaml:"equipment"`
	TimeAvailable     int       `json:"timeAvailable" yaml:"time_available"`
	BaselineHRV       *float64  `json:"baselineHRV,omitempty" yaml:"baseline_hrv,omitempty"`
	BaselineHR        *float64  `json:"baselineHR,omitempty" yaml:"baseline_hr,omitempty"`
	BaselineRestingHR *float64  `json:"baselineRestingHR,omitempty" yaml:"baseline_resting_hr,omitempty"`
	BaselineSleep     *float64  `json:"baselineSleep,omitempty" yaml:"baseline_sleep,omitempty"`
}

// NewUserProfile creates a profile with a fresh ID and default time budget.
func NewUserProfile() *UserProfile {
	return &UserProfile{
		ID:            uuid.New(),
		CreatedAt:     time.Now(),
		Restrictions:  []string{},
		Medications:   []string{},
		Equipment:     []string{},
		TimeAvailable: DefaultTimeAvailable,
	}
}

// WithName sets the display name.
func (p *UserProfile) WithName(name string) *UserProfile {
	p.Name = &name
	return p
}

// WithSurgery sets the surgery details.
func (p *UserProfile) WithSurgery(surgeryType, date string, weeksPostOp int) *UserProfile {
	p.Surgery = &Surgery{Type: surgeryType, Date: date, WeeksPostOp: weeksPostOp}
	return p
}

// WithBaselineHRV sets the HRV baseline in ms.
func (p *UserProfile) WithBaselineHRV(hrv float64) *UserProfile {
	p.BaselineHRV = &hrv
	return p
}

// GetTimeAvailable returns the time budget, defaulting to 30 minutes.
func (p *UserProfile) GetTimeAvailable() int {
	if p.TimeAvailable <= 0 {
		return DefaultTimeAvailable
	}
	return p.TimeAvailable
}

// GetBaselineHRV returns the HRV baseline or DefaultBaselineHRV.
func (p *UserProfile) GetBaselineHRV() float64 {
	if p.BaselineHRV == nil || *p.BaselineHRV <= 0 {
		return DefaultBaselineHRV
	}
	return *p.BaselineHRV
}

// SurgeryLabel returns the surgery type, or "None".
func (p *UserProfile) SurgeryLabel() string {
	if p.Surgery == nil || p.Surgery.Type == "" {
		return "None"
	}
	return p.Surgery.Type
}
