// ABOUTME: Static medication-food interaction table with substring matching.
// ABOUTME: Works offline so meals can be screened even when the AI backend is down.
package interactions

import "strings"

// Severity levels used in the table.
const (
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
)

// Rule describes foods that interact with one medication.
type Rule struct {
	Medication string
	Foods      []string
	Nutrient   string
	Severity   string
	Message    string
}

// Interaction is one matched medication/food pair.
type Interaction struct {
	Medication string `json:"medication"`
	Food       string `json:"food"`
	Nutrient   string `json:"nutrient"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
}

const statinMessage = "Grapefruit increases statin levels significantly. Avoid completely while on this medication."

// Table lists the known interactions in match order.
var Table = []Rule{
	{
		Medication: "warfarin",
		Foods:      []string{"spinach", "kale", "broccoli", "brussels sprouts", "cabbage"},
		Nutrient:   "Vitamin K",
		Severity:   SeverityModerate,
		Message:    "Contains Vitamin K which affects warfarin. Maintain consistent intake - eat similar portions each time.",
	},
	{
		Medication: "simvastatin",
		Foods:      []string{"grapefruit", "grapefruit juice"},
		Nutrient:   "Bergamottin",
		Severity:   SeverityHigh,
		Message:    statinMessage,
	},
	{
		Medication: "atorvastatin",
		Foods:      []string{"grapefruit", "grapefruit juice"},
		Nutrient:   "Bergamottin",
		Severity:   SeverityHigh,
		Message:    statinMessage,
	},
	{
		Medication: "ciprofloxacin",
		Foods:      []string{"milk", "yogurt", "cheese", "calcium"},
		Nutrient:   "Calcium",
		Severity:   SeverityModerate,
		Message:    "Dairy reduces antibiotic absorption by up to 50%. Take medication 2 hours before or 6 hours after dairy.",
	},
	{
		Medication: "levothyroxine",
		Foods:      []string{"soy", "walnuts", "fiber", "coffee"},
		Nutrient:   "Various",
		Severity:   SeverityModerate,
		Message:    "These foods can reduce thyroid medication absorption. Take medication on empty stomach, wait 30-60 minutes before eating.",
	},
}

// Check matches each medication against each food. A rule applies when its
// medication name appears in the medication string, and fires once for
// every listed food contained in a food string. Matching ignores case.
// The returned entries keep the caller's medication and food text unchanged.
func Check(medications, foods []string) []Interaction {
	out := []Interaction{}
	for _, med := range medications {
		medLower := strings.ToLower(med)
		for _, rule := range Table {
			if !strings.Contains(medLower, rule.Medication) {
				continue
			}
			for _, food := range foods {
				foodLower := strings.ToLower(food)
				for _, f := range rule.Foods {
					if strings.Contains(foodLower, f) {
						out = append(out, Interaction{
							Medication: med,
							Food:       food,
							Nutrient:   rule.Nutrient,
							Severity:   rule.Severity,
							Message:    rule.Message,
						})
					}
				}
			}
		}
	}
	return out
}

// SplitMeal splits a comma-separated meal description into trimmed items.
func SplitMeal(description string) []string {
	var items []string
	for _, part := range strings.Split(description, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// SafeToConsume reports whether no high-severity interaction was found.
func SafeToConsume(found []Interaction) bool {
	for _, i := range found {
		if i.Severity == SeverityHigh {
			return false
		}
	}
	return true
}
