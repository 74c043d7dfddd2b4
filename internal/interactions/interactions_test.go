// ABOUTME: Tests for the medication-food interaction table.
// ABOUTME: Covers substring matching, case folding, and safety classification.
package interactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		medications []string
		foods       []string
		wantCount   int
		wantSev     string
	}{
		{"warfarin with spinach", []string{"Warfarin 5mg"}, []string{"spinach salad"}, 1, SeverityModerate},
		{"statin with grapefruit juice", []string{"simvastatin 20mg"}, []string{"Grapefruit Juice"}, 2, SeverityHigh},
		{"cipro with cheese", []string{"ciprofloxacin"}, []string{"mac and cheese"}, 1, SeverityModerate},
		{"no matching medication", []string{"ibuprofen"}, []string{"spinach"}, 0, ""},
		{"no matching food", []string{"levothyroxine"}, []string{"rice", "chicken"}, 0, ""},
		{"one food, two greens", []string{"warfarin"}, []string{"kale and spinach bowl"}, 2, SeverityModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.medications, tt.foods)
			require.Len(t, got, tt.wantCount)
			for _, i := range got {
				assert.Equal(t, tt.wantSev, i.Severity)
			}
		})
	}
}

func TestCheckKeepsCallerText(t *testing.T) {
	got := Check([]string{"Warfarin 5mg"}, []string{"Spinach Salad"})
	require.Len(t, got, 1)

	assert.Equal(t, "Warfarin 5mg", got[0].Medication)
	assert.Equal(t, "Spinach Salad", got[0].Food)
	assert.Equal(t, "Vitamin K", got[0].Nutrient)
	assert.NotEmpty(t, got[0].Message)
}

func TestCheckEmptyIsNotNil(t *testing.T) {
	got := Check(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSplitMeal(t *testing.T) {
	assert.Equal(t,
		[]string{"oatmeal", "grapefruit juice", "coffee"},
		SplitMeal(" oatmeal, grapefruit juice ,, coffee "))
	assert.Empty(t, SplitMeal(" , "))
}

func TestSafeToConsume(t *testing.T) {
	assert.True(t, SafeToConsume(nil), "no interactions should be safe")
	assert.True(t, SafeToConsume(Check([]string{"warfarin"}, []string{"kale"})), "moderate interactions should still be safe")
	assert.False(t, SafeToConsume(Check([]string{"atorvastatin"}, []string{"grapefruit"})), "high severity interaction should not be safe")
}
