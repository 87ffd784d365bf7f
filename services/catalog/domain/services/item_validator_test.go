package services

import (
	"errors"
	"math"
	"testing"

	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
)

func weight(w float64) *float64 { return &w }

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name    string
		in      Candidate
		wantErr error
	}{
		{"valid full item", Candidate{Name: "Run 5k", Category: "Physical"}, nil},
		{"valid half item with weight", Candidate{Name: "Cold shower", Category: "Physical/Discipline", IsHalf: true, Weight: weight(5.0)}, nil},
		{"name too short", Candidate{Name: " ab ", Category: "Physical"}, catalogdomain.ErrInvalidName},
		{"name without letters", Candidate{Name: "12345", Category: "Physical"}, catalogdomain.ErrInvalidName},
		{"unknown category", Candidate{Name: "Run 5k", Category: "Cardio"}, catalogdomain.ErrInvalidCategory},
		{"category is case-sensitive", Candidate{Name: "Run 5k", Category: "physical"}, catalogdomain.ErrInvalidCategory},
		{"zero weight", Candidate{Name: "Run 5k", Category: "Physical", Weight: weight(0)}, catalogdomain.ErrInvalidWeight},
		{"negative weight", Candidate{Name: "Run 5k", Category: "Physical", Weight: weight(-1)}, catalogdomain.ErrInvalidWeight},
		{"weight above max", Candidate{Name: "Run 5k", Category: "Physical", Weight: weight(5.01)}, catalogdomain.ErrInvalidWeight},
		{"NaN weight", Candidate{Name: "Run 5k", Category: "Physical", Weight: weight(math.NaN())}, catalogdomain.ErrInvalidWeight},
		{"banned token", Candidate{Name: "Kill the vibe", Category: "Mind/Skill"}, catalogdomain.ErrContentRejected},
		{"banned token inside word", Candidate{Name: "Learn new skills", Category: "Mind/Skill"}, catalogdomain.ErrContentRejected},
		{"name checked before category", Candidate{Name: "x", Category: "nope"}, catalogdomain.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSubmission(tt.in)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateSubmission_Normalizes(t *testing.T) {
	d, err := ValidateSubmission(Candidate{Name: "  Read   30\tpages ", Category: "Mind/Skill", IsHalf: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Descriptor{Name: "Read 30 pages", Category: models.CategoryMindSkill, IsHalf: true, Weight: models.DefaultWeight}
	if d != want {
		t.Fatalf("got %+v, want %+v", d, want)
	}
}
