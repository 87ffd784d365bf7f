package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/validator"
)

type sampleStruct struct {
	Name  string  `validate:"required,min=1,max=10"`
	Mode  string  `validate:"omitempty,oneof=random full half-pair"`
	Ratio float64 `validate:"gte=0,lte=1"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Name: "hello", Mode: "full", Ratio: 0.5}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    sampleStruct
		field string
		want  string
	}{
		{"required", sampleStruct{}, "Name", "This field is required"},
		{"max", sampleStruct{Name: "12345678901"}, "Name", "Maximum length is 10"},
		{"oneof", sampleStruct{Name: "ok", Mode: "sometimes"}, "Mode", "Must be one of: random full half-pair"},
		{"lte", sampleStruct{Name: "ok", Ratio: 1.5}, "Ratio", "Must be less than or equal to 1"},
		{"gte", sampleStruct{Name: "ok", Ratio: -0.1}, "Ratio", "Must be greater than or equal to 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.in))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type submitReq struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category" validate:"required"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Cold shower","category":"Physical"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[submitReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Cold shower" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[submitReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"Cold shower"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[submitReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing category")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") || !strings.Contains(w.Body.String(), "category") {
		t.Errorf("expected category validation error in body, got: %s", w.Body.String())
	}
}
