package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/errhttp"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/httpx"
	pkgvalidator "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/validator"
	appsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/services"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	domainsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/services"
)

// choiceQuery holds the parsed GET /choice parameters before validation.
type choiceQuery struct {
	Mode                string  `json:"mode"                  validate:"oneof=random full half-pair"`
	HalfPairProbability float64 `json:"half_pair_probability" validate:"gte=0,lte=1"`
	Seed                *int64  `json:"seed"`
	IncludeCategories   []string
	ExcludeCategories   []string
	ExcludeIDs          []int64
}

// GetChoiceHandler handles GET /choice requests.
type GetChoiceHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewGetChoiceHandler returns a GetChoiceHandler backed by the given services.
func NewGetChoiceHandler(svc *appsvcs.Services, errs *errhttp.Responder) *GetChoiceHandler {
	return &GetChoiceHandler{svc: svc, errs: errs}
}

// Execute draws today's hard thing.
//
//	@Summary		Daily choice
//	@Description	Draws one full item or two distinct half items, weighted by item weight.
//	@Description	List parameters accept repeated keys and comma-separated values.
//	@Tags			choice
//	@Produce		json
//	@Param			mode					query		string	false	"random, full or half-pair"	default(random)
//	@Param			seed					query		int		false	"Seed for a reproducible draw"
//	@Param			half_pair_probability	query		number	false	"Chance random mode prefers a pair"	default(0.5)
//	@Param			include_categories		query		[]string	false	"Only these categories"	collectionFormat(multi)
//	@Param			exclude_categories		query		[]string	false	"Never these categories"	collectionFormat(multi)
//	@Param			exclude_ids				query		[]int	false	"Never these item ids"	collectionFormat(multi)
//	@Success		200						{object}	models.Choice
//	@Failure		400						{object}	ValidationErrorResponse
//	@Router			/choice [get]
func (h *GetChoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, fields := parseChoiceQuery(r.URL.Query())
	if len(fields) == 0 {
		if err := pkgvalidator.Validate(&q); err != nil {
			fields = pkgvalidator.FormatValidationErrors(err)
		}
	}
	if len(fields) > 0 {
		httpx.JSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: fields})
		return
	}

	choice, err := h.svc.Catalog.Choose(r.Context(), q.selection())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, choice)
}

// parseChoiceQuery converts raw query values. Conversion failures are
// returned per field; range and enum checks are left to the validator.
func parseChoiceQuery(values url.Values) (choiceQuery, map[string]string) {
	q := choiceQuery{
		Mode:                string(models.ModeRandom),
		HalfPairProbability: domainsvcs.DefaultHalfPairProbability,
		IncludeCategories:   listParam(values, "include_categories"),
		ExcludeCategories:   listParam(values, "exclude_categories"),
	}
	fields := map[string]string{}

	if v := strings.TrimSpace(values.Get("mode")); v != "" {
		q.Mode = v
	}
	if v := strings.TrimSpace(values.Get("half_pair_probability")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fields["half_pair_probability"] = "Must be a number between 0 and 1"
		} else {
			q.HalfPairProbability = p
		}
	}
	if v := strings.TrimSpace(values.Get("seed")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			fields["seed"] = "Must be an integer"
		} else {
			q.Seed = &seed
		}
	}
	for _, raw := range listParam(values, "exclude_ids") {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fields["exclude_ids"] = fmt.Sprintf("Invalid id %q", raw)
			break
		}
		q.ExcludeIDs = append(q.ExcludeIDs, id)
	}
	return q, fields
}

// listParam collects key from repeated parameters and comma-separated values,
// dropping empty entries.
func listParam(values url.Values, key string) []string {
	var out []string
	for _, v := range values[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (q choiceQuery) selection() domainsvcs.Selection {
	return domainsvcs.Selection{
		Mode:                models.Mode(q.Mode),
		HalfPairProbability: q.HalfPairProbability,
		Seed:                q.Seed,
		Filter: domainsvcs.Filter{
			IncludeCategories: toCategories(q.IncludeCategories),
			ExcludeCategories: toCategories(q.ExcludeCategories),
			ExcludeIDs:        q.ExcludeIDs,
		},
	}
}

func toCategories(in []string) []models.Category {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Category, len(in))
	for i, c := range in {
		out[i] = models.Category(c)
	}
	return out
}
