package handlers

import (
	"net/http"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/errhttp"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/httpx"
	pkgvalidator "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/validator"
	appsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/services"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	domainsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/services"
)

// SubmitItemRequest is the request body for POST /items/submit.
type SubmitItemRequest struct {
	Name     string   `json:"name"     validate:"required"  example:"Cold shower"`
	Category string   `json:"category" validate:"required"  example:"Physical/Discipline"`
	IsHalf   bool     `json:"is_half"                       example:"false"`
	Weight   *float64 `json:"weight,omitempty"              example:"1"`
} // @name SubmitItemRequest

// SubmitItemResponse is returned when a submission is accepted for review.
type SubmitItemResponse struct {
	OK      bool          `json:"ok"      example:"true"`
	ID      int64         `json:"id"      example:"42"`
	Status  models.Status `json:"status"  example:"pending"`
	Message string        `json:"message" example:"Submitted for review."`
} // @name SubmitItemResponse

// PostSubmitHandler handles POST /items/submit requests.
type PostSubmitHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewPostSubmitHandler returns a PostSubmitHandler backed by the given services.
func NewPostSubmitHandler(svc *appsvcs.Services, errs *errhttp.Responder) *PostSubmitHandler {
	return &PostSubmitHandler{svc: svc, errs: errs}
}

// Execute queues a new item for moderation.
//
//	@Summary		Submit item
//	@Description	Submits a new hard thing. It stays pending until a moderator approves it.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SubmitItemRequest	true	"Item submission"
//	@Success		201		{object}	SubmitItemResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		429		{object}	ErrorResponse
//	@Router			/items/submit [post]
func (h *PostSubmitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SubmitItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Submission.Submit(r.Context(), domainsvcs.Candidate{
		Name:     req.Name,
		Category: req.Category,
		IsHalf:   req.IsHalf,
		Weight:   req.Weight,
	}, httpx.ClientIP(r))
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, SubmitItemResponse{
		OK:      true,
		ID:      item.ID,
		Status:  item.Status,
		Message: "Submitted for review.",
	})
}
