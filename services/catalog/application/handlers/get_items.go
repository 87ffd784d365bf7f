package handlers

import (
	"net/http"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/errhttp"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/httpx"
	appsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/services"
)

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services, errs *errhttp.Responder) *GetItemsHandler {
	return &GetItemsHandler{svc: svc, errs: errs}
}

// Execute lists the approved catalog.
//
//	@Summary		List items
//	@Description	Returns every approved item ordered by id
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		models.PublicItem
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.List(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}
