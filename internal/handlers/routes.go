package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all shrink routes.
func RegisterRoutes(api huma.API, h *ShrinkHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "index",
		Method:        http.MethodGet,
		Path:          "/",
		Summary:       "Liveness",
		Description:   "Answers 200 as long as the process is serving.",
		Tags:          []string{"Health"},
		DefaultStatus: http.StatusOK,
	}, h.Index)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/api/{origin}",
		Summary:     "Redirect to target URL",
		Description: "Resolves an origin and redirects with the status code stored for it.",
		Tags:        []string{"Shrinks"},
	}, h.Redirect)

	huma.Register(api, huma.Operation{
		OperationID:   "create-shrink",
		Method:        http.MethodPost,
		Path:          "/api/shrink",
		Summary:       "Create shrink",
		Description:   "Binds an origin to a target URL, optionally with an expiry instant.",
		Tags:          []string{"Shrinks"},
		DefaultStatus: http.StatusCreated,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "generate-origin",
		Method:      http.MethodGet,
		Path:        "/api/shrink/generate-origin",
		Summary:     "Generate free origin",
		Description: "Mints a random origin that is not bound in the store.",
		Tags:        []string{"Shrinks"},
	}, h.GenerateOrigin)

	huma.Register(api, huma.Operation{
		OperationID:   "validate-origin",
		Method:        http.MethodPost,
		Path:          "/api/shrink/validate-origin",
		Summary:       "Validate custom origin",
		Description:   "Reports whether an origin is still free (200) or already bound (409).",
		Tags:          []string{"Shrinks"},
		DefaultStatus: http.StatusOK,
	}, h.ValidateOrigin)

	huma.Register(api, huma.Operation{
		OperationID: "generate-qr-code",
		Method:      http.MethodPost,
		Path:        "/api/shrink/generate-qr-code",
		Summary:     "Generate QR code",
		Description: "Renders the given content as an SVG QR code.",
		Tags:        []string{"Shrinks"},
	}, h.GenerateQRCode)
}
