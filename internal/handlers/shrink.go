package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/JuliusMoehring/shrinkify.app/internal/qrcode"
	"github.com/JuliusMoehring/shrinkify.app/internal/shrink"
	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// expireDateLayout is the accepted expiry format: ISO-8601 UTC with
// millisecond precision.
const expireDateLayout = "2006-01-02T15:04:05.000Z"

// ShrinkHandler handles the shrink lifecycle operations.
type ShrinkHandler struct {
	service *shrink.Service
	logger  *zap.Logger
}

// NewShrinkHandler creates a new shrink handler.
func NewShrinkHandler(service *shrink.Service, logger *zap.Logger) *ShrinkHandler {
	return &ShrinkHandler{
		service: service,
		logger:  logger,
	}
}

// Index answers the liveness probe.
func (h *ShrinkHandler) Index(_ context.Context, _ *struct{}) (*IndexResponse, error) {
	return &IndexResponse{}, nil
}

// Redirect resolves an origin and issues the redirect bound to it.
func (h *ShrinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	redirect, err := h.service.Resolve(ctx, req.Origin)
	if err != nil {
		if errors.Is(err, shrink.ErrNotFound) {
			return nil, huma.Error404NotFound("shrink not found")
		}

		h.logger.Error("failed to resolve origin",
			zap.String("origin", req.Origin),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to resolve shrink")
	}

	resp := &RedirectResponse{Status: redirect.Status}
	resp.Headers.Location = redirect.Target

	return resp, nil
}

// Create binds an origin to a target URL, optionally with an expiry.
func (h *ShrinkHandler) Create(ctx context.Context, req *CreateShrinkRequest) (*CreateShrinkResponse, error) {
	mapping := shrink.Mapping{
		Origin:     req.Body.Origin,
		Target:     req.Body.Target,
		StatusCode: req.Body.StatusCode,
	}

	// Reject a malformed expiry before anything is written.
	if req.Body.ExpireDate != "" {
		expireAt, err := time.Parse(expireDateLayout, req.Body.ExpireDate)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("expireDate must match " + expireDateLayout)
		}

		mapping.ExpireAt = &expireAt
	}

	if err := h.service.CreateMapping(ctx, mapping); err != nil {
		if errors.Is(err, shrink.ErrExpiryNotSet) {
			// The record exists but will not expire; the create still fails
			// as a whole.
			h.logger.Error("shrink stored without its expiry",
				zap.String("origin", req.Body.Origin),
				zap.Error(err),
			)
		} else {
			h.logger.Error("failed to create shrink",
				zap.String("origin", req.Body.Origin),
				zap.Error(err),
			)
		}

		return nil, huma.Error500InternalServerError("failed to create shrink")
	}

	return &CreateShrinkResponse{}, nil
}

// GenerateOrigin mints an origin that is currently unbound.
func (h *ShrinkHandler) GenerateOrigin(ctx context.Context, _ *struct{}) (*GenerateOriginResponse, error) {
	origin, err := h.service.GenerateUniqueOrigin(ctx)
	if err != nil {
		h.logger.Error("failed to generate origin", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to generate origin")
	}

	resp := &GenerateOriginResponse{}
	resp.Body.Origin = origin

	return resp, nil
}

// ValidateOrigin reports whether a custom origin is still free. The check is
// advisory: a concurrent create can still claim the origin afterwards.
func (h *ShrinkHandler) ValidateOrigin(ctx context.Context, req *ValidateOriginRequest) (*ValidateOriginResponse, error) {
	exists, err := h.service.OriginExists(ctx, req.Body.Origin)
	if err != nil {
		h.logger.Error("failed to validate origin",
			zap.String("origin", req.Body.Origin),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to validate origin")
	}

	if exists {
		return nil, huma.Error409Conflict("origin already in use")
	}

	return &ValidateOriginResponse{}, nil
}

// GenerateQRCode renders the given content as an SVG QR code.
func (h *ShrinkHandler) GenerateQRCode(_ context.Context, req *GenerateQRCodeRequest) (*GenerateQRCodeResponse, error) {
	svg, err := qrcode.SVG(req.Body.Shrink)
	if err != nil {
		h.logger.Error("failed to render qr code", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to render qr code")
	}

	return &GenerateQRCodeResponse{
		ContentType: "image/svg+xml",
		Body:        svg,
	}, nil
}
