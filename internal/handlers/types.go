package handlers

// IndexResponse is the empty liveness response.
type IndexResponse struct{}

// RedirectRequest is the request for resolving an origin.
type RedirectRequest struct {
	Origin string `doc:"The origin to resolve" example:"Ab3xY9z0" path:"origin"`
}

// RedirectResponse is the redirect issued for a bound origin. Status carries
// the per-record redirect code, so it is set at runtime.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The target URL" header:"Location"`
	}
}

// CreateShrinkRequest is the request body for binding an origin to a target.
type CreateShrinkRequest struct {
	Body struct {
		Origin     string `doc:"The origin to bind"                           example:"Ab3xY9z0"                   json:"origin"`
		Target     string `doc:"The URL to redirect to"                       example:"https://example.com/page"   json:"target"`
		StatusCode int    `doc:"The redirect status code"                     example:"301"                        json:"statusCode"`
		ExpireDate string `doc:"Optional expiry instant, ISO-8601 with milliseconds" example:"2026-01-02T15:04:05.000Z" json:"expireDate,omitempty" required:"false"`
	}
}

// CreateShrinkResponse is the empty created response.
type CreateShrinkResponse struct{}

// GenerateOriginResponse carries a freshly minted unbound origin.
type GenerateOriginResponse struct {
	Body struct {
		Origin string `doc:"A free origin" example:"Ab3xY9z0" json:"origin"`
	}
}

// ValidateOriginRequest is the request body for checking whether an origin is
// still free.
type ValidateOriginRequest struct {
	Body struct {
		Origin string `doc:"The origin to check" example:"Ab3xY9z0" json:"origin"`
	}
}

// ValidateOriginResponse is the empty origin-is-free response.
type ValidateOriginResponse struct{}

// GenerateQRCodeRequest is the request body for rendering a QR code.
type GenerateQRCodeRequest struct {
	Body struct {
		Shrink string `doc:"The content to encode, usually a full shrink URL" example:"https://shrinkify.app/Ab3xY9z0" json:"shrink"`
	}
}

// GenerateQRCodeResponse is the rendered QR code.
type GenerateQRCodeResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
