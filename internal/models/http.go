// Package models defines the domain records and the request/response
// structures exchanged with clients of the link service.
package models

// CreateLinkRequest is the body of a link creation call.
type CreateLinkRequest struct {
	// Title is a human label shown on the dashboard.
	Title string `json:"title"`

	// OriginalURL is the destination of the short link.
	OriginalURL string `json:"original_url"`

	// CustomAlias is an optional caller-chosen code.
	CustomAlias string `json:"custom_alias,omitempty"`
}

// LinkResponse is the representation of a link returned to its owner.
type LinkResponse struct {
	Link

	// ShortURL is the resolvable URL built from the canonical code.
	ShortURL string `json:"short_url"`

	// QRImageRef is the reference handed to the QR rendering collaborator.
	QRImageRef string `json:"qr_image_ref"`
}

// ErrorResponse carries a user-correctable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
