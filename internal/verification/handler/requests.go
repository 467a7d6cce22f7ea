package handler

import (
	"encoding/base64"
	"fmt"

	"kycgate/internal/extraction"
	"kycgate/internal/verification"
	"kycgate/pkg/domain"
)

// VerifyRequest is the wire shape for POST /verify.
type VerifyRequest struct {
	Purpose string          `json:"purpose"`
	Uploads []UploadPayload `json:"uploads"`
}

// UploadPayload carries one file as base64 content.
type UploadPayload struct {
	Filename      string `json:"filename"`
	ContentBase64 string `json:"content_base64"`
}

// ToDomain validates the request and builds the service input. Undecodable
// content is not fatal to the request: it becomes an empty upload which the
// pipeline degrades to UNREADABLE, consistent with any other unreadable file.
func (r VerifyRequest) ToDomain() (verification.Request, error) {
	purpose, err := domain.ParsePurpose(r.Purpose)
	if err != nil {
		return verification.Request{}, err
	}
	if len(r.Uploads) == 0 {
		return verification.Request{}, fmt.Errorf("at least one upload is required")
	}

	uploads := make([]extraction.Upload, 0, len(r.Uploads))
	for _, u := range r.Uploads {
		content, decodeErr := base64.StdEncoding.DecodeString(u.ContentBase64)
		if decodeErr != nil {
			content = nil
		}
		uploads = append(uploads, extraction.Upload{
			Filename: u.Filename,
			Content:  content,
		})
	}

	return verification.Request{Purpose: purpose, Uploads: uploads}, nil
}
