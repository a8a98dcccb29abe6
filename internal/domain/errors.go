package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrModelNotFound indicates the public model id is not in the catalog.
	ErrModelNotFound = errors.New("model not found")

	// ErrImageNotSupported indicates an image was sent to a text-only model.
	ErrImageNotSupported = errors.New("image input not supported")

	// ErrUnknownProvider indicates no adapter exists for a provider tag.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrProviderAuth indicates a missing or rejected upstream credential.
	ErrProviderAuth = errors.New("provider credential missing or invalid")

	// ErrProviderUnavailable indicates the upstream could not be reached or refused the request.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMalformedEvent marks an upstream event that could not be decoded.
	ErrMalformedEvent = errors.New("malformed upstream event")

	// ErrClientDisconnected is the normal cancellation path of a stream.
	ErrClientDisconnected = errors.New("client disconnected")

	// ErrPersistence indicates the session store failed to save a conversation.
	ErrPersistence = errors.New("persistence failed")

	// ErrInvalidImage indicates the image payload is not valid base64 or data-URI.
	ErrInvalidImage = errors.New("invalid image payload")

	// ErrChatNotFound indicates no chat exists for a session id.
	ErrChatNotFound = errors.New("chat session not found")
)

// ImageNotSupportedError reports the model that rejected an image.
type ImageNotSupportedError struct {
	Model string
}

func (e *ImageNotSupportedError) Error() string {
	return fmt.Sprintf("model %s does not support images", e.Model)
}

func (e *ImageNotSupportedError) Unwrap() error {
	return ErrImageNotSupported
}

// IsValidationError reports whether err should be answered before any stream starts
// with a client error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrModelNotFound) ||
		errors.Is(err, ErrImageNotSupported) ||
		errors.Is(err, ErrInvalidImage)
}
