package get_available_starts

import (
	"fmt"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.VisitType.IsValid() {
		return fmt.Errorf("%w: unknown visit type %q", ErrInvalidInput, req.VisitType)
	}
	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}
	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize exceeds %d", ErrInvalidInput, domain.MaxPartySize)
	}
	return nil
}
