package validate

import (
	"fmt"

	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/dto"
)

// CommunityOperations validates a membership batch before any item is
// processed. A failure here fails the whole call; per-item failures later do
// not.
func CommunityOperations(operations []dto.CommunityOperation, maxOperations int) *apierrors.Error {
	if len(operations) == 0 {
		return apierrors.NewBadRequestError("communities cannot be empty")
	}
	if len(operations) > maxOperations {
		return apierrors.NewBadRequestError(
			fmt.Sprintf("cannot process more than %d communities per request; got %d",
				maxOperations, len(operations)))
	}
	for i, operation := range operations {
		if len(operation.ID) == 0 {
			return apierrors.NewBadRequestError(fmt.Sprintf("community id at index %d cannot be empty", i))
		}
	}
	return nil
}
