package request

import (
	"github.com/google/uuid"
)

type BundleQuotesRequest struct {
	RequestIDs []uuid.UUID `json:"request_ids" binding:"required,min=1"`
}
