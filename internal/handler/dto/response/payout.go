package response

import "washclub/internal/usecase/queries"

type PayoutListResponse struct {
	Payouts []*queries.PayoutListItem `json:"payouts"`
}
