package request

import (
	"washclub/internal/domain/wash"
)

type IssueCodeRequest struct {
	WashType string `json:"wash_type" binding:"required,oneof=in_and_out outside_only"`
}

func (r *IssueCodeRequest) ToDomain() (wash.Type, error) {
	return wash.NewType(r.WashType)
}
