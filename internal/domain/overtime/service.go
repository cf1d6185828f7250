package overtime

import "context"

type OvertimeService interface {
	SubmitOvertime(ctx context.Context, req SubmitOvertimeRequest) (OvertimeResponse, error)
	ListMyOvertime(ctx context.Context) ([]OvertimeResponse, error)
}
