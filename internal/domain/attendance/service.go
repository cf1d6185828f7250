package attendance

import "context"

type AttendanceService interface {
	SubmitAttendance(ctx context.Context, req SubmitAttendanceRequest) (AttendanceResponse, error)
	ListMyAttendance(ctx context.Context) ([]AttendanceResponse, error)
}
