package ports

type SchedulerPort interface {
	ScheduleFromResponse(reqPath string, respBody []byte)
}
