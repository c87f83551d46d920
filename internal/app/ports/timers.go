package ports

import "time"

type TimersPort interface {
	Add(id string, interval time.Duration, task func())
	Remove(id string)
	StopAll()
}
