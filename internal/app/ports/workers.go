package ports

type PoolPort interface {
	Submit(task func()) error
	Stop()
}
