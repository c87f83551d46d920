package logger

// NopLogger discards everything; used in tests.
type NopLogger struct{}

func NewNop() *NopLogger {
	return &NopLogger{}
}

func (NopLogger) SetLogLevel(string)               {}
func (NopLogger) GetLogLevel() string              { return "info" }
func (NopLogger) Trace(string, ...any)             {}
func (NopLogger) Debug(string, ...any)             {}
func (NopLogger) Info(string, ...any)              {}
func (NopLogger) Warn(string, ...any)              {}
func (NopLogger) Error(string, error, ...any)      {}
func (NopLogger) Fatal(msg string, _ error, _ ...any) {
	panic("fatal: " + msg)
}
