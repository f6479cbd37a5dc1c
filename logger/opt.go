package logger

// A LoggerOptFn is a functional option configuring a CairnLogger when constructing a new one.
type LoggerOptFn func(*CairnLogger)

// WithEnv sets the environment CairnLogger is operating in.
func WithEnv(env string) func(*CairnLogger) {
	return func(l *CairnLogger) {
		l.env = env
	}
}

// WithLevel sets the log level CairnLogger uses.
func WithLevel(level LogLevel) func(*CairnLogger) {
	return func(l *CairnLogger) {
		l.ll = level
	}
}
