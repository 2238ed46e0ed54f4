package logger

// Instance is a logging backend. The package-level functions fan out to
// every configured backend, so a process can log to the console and to a
// file collector at once.
type Instance interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

var backends []Instance

// Init configures the global logger backends. Call it once at startup before
// any logging; logging without Init is a silent no-op, which keeps library
// code usable from tests.
func Init(instances ...Instance) {
	backends = instances
}

func dispatch(log func(Instance, string, []any), message string, keyvals []any) {
	for _, backend := range backends {
		log(backend, message, keyvals)
	}
}

// Debug writes a message at DEBUG level to all configured backends.
func Debug(message string, keyvals ...any) {
	dispatch(func(i Instance, m string, kv []any) { i.Debug(m, kv...) }, message, keyvals)
}

// Info writes a message at INFO level to all configured backends.
func Info(message string, keyvals ...any) {
	dispatch(func(i Instance, m string, kv []any) { i.Info(m, kv...) }, message, keyvals)
}

// Warn writes a message at WARN level to all configured backends.
func Warn(message string, keyvals ...any) {
	dispatch(func(i Instance, m string, kv []any) { i.Warn(m, kv...) }, message, keyvals)
}

// Error writes a message at ERROR level to all configured backends.
func Error(message string, keyvals ...any) {
	dispatch(func(i Instance, m string, kv []any) { i.Error(m, kv...) }, message, keyvals)
}

// Fatal writes a message at FATAL level and terminates the program.
func Fatal(message string, keyvals ...any) {
	dispatch(func(i Instance, m string, kv []any) { i.Fatal(m, kv...) }, message, keyvals)
}
