package logger

type Full interface {
	Lite

	Debugw(msg string, args ...any)
	Fatalw(msg string, err any, args ...any)
	Sync()
}

type Lite interface {
	Infow(msg string, args ...any)
	Warnw(msg string, args ...any)
	Errorw(msg string, err any, args ...any)
}

type WarnAndError interface {
	Warnw(msg string, args ...any)
	Errorw(msg string, err any, args ...any)
}
