package mongo

import "log/slog"

// ConnectOption configures connection setup.
type ConnectOption func(*connectOptions)

type connectOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger that reports failed connection attempts.
// If not set, slog.Default() is used.
func WithLogger(l *slog.Logger) ConnectOption {
	return func(o *connectOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func newConnectOptions(opts []ConnectOption) connectOptions {
	o := connectOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
