package composables

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/hiqsoft/routecore/pkg/constants"
)

var (
	ErrNoUserID = errors.New("no user id found in context")
)

// UseLogger returns the request-scoped logger from the context. Falls back to
// a bare entry so background callers can still log.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logger.(*logrus.Entry)
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// WithUserID stores the authenticated user's id, set by the auth middleware
// after token verification.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, constants.UserIDKey, id)
}

// UseUserID returns the acting user's id for audit stamping.
func UseUserID(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(constants.UserIDKey).(int64)
	if !ok {
		return 0, ErrNoUserID
	}
	return id, nil
}
