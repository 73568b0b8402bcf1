package logger

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// Keys the auth and request-id middleware store on the gin context. A
// *gin.Context passed as context.Context exposes them through Value.
const (
	KeyEmail          = "email"
	KeyAdminID        = "admin_id"
	KeyOrganizationID = "organization_id"
	KeyRequestID      = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Configure sets the global level and formatter. Production logs are JSON.
func Configure(level string, production bool) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	if production {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the admin, organization and request
// id found in ctx
func WithContext(ctx context.Context) *Logger {
	l := New()
	if ctx == nil {
		return l
	}

	admin := "anonymous"
	if email, ok := ctx.Value(KeyEmail).(string); ok && email != "" {
		admin = email
	}
	fields := logrus.Fields{"admin": admin}
	if orgID := ctx.Value(KeyOrganizationID); orgID != nil {
		fields["organization_id"] = orgID
	}
	if requestID, ok := ctx.Value(KeyRequestID).(string); ok && requestID != "" {
		fields["request_id"] = requestID
	}
	l.Entry = l.Entry.WithFields(fields)
	return l
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError attaches err under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
