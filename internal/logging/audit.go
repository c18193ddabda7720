package logging

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RowanDark/cipherpad/internal/cipher"
)

type EventType string

const (
	EventTransform EventType = "transform"
	EventRecipe    EventType = "recipe"
)

type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeError Outcome = "error"
)

// AuditEvent describes one transformation. It carries sizes, never the text
// or the key.
type AuditEvent struct {
	RequestID string
	Timestamp time.Time
	Component string
	EventType EventType
	Cipher    cipher.Kind
	Recipe    string
	Direction cipher.Direction
	InputLen  int
	OutputLen int
	Outcome   Outcome
	Reason    string
}

// TransformEvent builds the audit record for a finished transformation.
// input is only measured.
func TransformEvent(input string, res cipher.Result) AuditEvent {
	event := AuditEvent{
		EventType: EventTransform,
		Cipher:    res.Kind,
		Direction: res.Direction,
		InputLen:  utf8.RuneCountInString(input),
		OutputLen: utf8.RuneCountInString(res.Output),
		Outcome:   OutcomeOK,
	}
	if res.Err != nil {
		event.Outcome = OutcomeError
		event.Reason = res.Err.Error()
	}
	return event
}

type AuditLogger struct {
	component string
	logger    *zap.Logger
}

// NewAuditLogger writes audit events through logger. A nil logger discards
// everything.
func NewAuditLogger(component string, logger *zap.Logger) *AuditLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogger{
		component: component,
		logger:    logger.Named("audit"),
	}
}

// Emit records event. Missing request id, timestamp and component are
// filled in. Successful events log at info, failures at warn.
func (l *AuditLogger) Emit(event AuditEvent) error {
	if l == nil {
		return errors.New("nil audit logger")
	}
	if l.logger == nil {
		return errors.New("nil audit logger core")
	}
	if event.RequestID == "" {
		event.RequestID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	} else {
		event.Timestamp = event.Timestamp.UTC()
	}
	if event.Component == "" {
		event.Component = l.component
	}
	if event.Outcome == "" {
		event.Outcome = OutcomeOK
	}

	fields := []zap.Field{
		zap.String("request_id", event.RequestID),
		zap.Time("timestamp", event.Timestamp),
		zap.String("component", event.Component),
		zap.String("event_type", string(event.EventType)),
		zap.String("cipher", string(event.Cipher)),
		zap.String("direction", string(event.Direction)),
		zap.Int("input_len", event.InputLen),
		zap.Int("output_len", event.OutputLen),
		zap.String("outcome", string(event.Outcome)),
	}
	if event.Recipe != "" {
		fields = append(fields, zap.String("recipe", event.Recipe))
	}
	if event.Reason != "" {
		fields = append(fields, zap.String("reason", event.Reason))
	}

	if event.Outcome == OutcomeError {
		l.logger.Warn("transform failed", fields...)
	} else {
		l.logger.Info("transform", fields...)
	}
	return nil
}

// WithComponent returns a logger sharing the same core under another
// component name.
func (l *AuditLogger) WithComponent(component string) *AuditLogger {
	if l == nil || l.logger == nil {
		return nil
	}
	return &AuditLogger{
		component: component,
		logger:    l.logger,
	}
}
