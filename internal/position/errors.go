package position

import (
	"errors"
	"fmt"
)

// ErrorKind - категория ошибки датчика, передается наверх как состояние
type ErrorKind string

const (
	Unsupported      ErrorKind = "UNSUPPORTED"
	PermissionDenied ErrorKind = "PERMISSION_DENIED"
	Timeout          ErrorKind = "TIMEOUT"
	SignalLost       ErrorKind = "SIGNAL_LOST"
)

var (
	ErrNotTracking = errors.New("tracking is not active")
	ErrInvalidFix  = errors.New("invalid position fix")
	ErrStaleFix    = errors.New("cached position fix rejected")
	ErrSensorBusy  = errors.New("sensor buffer is full")
)

// SensorError - ошибка датчика позиционирования
type SensorError struct {
	Kind ErrorKind
	Err  error
}

// NewSensorError создает ошибку датчика заданного типа
func NewSensorError(kind ErrorKind, err error) *SensorError {
	return &SensorError{Kind: kind, Err: err}
}

func (e *SensorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sensor error %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("sensor error %s", e.Kind)
}

func (e *SensorError) Unwrap() error {
	return e.Err
}

// KindOf возвращает категорию ошибки. Любая неизвестная ошибка считается SIGNAL_LOST.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var se *SensorError
	if errors.As(err, &se) {
		return se.Kind
	}
	return SignalLost
}

// ParseErrorKind разбирает категорию ошибки из строки
func ParseErrorKind(s string) (ErrorKind, bool) {
	switch k := ErrorKind(s); k {
	case Unsupported, PermissionDenied, Timeout, SignalLost:
		return k, true
	}
	return "", false
}
