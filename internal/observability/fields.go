package observability

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field.
type Field = zap.Field

// Field helpers keep call sites free of a direct zap import.

func String(key, value string) zap.Field { return zap.String(key, value) }

func Int(key string, value int) zap.Field { return zap.Int(key, value) }

func Bool(key string, value bool) zap.Field { return zap.Bool(key, value) }

func Duration(key string, value time.Duration) zap.Field { return zap.Duration(key, value) }

func Error(err error) zap.Field { return zap.Error(err) }
