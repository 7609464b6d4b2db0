package log

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(cfg ZapConfig) *zapLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != ModeProduction {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding == EncodingConsole {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.DPanicLevel)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return newWithCore(core, opts...)
}

func newWithCore(core zapcore.Core, opts ...zap.Option) *zapLogger {
	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// with attaches request scoped fields found in ctx.
func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	s := l.sugar
	if id := RequestIDFrom(ctx); id != "" {
		s = s.With(fieldRequestID, id)
	}
	if uid := userIDFrom(ctx); uid != "" {
		s = s.With(fieldUserID, uid)
	}
	return s
}

// Key-value pairs after the message are logged as structured fields,
// e.g. Info(ctx, "LLM generation successful", "provider", name).
func (l *zapLogger) Debug(ctx context.Context, arg ...any) { logKV(l.with(ctx).Debugw, arg) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)  { logKV(l.with(ctx).Infow, arg) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)  { logKV(l.with(ctx).Warnw, arg) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { logKV(l.with(ctx).Errorw, arg) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	logKV(l.with(ctx).DPanicw, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { logKV(l.with(ctx).Panicw, arg) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { logKV(l.with(ctx).Fatalw, arg) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// logKV treats a leading string as the message and the rest as key-value pairs.
// Anything else is joined zap.Sugar style.
func logKV(fn func(msg string, kv ...any), arg []any) {
	if len(arg) == 0 {
		fn("")
		return
	}
	msg, ok := arg[0].(string)
	if !ok || len(arg[1:])%2 != 0 {
		fn(fmt.Sprint(arg...))
		return
	}
	fn(msg, arg[1:]...)
}
