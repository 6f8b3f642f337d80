package state

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CreateZap returns the standard sugared logger used across the list
func CreateZap() *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)

	return zap.New(core, zap.AddCaller()).Sugar()
}
