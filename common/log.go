package common

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var once sync.Once
var logger *zap.Logger = nil

// ZkLoggerAdapter routes go-zookeeper's internal logging through zap.
type ZkLoggerAdapter struct{}

func (_ *ZkLoggerAdapter) Printf(fmt string, args ...interface{}) {
	SugaredLog().Infof("[ZooKeeper] "+fmt, args...)
}

func emptyTimeEncoder(_ time.Time, _ zapcore.PrimitiveArrayEncoder) {
	// do nothing
}

func Log() *zap.Logger {
	once.Do(func() {
		loggerConfig := zap.NewDevelopmentConfig()
		loggerConfig.EncoderConfig.EncodeTime = emptyTimeEncoder
		loggerConfig.EncoderConfig.EncodeCaller = nil
		loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l, err := loggerConfig.Build()
		if err != nil {
			panic(err)
		}
		logger = l
	})
	return logger
}

func SugaredLog() *zap.SugaredLogger {
	return Log().Sugar()
}
