package log

import (
	"go.uber.org/zap"
)

// Logger is no-op until one of the Init functions is called.
var Logger = zap.NewNop()

func InitProductionLogger() {
	Logger, _ = zap.NewProduction()
}

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}

// Init picks the logger by mode name, production unless "development".
func Init(mode string) {
	if mode == "development" {
		InitDevelopmentLogger()
		return
	}
	InitProductionLogger()
}
