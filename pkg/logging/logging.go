package logging

import (
	"go.uber.org/zap"
)

// New builds the process logger. Production config in prod, human-readable
// development config everywhere else.
func New(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
