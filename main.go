package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lost-woods/csprng/src/csprng"
	"github.com/lost-woods/csprng/src/server"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	port := os.Getenv("PORT")
	if port == "" {
		port = "777"
	}

	var source io.Reader
	var health *csprng.Health

	if os.Getenv("SERIAL_DEVICE_NAME") != "" {
		s, h, err := csprng.NewSerialSource()
		if err != nil {
			log.Fatalf("serial RNG unavailable: %v", err)
		}
		source, health = s, h
		log.Infow("using serial hardware RNG", "device", os.Getenv("SERIAL_DEVICE_NAME"))
	} else {
		source = csprng.SecureSource()
		health = csprng.NewHealth()
		health.Set(true, "")
		log.Info("using host secure random source")
	}

	srv := server.New(port, csprng.NewLockedReader(source), health, log)
	srv.RunOrDie()
}
