package fx

import (
	"log"

	"Caixa/config"
	"Caixa/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		newConfig,
	),
	fx.Invoke(
		initLogger,
	),
)

func loadEnvFiles() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: não foi possível carregar .env do diretório atual: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Aviso: não foi possível carregar ../../.env: %v", err)
	}
}

func newConfig() (*config.Config, error) {
	loadEnvFiles()

	return config.Load()
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
