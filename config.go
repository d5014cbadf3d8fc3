package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config хранит пути и параметры по умолчанию, задаваемые через .env
// или переменные окружения. Флаги команд имеют приоритет над конфигом.
type Config struct {
	PublicKeyFile  string
	PrivateKeyFile string
	Passphrase     string
	MessageFile    string
	LogLevel       string
}

// LoadConfig загружает конфигурацию из .env файла и окружения.
// Отсутствие .env файла не является ошибкой: инструмент должен
// работать в любом каталоге.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("Файл .env не найден, используются только переменные окружения")
	}

	cfg := Config{
		PublicKeyFile:  os.Getenv("PGP_PUBLIC_KEY_FILE"),
		PrivateKeyFile: os.Getenv("PGP_PRIVATE_KEY_FILE"),
		Passphrase:     os.Getenv("PGP_PASSPHRASE"),
		MessageFile:    os.Getenv("PGP_MESSAGE_FILE"),
		LogLevel:       os.Getenv("PGP_LOG_LEVEL"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}
