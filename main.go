package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg Config

func main() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	cfg = LoadConfig()
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Неизвестный уровень логирования %q, используется info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	root := &cobra.Command{
		Use:           "pgpmessages",
		Short:         "Шифрование и расшифровка коротких сообщений ключами PGP из файлов",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEncryptCommand())
	root.AddCommand(newDecryptCommand())
	root.AddCommand(newInspectCommand())

	if err := root.Execute(); err != nil {
		log.Errorf("Операция завершилась с ошибкой: %v", err)
		os.Exit(1)
	}
}
