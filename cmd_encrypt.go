package main

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newEncryptCommand шифрует сообщение публичным ключом и записывает
// armored-результат в файл
func newEncryptCommand() *cobra.Command {
	var keyFile, outFile string

	cmd := &cobra.Command{
		Use:   "encrypt [сообщение]",
		Short: "Зашифровать сообщение публичным ключом PGP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyFile == "" {
				keyFile = cfg.PublicKeyFile
			}
			if keyFile == "" {
				return errors.New("не указан файл публичного ключа (--key или PGP_PUBLIC_KEY_FILE)")
			}

			plaintext, err := readPlaintext(cmd, args)
			if err != nil {
				return err
			}

			pubKey, err := LoadPublicKey(keyFile)
			if err != nil {
				return err
			}

			armored, err := EncryptWithPGP(plaintext, pubKey)
			if err != nil {
				return err
			}

			if outFile == "" {
				outFile = cfg.MessageFile
			}
			if outFile == "" {
				outFile = GenerateMessageFileName()
			}
			if err := SaveMessage(outFile, armored); err != nil {
				return err
			}

			log.Infof("Зашифрованное сообщение записано в %s", outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFile, "key", "", "файл публичного ключа (armored)")
	cmd.Flags().StringVar(&outFile, "out", "", "файл для зашифрованного сообщения")
	return cmd
}

// readPlaintext берёт сообщение из аргумента команды, а при его
// отсутствии (или аргументе "-") читает stdin
func readPlaintext(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	bs, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать сообщение из stdin: %w", err)
	}
	if len(bs) == 0 {
		return "", errors.New("пустое сообщение: передайте текст аргументом или через stdin")
	}
	return string(bs), nil
}
