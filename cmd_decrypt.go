package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// newDecryptCommand расшифровывает armored-сообщение приватным ключом
// и печатает исходный текст
func newDecryptCommand() *cobra.Command {
	var keyFile, inFile, passphrase string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Расшифровать armored PGP-сообщение приватным ключом",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyFile == "" {
				keyFile = cfg.PrivateKeyFile
			}
			if keyFile == "" {
				return errors.New("не указан файл приватного ключа (--key или PGP_PRIVATE_KEY_FILE)")
			}
			if inFile == "" {
				inFile = cfg.MessageFile
			}
			if inFile == "" {
				return errors.New("не указан файл сообщения (--in или PGP_MESSAGE_FILE)")
			}
			if passphrase == "" {
				passphrase = cfg.Passphrase
			}

			privKey, err := LoadPrivateKey(keyFile, passphrase)
			if err != nil {
				return err
			}

			ciphertext, err := LoadMessage(inFile)
			if err != nil {
				return err
			}

			plaintext, err := DecryptWithPGP(ciphertext, privKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFile, "key", "", "файл приватного ключа (armored)")
	cmd.Flags().StringVar(&inFile, "in", "", "файл с armored-сообщением")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "парольная фраза приватного ключа")
	return cmd
}
