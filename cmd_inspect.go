package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// newInspectCommand печатает сведения о ключах в файле: кому
// принадлежит ключ и годится ли он для шифрования
func newInspectCommand() *cobra.Command {
	var keyFile string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Показать сведения о ключах в файле",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyFile == "" {
				keyFile = cfg.PrivateKeyFile
			}
			if keyFile == "" {
				keyFile = cfg.PublicKeyFile
			}
			if keyFile == "" {
				return errors.New("не указан файл ключа (--key, PGP_PRIVATE_KEY_FILE или PGP_PUBLIC_KEY_FILE)")
			}

			keyring, err := loadKeyRing(keyFile)
			if err != nil {
				return err
			}
			if len(keyring) == 0 {
				return fmt.Errorf("%w: файл %s не содержит ключей", ErrKeyFormat, keyFile)
			}

			out := cmd.OutOrStdout()
			for _, info := range DescribeKeys(keyring) {
				fmt.Fprintf(out, "Владелец:   %s\n", info.Identity)
				fmt.Fprintf(out, "Ключ:       %s\n", info.KeyID)
				fmt.Fprintf(out, "Отпечаток:  %s\n", info.Fingerprint)
				fmt.Fprintf(out, "Создан:     %s\n", info.CreatedAt.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "Приватный:  %t\n", info.IsPrivate)
				fmt.Fprintf(out, "Шифрование: %t\n", info.CanEncrypt)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFile, "key", "", "файл ключа (armored или бинарный)")
	return cmd
}
