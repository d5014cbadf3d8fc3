package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	pgperrors "github.com/ProtonMail/go-crypto/openpgp/errors"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

const messageBlockType = "PGP MESSAGE"

// Сессионный шифр AES-128, как в исходных файлах сообщений
var pgpConfig = &packet.Config{
	DefaultCipher: packet.CipherAES128,
}

// EncryptWithPGP шифрует текст публичным ключом PGP и возвращает
// armored-сообщение
func EncryptWithPGP(plaintext string, pubKey openpgp.EntityList) (string, error) {
	if len(pubKey) == 0 {
		return "", fmt.Errorf("%w: пустая связка ключей", ErrEncryption)
	}
	for _, entity := range pubKey {
		if _, ok := entity.EncryptionKey(time.Now()); !ok {
			return "", fmt.Errorf("%w: ключ %s не имеет подключа для шифрования", ErrEncryption, entity.PrimaryKey.KeyIdString())
		}
	}

	var buf bytes.Buffer
	armorWriter, err := armor.Encode(&buf, messageBlockType, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	plainWriter, err := openpgp.Encrypt(armorWriter, pubKey, nil, nil, pgpConfig)
	if err != nil {
		armorWriter.Close()
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	if _, err = io.WriteString(plainWriter, plaintext); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	// Порядок закрытия важен: сперва шифрующий поток, затем armor
	if err = plainWriter.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	if err = armorWriter.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	// armor.Encode в x/crypto не завершает блок переводом строки
	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

// DecryptWithPGP расшифровывает armored PGP-сообщение приватным ключом
func DecryptWithPGP(ciphertext string, privKey openpgp.EntityList) (string, error) {
	block, err := armor.Decode(strings.NewReader(ciphertext))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMessageFormat, err)
	}
	if block.Type != messageBlockType {
		return "", fmt.Errorf("%w: ожидался блок %q, получен %q", ErrMessageFormat, messageBlockType, block.Type)
	}

	// Зашифрованный приватный ключ до ReadMessage не доходит:
	// библиотека не отличает его от неподходящего ключа
	if hasLockedKeys(privKey) {
		return "", fmt.Errorf("%w: приватный ключ не был разблокирован", ErrPassphrase)
	}

	md, err := openpgp.ReadMessage(block.Body, privKey, nil, pgpConfig)
	if err != nil {
		return "", classifyDecryptError(err)
	}
	decryptedBytes, err := io.ReadAll(md.UnverifiedBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return string(decryptedBytes), nil
}

func hasLockedKeys(keyring openpgp.EntityList) bool {
	for _, entity := range keyring {
		if entity.PrivateKey != nil && entity.PrivateKey.Encrypted {
			return true
		}
		for _, subkey := range entity.Subkeys {
			if subkey.PrivateKey != nil && subkey.PrivateKey.Encrypted {
				return true
			}
		}
	}
	return false
}

func classifyDecryptError(err error) error {
	if errors.Is(err, pgperrors.ErrKeyIncorrect) {
		return fmt.Errorf("%w: %v", ErrWrongKey, err)
	}
	var structural pgperrors.StructuralError
	if errors.As(err, &structural) {
		return fmt.Errorf("%w: %v", ErrMessageFormat, err)
	}
	var unsupported pgperrors.UnsupportedError
	if errors.As(err, &unsupported) {
		return fmt.Errorf("%w: %v", ErrMessageFormat, err)
	}
	return fmt.Errorf("%w: %v", ErrDecryption, err)
}
