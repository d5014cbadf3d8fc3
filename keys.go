package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	log "github.com/sirupsen/logrus"
)

// KeyInfo описывает один ключ из связки для вывода пользователю
type KeyInfo struct {
	Identity    string
	KeyID       string
	Fingerprint string
	CreatedAt   time.Time
	CanEncrypt  bool
	IsPrivate   bool
}

// loadKeyRing читает файл ключа и разбирает его как armored-связку,
// а при неудаче — как бинарную
func loadKeyRing(path string) (openpgp.EntityList, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл ключа: %w", err)
	}

	keyring, armorErr := openpgp.ReadArmoredKeyRing(bytes.NewReader(bs))
	if armorErr == nil {
		return keyring, nil
	}
	keyring, binErr := openpgp.ReadKeyRing(bytes.NewReader(bs))
	if binErr == nil {
		return keyring, nil
	}
	return nil, fmt.Errorf("%w: %s: %v", ErrKeyFormat, path, armorErr)
}

// LoadPublicKey загружает публичный PGP-ключ из файла
func LoadPublicKey(path string) (openpgp.EntityList, error) {
	keyring, err := loadKeyRing(path)
	if err != nil {
		return nil, err
	}
	if len(keyring) == 0 {
		return nil, fmt.Errorf("%w: файл %s не содержит ключей", ErrKeyFormat, path)
	}
	log.Debugf("Загружен публичный ключ %s из %s", keyring[0].PrimaryKey.KeyIdString(), path)
	return keyring, nil
}

// LoadPrivateKey загружает приватный PGP-ключ из файла и снимает
// защиту парольной фразой с первичного ключа и всех подключей
func LoadPrivateKey(path, passphrase string) (openpgp.EntityList, error) {
	keyring, err := loadKeyRing(path)
	if err != nil {
		return nil, err
	}

	hasPrivate := false
	for _, entity := range keyring {
		if entity.PrivateKey != nil {
			hasPrivate = true
			break
		}
	}
	if !hasPrivate {
		return nil, fmt.Errorf("%w: файл %s не содержит закрытого ключа", ErrKeyFormat, path)
	}

	for _, entity := range keyring {
		if entity.PrivateKey != nil && entity.PrivateKey.Encrypted {
			if passphrase == "" {
				return nil, fmt.Errorf("%w: ключ %s защищён парольной фразой", ErrPassphrase, entity.PrimaryKey.KeyIdString())
			}
			if err := entity.PrivateKey.Decrypt([]byte(passphrase)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPassphrase, err)
			}
		}
		for _, subkey := range entity.Subkeys {
			if subkey.PrivateKey != nil && subkey.PrivateKey.Encrypted {
				if passphrase == "" {
					return nil, fmt.Errorf("%w: подключ защищён парольной фразой", ErrPassphrase)
				}
				if err := subkey.PrivateKey.Decrypt([]byte(passphrase)); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrPassphrase, err)
				}
			}
		}
	}

	log.Debugf("Загружен приватный ключ %s из %s", keyring[0].PrimaryKey.KeyIdString(), path)
	return keyring, nil
}

// DescribeKeys собирает сведения о каждом ключе связки
func DescribeKeys(keyring openpgp.EntityList) []KeyInfo {
	infos := make([]KeyInfo, 0, len(keyring))
	for _, entity := range keyring {
		info := KeyInfo{
			KeyID:       entity.PrimaryKey.KeyIdString(),
			Fingerprint: fmt.Sprintf("%X", entity.PrimaryKey.Fingerprint),
			CreatedAt:   entity.PrimaryKey.CreationTime,
			IsPrivate:   entity.PrivateKey != nil,
		}
		if identity := entity.PrimaryIdentity(); identity != nil {
			info.Identity = identity.Name
		}
		_, info.CanEncrypt = entity.EncryptionKey(time.Now())
		infos = append(infos, info)
	}
	return infos
}
