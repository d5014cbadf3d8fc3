package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"github.com/stretchr/testify/require"
)

// Короткий RSA только для тестов, чтобы генерация ключей не тормозила прогон
var testKeyConfig = &packet.Config{RSABits: 1024}

func newTestEntity(t *testing.T, name, email string) *openpgp.Entity {
	t.Helper()
	entity, err := openpgp.NewEntity(name, "", email, testKeyConfig)
	require.NoError(t, err)
	return entity
}

func writeArmoredFile(t *testing.T, path, blockType string, serialize func(io.Writer) error) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	armorWriter, err := armor.Encode(f, blockType, nil)
	require.NoError(t, err)
	require.NoError(t, serialize(armorWriter))
	require.NoError(t, armorWriter.Close())
}

// writeTestKeyPair создаёт пару ключей и записывает её в pub.asc/sec.asc
func writeTestKeyPair(t *testing.T, dir string) (pubPath, privPath string, entity *openpgp.Entity) {
	t.Helper()
	entity = newTestEntity(t, "Person Two", "person.two@example.com")

	privPath = filepath.Join(dir, "sec.asc")
	writeArmoredFile(t, privPath, openpgp.PrivateKeyType, func(w io.Writer) error {
		return entity.SerializePrivate(w, nil)
	})

	pubPath = filepath.Join(dir, "pub.asc")
	writeArmoredFile(t, pubPath, openpgp.PublicKeyType, entity.Serialize)
	return pubPath, privPath, entity
}

// lockTestEntity шифрует ключевой материал сущности парольной фразой
func lockTestEntity(t *testing.T, entity *openpgp.Entity, passphrase string) {
	t.Helper()
	require.NoError(t, entity.PrivateKey.Encrypt([]byte(passphrase)))
	for i := range entity.Subkeys {
		require.NoError(t, entity.Subkeys[i].PrivateKey.Encrypt([]byte(passphrase)))
	}
}

// writeLockedKeyFile записывает приватный ключ, защищённый парольной
// фразой. SerializePrivate переподписывает сущность и потому не работает
// с зашифрованным ключом; самоподписи уже посчитаны при создании
// сущности, так что переподписывание и не нужно.
func writeLockedKeyFile(t *testing.T, dir, passphrase string) string {
	t.Helper()
	entity := newTestEntity(t, "Person One", "person.one@example.com")
	lockTestEntity(t, entity, passphrase)

	path := filepath.Join(dir, "locked.asc")
	writeArmoredFile(t, path, openpgp.PrivateKeyType, func(w io.Writer) error {
		return entity.SerializePrivateWithoutSigning(w, nil)
	})
	return path
}
