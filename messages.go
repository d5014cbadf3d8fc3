package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// LoadMessage читает armored PGP-сообщение из файла и проверяет
// тип armor-блока до передачи в расшифровку
func LoadMessage(path string) (string, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать файл сообщения: %w", err)
	}
	armored := string(bs)

	block, err := armor.Decode(strings.NewReader(armored))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMessageFormat, path, err)
	}
	if block.Type != messageBlockType {
		return "", fmt.Errorf("%w: %s содержит блок %q вместо %q", ErrMessageFormat, path, block.Type, messageBlockType)
	}

	log.Debugf("Загружено сообщение из %s (%d байт)", path, len(bs))
	return armored, nil
}

// SaveMessage записывает armored-сообщение в файл, доступный
// только владельцу
func SaveMessage(path, armored string) error {
	if err := os.WriteFile(path, []byte(armored), 0600); err != nil {
		return fmt.Errorf("не удалось записать файл сообщения: %w", err)
	}
	return nil
}

// GenerateMessageFileName возвращает уникальное имя для файла сообщения
func GenerateMessageFileName() string {
	return fmt.Sprintf("message-%s.asc", uuid.NewString())
}
