package main

import "errors"

// Классификация ошибок PGP-операций. Конкретная причина
// дописывается через fmt.Errorf в месте возникновения,
// проверка класса — через errors.Is.
var (
	ErrKeyFormat     = errors.New("некорректный формат ключа")
	ErrMessageFormat = errors.New("некорректный формат сообщения")
	ErrEncryption    = errors.New("не удалось зашифровать сообщение")
	ErrDecryption    = errors.New("не удалось расшифровать сообщение")
	ErrWrongKey      = errors.New("ключ не подходит к этому сообщению")
	ErrPassphrase    = errors.New("неверная или отсутствующая парольная фраза")
)
