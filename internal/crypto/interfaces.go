package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer защищает refresh-токен на диске. Он ничего не знает о сети,
// базе данных или OAuth — его единственная задача: запечатать секрет
// локальным ключом и распечатать его обратно.
//
// Схема работы:
//
//	key  = HKDF-SHA256(sealKey)            (один раз при создании)
//	blob = nonce ‖ ChaCha20-Poly1305(key)  (Seal)
type Sealer interface {
	// Seal шифрует plaintext и возвращает base64-блоб (nonce ‖ ciphertext),
	// безопасный для хранения в локальной базе.
	Seal(plaintext string) (string, error)

	// Open расшифровывает блоб, созданный Seal. Возвращает ошибку, если
	// ключ изменился или данные повреждены.
	Open(blob string) (string, error)
}
