package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Sealer produces opaque slot tokens that round-trip a table slot
// (bar, table, date, clock) through clients without exposing internal
// identifiers. Tokens are AES-GCM sealed with a key from configuration.
type Sealer struct {
	aead cipher.AEAD
}

func New(base64Key string) (*Sealer, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("slot token key is not valid base64: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("slot token key rejected: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Sealer{aead: aead}, nil
}

// Slot identifies one holdable table slot.
type Slot struct {
	BarID   string
	TableID string
	Date    string
	Clock   string
}

func (s *Sealer) SealSlot(slot Slot) (string, error) {
	plaintext := []byte(slot.BarID + ":" + slot.TableID + ":" + slot.Date + ":" + slot.Clock)

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := s.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

func (s *Sealer) OpenSlot(token string) (Slot, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Slot{}, fmt.Errorf("malformed slot token")
	}

	nonceSize := s.aead.NonceSize()
	if len(data) < nonceSize {
		return Slot{}, fmt.Errorf("malformed slot token")
	}

	pt, err := s.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return Slot{}, fmt.Errorf("slot token failed authentication")
	}

	parts := strings.SplitN(string(pt), ":", 4)
	if len(parts) != 4 {
		return Slot{}, fmt.Errorf("invalid slot token format")
	}

	return Slot{BarID: parts[0], TableID: parts[1], Date: parts[2], Clock: parts[3]}, nil
}
