package utils

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID партии (16 символов hex)
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// NewRand создает детерминированный генератор.
// Один и тот же seed (обычно player_seed от движка) дает одну и ту же партию,
// поэтому запись можно воспроизвести.
func NewRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}
