package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var fallbackSeq atomic.Uint64

// NewID returns a random UUID string. When the random source fails it falls
// back to a time+counter composite. Collisions with existing ids are not checked.
var NewID = func() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return fallbackID(time.Now())
}

func fallbackID(now time.Time) string {
	var buf [6]byte
	suffix := ""
	if _, err := rand.Read(buf[:]); err == nil {
		suffix = hex.EncodeToString(buf[:])
	}
	return fmt.Sprintf("id_%s%x_%d", suffix, fallbackSeq.Add(1), now.UnixMilli())
}
