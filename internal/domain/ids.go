package domain

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// NewAddress returns a synthetic contract/wallet style address: 0x + 40 hex.
func NewAddress() string {
	a, b := uuid.New(), uuid.New()
	h := hex.EncodeToString(a[:]) + hex.EncodeToString(b[:])
	return "0x" + h[:40]
}

// NewTransferHash derives a synthetic 0x-prefixed Keccak-256 digest for a
// transfer. It is not a ledger hash and nothing verifies it.
func NewTransferHash(t TransferRecord) string {
	k := sha3.NewLegacyKeccak256()
	nonce := uuid.New()
	k.Write(nonce[:])
	k.Write([]byte(strings.Join([]string{
		t.ID, t.ItemID, t.Buyer, t.Seller,
		strconv.FormatFloat(t.Price, 'f', -1, 64),
	}, "|")))
	return "0x" + hex.EncodeToString(k.Sum(nil))
}

// IsAddress reports whether s looks like a value produced by NewAddress.
func IsAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}
