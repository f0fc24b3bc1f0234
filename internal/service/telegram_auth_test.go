package service

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"
)

// buildInitData builds a valid init_data string for tests using the same
// algorithm as validateInitData.
func buildInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()
	var parts []string
	for k, v := range fields {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	dataString := strings.Join(parts, "\n")

	secret := sha256.Sum256([]byte(botToken))
	h := hmacNew(secret[:], []byte(dataString))
	hash := hex.EncodeToString(h)

	// assemble query: include original fields and hash
	vals := url.Values{}
	for k, v := range fields {
		vals.Add(k, v)
	}
	vals.Add("hash", hash)
	return vals.Encode()
}

// hmacNew is a small helper duplicating the HMAC-SHA256 used in production code.
func hmacNew(key, data []byte) []byte {
	h := sha256.New()
	// HMAC(K, m) = H((K^opad) || H((K^ipad)||m))
	blockSize := 64
	if len(key) > blockSize {
		tmp := sha256.Sum256(key)
		key = tmp[:]
	}
	if len(key) < blockSize {
		pad := make([]byte, blockSize-len(key))
		key = append(key, pad...)
	}
	ipad := make([]byte, blockSize)
	opad := make([]byte, blockSize)
	for i := 0; i < blockSize; i++ {
		ipad[i] = key[i] ^ 0x36
		opad[i] = key[i] ^ 0x5c
	}
	h.Reset()
	h.Write(ipad)
	h.Write(data)
	inner := h.Sum(nil)

	h2 := sha256.New()
	h2.Write(opad)
	h2.Write(inner)
	return h2.Sum(nil)
}

func TestParseInitData_Valid(t *testing.T) {
	botToken := "test-bot-token"
	fields := map[string]string{
		"auth_date":   strconv.FormatInt(time.Now().Unix(), 10),
		"user":        `{"id":42,"username":"u","first_name":"F","last_name":"L","language_code":"en","is_premium":true,"allows_write_to_pm":true}`,
		"start_param": "ABCDE",
	}

	initData := buildInitData(t, botToken, fields)

	id, startParam, ok := ParseInitData(initData, botToken)
	if !ok {
		t.Fatalf("expected valid init data")
	}
	if id.TgID != 42 || id.Username != "u" || id.FirstName != "F" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if !id.IsPremium || !id.AllowsWritePM {
		t.Fatalf("premium flags not parsed: %+v", id)
	}
	if startParam != "ABCDE" {
		t.Fatalf("start_param = %q, want ABCDE", startParam)
	}
}

func TestParseInitData_Tampered(t *testing.T) {
	botToken := "test-bot-token"
	fields := map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
		"user":      `{"id":42,"username":"u","first_name":"F"}`,
	}
	initData := buildInitData(t, botToken, fields)

	// appending an extra field breaks the hash
	tampered := initData + "&x=1"

	if _, _, ok := ParseInitData(tampered, botToken); ok {
		t.Fatalf("expected tampered init data to be invalid")
	}
}

func TestParseInitData_StaleAuthDate(t *testing.T) {
	botToken := "test-bot-token"
	fields := map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Unix()-7200, 10),
		"user":      `{"id":42,"username":"u","first_name":"F"}`,
	}
	initData := buildInitData(t, botToken, fields)

	if _, _, ok := ParseInitData(initData, botToken); ok {
		t.Fatalf("expected stale init data to be invalid")
	}
}

func TestParseInitData_MissingUser(t *testing.T) {
	botToken := "test-bot-token"
	fields := map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
	}
	initData := buildInitData(t, botToken, fields)

	if _, _, ok := ParseInitData(initData, botToken); ok {
		t.Fatalf("expected init data without user to be invalid")
	}
}
