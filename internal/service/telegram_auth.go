package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// webAppUser mirrors the user object embedded in Telegram init_data.
type webAppUser struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	LanguageCode    string `json:"language_code"`
	IsPremium       bool   `json:"is_premium"`
	AllowsWriteToPM bool   `json:"allows_write_to_pm"`
}

// ParseInitData verifies Telegram WebApp init_data (HMAC over the sorted
// key=value set, auth_date within the last hour) and extracts the caller's
// identity and the start_param referral code. Returns ok=false on any
// validation failure.
func ParseInitData(initData, botToken string) (Identity, string, bool) {
	values, ok := validateInitData(initData, botToken)
	if !ok {
		return Identity{}, "", false
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return Identity{}, "", false
	}

	var u webAppUser
	if err := json.Unmarshal([]byte(userJSON), &u); err != nil || u.ID == 0 {
		return Identity{}, "", false
	}

	id := Identity{
		TgID:          u.ID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		LanguageCode:  u.LanguageCode,
		IsPremium:     u.IsPremium,
		AllowsWritePM: u.AllowsWriteToPM,
	}
	return id, values.Get("start_param"), true
}

func validateInitData(initData, botToken string) (url.Values, bool) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, false
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, false
	}
	values.Del("hash")

	var dataCheck []string
	for k, v := range values {
		dataCheck = append(dataCheck, k+"="+strings.Join(v, ""))
	}

	sort.Strings(dataCheck)
	dataString := strings.Join(dataCheck, "\n")

	secret := sha256.Sum256([]byte(botToken))
	h := hmac.New(sha256.New, secret[:])
	h.Write([]byte(dataString))

	calculated := h.Sum(nil)
	provided, err := hex.DecodeString(hash)
	if err != nil {
		return nil, false
	}

	if !hmac.Equal(calculated, provided) {
		return nil, false
	}

	// reject stale auth_date to mitigate replay, with a little clock skew
	authDateStr := values.Get("auth_date")
	if authDateStr == "" {
		return nil, false
	}
	authDate, err := strconv.ParseInt(authDateStr, 10, 64)
	if err != nil {
		return nil, false
	}

	now := time.Now().Unix()
	if now-authDate > 3600 || authDate-now > 300 {
		return nil, false
	}

	return values, true
}
