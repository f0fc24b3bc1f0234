package main

import (
	"context"
	"log"
	"math/big"
	"os"
	"time"

	"tap_legends/internal/db"
	"tap_legends/internal/domain"
	"tap_legends/internal/gameconfig"
	"tap_legends/internal/refcode"
	"tap_legends/internal/repository"
	"tap_legends/internal/service"
)

func main() {
	// expects DATABASE_URL and JWT_SECRET env vars
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	sessions := repository.NewSessionRepository(pool)
	ctx := context.Background()

	tgID := int64(1234567890)

	u, err := users.GetByTgID(ctx, tgID)
	if err == nil {
		log.Printf("user already exists tg_id=%d\n", u.TgID)
	} else {
		u = &domain.User{
			TgID:         tgID,
			Username:     "testuser",
			FirstName:    "Tester",
			ReferralCode: refcode.Encode(tgID),
			Balance:      big.NewInt(0),
			Level:        gameconfig.DefaultLevel,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		log.Printf("user created tg_id=%d referral_code=%s\n", u.TgID, u.ReferralCode)
	}

	created, err := sessions.Create(ctx, &domain.Session{
		TgID:                      tgID,
		Energy:                    big.NewInt(gameconfig.DefaultEnergy),
		EarnPerHourBonus:          big.NewInt(0),
		LastEnergyUpdateTimestamp: time.Now().Unix(),
	})
	if err != nil {
		log.Fatalf("create session failed: %v", err)
	}
	log.Printf("session created=%v\n", created)

	u2, err := users.GetByTgID(ctx, tgID)
	if err != nil {
		log.Fatalf("get by tg id failed: %v", err)
	}
	log.Printf("fetched user tg_id=%d username=%s balance=%s level=%d\n",
		u2.TgID, u2.Username, u2.Balance.String(), u2.Level)

	service.InitJWT()
	token, err := service.GenerateJWT(u2.TgID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
