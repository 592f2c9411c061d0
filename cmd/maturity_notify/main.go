// Emails users whose investments matured recently by posting the batch to
// the API's maturity-processing endpoint. Intended to run from cron after
// the sweep, or by hand with -days-back for catch-up runs.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"vestra/internal/config"
	"vestra/internal/repositories"
	"vestra/internal/services/notify"
)

func main() {
	daysBack := flag.Int("days-back", 1, "include investments matured within the last N days")
	flag.Parse()

	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	invRepo := repositories.NewInvestmentRepository(repositories.DB)
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)

	matured, err := invRepo.RecentlyMatured(*daysBack)
	if err != nil {
		log.Fatal("Failed to list matured investments:", err)
	}
	if len(matured) == 0 {
		log.Println("No recently matured investments, nothing to send")
		return
	}

	batch := make([]notify.MaturedInvestment, 0, len(matured))
	for _, inv := range matured {
		entry := notify.MaturedInvestment{
			InvestmentID: inv.ID,
			UserID:       inv.UserID,
			PlanName:     inv.PlanName,
			Amount:       inv.AmountInvested,
			ReturnAmount: inv.ExpectedReturnAmount,
			MaturityDate: inv.MaturityDate,
		}
		user, err := userRepo.GetByID(inv.UserID)
		if err != nil {
			log.Printf("Skipping investment %d: user %d not found", inv.ID, inv.UserID)
			continue
		}
		entry.UserEmail = user.Email
		batch = append(batch, entry)
	}
	if len(batch) == 0 {
		log.Println("No notifiable investments after filtering")
		return
	}

	payload, err := json.Marshal(map[string]interface{}{"investments": batch})
	if err != nil {
		log.Fatal("Failed to encode batch:", err)
	}

	apiURL := config.GetEnv("API_URL", config.GetEnv("SITE_URL", "http://localhost:3000"))
	endpoint := fmt.Sprintf("%s/api/notifications/maturity-processing", apiURL)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Println("Failed to post notification batch:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("Notification endpoint returned %d", resp.StatusCode)
		os.Exit(1)
	}

	log.Printf("Notified %d users of matured investments", len(batch))
}
