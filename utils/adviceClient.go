package utils

import (
	"log"
	"time"

	"vestpay/config"

	"github.com/go-resty/resty/v2"
)

const fallbackAdvice = "Diversify across products and claim your daily income regularly."

// FetchAdvice asks the external advice-text provider for a free-form
// tip. The text is non-authoritative and never affects ledger state;
// any failure degrades to a canned message.
func FetchAdvice(topic string) string {
	if config.AppConfig.AdviceApiURL == "" {
		return fallbackAdvice
	}

	client := resty.New().SetTimeout(10 * time.Second)

	var result struct {
		Advice string `json:"advice"`
	}

	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.AdviceApiKey).
		SetQueryParam("topic", topic).
		SetResult(&result).
		Get(config.AppConfig.AdviceApiURL)
	if err != nil {
		log.Printf("Error calling advice provider: %v", err)
		return fallbackAdvice
	}
	if resp.IsError() || result.Advice == "" {
		log.Printf("Advice provider returned status %d", resp.StatusCode())
		return fallbackAdvice
	}

	return result.Advice
}
