package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

var goMailDialer *gomail.Dialer

func InitEmailer() error {
	host := os.Getenv("EMAIL_HOST")
	if host == "" {
		return fmt.Errorf("empty email host")
	}

	port, err := strconv.Atoi(os.Getenv("EMAIL_PORT"))
	if err != nil {
		return fmt.Errorf("invalid email port: %v", err)
	}

	if _, err := getSender(); err != nil {
		return err
	}
	if _, err := getAlertRecipient(); err != nil {
		return err
	}

	goMailDialer = gomail.NewDialer(host, port, os.Getenv("EMAIL_USER"), os.Getenv("EMAIL_PASSWORD"))
	return nil
}

// CullingMailer emails culling recommendations to the farm contact.
// Delivery failures are logged, never propagated: the breeding update
// already committed.
type CullingMailer struct{}

func (CullingMailer) NotifyCulling(farmID, doeID, reason string) {
	log := GetLogrusInstance()

	if goMailDialer == nil {
		log.WithField("farm_id", farmID).Warn("emailer not configured, culling alert not sent")
		return
	}

	sender, err := getSender()
	if err != nil {
		log.Errorf("culling alert not sent: %v", err)
		return
	}
	recipient, err := getAlertRecipient()
	if err != nil {
		log.Errorf("culling alert not sent: %v", err)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Culling recommendation for doe %s", doeID))

	body := fmt.Sprintf(`A culling recommendation was recorded for farm %s.

Doe: %s
Reason: %s

Review the doe's breeding history before acting on this recommendation.`, farmID, doeID, reason)
	msg.SetBody("text/plain", body)

	if err := goMailDialer.DialAndSend(msg); err != nil {
		log.Errorf("could not send culling alert email: %v", err)
	}
}

func getSender() (string, error) {
	emailSender := os.Getenv("EMAIL_SENDER")
	if emailSender == "" {
		return "", fmt.Errorf("empty email sender")
	}
	return emailSender, nil
}

func getAlertRecipient() (string, error) {
	recipient := os.Getenv("CULLING_ALERT_RECIPIENT")
	if recipient == "" {
		return "", fmt.Errorf("empty culling alert recipient")
	}
	return recipient, nil
}
