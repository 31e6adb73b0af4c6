package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// SendBookingConfirmationEmail notifies the applicant that their booking was
// confirmed. Best effort: failures are logged, never surfaced to the caller.
func SendBookingConfirmationEmail(email, applicantName, unitNumber string) {
	if os.Getenv("SMTP_HOST") == "" {
		log.Printf("SMTP not configured, skipping confirmation email to %s", email)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your booking is confirmed")
	m.SetBody("text/plain", fmt.Sprintf("Dear %s,\n\nYour booking for unit %s has been confirmed. Our team will reach out with the allotment details.\n", applicantName, unitNumber))

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send booking confirmation email to %s: %v", email, err)
		return
	}

	log.Printf("Booking confirmation email sent to %s", email)
}
