package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"madrasa/config"
)

// SendEmail delivers an HTML email through the configured SMTP account.
// No-op when no sender is configured, so local setups work without SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" {
		log.Printf("Email sender not configured, skipping mail to %v", to)
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Madrasa <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// EnrollmentEmail builds the confirmation mail body for a new enrollment.
func EnrollmentEmail(firstName, courseTitle string) (subject, body string) {
	subject = "Enrollment confirmed: " + courseTitle
	body = fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #222;">
		<h2>Welcome, %s!</h2>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<p>Open the app to start watching lectures and tracking your progress.</p>
	</body>
	</html>`, firstName, courseTitle)
	return subject, body
}
