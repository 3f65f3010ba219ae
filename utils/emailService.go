package utils

import (
	"crh/config"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

const resendApiURL = "https://api.resend.com/emails"

var emailClient = resty.New().SetTimeout(10 * time.Second)

// SendNotificationEmail delivers a notification over the Resend API.
// Delivery is best effort: when no API key is configured the email is
// skipped and the in-app notification row remains the source of truth.
func SendNotificationEmail(to, subject, message string) error {
	if config.AppConfig.ResendApiKey == "" {
		log.Printf("Resend API key not set. Skipping email to %s", to)
		return nil
	}

	body := map[string]interface{}{
		"from":    config.AppConfig.EmailFrom,
		"to":      []string{to},
		"subject": subject,
		"html":    buildEmailHTML(subject, message),
	}

	resp, err := emailClient.R().
		SetAuthToken(config.AppConfig.ResendApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(resendApiURL)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}

	if resp.IsError() {
		log.Printf("Failed to send email to %s, response code: %d", to, resp.StatusCode())
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode())
	}

	log.Println("Email sent successfully to", to)
	return nil
}

// SendEnrollmentEmail sends a confirmation when a user enrolls in a course
func SendEnrollmentEmail(email, userName, courseTitle string) error {
	subject := "Course Enrollment Confirmation"
	message := fmt.Sprintf(
		"Hi %s, you are now enrolled in <strong>%s</strong>. Head to your dashboard to start learning!",
		userName, courseTitle,
	)
	return SendNotificationEmail(email, subject, message)
}

// SendCertificateEmail congratulates a user on an issued certificate and
// includes the public verification link
func SendCertificateEmail(email, userName, courseTitle, verificationCode string) error {
	subject := "Your Certificate is Ready"
	message := fmt.Sprintf(
		"Congratulations %s! You completed <strong>%s</strong> and earned a certificate.<br/>"+
			"Verify it any time at %s/certificate/verify/%s",
		userName, courseTitle, config.AppConfig.AppBaseURL, verificationCode,
	)
	return SendNotificationEmail(email, subject, message)
}

func buildEmailHTML(subject, message string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px; text-align: center;">
				<h1 style="color: white; margin: 0;">Career Reach Hub</h1>
			</div>
			<div style="padding: 30px; background-color: #f9fafb;">
				<h2 style="color: #1f2937; margin-top: 0;">%s</h2>
				<p style="color: #4b5563; line-height: 1.6; font-size: 16px;">%s</p>
				<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
					<a href="%s/user/notifications"
						style="display: inline-block; background: #7c3aed; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: 600;">
						View in Dashboard
					</a>
				</div>
			</div>
			<div style="padding: 20px; text-align: center; color: #9ca3af; font-size: 14px;">
				<p>This is an automated message from Career Reach Hub</p>
				<p>&copy; %d Career Reach Hub. All rights reserved.</p>
			</div>
		</div>
	`, subject, message, config.AppConfig.AppBaseURL, time.Now().Year())
}
