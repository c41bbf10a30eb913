package utils

import (
	"fmt"
	"log"

	"vestpay/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. Best effort: callers
// fire it in a goroutine and never block a ledger operation on it.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Println("SendGrid key not configured, skipping email:", subject)
		return nil
	}

	from := mail.NewEmail("VestPay", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email rejected with status %d: %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("email rejected, status %d", resp.StatusCode)
	}
	return nil
}

// SendTransactionResolvedEmail notifies a user that an admin resolved
// their pending recharge or withdrawal.
func SendTransactionResolvedEmail(toEmail, toName, txType string, amount float64, approved bool) error {
	verdict := "approved"
	if !approved {
		verdict = "rejected"
	}
	subject := fmt.Sprintf("Your %s request was %s", txType, verdict)
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2>Hi %s,</h2>
					<p>Your %s request of <b>%.2f</b> has been <b>%s</b>.</p>
					<p>You can review the updated transaction in your wallet history.</p>
					<p style="color: #888; font-size: 12px;">VestPay</p>
				</div>
			</body>
		</html>`, toName, txType, amount, verdict)

	return SendEmail(toEmail, toName, subject, body)
}
