package utils

import (
	"fmt"
	"html"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"
)

// SendMail envoie un e-mail HTML via le SMTP configuré en .env.
func SendMail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@alattar.ps"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// NotifyOwnerNewOrder prévient le propriétaire qu'une commande vient de
// partir vers WhatsApp. Best-effort : un échec est loggé, jamais remonté
// à l'acheteur.
func NotifyOwnerNewOrder(orderMessage string) {
	to := os.Getenv("OWNER_EMAIL")
	if to == "" || os.Getenv("SMTP_HOST") == "" {
		return
	}

	body := orderNotificationHTML(orderMessage)
	if err := SendMail(to, "🛒 طلب جديد من العطار العربي", body); err != nil {
		log.Printf("❌ Erreur envoi email commande: %v", err)
	}
}

func orderNotificationHTML(orderMessage string) string {
	escaped := html.EscapeString(orderMessage)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>طلب جديد</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">طلب جديد من العطار العربي</h2>
		<p style="line-height: 1.8;">%s</p>
	</div>
</body>
</html>`, escaped)
}
