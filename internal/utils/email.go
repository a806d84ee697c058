package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"dukani_back_end/internal/catalog"
	"dukani_back_end/internal/models"
)

// SendOrderConfirmationEmail envoie le mail de confirmation de commande.
// L'envoi est best-effort : un échec SMTP ne doit jamais faire échouer la commande.
func SendOrderConfirmationEmail(to string, order models.Order) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@dukani.ug"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Order confirmed - %s", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(order))

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

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande,
// avec un QR de la référence pour le retrait en boutique
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
			</tr>`,
			item.ProductName, item.Quantity,
			catalog.FormatPrice(item.PriceAtPurchase),
			catalog.FormatPrice(item.PriceAtPurchase*float64(item.Quantity)))
	}

	qrHTML := ""
	if qr, err := GenerateOrderQRBase64(order.ID); err == nil {
		qrHTML = fmt.Sprintf(`
			<p style="text-align: center;">
				<img src="data:image/png;base64,%s" alt="Order reference" width="128" height="128"/>
			</p>`, qr)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thank you for your order!</h2>
		<p>Hello %s,</p>
		<p>Your order <strong>%s</strong> has been received. You will pay on delivery.</p>

		<h3>Order details</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Product</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 8px; font-weight: bold;">%s</td>
				</tr>
			</tfoot>
		</table>

		<p>Delivery to: %s, %s</p>
		%s

		<p style="margin-top: 30px; color: #555;">
			Best regards,<br>
			<strong>The Dukani team</strong>
		</p>
	</div>
</body>
</html>`,
		order.ShippingAddress.FullName, order.ID, itemsHTML,
		catalog.FormatPrice(order.TotalAmount),
		order.ShippingAddress.StreetAddress, order.ShippingAddress.City,
		qrHTML)
}
