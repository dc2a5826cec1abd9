package mail

import (
	"context" // Context for the Mailgun call
	"fmt"     // HTML body formatting

	"github.com/mailgun/mailgun-go/v4" // Mailgun client
)

// MailgunNotifier sends order-confirmation mails through Mailgun. It
// satisfies payment.Notifier.
type MailgunNotifier struct {
	mg   *mailgun.MailgunImpl // Process-wide Mailgun client
	from string               // Sender address
}

// NewMailgunNotifier builds a notifier for the given sending domain
func NewMailgunNotifier(domain, apiKey, from string) *MailgunNotifier {
	return &MailgunNotifier{
		mg:   mailgun.NewMailgun(domain, apiKey), // Mailgun client for the domain
		from: from,                               // Sender address
	}
}

// SendPaymentConfirmation mails the order confirmation with the
// transaction id to the paying user
func (n *MailgunNotifier) SendPaymentConfirmation(ctx context.Context, to, transactionID string) error {
	m := n.mg.NewMessage(
		n.from,                          // Sender
		"Bistro Boss Order Confirmation", // Subject
		"Thank you for your order. Transaction id: "+transactionID, // Plain-text fallback
		to, // Recipient
	)
	// HTML body mirrors the text content
	m.SetHtml(fmt.Sprintf(`
		<div>
			<h2>Thank you for your order</h2>
			<h4>Your Transaction Id: <strong>%s</strong></h4>
			<p>We would like to get your feedback about the food</p>
		</div>
	`, transactionID))
	_, _, err := n.mg.Send(ctx, m) // Message id and handle are not needed
	return err
}
