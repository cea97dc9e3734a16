package mailer

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
)

var confirmationSubjects = map[Kind]string{
	KindNewsletter: "Welcome to The Readiness Institute Newsletter",
	KindContact:    "We've received your message - SafeHaven",
	KindPurchase:   "Your Book Purchase Confirmation",
}

var notificationSubjects = map[Kind]string{
	KindNewsletter: "New Newsletter Subscription",
	KindContact:    "New Contact Form Submission",
	KindPurchase:   "New Book Purchase",
}

const layout = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">{{.Body}}</div>`

var confirmationTemplates = template.Must(template.New("confirmation").Parse(`
{{define "newsletter"}}
<h2 style="color: #3B82F6;">Thank you for subscribing!</h2>
<p>You've successfully subscribed to The Readiness Institute newsletter.</p>
<p>You'll now receive updates on AI readiness, governance frameworks, and global initiatives.</p>
<p>If you didn't request this subscription, please ignore this email or contact us at {{.AdminEmail}}.</p>
<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eaeaea; font-size: 12px; color: #666;">
  <p>SafeHaven - The Readiness Institute</p>
  <p>You can unsubscribe at any time by clicking the unsubscribe link in our emails.</p>
</div>
{{end}}

{{define "contact"}}
<h2 style="color: #3B82F6;">Thank you for contacting us!</h2>
<p>Hi {{if .FirstName}}{{.FirstName}}{{else}}there{{end}},</p>
<p>We've received your message and will get back to you as soon as possible.</p>
<p>If you have any urgent inquiries, please contact us directly at {{.AdminEmail}}.</p>
<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eaeaea; font-size: 12px; color: #666;">
  <p>SafeHaven - The Readiness Institute</p>
  <p>This is an automated response. Please do not reply to this email.</p>
</div>
{{end}}

{{define "purchase"}}
<h2 style="color: #3B82F6;">Thank you for your purchase{{if .FirstName}}, {{.FirstName}}{{end}}!</h2>
<p>Here are your order details:</p>
<ul>
  <li><strong>Book ID:</strong> {{.BookID}}</li>
  <li><strong>Format:</strong> {{.Format}}</li>
  <li><strong>Quantity:</strong> {{.Quantity}}</li>
</ul>
<p>If you have any questions, please contact us at {{.AdminEmail}}.</p>
{{end}}
`))

var notificationTemplates = template.Must(template.New("notification").Parse(`
{{define "newsletter"}}
<h2 style="color: #3B82F6;">New Newsletter Subscription</h2>
<p>A new user has subscribed to The Readiness Institute newsletter.</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{end}}

{{define "contact"}}
<h2 style="color: #3B82F6;">New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Organization}}<p><strong>Organization:</strong> {{.Organization}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
{{end}}

{{define "purchase"}}
<h2 style="color: #3B82F6;">New Book Purchase</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Book ID:</strong> {{.BookID}}</p>
<p><strong>Format:</strong> {{.Format}}</p>
<p><strong>Quantity:</strong> {{.Quantity}}</p>
<p><strong>Total:</strong> {{printf "%.2f" .TotalAmount}} USD</p>
<p><strong>PayPal Order:</strong> {{.OrderID}}</p>
{{end}}
`))

func render(t *template.Template, name string, data Data) (string, error) {
	var body bytes.Buffer
	if err := t.ExecuteTemplate(&body, name, data); err != nil {
		return "", err
	}

	var out bytes.Buffer
	wrapper := template.Must(template.New("layout").Parse(layout))
	if err := wrapper.Execute(&out, map[string]interface{}{"Body": template.HTML(body.String())}); err != nil {
		return "", err
	}
	return out.String(), nil
}

func renderConfirmation(kind Kind, data Data) (subject string, html string, err error) {
	subject, ok := confirmationSubjects[kind]
	if !ok {
		return "", "", errors.Errorf("invalid email type: %s", kind)
	}
	html, err = render(confirmationTemplates, string(kind), data)
	return
}

func renderNotification(kind Kind, data Data) (subject string, html string, err error) {
	subject, ok := notificationSubjects[kind]
	if !ok {
		return "", "", errors.Errorf("invalid email type: %s", kind)
	}
	html, err = render(notificationTemplates, string(kind), data)
	return
}
