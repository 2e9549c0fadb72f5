package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
// All notifications are delivered to the admissions inbox.
type SMTPSender struct {
	host            string
	port            int
	username        string
	password        string
	fromName        string
	fromEmail       string
	admissionsEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName, admissionsEmail string) *SMTPSender {
	return &SMTPSender{
		host:            host,
		port:            port,
		username:        username,
		password:        password,
		fromName:        fromName,
		fromEmail:       fromEmail,
		admissionsEmail: admissionsEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.admissionsEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendContactNotification(ctx context.Context, n ContactNotification) error {
	content, err := renderEmailTemplate("contact.html", contactEmailData{
		baseEmailData: baseEmailData{
			Language:   n.Language,
			ReceivedAt: formatReceivedAt(n.Language, n.ReceivedAt),
		},
		Name:     n.Name,
		Email:    n.Email,
		Phone:    n.Phone,
		Discount: n.Discount,
		Message:  n.Message,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(localized(n.Language, subjectContactITFmt, subjectContactENFmt), n.Name)
	return s.send(ctx, subject, content)
}

func (s *SMTPSender) SendBookingNotification(ctx context.Context, n BookingNotification) error {
	content, err := renderEmailTemplate("booking.html", bookingEmailData{
		baseEmailData: baseEmailData{
			Language:   n.Language,
			ReceivedAt: formatReceivedAt(n.Language, n.ReceivedAt),
		},
		Name:          n.Name,
		Email:         n.Email,
		Phone:         n.Phone,
		Age:           n.Age,
		SectorLabel:   translateLabel(sectorLabels, n.Sector, n.Language),
		EnglishLevel:  n.EnglishLevel,
		DayLabel:      translateLabel(dayLabels, n.PreferredDay, n.Language),
		PreferredTime: n.PreferredTime,
		Message:       n.Message,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(localized(n.Language, subjectBookingITFmt, subjectBookingENFmt), n.Name)
	return s.send(ctx, subject, content)
}

func (s *SMTPSender) SendCorporateQuoteNotification(ctx context.Context, n CorporateQuoteNotification) error {
	content, err := renderEmailTemplate("corporate_quote.html", corporateQuoteEmailData{
		baseEmailData: baseEmailData{
			Language:   n.Language,
			ReceivedAt: formatReceivedAt(n.Language, n.ReceivedAt),
		},
		RequestID:         n.RequestID,
		CompanyName:       n.CompanyName,
		Industry:          n.Industry,
		NumberOfEmployees: n.NumberOfEmployees,
		Location:          n.Location,
		ContactName:       n.ContactName,
		ContactEmail:      n.ContactEmail,
		ContactPhone:      n.ContactPhone,
		LevelsLabel:       translateLevels(n.LevelsToTrain, n.Language),
		PreferredMode:     n.PreferredMode,
		Budget:            n.Budget,
		Notes:             n.Notes,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(localized(n.Language, subjectCorporateITFmt, subjectCorporateENFmt), n.CompanyName)
	return s.send(ctx, subject, content)
}

func (s *SMTPSender) SendFormReminder(ctx context.Context, n FormReminder) error {
	content, err := renderEmailTemplate("form_reminder.html", formReminderEmailData{
		baseEmailData: baseEmailData{
			Language:   n.Language,
			ReceivedAt: formatReceivedAt(n.Language, time.Now()),
		},
		FormKindLabel: translateLabel(formKindLabels, n.FormKind, n.Language),
		Name:          n.Name,
		Email:         n.Email,
		SubmittedAt:   formatReceivedAt(n.Language, n.SubmittedAt),
		WindowHours:   n.WindowHours,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(localized(n.Language, subjectReminderITFmt, subjectReminderENFmt), n.Name)
	return s.send(ctx, subject, content)
}

func (s *SMTPSender) SendLeadQualifiedNotification(ctx context.Context, n LeadQualifiedNotification) error {
	content, err := renderEmailTemplate("lead_qualified.html", leadQualifiedEmailData{
		baseEmailData: baseEmailData{
			Language:   n.Language,
			ReceivedAt: formatReceivedAt(n.Language, n.ReceivedAt),
		},
		SessionID:    n.SessionID,
		Name:         n.Name,
		Email:        n.Email,
		EnglishLevel: n.EnglishLevel,
		Goal:         n.Goal,
		Urgency:      n.Urgency,
	})
	if err != nil {
		return err
	}
	display := n.Name
	if display == "" {
		display = n.SessionID
	}
	subject := fmt.Sprintf(localized(n.Language, subjectLeadQualifiedITFmt, subjectLeadQualifiedENFmt), display)
	return s.send(ctx, subject, content)
}

var _ Sender = (*SMTPSender)(nil)
