package services

import (
	"fieldscore/config"
	"fmt"
	"net/smtp"
	"strings"
)

type EmailService struct {
    host     string
    port     string
    username string
    password string
}

func NewEmailService() *EmailService {
    return &EmailService{
        host:     config.MailHost,
        port:     config.MailPort,
        username: config.MailUsername,
        password: config.MailPassword,
    }
}

func (s *EmailService) send(to string, msg string) error {
    auth := smtp.PlainAuth("", s.username, s.password, s.host)
    return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{to}, []byte(msg))
}

func (s *EmailService) SendVerificationEmail(to, verificationToken string) error {
    verifyLink := fmt.Sprintf(config.ClientUrl+"/verify-email?token=%s", verificationToken)

    htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Verify Your FieldScore Account

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background-color: #14532d; padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">Welcome to FieldScore</h1>
                <p style="color: #d1fae5; margin-bottom: 30px; font-size: 16px;">Click the button below to verify your email address. This link will expire in 24 hours.</p>
                <a href="%s" style="display: inline-block; background-color: #16a34a; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold;">Verify Email</a>
            </td>
        </tr>
    </table>
</body>
</html>
`)

    return s.send(to, fmt.Sprintf(htmlTemplate, to, verifyLink))
}

// SendSupportEmail forwards a support request to the support inbox
func (s *EmailService) SendSupportEmail(name, email, category, subject, message string) error {
    to := config.MailSupport
    if to == "" {
        to = s.username
    }

    body := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: [FieldScore Support] [%s] %s

<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Support request</h2>
    <p><strong>From:</strong> %s (%s)</p>
    <p><strong>Category:</strong> %s</p>
    <p>%s</p>
</body>
</html>
`)

    return s.send(to, fmt.Sprintf(body, to, category, subject, name, email, category, message))
}

func (s *EmailService) SendPasswordResetEmail(to, resetToken string) error {
    resetLink := fmt.Sprintf(config.ClientUrl+"/reset-password?token=%s", resetToken)

    htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Reset Your FieldScore Password

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background-color: #14532d; padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">Reset Your Password</h1>
                <p style="color: #d1fae5; margin-bottom: 30px; font-size: 16px;">Click the button below to reset your password. This link will expire in 1 hour.</p>
                <a href="%s" style="display: inline-block; background-color: #16a34a; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold;">Reset Password</a>
                <p style="color: #d1fae5; font-size: 14px;">If you didn't request this password reset, please ignore this email.</p>
            </td>
        </tr>
    </table>
</body>
</html>
`)

    return s.send(to, fmt.Sprintf(htmlTemplate, to, resetLink))
}
