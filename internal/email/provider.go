package email

// Provider sends plain-text mail. The SMTP implementation is used in
// production; tests substitute a mock.
type Provider interface {
	Send(to, subject, body string) error
}
