package domain

// EmailMessage is built per send and handed to the mail transport.
type EmailMessage struct {
	To      string
	From    string
	Subject string
	Body    string
}
