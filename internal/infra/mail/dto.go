package mail

type SignedEmailData struct {
	PartnerName string
	ContactName string
	PartnerTier string
	SignedAt    string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// Team inbox that receives signing notifications.
	NotifyAddress string
}
