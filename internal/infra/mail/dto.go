package mail

type BookingEmailData struct {
	LeadName    string
	PlotNumber  string
	Amount      int64
	Mode        string
	BookingType string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
