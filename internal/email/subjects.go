package email

const (
	subjectContactITFmt = "Nuova Richiesta Contatto - %s"
	subjectContactENFmt = "New Contact Request - %s"

	subjectBookingITFmt = "Nuova Richiesta Valutazione Gratuita - %s"
	subjectBookingENFmt = "New Free Assessment Request - %s"

	subjectCorporateITFmt = "🏢 Nuova Richiesta Corporate: %s"
	subjectCorporateENFmt = "🏢 New Corporate Request: %s"

	subjectReminderITFmt = "⏰ Promemoria: richiesta di %s ancora senza risposta"
	subjectReminderENFmt = "⏰ Reminder: request from %s still unanswered"

	subjectLeadQualifiedITFmt = "🤖 Nuovo Lead Qualificato dalla Chat - %s"
	subjectLeadQualifiedENFmt = "🤖 New Qualified Lead from Chat - %s"
)

func localized(language, it, en string) string {
	if language == "it" {
		return it
	}
	return en
}
