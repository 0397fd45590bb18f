package constvars

const (
	RegexPhoneNumberGeneral = `^\+?[0-9]{7,15}$`
)
