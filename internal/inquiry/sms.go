package inquiry

import "net/url"

// SMSLink builds the sms: deep link that opens the customer's messaging app
// with the inquiry body pre-filled.
func SMSLink(number, body string) string {
	if number == "" {
		return ""
	}
	return "sms:" + number + "?body=" + url.QueryEscape(body)
}
