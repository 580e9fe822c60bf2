package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppOrderLink builds a wa.me deep link that pre-fills the operator
// chat with the order summary.
func WhatsAppOrderLink(number, orderRef, name, phone, address string, total int, itemNames []string) string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "New Order #%s\n", orderRef)
	fmt.Fprintf(&msg, "Name: %s\n", name)
	fmt.Fprintf(&msg, "Phone: %s\n", phone)
	fmt.Fprintf(&msg, "Address: %s\n", address)
	fmt.Fprintf(&msg, "Total: ৳%d\n", total)
	msg.WriteString("Items:")
	for _, item := range itemNames {
		msg.WriteString("\n- " + item)
	}

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg.String())
}
