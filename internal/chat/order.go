package chat

import (
	"fmt"
	"net/url"
	"strings"
)

// SubmitOrderTool is the only tool name the widget acts on.
const SubmitOrderTool = "submit_order"

// ActionPrefix marks a message whose text carries a UI directive (a clickable
// link) rather than conversational content.
const ActionPrefix = "LINK_ACTION::"

// DefaultPaymentMethod is implied when the model did not extract one.
const DefaultPaymentMethod = "Pouzećem"

// OrderDetails are the fields extracted from a submit_order tool call.
type OrderDetails struct {
	Name          string
	Address       string
	Phone         string
	PaymentMethod string
}

// OrderFromToolCall extracts order details from a tool call. Returns false
// for calls that are not submit_order; those are passed through untouched
// by the callers.
func OrderFromToolCall(tc *ToolCall) (OrderDetails, bool) {
	if tc == nil || tc.Name != SubmitOrderTool {
		return OrderDetails{}, false
	}
	o := OrderDetails{
		Name:          argString(tc.Args, "name"),
		Address:       argString(tc.Args, "address"),
		Phone:         argString(tc.Args, "phone"),
		PaymentMethod: argString(tc.Args, "paymentMethod"),
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = DefaultPaymentMethod
	}
	return o, true
}

// WhatsAppLink builds the deep link that pre-fills the order summary in a
// WhatsApp conversation with the configured number.
func WhatsAppLink(number string, o OrderDetails) string {
	summary := fmt.Sprintf(
		"Selam alejkum, želim naručiti Cennetul Esma Štit.\n\nIme: %s\nAdresa: %s\nTelefon: %s\nPlaćanje: %s",
		o.Name, o.Address, o.Phone, o.PaymentMethod,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(summary))
}

// ActionMessage wraps a URL in the sentinel prefix understood by the
// rendering layer.
func ActionMessage(link string) string {
	return ActionPrefix + link
}

// ActionURL reports whether text is a sentinel-prefixed action and, if so,
// returns the embedded URL.
func ActionURL(text string) (string, bool) {
	if !strings.HasPrefix(text, ActionPrefix) {
		return "", false
	}
	return strings.TrimPrefix(text, ActionPrefix), true
}

func argString(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}
