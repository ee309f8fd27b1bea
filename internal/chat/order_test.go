package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFromToolCall(t *testing.T) {
	tc := &ToolCall{
		Name: "submit_order",
		Args: map[string]any{
			"name":    "Amina",
			"address": "Sarajevo 1",
			"phone":   "061000000",
		},
	}

	order, ok := OrderFromToolCall(tc)
	require.True(t, ok)
	assert.Equal(t, "Amina", order.Name)
	assert.Equal(t, "Sarajevo 1", order.Address)
	assert.Equal(t, "061000000", order.Phone)
	assert.Equal(t, DefaultPaymentMethod, order.PaymentMethod, "payment defaults to cash on delivery")
}

func TestOrderFromToolCallExplicitPayment(t *testing.T) {
	tc := &ToolCall{
		Name: "submit_order",
		Args: map[string]any{"name": "Amina", "paymentMethod": "pouzećem"},
	}

	order, ok := OrderFromToolCall(tc)
	require.True(t, ok)
	assert.Equal(t, "pouzećem", order.PaymentMethod)
}

func TestOrderFromToolCallRejectsOtherNames(t *testing.T) {
	tests := []struct {
		name string
		tc   *ToolCall
	}{
		{"nil call", nil},
		{"different name", &ToolCall{Name: "cancel_order", Args: map[string]any{"name": "x"}}},
		{"empty name", &ToolCall{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := OrderFromToolCall(tt.tc)
			assert.False(t, ok)
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	order := OrderDetails{
		Name:          "Amina",
		Address:       "Sarajevo 1",
		Phone:         "061000000",
		PaymentMethod: DefaultPaymentMethod,
	}

	link := WhatsAppLink("38761000000", order)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/38761000000?text="))
	assert.Contains(t, link, "Amina")
	assert.Contains(t, link, "Sarajevo+1")
	assert.Contains(t, link, "061000000")
	assert.NotContains(t, link, " ", "query must be fully encoded")
}

func TestActionMessageRoundTrip(t *testing.T) {
	link := "https://wa.me/38761000000?text=Selam"
	text := ActionMessage(link)

	assert.True(t, strings.HasPrefix(text, ActionPrefix))

	url, ok := ActionURL(text)
	require.True(t, ok)
	assert.Equal(t, link, url)
}

func TestActionURLPlainText(t *testing.T) {
	_, ok := ActionURL("obična poruka")
	assert.False(t, ok)
}
