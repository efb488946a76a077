package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMMK(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0 MMK"},
		{500, "500 MMK"},
		{2000, "2,000 MMK"},
		{45000, "45,000 MMK"},
		{128000, "128,000 MMK"},
		{1234567, "1,234,567 MMK"},
		{1500.5, "1,500.5 MMK"},
		{-2000, "-2,000 MMK"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMMK(tt.amount))
		})
	}
}

func TestOtpEmail_English(t *testing.T) {
	subject, text, html := OtpEmail("en", "123456", false)

	assert.Equal(t, "Your Rice Shop OTP", subject)
	assert.Contains(t, text, "123456")
	assert.Contains(t, html, "123456")
	assert.Contains(t, html, "valid for 10 minutes")
}

func TestOtpEmail_EnglishResent(t *testing.T) {
	subject, text, html := OtpEmail("en", "654321", true)

	assert.Equal(t, "Your Rice Shop OTP (Resent)", subject)
	assert.Contains(t, text, "new OTP")
	assert.Contains(t, html, "654321")
}

func TestOtpEmail_Burmese(t *testing.T) {
	subject, text, html := OtpEmail("my", "123456", false)

	assert.Contains(t, subject, "OTP")
	// Burmese copy carries Myanmar script.
	assert.True(t, containsBurmeseScript(subject))
	assert.True(t, containsBurmeseScript(text))
	assert.Contains(t, html, "123456")
}

func TestOrderConfirmationEmail_ContainsOrderDetails(t *testing.T) {
	details := OrderDetailRow("Paw San Rice", "PSR-5KG", 2, "90,000 MMK")

	subject, text, html := OrderConfirmationEmail("en", "Aung Aung", "PO-20260315-1234", "90,000 MMK", details)

	assert.Equal(t, "Order Confirmed", subject)
	assert.Contains(t, text, "Aung Aung")
	assert.Contains(t, html, "PO-20260315-1234")
	assert.Contains(t, html, "Paw San Rice (SKU: PSR-5KG)")
	assert.Contains(t, html, "90,000 MMK")
}

func TestOrderConfirmationEmail_Burmese(t *testing.T) {
	subject, text, html := OrderConfirmationEmail("my", "Aung Aung", "PO-20260315-1234", "90,000 MMK", "")

	assert.True(t, containsBurmeseScript(subject))
	assert.True(t, containsBurmeseScript(text))
	assert.Contains(t, html, "PO-20260315-1234")
}

func TestDeliveryEmail(t *testing.T) {
	subject, text, html := DeliveryEmail("en", "Su Su", "PO-20260401-5678", "")

	assert.Equal(t, "Your Order Has Been Delivered!", subject)
	assert.Contains(t, text, "PO-20260401-5678")
	assert.Contains(t, html, "delivered")

	subjectMy, textMy, _ := DeliveryEmail("my", "Su Su", "PO-20260401-5678", "")
	assert.True(t, containsBurmeseScript(subjectMy))
	assert.Contains(t, textMy, "PO-20260401-5678")
}

func TestAdminNewOrderEmail_AlwaysEnglish(t *testing.T) {
	subject, text, html := AdminNewOrderEmail("Aung Aung", "aung@example.com", "No. 12, Yangon", "", "90,000 MMK")

	assert.Equal(t, "New Confirmed Order", subject)
	assert.False(t, containsBurmeseScript(subject))
	assert.Contains(t, text, "aung@example.com")
	assert.Contains(t, html, "No. 12, Yangon")
	assert.Contains(t, html, "90,000 MMK")
}

func TestOrderDetailRow(t *testing.T) {
	row := OrderDetailRow("Jasmine Rice", "JR-1KG", 3, "114,000 MMK")

	assert.True(t, strings.HasPrefix(row, "<tr>"))
	assert.True(t, strings.HasSuffix(row, "</tr>"))
	assert.Contains(t, row, "Jasmine Rice (SKU: JR-1KG)")
	assert.Contains(t, row, ">3<")
	assert.Contains(t, row, "114,000 MMK")
}
