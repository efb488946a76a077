package mail

import (
	"fmt"
	"strings"

	"rice-shop/internal/model"
)

// FormatMMK renders a monetary amount with thousand separators and the
// MMK currency suffix, e.g. 2000 -> "2,000 MMK".
func FormatMMK(amount float64) string {
	s := fmt.Sprintf("%.10g", amount)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	b.WriteString(" MMK")
	return b.String()
}

// OtpEmail renders the OTP (or resent-OTP) message in the given
// language.
func OtpEmail(lang, code string, resent bool) (subject, text, html string) {
	if lang == model.LanguageBurmese {
		if resent {
			subject = "သင့် Rice Shop OTP (ပြန်ပို့ထားသည်)"
			text = fmt.Sprintf("သင့် OTP အသစ်မှာ: %s", code)
			html = otpHTMLBurmese("Rice Shop OTP (ပြန်ပို့ထားသည်)", "သင့်တစ်ကြိမ်သုံး စကားဝှက် (OTP) အသစ်မှာ:", code)
		} else {
			subject = "သင့် Rice Shop OTP"
			text = fmt.Sprintf("သင့် OTP မှာ: %s", code)
			html = otpHTMLBurmese("Rice Shop OTP", "သင့်တစ်ကြိမ်သုံး စကားဝှက် (OTP) မှာ:", code)
		}
		return subject, text, html
	}

	if resent {
		subject = "Your Rice Shop OTP (Resent)"
		text = fmt.Sprintf("Your new OTP is: %s", code)
		html = otpHTMLEnglish("Rice Shop OTP (Resent)", "Your new One-Time Password (OTP) is:", code)
	} else {
		subject = "Your Rice Shop OTP"
		text = fmt.Sprintf("Your OTP is: %s", code)
		html = otpHTMLEnglish("Rice Shop OTP", "Your One-Time Password (OTP) is:", code)
	}
	return subject, text, html
}

func otpHTMLEnglish(heading, lead, code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 400px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px; padding: 24px; background: #fafcff;">
			<h2 style="color: #2d7a2d;">%s</h2>
			<p>Dear Customer,</p>
			<p>%s</p>
			<div style="font-size: 2em; font-weight: bold; letter-spacing: 6px; color: #2d7a2d; margin: 16px 0;">%s</div>
			<p>This code is valid for 10 minutes. Please do not share it with anyone.</p>
			<p style="margin-top: 32px; color: #888; font-size: 0.9em;">Rice Shop Team</p>
		</div>`, heading, lead, code)
}

func otpHTMLBurmese(heading, lead, code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 400px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px; padding: 24px; background: #fafcff;">
			<h2 style="color: #2d7a2d;">%s</h2>
			<p>အမြတ်တနိုးရှိသော ဝယ်ယူသူ၊</p>
			<p>%s</p>
			<div style="font-size: 2em; font-weight: bold; letter-spacing: 6px; color: #2d7a2d; margin: 16px 0;">%s</div>
			<p>ဤကုဒ်သည် မိနစ် ၁၀ အတွင်း မှန်ကန်သည်။ ကျေးဇူးပြု၍ မည်သူနှင့်မျှ မမျှဝေပါနှင့်။</p>
			<p style="margin-top: 32px; color: #888; font-size: 0.9em;">Rice Shop အဖွဲ့</p>
		</div>`, heading, lead, code)
}

// OrderDetailRow renders one itemised cart line for email bodies.
func OrderDetailRow(name, sku string, quantity int, subtotal string) string {
	return fmt.Sprintf(
		"<tr><td style='padding:8px 12px;border-bottom:1px solid #eee;'>%s (SKU: %s)</td>"+
			"<td style='padding:8px 12px;border-bottom:1px solid #eee;text-align:center;'>%d</td>"+
			"<td style='padding:8px 12px;border-bottom:1px solid #eee;text-align:right;'>%s</td></tr>",
		name, sku, quantity, subtotal,
	)
}

// OrderConfirmationEmail renders the customer-facing confirmation
// message in the given language.
func OrderConfirmationEmail(lang, name, orderNumber, total, detailsHTML string) (subject, text, html string) {
	if lang == model.LanguageBurmese {
		subject = "အော်ဒါ အတည်ပြုပြီးပါပြီ"
		text = fmt.Sprintf("ကျေးဇူးတင်ပါသည် %s၊ သင့်ဆန်အော်ဒါကို အတည်ပြုပြီးပါပြီ!", name)
		html = confirmationHTML(
			"အော်ဒါ အတည်ပြုပြီးပါပြီ!",
			fmt.Sprintf("ကျေးဇူးတင်ပါသည် <b>%s</b>၊ သင့်ဆန်အော်ဒါကို အတည်ပြုပြီးပါပြီ!", name),
			"အော်ဒါနံပါတ်", "စုစုပေါင်း", "ကုန်ပစ္စည်း", "အရေအတွက်", "စုစုပေါင်း",
			"သင့်အော်ဒါ ပို့ဆောင်ပြီးသည့်အခါ နောက်ထပ်အီးမေးလ် တစ်စောင် ရရှိပါမည်။",
			"Rice Shop အဖွဲ့",
			orderNumber, total, detailsHTML,
		)
		return subject, text, html
	}

	subject = "Order Confirmed"
	text = fmt.Sprintf("Thank you %s, your rice order is confirmed!", name)
	html = confirmationHTML(
		"Order Confirmed!",
		fmt.Sprintf("Thank you <b>%s</b>, your rice order is confirmed!", name),
		"Order Number", "Total Amount", "Product", "Qty", "Subtotal",
		"We appreciate your business. You will receive another email when your order is delivered.",
		"Rice Shop Team",
		orderNumber, total, detailsHTML,
	)
	return subject, text, html
}

func confirmationHTML(heading, intro, orderLabel, totalLabel, productCol, qtyCol, subtotalCol, outro, signoff, orderNumber, total, detailsHTML string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 520px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px; padding: 24px; background: #f6fff6;">
			<h2 style="color: #2d7a2d;">%s</h2>
			<p>%s</p>
			<div style="margin: 20px 0;">
				<b>%s:</b> %s<br/>
				<b>%s:</b> %s
			</div>
			<table style="width:100%%; border-collapse:collapse; margin: 20px 0;">
				<thead>
					<tr style="background:#f8fafc; color:#2d7a2d;">
						<th style="padding:10px 12px; text-align:left; border-bottom:2px solid #2d7a2d;">%s</th>
						<th style="padding:10px 12px; text-align:center; border-bottom:2px solid #2d7a2d;">%s</th>
						<th style="padding:10px 12px; text-align:right; border-bottom:2px solid #2d7a2d;">%s</th>
					</tr>
				</thead>
				<tbody>
					%s
				</tbody>
				<tfoot>
					<tr>
						<td colspan="2" style="padding:10px 12px; text-align:right; font-weight:bold; color:#2d7a2d;">%s:</td>
						<td style="padding:10px 12px; text-align:right; font-weight:bold; color:#2d7a2d;">%s</td>
					</tr>
				</tfoot>
			</table>
			<p>%s</p>
			<p style="margin-top: 32px; color: #888; font-size: 0.9em;">%s</p>
		</div>`,
		heading, intro, orderLabel, orderNumber, totalLabel, total,
		productCol, qtyCol, subtotalCol, detailsHTML, totalLabel, total,
		outro, signoff,
	)
}

// DeliveryEmail renders the delivered notice in the given language.
func DeliveryEmail(lang, name, orderNumber, detailsHTML string) (subject, text, html string) {
	if lang == model.LanguageBurmese {
		subject = "သင့်အော်ဒါ ပို့ဆောင်ပြီးပါပြီ!"
		text = fmt.Sprintf("%s ခင်ဗျာ၊ သင့်အော်ဒါ %s ကို အောင်မြင်စွာ ပို့ဆောင်ပြီးပါပြီ!", name, orderNumber)
		html = deliveryHTML(
			"အော်ဒါ ပို့ဆောင်ပြီးပါပြီ!",
			fmt.Sprintf("<b>%s</b> ခင်ဗျာ၊", name),
			fmt.Sprintf("သင့်အော်ဒါ <b>%s</b> ကို အောင်မြင်စွာ ပို့ဆောင်ပြီးပါပြီ!", orderNumber),
			"Rice Shop နှင့် ဈေးဝယ်သည့်အတွက် ကျေးဇူးတင်ပါသည်။",
			"Rice Shop အဖွဲ့",
			detailsHTML,
		)
		return subject, text, html
	}

	subject = "Your Order Has Been Delivered!"
	text = fmt.Sprintf("Dear %s, your order %s has been successfully delivered!", name, orderNumber)
	html = deliveryHTML(
		"Order Delivered!",
		fmt.Sprintf("Dear <b>%s</b>,", name),
		fmt.Sprintf("Your order <b>%s</b> has been successfully delivered!", orderNumber),
		"Thank you for shopping with Rice Shop. We hope to serve you again soon.",
		"Rice Shop Team",
		detailsHTML,
	)
	return subject, text, html
}

func deliveryHTML(heading, greeting, body, outro, signoff, detailsHTML string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 520px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px; padding: 24px; background: #f0fff4;">
			<h2 style="color: #2d7a2d;">%s</h2>
			<p>%s</p>
			<p>%s</p>
			<table style="width:100%%; border-collapse:collapse; margin: 20px 0;">
				<tbody>
					%s
				</tbody>
			</table>
			<p>%s</p>
			<p style="margin-top: 32px; color: #888; font-size: 0.9em;">%s</p>
		</div>`, heading, greeting, body, detailsHTML, outro, signoff)
}

// AdminNewOrderEmail renders the operator notification for a freshly
// confirmed order. Operator mail is always English; the shop staff are
// a fixed internal audience.
func AdminNewOrderEmail(name, email, address, detailsHTML, total string) (subject, text, html string) {
	subject = "New Confirmed Order"
	text = fmt.Sprintf("New confirmed order from %s (%s), deliver to: %s. Total: %s", name, email, address, total)
	html = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 520px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px; padding: 24px; background: #fffdf6;">
			<h2 style="color: #b8860b;">New Confirmed Order</h2>
			<div style="margin: 20px 0;">
				<b>Customer:</b> %s<br/>
				<b>Email:</b> %s<br/>
				<b>Address:</b> %s
			</div>
			<table style="width:100%%; border-collapse:collapse; margin: 20px 0;">
				<tbody>
					%s
				</tbody>
			</table>
			<p><b>Total:</b> %s</p>
		</div>`, name, email, address, detailsHTML, total)
	return subject, text, html
}
