package seed

import (
	"strings"
)

// CannedResponse pairs a trigger keyword with a prepared assistant reply.
// The "default" entry answers queries that match nothing else.
type CannedResponse struct {
	Keyword  string
	Response string
}

// CannedResponses are the prepared assistant replies used when no LLM
// provider is configured.
var CannedResponses = []CannedResponse{
	{
		Keyword:  "refund",
		Response: "We can only refund orders placed within the last 60 days, and your item must meet our requirements for condition to be returned. Please check when you placed your order before proceeding.\n\nOnce I've checked these details, if everything looks OK, I will send a returns QR code which you can use to post the item back to us. Your refund will be automatically issued once you put it in the post.\n\nIs there anything specific about the refund process you'd like me to clarify?",
	},
	{
		Keyword:  "return",
		Response: "Our return policy allows customers to return items within 60 days of purchase. The item must be in its original condition with all tags and packaging intact.\n\nTo initiate a return:\n\n1. Log into your account and go to 'Order History'\n2. Select the order containing the item you wish to return\n3. Click 'Return Item' and follow the instructions\n4. You'll receive a QR code to print and attach to your package\n5. Drop off the package at any authorized shipping location\n\nOnce we receive and inspect the returned item, your refund will be processed within 3-5 business days.",
	},
	{
		Keyword:  "track",
		Response: "You can track your order by following these steps:\n\n1. Log into your account on our website\n2. Navigate to 'Order History' in your account dashboard\n3. Find the order you want to track and click 'Track Package'\n\nAlternatively, if you received a shipping confirmation email, there should be a tracking link included. Click on that link to see the current status of your delivery.\n\nIf you're having trouble locating your tracking information, please provide your order number and I can look it up for you.",
	},
	{
		Keyword:  "shipping",
		Response: "We offer several shipping options to meet your needs:\n\n• Standard Shipping: 3-5 business days (Free for orders over $50)\n• Express Shipping: 2 business days ($9.99)\n• Overnight Shipping: Next business day ($19.99)\n\nInternational shipping is available to most countries with delivery times ranging from 7-21 business days depending on the destination. Additional customs fees may apply for international orders.\n\nAll orders are processed within 24 hours during business days. Would you like information about a specific shipping method?",
	},
	{
		Keyword:  "password",
		Response: "If you need to reset your password, please follow these steps:\n\n1. Go to the login page on our website\n2. Click on 'Forgot Password' below the login form\n3. Enter the email address associated with your account\n4. Check your email for a password reset link (be sure to check your spam folder)\n5. Click the link and follow the instructions to create a new password\n\nThe reset link is valid for 24 hours. If you don't receive the email within a few minutes, please let me know and I can help troubleshoot or manually reset your password.",
	},
	{
		Keyword:  "size",
		Response: "Our sizing guide can help you find the perfect fit:\n\n• XS: Chest 32-34\", Waist 26-28\"\n• S: Chest 35-37\", Waist 29-31\"\n• M: Chest 38-40\", Waist 32-34\"\n• L: Chest 41-43\", Waist 35-37\"\n• XL: Chest 44-46\", Waist 38-40\"\n• XXL: Chest 47-49\", Waist 41-43\"\n\nFor the most accurate fit, we recommend measuring yourself and comparing to the chart above. If you're between sizes, we generally recommend sizing up for a more comfortable fit.\n\nWould you like specific sizing information for a particular product?",
	},
	{
		Keyword:  "default",
		Response: "Thank you for your question. I'd be happy to help with that.\n\nBased on our customer service policies, I can provide you with detailed information and assistance for your inquiry. Our team is committed to ensuring you have the best possible experience with our products and services.\n\nCould you please provide a few more details about your specific situation so I can give you the most accurate and helpful response? Feel free to include any relevant order numbers or product information that might help me assist you better.",
	},
}

// ResponseFor picks the canned reply whose keyword appears in query,
// falling back to the default entry.
func ResponseFor(query string) string {
	q := strings.ToLower(query)
	var fallback string
	for _, c := range CannedResponses {
		if c.Keyword == "default" {
			fallback = c.Response
			continue
		}
		if strings.Contains(q, c.Keyword) {
			return c.Response
		}
	}
	if fallback != "" {
		return fallback
	}
	return "I'm sorry, I don't have enough information to answer that question properly. Could you provide more details?"
}
