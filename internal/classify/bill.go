package classify

// IsBillStatement detects recurring service bills and statements. A single
// payment-due phrase is never sufficient: paid receipts show "$0.00 amount
// due" too, so it must combine with invoice, service, or account context.
// Highly specific billing phrases are an instant match.
func IsBillStatement(haystack string) (bool, Detail) {
	hasBillingTerm := containsAny(haystack, billingTerms)
	hasPaymentDue := containsAny(haystack, paymentDueTerms)
	hasAccountTerm := containsAny(haystack, accountTerms)
	hasServiceTerm := containsAny(haystack, serviceTerms)
	hasInvoice := containsAny(haystack, invoiceTerms)

	hit := false
	rule := ""
	switch {
	case hasBillingTerm:
		hit, rule = true, "billing_term"
	case hasInvoice && hasPaymentDue:
		hit, rule = true, "invoice_payment"
	case hasServiceTerm && hasPaymentDue:
		hit, rule = true, "service_payment"
	case hasAccountTerm && hasPaymentDue:
		hit, rule = true, "account_payment"
	}

	return hit, Detail{
		"has_billing_term": hasBillingTerm,
		"has_payment_due":  hasPaymentDue,
		"has_account_term": hasAccountTerm,
		"has_service_term": hasServiceTerm,
		"has_invoice":      hasInvoice,
		"matched_rule":     rule,
	}
}
