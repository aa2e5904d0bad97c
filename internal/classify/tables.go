package classify

import "regexp"

// Detector rule sets are declarative keyword tables so each signal family
// can be unit-tested and audited without re-deriving control flow. All
// matching happens against the lowercased haystack.

// Promotional signal families. A promotional hit requires at least two
// distinct families to match.
var (
	incentiveVerbs = []string{
		"get $", "earn", "save $", "receive", "win", "claim", "redeem",
	}
	conditionalTerms = []string{
		"when you", "if you", "after you", "you'll", "we'll", "you will", "you can",
	}
	promoTerms = []string{
		"promo code", "promotional code", "offer code", "offer", "promotion",
		"deal", "bonus", "reward", "free", "gift",
	}
	urgencyTerms = []string{
		"limited time", "expires", "ends", "by ", "hurry", "act now",
		"don't miss", "last chance",
	}
	ctaTerms = []string{
		"sign up", "enroll", "apply now", "join now", "visit", "call now",
		"click here", "register",
	}
)

// Receipt signals.
var (
	transactionIDTerms = []string{
		"receipt #", "receipt number", "transaction #", "order #",
		"order number", "confirmation #",
	}
	cardBrandTerms   = []string{"visa", "mastercard", "amex", "discover"}
	paymentAuthTerms = []string{"auth code", "approval", "paid with"}
	cashTerms        = []string{"cash", "change:", "tendered", "amount paid"}
	merchantTerms    = []string{
		"store #", "cashier", "terminal", "server:", "table:", "pump:",
	}
	receiptWords         = []string{"receipt", "thank you for shopping"}
	paymentCompleteTerms = []string{"tendered", "change:", "change due"}
)

// amountRe matches $X.XX, $X, and $ X.XX money amounts.
var amountRe = regexp.MustCompile(`\$\s*\d+(?:\.\d{2})?`)

// Insurance-card signals. Anti-patterns force a negative regardless of
// other matches.
var (
	insuranceAntiPatterns = []string{
		"this is not an insurance card",
		"summary of benefits",
		"explanation of benefits",
		"eob",
		"claim statement",
		"billing statement",
	}
	cardIdentifierTerms = []string{
		"member id", "subscriber id", "policy number", "certificate number",
	}
	insuranceTerms = []string{"copay", "rx bin", "rx grp", "deductible", "payer id"}
	networkTerms   = []string{"ppo", "hmo", "epo", "pos", "dental plan"}
	knownInsurers  = []string{
		"blue cross", "blue shield", "premera", "regence", "aetna",
		"cigna", "kaiser", "vsp", "delta dental",
	}
)

// Credit/debit-card signals.
var (
	nonPaymentCardTerms = []string{
		"gift card", "member card", "membership card", "loyalty card",
	}
	issuerNames = []string{
		"visa", "mastercard", "amex", "american express", "discover",
		"maestro", "jcb",
	}
	cardTypeKeywords = []string{"credit card", "debit card", "valid thru", "expires"}
)

var (
	// expiryRe matches MM/YY and MM/YYYY expiry dates.
	expiryRe = regexp.MustCompile(`\b(0[1-9]|1[0-2])/(\d{2}|\d{4})\b`)
	// panGroupedRe matches card numbers written in 4-digit groups with
	// optional spaces or dashes.
	panGroupedRe = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{3,7}\b`)
	// panContiguousRe matches bare 13-19 digit runs.
	panContiguousRe = regexp.MustCompile(`\b\d{13,19}\b`)
)

// Bill-statement signals. A bare payment-due phrase is never sufficient on
// its own: it also appears on paid receipts showing a zero balance.
var (
	billingTerms = []string{
		"billing statement", "statement of account", "billing period", "statement date",
	}
	paymentDueTerms = []string{
		"amount due", "total due", "balance due", "minimum payment", "please pay",
	}
	accountTerms = []string{
		"account number", "previous balance", "current charges", "new balance",
	}
	serviceTerms = []string{
		"utility bill", "service period", "usage", "kwh", "therms", "medical bill",
	}
	invoiceTerms = []string{"invoice number", "invoice date"}
)

// Letter signals. Both a salutation and a closing are required; marketing
// mail frequently mimics correspondence structure.
var (
	salutationTerms = []string{
		"dear ", "to whom it may concern", "hello ", "hi ", "greetings",
	}
	closingTerms = []string{
		"sincerely", "regards", "best regards", "best", "yours truly",
		"respectfully", "cordially", "warm regards",
	}
)
