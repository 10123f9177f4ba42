package document

// Locale selects the display language of PDF labels. It never affects
// numeric values or currency codes; amounts are always AED with two
// decimals.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// labelSet holds the printable strings of one PDF rendering.
type labelSet struct {
	TaxInvoice    string
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	Supplier      string
	Customer      string
	TRN           string
	Description   string
	Quantity      string
	UnitPrice     string
	Taxable       string
	VATRate       string
	VAT           string
	LineTotal     string
	Subtotal      string
	TotalVAT      string
	TotalDue      string
	Declaration   string
	Signature     string
	QFZPNote      string
}

var englishLabels = labelSet{
	TaxInvoice:    "TAX INVOICE",
	InvoiceNumber: "Invoice No.",
	IssueDate:     "Issue Date",
	DueDate:       "Due Date",
	Supplier:      "Supplier",
	Customer:      "Customer",
	TRN:           "TRN",
	Description:   "Description",
	Quantity:      "Qty",
	UnitPrice:     "Unit Price",
	Taxable:       "Taxable (AED)",
	VATRate:       "VAT %",
	VAT:           "VAT (AED)",
	LineTotal:     "Total (AED)",
	Subtotal:      "Subtotal (AED)",
	TotalVAT:      "VAT Amount (AED)",
	TotalDue:      "Amount Due (AED)",
	Declaration:   "We declare that the information above is true and accurate.",
	Signature:     "Authorized Signature",
	QFZPNote:      "Issued by a Qualifying Free Zone Person under Cabinet Decision No. 55 of 2023.",
}

var arabicLabels = labelSet{
	TaxInvoice:    "فاتورة ضريبية",
	InvoiceNumber: "رقم الفاتورة",
	IssueDate:     "تاريخ الإصدار",
	DueDate:       "تاريخ الاستحقاق",
	Supplier:      "المورد",
	Customer:      "العميل",
	TRN:           "الرقم الضريبي",
	Description:   "الوصف",
	Quantity:      "الكمية",
	UnitPrice:     "سعر الوحدة",
	Taxable:       "المبلغ الخاضع (درهم)",
	VATRate:       "نسبة الضريبة",
	VAT:           "الضريبة (درهم)",
	LineTotal:     "الإجمالي (درهم)",
	Subtotal:      "المجموع الفرعي (درهم)",
	TotalVAT:      "قيمة الضريبة (درهم)",
	TotalDue:      "المبلغ المستحق (درهم)",
	Declaration:   "نقر بأن المعلومات الواردة أعلاه صحيحة ودقيقة.",
	Signature:     "التوقيع المعتمد",
	QFZPNote:      "صادرة عن شخص مؤهل في المنطقة الحرة بموجب قرار مجلس الوزراء رقم 55 لسنة 2023.",
}

// labelsFor returns the label set of a locale; unknown locales fall back to
// English.
func labelsFor(locale Locale) labelSet {
	if locale == LocaleArabic {
		return arabicLabels
	}
	return englishLabels
}
