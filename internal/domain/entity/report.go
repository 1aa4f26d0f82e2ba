package entity

// Sentinel values used for the placeholder row of a user with no
// transactions.
const (
	// ReportNoDate is the literal placed in the Transaction Date column.
	ReportNoDate = "N/A"

	// ReportNoActivity is the literal placed in the Activity Type column.
	ReportNoActivity = "No Transactions"

	// ReportPlaceholderType is the type recorded for placeholder rows.
	// "earn" here is a placeholder, not a real earning event; the value is
	// the established report contract and changing it would alter what
	// downstream spreadsheet consumers see. Flag to stakeholders before
	// changing.
	ReportPlaceholderType = TransactionEarn
)

// ReportRow is the flattened join of one User and zero-or-one Transaction.
// It is derived and ephemeral, used only for the export workbook.
type ReportRow struct {
	UserID          string
	Username        string
	Email           string
	PhoneNumber     string
	DOB             string
	Height          string
	Weight          string
	Gender          string
	BloodGroup      string
	CreditBalance   float64
	TransactionDate string
	TransactionType TransactionType
	ActivityType    string
	Amount          float64
}

// ReportColumns returns the workbook header row. Order and spelling match
// the report contract, including the embedded spaces.
func ReportColumns() []string {
	return []string{
		"UserID",
		"Username",
		"Email",
		"PhoneNumber",
		"DOB",
		"Height",
		"Weight",
		"Gender",
		"Blood Group",
		"Credit Balance",
		"Transaction Date",
		"Transaction Type",
		"Activity Type",
		"Amount",
	}
}
