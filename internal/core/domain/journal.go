package domain

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
const BalanceTolerance = 0.01

// JournalLine is a single line of a journal entry, bound to one account.
// At most one (and for a valid line exactly one) of DebitAmount/CreditAmount is non-zero.
type JournalLine struct {
	AccountID    string  `json:"accountId"`
	Description  string  `json:"description"`
	DebitAmount  float64 `json:"debitAmount,omitempty"`
	CreditAmount float64 `json:"creditAmount,omitempty"`
}

// JournalEntry represents a financial event composed of ordered lines.
type JournalEntry struct {
	ID          string        `json:"id,omitempty"`
	Period      string        `json:"period"`
	DocDate     string        `json:"docDate"`
	Reference   string        `json:"reference"`
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines"`
	Status      JournalStatus `json:"status,omitempty"`
	AuditFields
}

// IssueKind enumerates journal validation findings.
type IssueKind string

const (
	IssueMissingAccount     IssueKind = "MissingAccount"
	IssueMissingDescription IssueKind = "MissingDescription"
	IssueMissingAmount      IssueKind = "MissingAmount"
	IssueConflictingAmount  IssueKind = "ConflictingAmount"
	IssueNegativeAmount     IssueKind = "NegativeAmount"
	IssueDisallowedSide     IssueKind = "DisallowedSide"
	IssueMissingHeaderField IssueKind = "MissingHeaderField"
	IssueInsufficientLines  IssueKind = "InsufficientLines"
	IssueUnbalanced         IssueKind = "Unbalanced"
)

// Blocking reports whether an issue of this kind prevents saving.
// DisallowedSide is advisory only.
func (k IssueKind) Blocking() bool {
	return k != IssueDisallowedSide
}

// HeaderLine is the LineIndex used for issues that are not tied to a line.
const HeaderLine = -1

// ValidationIssue is a structured validation finding; it is data, never an error.
type ValidationIssue struct {
	Kind      IssueKind `json:"kind"`
	LineIndex int       `json:"lineIndex"`
	Field     string    `json:"field,omitempty"`
	Message   string    `json:"message"`
	Blocking  bool      `json:"blocking"`
}

// EntryValidation is the result of validating a whole journal entry.
type EntryValidation struct {
	TotalDebits  float64           `json:"totalDebits"`
	TotalCredits float64           `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
	Issues       []ValidationIssue `json:"issues"`
}

// BlockingIssues returns the subset of issues that prevent saving.
func (v EntryValidation) BlockingIssues() []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range v.Issues {
		if issue.Blocking {
			out = append(out, issue)
		}
	}
	return out
}

// CanSave reports whether the entry may be persisted or posted.
func (v EntryValidation) CanSave() bool {
	return v.IsBalanced && len(v.BlockingIssues()) == 0
}
