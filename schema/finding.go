package schema

const (
	FindingReportCollection = "findingReport"
)

// FindingReport keeps the findings produced for the newest day of a
// refresh and the findings that were already pushed to the account.
type FindingReport struct {
	ID               string   `json:"id" bson:"id"`
	AccountNumber    string   `json:"account_number" bson:"account_number"`
	Date             string   `json:"date" bson:"date"`
	Findings         []string `json:"findings" bson:"findings"`
	NotifiedFindings []string `json:"notified_findings" bson:"notified_findings"`
	Timestamp        int64    `json:"ts" bson:"ts"`
}

// PendingFindings returns the findings that have not been notified yet,
// keeping their original order.
func (r FindingReport) PendingFindings() []string {
	notified := make(map[string]struct{}, len(r.NotifiedFindings))
	for _, f := range r.NotifiedFindings {
		notified[f] = struct{}{}
	}

	pending := make([]string, 0)
	for _, f := range r.Findings {
		if _, ok := notified[f]; !ok {
			pending = append(pending, f)
		}
	}
	return pending
}
