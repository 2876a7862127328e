package entity

type Company struct {
	Name           string
	Website        string
	SupportEmail   string
	Phone          string
	Address        string
	BusinessType   string
	Description    string
	TargetAudience string
	Shipping       string
	Support        string
}
