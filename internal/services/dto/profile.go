package dto

// CandidateProfileRequest carries every mutable profile field. A save
// replaces the whole field set: fields left empty here clear the stored
// values.
type CandidateProfileRequest struct {
	UserID      uint   `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Headline    string `json:"headline"`
	Bio         string `json:"bio"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender      string `json:"gender"`
	Portfolio   string `json:"portfolio"`
	Linkedin    string `json:"linkedin"`
	Github      string `json:"github"`
	Website     string `json:"website"`
}

type CandidateIDResponse struct {
	CandidateID uint `json:"candidateId"`
}
