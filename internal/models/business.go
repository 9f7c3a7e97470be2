package models

// BusinessProfile is the validated form submission describing a local
// business. It exists only for the duration of one audit request.
type BusinessProfile struct {
	BusinessName   string `json:"businessName" binding:"required"`
	BusinessType   string `json:"businessType" binding:"required"`
	Location       string `json:"location" binding:"required"`
	PrimaryService string `json:"primaryService" binding:"required"`
	WebsiteURL     string `json:"websiteUrl" binding:"omitempty,url"`
	GMBUrl         string `json:"gmbUrl" binding:"omitempty,url"`
	IdealCustomer  string `json:"idealCustomer"`
	MainGoal       string `json:"mainGoal"`
	StreetAddress  string `json:"streetAddress"`
	Email          string `json:"email" binding:"omitempty,email"`
}
