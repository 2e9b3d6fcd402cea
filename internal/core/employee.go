package core

import "time"

// EmployeeRecord is one stored onboarding submission.
//
// Every domain field is optional: nil means the value was not submitted and
// is stored as SQL NULL. The db tags double as the column names used by the
// insert, the select and the CSV export.
type EmployeeRecord struct {
	ID int64 `json:"id" db:"id"`

	FullName         *string `json:"full_name" db:"full_name"`
	DOB              *string `json:"dob" db:"dob"`
	Gender           *string `json:"gender" db:"gender"`
	Mobile           *string `json:"mobile" db:"mobile"`
	Email            *string `json:"email" db:"email"`
	CurrentAddress   *string `json:"current_address" db:"current_address"`
	PermanentAddress *string `json:"permanent_address" db:"permanent_address"`
	EmergencyContact *string `json:"emergency_contact" db:"emergency_contact"`
	DrivingLicense   *string `json:"driving_license" db:"driving_license"`
	Bike             *string `json:"bike" db:"bike"`
	Aadhaar          *string `json:"aadhaar" db:"aadhaar"`
	PAN              *string `json:"pan" db:"pan"`

	Photo             *string `json:"photo" db:"photo"`
	Resume            *string `json:"resume" db:"resume"`
	EducationList     *string `json:"education_list" db:"education_list"`
	ExperienceLetters *string `json:"experience_letters" db:"experience_letters"`
	RelievingLetter   *string `json:"relieving_letter" db:"relieving_letter"`
	SalarySlips       *string `json:"salary_slips" db:"salary_slips"`

	BankAccount *string `json:"bank_account" db:"bank_account"`
	BankName    *string `json:"bank_name" db:"bank_name"`
	IFSC        *string `json:"ifsc" db:"ifsc"`
	TaxDetails  *string `json:"tax_details" db:"tax_details"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DomainColumns lists the submitted columns in record order.
// Insert placeholders and export columns are derived from it.
var DomainColumns = []string{
	"full_name",
	"dob",
	"gender",
	"mobile",
	"email",
	"current_address",
	"permanent_address",
	"emergency_contact",
	"driving_license",
	"bike",
	"aadhaar",
	"pan",
	"photo",
	"resume",
	"education_list",
	"experience_letters",
	"relieving_letter",
	"salary_slips",
	"bank_account",
	"bank_name",
	"ifsc",
	"tax_details",
}

// domainValues returns the domain fields aligned with DomainColumns.
func (r *EmployeeRecord) domainValues() []*string {
	return []*string{
		r.FullName,
		r.DOB,
		r.Gender,
		r.Mobile,
		r.Email,
		r.CurrentAddress,
		r.PermanentAddress,
		r.EmergencyContact,
		r.DrivingLicense,
		r.Bike,
		r.Aadhaar,
		r.PAN,
		r.Photo,
		r.Resume,
		r.EducationList,
		r.ExperienceLetters,
		r.RelievingLetter,
		r.SalarySlips,
		r.BankAccount,
		r.BankName,
		r.IFSC,
		r.TaxDetails,
	}
}
