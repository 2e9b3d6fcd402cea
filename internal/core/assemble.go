package core

// FormValues holds the text parts of a submission keyed by form field name.
// Only the first value of a repeated field is kept.
type FormValues map[string]string

// FileNames holds the stored file names per upload slot, comma-joined in
// upload order. Slots without files are absent.
type FileNames map[string]string

// FormField maps an incoming form field name to its column.
type FormField struct {
	Name   string
	Column string
}

// TextFields lists every text form field the onboarding form submits.
var TextFields = []FormField{
	{Name: "fullName", Column: "full_name"},
	{Name: "dob", Column: "dob"},
	{Name: "gender", Column: "gender"},
	{Name: "mobile", Column: "mobile"},
	{Name: "email", Column: "email"},
	{Name: "currentAddress", Column: "current_address"},
	{Name: "permanentAddress", Column: "permanent_address"},
	{Name: "emergencyContact", Column: "emergency_contact"},
	{Name: "drivingLicense", Column: "driving_license"},
	{Name: "bike", Column: "bike"},
	{Name: "aadhaar", Column: "aadhaar"},
	{Name: "pan", Column: "pan"},
	{Name: "educationList", Column: "education_list"},
	{Name: "bankAccount", Column: "bank_account"},
	{Name: "bankName", Column: "bank_name"},
	{Name: "ifsc", Column: "ifsc"},
	{Name: "taxDetails", Column: "tax_details"},
}

// AssembleRecord maps raw form values and stored file names onto the fixed
// record shape. Values are copied as-is; a missing or empty value becomes nil.
func AssembleRecord(form FormValues, files FileNames) EmployeeRecord {
	return EmployeeRecord{
		FullName:         optional(form, "fullName"),
		DOB:              optional(form, "dob"),
		Gender:           optional(form, "gender"),
		Mobile:           optional(form, "mobile"),
		Email:            optional(form, "email"),
		CurrentAddress:   optional(form, "currentAddress"),
		PermanentAddress: optional(form, "permanentAddress"),
		EmergencyContact: optional(form, "emergencyContact"),
		DrivingLicense:   optional(form, "drivingLicense"),
		Bike:             optional(form, "bike"),
		Aadhaar:          optional(form, "aadhaar"),
		PAN:              optional(form, "pan"),

		Photo:             optional(files, "photo"),
		Resume:            optional(files, "resume"),
		EducationList:     optional(form, "educationList"),
		ExperienceLetters: optional(files, "experienceLetters"),
		RelievingLetter:   optional(files, "relievingLetter"),
		SalarySlips:       optional(files, "salarySlips"),

		BankAccount: optional(form, "bankAccount"),
		BankName:    optional(form, "bankName"),
		IFSC:        optional(form, "ifsc"),
		TaxDetails:  optional(form, "taxDetails"),
	}
}

func optional[M ~map[string]string](m M, key string) *string {
	v, ok := m[key]
	if !ok || v == "" {
		return nil
	}
	return &v
}
