// Package templates renders the onboarding form page. The markup lives in
// form.templ; run `templ generate` after editing it.
package templates

import (
	"fmt"

	"github.com/JonMunkholm/prejoin/internal/core"
)

// Input describes one control on the onboarding form.
type Input struct {
	Name     string
	Label    string
	Type     string // text, date, email, tel, textarea, select, file
	Options  []string
	Multiple bool
}

// FormParams configures the onboarding page.
type FormParams struct {
	Title string
	Text  []Input
	Files []Input
}

var inputHints = map[string]Input{
	"fullName":         {Label: "Full name", Type: "text"},
	"dob":              {Label: "Date of birth", Type: "date"},
	"gender":           {Label: "Gender", Type: "select", Options: []string{"Male", "Female", "Other"}},
	"mobile":           {Label: "Mobile", Type: "tel"},
	"email":            {Label: "Email", Type: "email"},
	"currentAddress":   {Label: "Current address", Type: "textarea"},
	"permanentAddress": {Label: "Permanent address", Type: "textarea"},
	"emergencyContact": {Label: "Emergency contact", Type: "text"},
	"drivingLicense":   {Label: "Driving license no.", Type: "text"},
	"bike":             {Label: "Bike (model / registration)", Type: "text"},
	"aadhaar":          {Label: "Aadhaar no.", Type: "text"},
	"pan":              {Label: "PAN", Type: "text"},
	"educationList":    {Label: "Education", Type: "textarea"},
	"bankAccount":      {Label: "Bank account no.", Type: "text"},
	"bankName":         {Label: "Bank name", Type: "text"},
	"ifsc":             {Label: "IFSC", Type: "text"},
	"taxDetails":       {Label: "Tax details", Type: "textarea"},

	"photo":             {Label: "Photo"},
	"resume":            {Label: "Resume"},
	"experienceLetters": {Label: "Experience letters"},
	"relievingLetter":   {Label: "Relieving letter"},
	"salarySlips":       {Label: "Salary slips"},
}

// DefaultFormParams builds the page from the record's text fields and
// upload slots.
func DefaultFormParams() FormParams {
	p := FormParams{Title: "Pre-joining employee form"}
	for _, f := range core.TextFields {
		in := inputHints[f.Name]
		in.Name = f.Name
		if in.Label == "" {
			in.Label = f.Name
		}
		if in.Type == "" {
			in.Type = "text"
		}
		p.Text = append(p.Text, in)
	}
	for _, slot := range core.UploadSlots {
		in := inputHints[slot.Field]
		in.Name = slot.Field
		in.Type = "file"
		in.Multiple = slot.MaxCount > 1
		if in.Label == "" {
			in.Label = slot.Field
		}
		if in.Multiple {
			in.Label = fmt.Sprintf("%s (up to %d)", in.Label, slot.MaxCount)
		}
		p.Files = append(p.Files, in)
	}
	return p
}
