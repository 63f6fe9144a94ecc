package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/konverta/leadscan"
)

func extractForms(doc *goquery.Document) []leadscan.Form {
	forms := []leadscan.Form{}

	doc.Find("form").Each(func(_ int, sel *goquery.Selection) {
		form := leadscan.Form{
			Fields: []leadscan.FormField{},
			Type:   leadscan.FormUnknown,
		}

		sel.Find("input, textarea, select").Each(func(_ int, input *goquery.Selection) {
			inputType := strings.ToLower(attrOr(input, "type", "text"))
			if inputType == "hidden" {
				return
			}

			name, _ := input.Attr("name")
			placeholder, _ := input.Attr("placeholder")
			_, required := input.Attr("required")

			form.Fields = append(form.Fields, leadscan.FormField{
				Type:        inputType,
				Name:        name,
				Placeholder: placeholder,
				Required:    required,
			})

			lowerName := strings.ToLower(name)
			lowerPlaceholder := strings.ToLower(placeholder)
			if inputType == "email" || strings.Contains(lowerName, "email") || strings.Contains(lowerPlaceholder, "email") {
				form.HasEmailField = true
			}
			if strings.Contains(lowerName, "name") || strings.Contains(lowerName, "namn") {
				form.HasNameField = true
			}
			if strings.Contains(lowerName, "phone") || strings.Contains(lowerName, "telefon") || strings.Contains(lowerName, "tel") {
				form.HasPhoneField = true
			}
		})

		form.SubmitText = submitText(sel)
		form.Type = classifyForm(sel, form)
		forms = append(forms, form)
	})

	return forms
}

func submitText(form *goquery.Selection) string {
	if btn := form.Find(`button[type="submit"]`).First(); btn.Length() > 0 {
		return cleanText(btn)
	}
	if input := form.Find(`input[type="submit"]`).First(); input.Length() > 0 {
		return attrOr(input, "value", "Submit")
	}
	return ""
}

// classifyForm determines the form's purpose from its field mix. An email
// field without a phone field reads as a newsletter signup; email plus name
// is a contact form when long and a lead capture form when short; otherwise
// a search class or id marks a search form.
func classifyForm(sel *goquery.Selection, form leadscan.Form) leadscan.FormType {
	switch {
	case form.HasEmailField && !form.HasPhoneField:
		return leadscan.FormNewsletter
	case form.HasEmailField && form.HasNameField:
		if len(form.Fields) > 4 {
			return leadscan.FormContact
		}
		return leadscan.FormLeadCapture
	case strings.Contains(classAndID(sel), "search"):
		return leadscan.FormSearch
	}
	return leadscan.FormUnknown
}

func attrOr(s *goquery.Selection, name, fallback string) string {
	if v, ok := s.Attr(name); ok {
		return v
	}
	return fallback
}
