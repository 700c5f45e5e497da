package contact

import "strings"

// AttributeClass selects which multi-valued attribute a label belongs to.
type AttributeClass string

const (
	// ClassPhone labels phone numbers.
	ClassPhone AttributeClass = "phone"
	// ClassEmail labels email addresses.
	ClassEmail AttributeClass = "email"
	// ClassPostal labels postal addresses.
	ClassPostal AttributeClass = "postal"
	// ClassWebsite labels URL addresses.
	ClassWebsite AttributeClass = "website"
)

// LabelCode is the platform-neutral attribute type code. Backends translate
// their native vocabulary (integer type codes on the provider platform,
// CNLabel constants on the object-graph platform) into LabelCode before
// resolution.
type LabelCode int

const (
	// LabelCustom carries a free-text label alongside the value.
	LabelCustom LabelCode = iota
	// LabelHome marks a home attribute.
	LabelHome
	// LabelWork marks a work attribute.
	LabelWork
	// LabelMobile marks a mobile phone number.
	LabelMobile
	// LabelMain marks a main phone number.
	LabelMain
	// LabelOther marks everything else.
	LabelOther
)

// Resolve maps a (class, code, custom label) triple to the normalized label
// vocabulary: "home", "work", "mobile", "main", "other", or a verbatim
// custom label.
//
// Resolve is total and pure: every code, including out-of-range values,
// resolves to a non-empty label, and identical inputs always give identical
// output. Mobile and main are honored for phones only; a custom code with an
// empty label falls back to "other".
func Resolve(class AttributeClass, code LabelCode, raw string) string {
	switch code {
	case LabelHome:
		return "home"
	case LabelWork:
		return "work"
	case LabelMobile:
		if class == ClassPhone {
			return "mobile"
		}
		return "other"
	case LabelMain:
		if class == ClassPhone {
			return "main"
		}
		return "other"
	case LabelCustom:
		if strings.TrimSpace(raw) != "" {
			return raw
		}
		return "other"
	default:
		return "other"
	}
}
