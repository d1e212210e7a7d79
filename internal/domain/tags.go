package domain

// Domain identifies the subject area a presentation belongs to. It is used
// only to select the ruleset string injected into slide-writing prompts and
// carries no other state.
type Domain string

// Supported domain tags.
const (
	DomainGeneral     Domain = "general"
	DomainTechnical   Domain = "technical"
	DomainMathematics Domain = "mathematics"
	DomainLaw         Domain = "law"
	DomainMedicine    Domain = "medicine"
)

// Audience identifies who the presentation is written for.
type Audience string

// Supported audience tags.
const (
	AudienceGeneral   Audience = "general"
	AudienceTechnical Audience = "technical"
)

// ParseDomain validates and normalizes a domain tag string. An empty string
// resolves to DomainGeneral.
func ParseDomain(s string) (Domain, error) {
	if s == "" {
		return DomainGeneral, nil
	}
	d := Domain(s)
	switch d {
	case DomainGeneral, DomainTechnical, DomainMathematics, DomainLaw, DomainMedicine:
		return d, nil
	default:
		return "", ErrInvalidDomain
	}
}

// ParseAudience validates and normalizes an audience tag string. An empty
// string resolves to AudienceGeneral.
func ParseAudience(s string) (Audience, error) {
	if s == "" {
		return AudienceGeneral, nil
	}
	a := Audience(s)
	switch a {
	case AudienceGeneral, AudienceTechnical:
		return a, nil
	default:
		return "", ErrInvalidAudience
	}
}
