package dataset

import (
	"errors"
	"fmt"
)

// Section names one top-level subset of the payload. The value is the JSON key
// and the sub-path used by the network surface.
type Section string

const (
	SectionUser      Section = "user"
	SectionDashboard Section = "dashboard"
	SectionInvoices  Section = "invoices"
	SectionExpenses  Section = "expenses"
	SectionWallet    Section = "wallet"
	SectionProfile   Section = "profile"
)

// ErrSectionNotFound is returned when a section name is not part of the
// contract. A loaded payload always carries all six sections, so hitting this
// from a typed accessor means the contract itself was broken.
var ErrSectionNotFound = errors.New("section not found")

var sections = []Section{
	SectionUser,
	SectionDashboard,
	SectionInvoices,
	SectionExpenses,
	SectionWallet,
	SectionProfile,
}

// Sections returns the six sections in canonical order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

func (s Section) String() string {
	return string(s)
}

// IsValid reports whether s is one of the six contract sections.
func (s Section) IsValid() bool {
	for _, known := range sections {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSection validates a section name.
func ParseSection(name string) (Section, error) {
	s := Section(name)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
	return s, nil
}

// Section returns a pointer to the named section of p.
func (p *Payload) Section(s Section) (any, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: %q (no payload)", ErrSectionNotFound, s)
	}
	switch s {
	case SectionUser:
		return &p.User, nil
	case SectionDashboard:
		return &p.Dashboard, nil
	case SectionInvoices:
		return &p.Invoices, nil
	case SectionExpenses:
		return &p.Expenses, nil
	case SectionWallet:
		return &p.Wallet, nil
	case SectionProfile:
		return &p.Profile, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, s)
}

// newSection allocates an empty value of the named section's type.
func newSection(s Section) (validator, error) {
	switch s {
	case SectionUser:
		return &User{}, nil
	case SectionDashboard:
		return &Dashboard{}, nil
	case SectionInvoices:
		return &Invoices{}, nil
	case SectionExpenses:
		return &Expenses{}, nil
	case SectionWallet:
		return &Wallet{}, nil
	case SectionProfile:
		return &Profile{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, s)
}
