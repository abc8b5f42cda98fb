package identity

// DomainId identifies a domain by its name.
type DomainId struct {
	name Name
}

func NewDomainId(name Name) DomainId {
	return DomainId{name}
}

// ParseDomainId parses a domain name.
func ParseDomainId(s string) (DomainId, error) {
	name, err := ParseName(s)
	if err != nil {
		return DomainId{}, err
	}
	return DomainId{name}, nil
}

func (d DomainId) Name() Name {
	return d.name
}

func (d DomainId) String() string {
	return d.name.String()
}

func (d DomainId) Compare(other DomainId) int {
	return d.name.Compare(other.name)
}

func (d DomainId) MarshalText() ([]byte, error) {
	return d.name.MarshalText()
}

func (d *DomainId) UnmarshalText(text []byte) error {
	return d.name.UnmarshalText(text)
}
