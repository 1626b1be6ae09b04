package core

import (
	"encoding/json"
	"fmt"
)

// InvestmentType selects which metadata variant an investment carries.
type InvestmentType string

const (
	InvestmentCrypto      InvestmentType = "cryptocurrency"
	InvestmentBusiness    InvestmentType = "business"
	InvestmentDomain      InvestmentType = "domain"
	InvestmentCollectible InvestmentType = "collectible"
	InvestmentIP          InvestmentType = "intellectual_property"
	InvestmentOther       InvestmentType = "other"
)

type (
	CryptoMetadata struct {
		Ticker   string  `json:"ticker,omitempty"`
		Quantity float64 `json:"quantity,omitempty"`
		Platform string  `json:"platform,omitempty"`
	}

	BusinessMetadata struct {
		Ownership     float64 `json:"ownership,omitempty"` // percentage
		Industry      string  `json:"industry,omitempty"`
		AnnualRevenue float64 `json:"annualRevenue,omitempty"`
	}

	DomainMetadata struct {
		DomainName string `json:"domainName,omitempty"`
		Registrar  string `json:"registrar,omitempty"`
		ExpiryDate string `json:"expiryDate,omitempty"`
	}

	CollectibleMetadata struct {
		Category     string `json:"category,omitempty"`
		Condition    string `json:"condition,omitempty"`
		Authenticity string `json:"authenticity,omitempty"`
	}

	IPMetadata struct {
		IPType             string `json:"ipType,omitempty"`
		RegistrationNumber string `json:"registrationNumber,omitempty"`
		ExpiryDate         string `json:"expiryDate,omitempty"`
	}

	// InvestmentMetadata is a tagged union: exactly one variant is set,
	// matching the investment's Type. "other" carries none.
	InvestmentMetadata struct {
		Crypto      *CryptoMetadata      `json:"crypto,omitempty"`
		Business    *BusinessMetadata    `json:"business,omitempty"`
		Domain      *DomainMetadata      `json:"domain,omitempty"`
		Collectible *CollectibleMetadata `json:"collectible,omitempty"`
		IP          *IPMetadata          `json:"ip,omitempty"`
	}
)

// DecodeMetadata parses the raw metadata blob stored alongside an
// investment into the variant selected by typ. Empty blobs decode to an
// empty union.
func DecodeMetadata(typ InvestmentType, raw []byte) (InvestmentMetadata, error) {
	var md InvestmentMetadata
	if len(raw) == 0 || string(raw) == "{}" || string(raw) == "null" {
		return md, nil
	}

	var err error
	switch typ {
	case InvestmentCrypto:
		md.Crypto = &CryptoMetadata{}
		err = json.Unmarshal(raw, md.Crypto)
	case InvestmentBusiness:
		md.Business = &BusinessMetadata{}
		err = json.Unmarshal(raw, md.Business)
	case InvestmentDomain:
		md.Domain = &DomainMetadata{}
		err = json.Unmarshal(raw, md.Domain)
	case InvestmentCollectible:
		md.Collectible = &CollectibleMetadata{}
		err = json.Unmarshal(raw, md.Collectible)
	case InvestmentIP:
		md.IP = &IPMetadata{}
		err = json.Unmarshal(raw, md.IP)
	default:
		// "other" and unknown types carry no structured metadata.
		return md, nil
	}
	if err != nil {
		return InvestmentMetadata{}, fmt.Errorf("decode %s metadata: %w", typ, err)
	}
	return md, nil
}

// EncodeMetadata serializes the variant matching typ for storage. Variants
// not matching typ are ignored.
func EncodeMetadata(typ InvestmentType, md InvestmentMetadata) ([]byte, error) {
	var v any
	switch typ {
	case InvestmentCrypto:
		v = md.Crypto
	case InvestmentBusiness:
		v = md.Business
	case InvestmentDomain:
		v = md.Domain
	case InvestmentCollectible:
		v = md.Collectible
	case InvestmentIP:
		v = md.IP
	}
	if v == nil || isNilPointer(v) {
		return []byte("{}"), nil
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s metadata: %w", typ, err)
	}
	return out, nil
}

// Variant returns whichever metadata variant is set, or nil for plain
// investments.
func (md InvestmentMetadata) Variant() any {
	switch {
	case md.Crypto != nil:
		return md.Crypto
	case md.Business != nil:
		return md.Business
	case md.Domain != nil:
		return md.Domain
	case md.Collectible != nil:
		return md.Collectible
	case md.IP != nil:
		return md.IP
	}
	return nil
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *CryptoMetadata:
		return p == nil
	case *BusinessMetadata:
		return p == nil
	case *DomainMetadata:
		return p == nil
	case *CollectibleMetadata:
		return p == nil
	case *IPMetadata:
		return p == nil
	}
	return false
}
