package porter

import (
	"fmt"
	"time"
)

// Pass is the platform-agnostic representation of a wallet pass.
// IDs are opaque strings scoped by the provider's issuer namespace; they are not
// checked for uniqueness locally.
type Pass struct {
	ID      string
	ClassID string
	Type    PassType
	Header  PassHeader
	// Barcode is nil when the pass has no scannable code.
	Barcode *Barcode
	// Fields are shown on the pass in slice order.
	Fields        []PassField
	LinkedObjects []string
	State         PassState
	// ValidTimeInterval is nil when the pass has no validity window.
	ValidTimeInterval *TimeInterval
	UpdatedAt         *time.Time
}

// PassType is the kind of pass.
type PassType int

const (
	PassTypeGeneric PassType = iota
	PassTypeEventTicket
	PassTypeFlight
	PassTypeGiftCard
	PassTypeLoyalty
	PassTypeOffer
	PassTypeTransit
)

// String implements the [fmt.Stringer] interface.
func (t PassType) String() string {
	switch t {
	case PassTypeGeneric:
		return "generic"
	case PassTypeEventTicket:
		return "event_ticket"
	case PassTypeFlight:
		return "flight"
	case PassTypeGiftCard:
		return "gift_card"
	case PassTypeLoyalty:
		return "loyalty"
	case PassTypeOffer:
		return "offer"
	case PassTypeTransit:
		return "transit"
	}

	return fmt.Sprintf("PassType(%d)", int(t))
}

// PassHeader holds what is displayed at the top of a pass.
type PassHeader struct {
	Title    string
	Subtitle *string
	Logo     *Image
	// BackgroundColor and ForegroundColor are hex strings like "#4285F4".
	// They are passed through unvalidated.
	BackgroundColor *string
	ForegroundColor *string
}

// Image is a remotely hosted image resource.
type Image struct {
	SourceURI string
	AltText   *string
}

// Barcode is the scannable code of a pass.
type Barcode struct {
	Format        BarcodeFormat
	Value         string
	AlternateText *string
}

// BarcodeFormat is the symbology used to encode a barcode value.
type BarcodeFormat int

const (
	BarcodeFormatQRCode BarcodeFormat = iota
	BarcodeFormatPDF417
	BarcodeFormatAztec
	BarcodeFormatCode128
)

// String implements the [fmt.Stringer] interface.
func (f BarcodeFormat) String() string {
	switch f {
	case BarcodeFormatQRCode:
		return "qr_code"
	case BarcodeFormatPDF417:
		return "pdf417"
	case BarcodeFormatAztec:
		return "aztec"
	case BarcodeFormatCode128:
		return "code128"
	}

	return fmt.Sprintf("BarcodeFormat(%d)", int(f))
}

// PassField is a custom key/label/value entry displayed on a pass.
type PassField struct {
	// Key is a stable identifier for the field.
	Key           string
	Label         string
	Value         string
	TextAlignment *TextAlignment
}

// TextAlignment controls how a field value is aligned.
type TextAlignment int

const (
	TextAlignmentNatural TextAlignment = iota
	TextAlignmentLeft
	TextAlignmentCenter
	TextAlignmentRight
)

// String implements the [fmt.Stringer] interface.
func (a TextAlignment) String() string {
	switch a {
	case TextAlignmentNatural:
		return "natural"
	case TextAlignmentLeft:
		return "left"
	case TextAlignmentCenter:
		return "center"
	case TextAlignmentRight:
		return "right"
	}

	return fmt.Sprintf("TextAlignment(%d)", int(a))
}

// PassState is the lifecycle state of a pass.
type PassState int

const (
	PassStateActive PassState = iota
	PassStateInactive
	PassStateExpired
	PassStateCompleted
)

// String implements the [fmt.Stringer] interface.
func (s PassState) String() string {
	switch s {
	case PassStateActive:
		return "active"
	case PassStateInactive:
		return "inactive"
	case PassStateExpired:
		return "expired"
	case PassStateCompleted:
		return "completed"
	}

	return fmt.Sprintf("PassState(%d)", int(s))
}

// TimeInterval is a validity window. End is nil for an open-ended interval.
type TimeInterval struct {
	Start time.Time
	End   *time.Time
}

// PassMessage is a message shown to the holders of a pass.
type PassMessage struct {
	Header    *string
	Body      string
	StartTime *time.Time
	EndTime   *time.Time
}

// PassClass is a template shared by passes of the same kind.
type PassClass struct {
	ID           string
	Type         PassType
	IssuerName   string
	ReviewStatus ReviewStatus
}

// ReviewStatus is the provider's review state of a class.
type ReviewStatus int

const (
	ReviewStatusDraft ReviewStatus = iota
	ReviewStatusUnderReview
	ReviewStatusApproved
	ReviewStatusRejected
)

// String implements the [fmt.Stringer] interface.
func (r ReviewStatus) String() string {
	switch r {
	case ReviewStatusDraft:
		return "draft"
	case ReviewStatusUnderReview:
		return "under_review"
	case ReviewStatusApproved:
		return "approved"
	case ReviewStatusRejected:
		return "rejected"
	}

	return fmt.Sprintf("ReviewStatus(%d)", int(r))
}
