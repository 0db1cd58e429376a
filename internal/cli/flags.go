package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"thde.io/porter"
)

// passOptions are the flags that describe a pass.
type passOptions struct {
	id              string
	classID         string
	title           string
	subtitle        string
	logo            string
	backgroundColor string
	barcode         string
	barcodeFormat   string
	barcodeText     string
	fields          []string
	links           []string
	state           string
	validFrom       string
	validUntil      string
}

func (o *passOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.id, "id", "", "Object ID suffix, a random UUID if empty")
	fs.StringVar(&o.classID, "class", "", "Class ID suffix")
	fs.StringVar(&o.title, "title", "", "Card title")
	fs.StringVar(&o.subtitle, "subtitle", "", "Header shown below the title")
	fs.StringVar(&o.logo, "logo", "", "Logo image URL")
	fs.StringVar(&o.backgroundColor, "background-color", "", "Background color as #rrggbb")
	fs.StringVar(&o.barcode, "barcode", "", "Barcode value")
	fs.StringVar(&o.barcodeFormat, "barcode-format", porter.BarcodeFormatQRCode.String(), "Barcode format (qr_code, pdf417, aztec, code128)")
	fs.StringVar(&o.barcodeText, "barcode-text", "", "Text shown below the barcode")
	fs.StringArrayVar(&o.fields, "field", nil, "Text field as key=label=value, repeatable")
	fs.StringSliceVar(&o.links, "link", nil, "Linked object IDs")
	fs.StringVar(&o.state, "state", porter.PassStateActive.String(), "Pass state (active, inactive, expired, completed)")
	fs.StringVar(&o.validFrom, "valid-from", "", "Start of validity (RFC 3339)")
	fs.StringVar(&o.validUntil, "valid-until", "", "End of validity (RFC 3339)")
}

// build turns the options into a pass with fully qualified IDs.
func (o *passOptions) build(qualify func(string) string, newID func() string) (porter.Pass, error) {
	if o.classID == "" {
		return porter.Pass{}, fmt.Errorf("--class is required")
	}

	id := o.id
	if id == "" {
		id = newID()
	}

	b := porter.NewBuilder(qualify(id), qualify(o.classID)).Title(o.title)

	if o.subtitle != "" {
		b.Subtitle(o.subtitle)
	}
	if o.logo != "" {
		b.Logo(o.logo, nil)
	}
	if o.backgroundColor != "" {
		b.BackgroundColor(o.backgroundColor)
	}

	if o.barcode != "" {
		format, err := parseBarcodeFormat(o.barcodeFormat)
		if err != nil {
			return porter.Pass{}, err
		}
		if o.barcodeText != "" {
			b.BarcodeWithText(format, o.barcode, o.barcodeText)
		} else {
			b.Barcode(format, o.barcode)
		}
	}

	for _, raw := range o.fields {
		key, label, value, err := parseField(raw)
		if err != nil {
			return porter.Pass{}, err
		}
		b.Field(key, label, value)
	}

	for _, link := range o.links {
		b.LinkObject(link)
	}

	state, err := parseState(o.state)
	if err != nil {
		return porter.Pass{}, err
	}
	b.State(state)

	if o.validFrom != "" {
		from, err := time.Parse(time.RFC3339, o.validFrom)
		if err != nil {
			return porter.Pass{}, fmt.Errorf("invalid --valid-from: %w", err)
		}
		b.ValidFrom(from)
	}
	if o.validUntil != "" {
		until, err := time.Parse(time.RFC3339, o.validUntil)
		if err != nil {
			return porter.Pass{}, fmt.Errorf("invalid --valid-until: %w", err)
		}
		b.ValidUntil(until)
	}

	return b.Build(), nil
}

// parseField splits key=label=value. The value may contain further '='.
func parseField(raw string) (key, label, value string, err error) {
	parts := strings.SplitN(raw, "=", 3)
	if len(parts) != 3 || parts[0] == "" {
		return "", "", "", fmt.Errorf("invalid field %q, want key=label=value", raw)
	}

	return parts[0], parts[1], parts[2], nil
}

func parseBarcodeFormat(name string) (porter.BarcodeFormat, error) {
	for _, f := range []porter.BarcodeFormat{
		porter.BarcodeFormatQRCode,
		porter.BarcodeFormatPDF417,
		porter.BarcodeFormatAztec,
		porter.BarcodeFormatCode128,
	} {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown barcode format %q", name)
}

func parseState(name string) (porter.PassState, error) {
	for _, s := range []porter.PassState{
		porter.PassStateActive,
		porter.PassStateInactive,
		porter.PassStateExpired,
		porter.PassStateCompleted,
	} {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown pass state %q", name)
}

func parseReviewStatus(name string) (porter.ReviewStatus, error) {
	for _, r := range []porter.ReviewStatus{
		porter.ReviewStatusDraft,
		porter.ReviewStatusUnderReview,
		porter.ReviewStatusApproved,
		porter.ReviewStatusRejected,
	} {
		if r.String() == name {
			return r, nil
		}
	}

	return 0, fmt.Errorf("unknown review status %q", name)
}
