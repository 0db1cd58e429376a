package porter

import (
	"slices"
	"time"
)

// Builder assembles a [Pass] incrementally:
//
//	pass := porter.NewBuilder("issuer.pass001", "issuer.class001").
//		PassType(porter.PassTypeEventTicket).
//		Title("Concert Ticket").
//		BarcodeWithText(porter.BarcodeFormatQRCode, "TICKET123", "TICKET123").
//		Field("seat", "Seat", "A23").
//		Build()
//
// Inputs are accepted as-is. A Builder is consumed by [Builder.Build]; using it
// afterwards panics.
type Builder struct {
	pass  Pass
	built bool
	now   func() time.Time
}

// NewBuilder starts an active generic pass with an empty title.
func NewBuilder(id, classID string) *Builder {
	return &Builder{
		pass: Pass{
			ID:      id,
			ClassID: classID,
			Type:    PassTypeGeneric,
			State:   PassStateActive,
			Fields:  []PassField{},
		},
		now: time.Now,
	}
}

// Clock sets the time source [Builder.ValidUntil] uses for a missing start.
func (b *Builder) Clock(now func() time.Time) *Builder {
	b.mustOpen()
	b.now = now
	return b
}

func (b *Builder) mustOpen() {
	if b.built {
		panic("porter: Builder used after Build")
	}
}

// PassType sets the kind of pass.
func (b *Builder) PassType(t PassType) *Builder {
	b.mustOpen()
	b.pass.Type = t
	return b
}

// Title sets the prominently displayed title.
func (b *Builder) Title(title string) *Builder {
	b.mustOpen()
	b.pass.Header.Title = title
	return b
}

func (b *Builder) Subtitle(subtitle string) *Builder {
	b.mustOpen()
	b.pass.Header.Subtitle = &subtitle
	return b
}

// Logo sets the logo image. altText may be nil.
func (b *Builder) Logo(sourceURI string, altText *string) *Builder {
	b.mustOpen()
	b.pass.Header.Logo = &Image{SourceURI: sourceURI, AltText: altText}
	return b
}

// BackgroundColor sets the background color, e.g. "#FF0000".
func (b *Builder) BackgroundColor(color string) *Builder {
	b.mustOpen()
	b.pass.Header.BackgroundColor = &color
	return b
}

// ForegroundColor sets the foreground color, e.g. "#FFFFFF".
func (b *Builder) ForegroundColor(color string) *Builder {
	b.mustOpen()
	b.pass.Header.ForegroundColor = &color
	return b
}

// Barcode replaces the barcode with one that has no alternate text.
func (b *Builder) Barcode(format BarcodeFormat, value string) *Builder {
	b.mustOpen()
	b.pass.Barcode = &Barcode{Format: format, Value: value}
	return b
}

// BarcodeWithText replaces the barcode with one showing text below the code.
func (b *Builder) BarcodeWithText(format BarcodeFormat, value, text string) *Builder {
	b.mustOpen()
	b.pass.Barcode = &Barcode{Format: format, Value: value, AlternateText: &text}
	return b
}

// Field appends a field. Fields are displayed in the order they are added.
func (b *Builder) Field(key, label, value string) *Builder {
	b.mustOpen()
	b.pass.Fields = append(b.pass.Fields, PassField{Key: key, Label: label, Value: value})
	return b
}

// FieldWithAlignment appends a field with an explicit text alignment.
func (b *Builder) FieldWithAlignment(key, label, value string, alignment TextAlignment) *Builder {
	b.mustOpen()
	b.pass.Fields = append(b.pass.Fields, PassField{
		Key:           key,
		Label:         label,
		Value:         value,
		TextAlignment: &alignment,
	})
	return b
}

// LinkObject links another pass or offer by ID.
func (b *Builder) LinkObject(objectID string) *Builder {
	b.mustOpen()
	b.pass.LinkedObjects = append(b.pass.LinkedObjects, objectID)
	return b
}

func (b *Builder) State(state PassState) *Builder {
	b.mustOpen()
	b.pass.State = state
	return b
}

// ValidFrom sets the start of the validity interval, creating it if needed.
func (b *Builder) ValidFrom(start time.Time) *Builder {
	b.mustOpen()
	if b.pass.ValidTimeInterval == nil {
		b.pass.ValidTimeInterval = &TimeInterval{}
	}
	b.pass.ValidTimeInterval.Start = start
	return b
}

// ValidUntil sets the end of the validity interval. If no start has been set
// the interval starts now, as reported by the builder's clock.
func (b *Builder) ValidUntil(end time.Time) *Builder {
	b.mustOpen()
	if b.pass.ValidTimeInterval == nil {
		b.pass.ValidTimeInterval = &TimeInterval{Start: b.now()}
	}
	b.pass.ValidTimeInterval.End = &end
	return b
}

// Build returns the finished pass and consumes the builder.
func (b *Builder) Build() Pass {
	b.mustOpen()
	b.built = true

	p := b.pass
	p.Fields = slices.Clone(p.Fields)
	p.LinkedObjects = slices.Clone(p.LinkedObjects)
	b.pass = Pass{}

	return p
}
