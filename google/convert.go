package google

import (
	"fmt"

	"thde.io/porter"
)

// FromPass converts a unified pass to a generic object.
//
// The conversion is lossy: logo, foreground color, validity interval, update
// time and field alignment have no counterpart here and are dropped.
func FromPass(pass porter.Pass) GenericObject {
	obj := GenericObject{
		ID:        pass.ID,
		ClassID:   pass.ClassID,
		State:     encodeState(pass.State),
		CardTitle: NewLocalizedString(pass.Header.Title),
	}

	if b := pass.Barcode; b != nil {
		obj.Barcode = &Barcode{
			Type:  encodeBarcodeFormat(b.Format),
			Value: b.Value,
		}
		if b.AlternateText != nil {
			obj.Barcode.AlternateText = *b.AlternateText
		}
	}

	if pass.Header.Subtitle != nil {
		obj.Header = NewLocalizedString(*pass.Header.Subtitle)
	}
	if pass.Header.BackgroundColor != nil {
		obj.HexBackgroundColor = *pass.Header.BackgroundColor
	}

	// An empty list must stay absent rather than becoming [].
	if len(pass.Fields) > 0 {
		obj.TextModulesData = make([]TextModuleData, 0, len(pass.Fields))
		for _, f := range pass.Fields {
			obj.TextModulesData = append(obj.TextModulesData, TextModuleData{
				ID:     f.Key,
				Header: f.Label,
				Body:   f.Value,
			})
		}
	}

	if len(pass.LinkedObjects) > 0 {
		obj.LinkedOfferIDs = append([]string(nil), pass.LinkedObjects...)
	}

	return obj
}

// ToPass converts a generic object to a unified pass.
// Unknown barcode types decode as QR codes and unknown states as active.
func ToPass(obj GenericObject) porter.Pass {
	pass := porter.Pass{
		ID:      obj.ID,
		ClassID: obj.ClassID,
		Type:    porter.PassTypeGeneric,
		State:   decodeState(obj.State),
		Header: porter.PassHeader{
			Title: obj.CardTitle.Default(),
		},
		Fields:        make([]porter.PassField, 0, len(obj.TextModulesData)),
		LinkedObjects: append([]string{}, obj.LinkedOfferIDs...),
	}

	if obj.Barcode != nil {
		pass.Barcode = &porter.Barcode{
			Format: decodeBarcodeFormat(obj.Barcode.Type),
			Value:  obj.Barcode.Value,
		}
		if obj.Barcode.AlternateText != "" {
			text := obj.Barcode.AlternateText
			pass.Barcode.AlternateText = &text
		}
	}

	if obj.Header != nil && obj.Header.DefaultValue != nil {
		subtitle := obj.Header.DefaultValue.Value
		pass.Header.Subtitle = &subtitle
	}
	if obj.HexBackgroundColor != "" {
		color := obj.HexBackgroundColor
		pass.Header.BackgroundColor = &color
	}

	for _, m := range obj.TextModulesData {
		pass.Fields = append(pass.Fields, porter.PassField{
			Key:   m.ID,
			Label: m.Header,
			Value: m.Body,
		})
	}

	return pass
}

// FromPassClass converts a unified class to a generic class.
func FromPassClass(class porter.PassClass) GenericClass {
	return GenericClass{
		ID:           class.ID,
		IssuerName:   class.IssuerName,
		ReviewStatus: encodeReviewStatus(class.ReviewStatus),
	}
}

// ToPassClass converts a generic class to a unified class.
// Unknown review statuses decode as draft.
func ToPassClass(class GenericClass) porter.PassClass {
	return porter.PassClass{
		ID:           class.ID,
		Type:         porter.PassTypeGeneric,
		IssuerName:   class.IssuerName,
		ReviewStatus: decodeReviewStatus(class.ReviewStatus),
	}
}

// FromPassMessage converts a unified message to the addMessage wire form.
func FromPassMessage(msg porter.PassMessage) Message {
	m := Message{Body: msg.Body}
	if msg.Header != nil {
		m.Header = *msg.Header
	}

	if msg.StartTime != nil || msg.EndTime != nil {
		m.DisplayInterval = &TimeInterval{}
		if msg.StartTime != nil {
			m.DisplayInterval.Start = NewDateTime(*msg.StartTime)
		}
		if msg.EndTime != nil {
			m.DisplayInterval.End = NewDateTime(*msg.EndTime)
		}
	}

	return m
}

const (
	barcodeQRCode  = "QR_CODE"
	barcodePDF417  = "PDF_417"
	barcodeAztec   = "AZTEC"
	barcodeCode128 = "CODE_128"

	stateActive    = "ACTIVE"
	stateInactive  = "INACTIVE"
	stateExpired   = "EXPIRED"
	stateCompleted = "COMPLETED"

	reviewDraft       = "DRAFT"
	reviewUnderReview = "UNDER_REVIEW"
	reviewApproved    = "APPROVED"
	reviewRejected    = "REJECTED"
)

func encodeBarcodeFormat(f porter.BarcodeFormat) string {
	switch f {
	case porter.BarcodeFormatQRCode:
		return barcodeQRCode
	case porter.BarcodeFormatPDF417:
		return barcodePDF417
	case porter.BarcodeFormatAztec:
		return barcodeAztec
	case porter.BarcodeFormatCode128:
		return barcodeCode128
	}

	panic(fmt.Sprintf("google: unhandled %v", f))
}

func decodeBarcodeFormat(s string) porter.BarcodeFormat {
	switch s {
	case barcodePDF417:
		return porter.BarcodeFormatPDF417
	case barcodeAztec:
		return porter.BarcodeFormatAztec
	case barcodeCode128:
		return porter.BarcodeFormatCode128
	default:
		return porter.BarcodeFormatQRCode
	}
}

func encodeState(s porter.PassState) string {
	switch s {
	case porter.PassStateActive:
		return stateActive
	case porter.PassStateInactive:
		return stateInactive
	case porter.PassStateExpired:
		return stateExpired
	case porter.PassStateCompleted:
		return stateCompleted
	}

	panic(fmt.Sprintf("google: unhandled %v", s))
}

func decodeState(s string) porter.PassState {
	switch s {
	case stateInactive:
		return porter.PassStateInactive
	case stateExpired:
		return porter.PassStateExpired
	case stateCompleted:
		return porter.PassStateCompleted
	default:
		return porter.PassStateActive
	}
}

func encodeReviewStatus(r porter.ReviewStatus) string {
	switch r {
	case porter.ReviewStatusDraft:
		return reviewDraft
	case porter.ReviewStatusUnderReview:
		return reviewUnderReview
	case porter.ReviewStatusApproved:
		return reviewApproved
	case porter.ReviewStatusRejected:
		return reviewRejected
	}

	panic(fmt.Sprintf("google: unhandled %v", r))
}

func decodeReviewStatus(s string) porter.ReviewStatus {
	switch s {
	case reviewUnderReview:
		return porter.ReviewStatusUnderReview
	case reviewApproved:
		return porter.ReviewStatusApproved
	case reviewRejected:
		return porter.ReviewStatusRejected
	default:
		return porter.ReviewStatusDraft
	}
}
