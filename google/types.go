package google

// DefaultLanguage is the locale used for localized strings built by this package.
const DefaultLanguage = "en-US"

// GenericObject is a pass instance bound to a [GenericClass] through ClassID.
type GenericObject struct {
	ID      string `json:"id"`
	ClassID string `json:"classId"`
	// State is one of ACTIVE, INACTIVE, EXPIRED, COMPLETED.
	State              string           `json:"state,omitempty"`
	Barcode            *Barcode         `json:"barcode,omitempty"`
	CardTitle          *LocalizedString `json:"cardTitle,omitempty"`
	Header             *LocalizedString `json:"header,omitempty"`
	Subheader          *LocalizedString `json:"subheader,omitempty"`
	Logo               *Image           `json:"logo,omitempty"`
	HexBackgroundColor string           `json:"hexBackgroundColor,omitempty"`
	HeroImage          *Image           `json:"heroImage,omitempty"`
	ValidTimeInterval  *TimeInterval    `json:"validTimeInterval,omitempty"`
	LinkedOfferIDs     []string         `json:"linkedOfferIds,omitempty"`
	TextModulesData    []TextModuleData `json:"textModulesData,omitempty"`
}

// GenericClass is the template shared by generic objects.
type GenericClass struct {
	ID         string `json:"id"`
	IssuerName string `json:"issuerName,omitempty"`
	// ReviewStatus is one of DRAFT, UNDER_REVIEW, APPROVED, REJECTED.
	ReviewStatus      string             `json:"reviewStatus,omitempty"`
	ClassTemplateInfo *ClassTemplateInfo `json:"classTemplateInfo,omitempty"`
}

// LocalizedString is a string with optional translations.
type LocalizedString struct {
	DefaultValue     *TranslatedString  `json:"defaultValue,omitempty"`
	TranslatedValues []TranslatedString `json:"translatedValues,omitempty"`
}

// NewLocalizedString wraps value as the [DefaultLanguage] default value.
func NewLocalizedString(value string) *LocalizedString {
	return &LocalizedString{
		DefaultValue: &TranslatedString{Language: DefaultLanguage, Value: value},
	}
}

// Default returns the default value, or "" if there is none.
func (l *LocalizedString) Default() string {
	if l == nil || l.DefaultValue == nil {
		return ""
	}

	return l.DefaultValue.Value
}

type TranslatedString struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Barcode is the wire form of a barcode.
type Barcode struct {
	// Type is one of QR_CODE, PDF_417, AZTEC, CODE_128.
	Type          string `json:"type"`
	Value         string `json:"value"`
	AlternateText string `json:"alternateText,omitempty"`
}

type Image struct {
	SourceURI          ImageURI         `json:"sourceUri"`
	ContentDescription *LocalizedString `json:"contentDescription,omitempty"`
}

type ImageURI struct {
	URI         string `json:"uri"`
	Description string `json:"description,omitempty"`
}

// TimeInterval is a start/end window. Both bounds are optional.
type TimeInterval struct {
	Start *DateTime `json:"start,omitempty"`
	End   *DateTime `json:"end,omitempty"`
}

// AddMessageRequest is the body of the addMessage call.
type AddMessageRequest struct {
	Message Message `json:"message"`
}

// Message is shown to holders of an object.
type Message struct {
	Header          string        `json:"header,omitempty"`
	Body            string        `json:"body,omitempty"`
	DisplayInterval *TimeInterval `json:"displayInterval,omitempty"`
}

// AddMessageResponse is returned by the addMessage call.
type AddMessageResponse struct {
	Resource GenericObject `json:"resource"`
}

// GenericObjectList is one page of generic objects.
type GenericObjectList struct {
	Resources  []GenericObject `json:"resources,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Pagination is returned with list responses.
type Pagination struct {
	Kind           string `json:"kind,omitempty"`
	ResultsPerPage int    `json:"resultsPerPage,omitempty"`
	NextPageToken  string `json:"nextPageToken,omitempty"`
}

// EventTicketObject is an event ticket pass.
type EventTicketObject struct {
	ID               string     `json:"id"`
	ClassID          string     `json:"classId"`
	State            string     `json:"state,omitempty"`
	Barcode          *Barcode   `json:"barcode,omitempty"`
	SeatInfo         *EventSeat `json:"seatInfo,omitempty"`
	TicketHolderName string     `json:"ticketHolderName,omitempty"`
}

type EventSeat struct {
	Seat    *LocalizedString `json:"seat,omitempty"`
	Row     *LocalizedString `json:"row,omitempty"`
	Section *LocalizedString `json:"section,omitempty"`
}

// LoyaltyObject is a loyalty card pass.
type LoyaltyObject struct {
	ID            string         `json:"id"`
	ClassID       string         `json:"classId"`
	State         string         `json:"state,omitempty"`
	Barcode       *Barcode       `json:"barcode,omitempty"`
	AccountID     string         `json:"accountId,omitempty"`
	AccountName   string         `json:"accountName,omitempty"`
	LoyaltyPoints *LoyaltyPoints `json:"loyaltyPoints,omitempty"`
}

type LoyaltyPoints struct {
	Label   string                `json:"label"`
	Balance *LoyaltyPointsBalance `json:"balance,omitempty"`
}

// LoyaltyPointsBalance holds exactly one of its fields.
type LoyaltyPointsBalance struct {
	String *string  `json:"string,omitempty"`
	Int    *int     `json:"int,omitempty"`
	Double *float64 `json:"double,omitempty"`
}

// TextModuleData displays a custom field.
type TextModuleData struct {
	ID              string           `json:"id,omitempty"`
	Header          string           `json:"header,omitempty"`
	Body            string           `json:"body,omitempty"`
	LocalizedHeader *LocalizedString `json:"localizedHeader,omitempty"`
	LocalizedBody   *LocalizedString `json:"localizedBody,omitempty"`
}

// ClassTemplateInfo describes how objects of a class are rendered.
type ClassTemplateInfo struct {
	CardTemplateOverride      *CardTemplateOverride      `json:"cardTemplateOverride,omitempty"`
	DetailsTemplateOverride   *DetailsTemplateOverride   `json:"detailsTemplateOverride,omitempty"`
	ListTemplateOverride      *ListTemplateOverride      `json:"listTemplateOverride,omitempty"`
	CardBarcodeSectionDetails *CardBarcodeSectionDetails `json:"cardBarcodeSectionDetails,omitempty"`
}

type CardTemplateOverride struct {
	CardRowTemplateInfos []CardRowTemplateInfo `json:"cardRowTemplateInfos,omitempty"`
}

// CardRowTemplateInfo sets exactly one of its row layouts.
type CardRowTemplateInfo struct {
	OneItem    *CardRowOneItem    `json:"oneItem,omitempty"`
	TwoItems   *CardRowTwoItems   `json:"twoItems,omitempty"`
	ThreeItems *CardRowThreeItems `json:"threeItems,omitempty"`
}

type CardRowOneItem struct {
	Item *TemplateItem `json:"item,omitempty"`
}

type CardRowTwoItems struct {
	StartItem *TemplateItem `json:"startItem,omitempty"`
	EndItem   *TemplateItem `json:"endItem,omitempty"`
}

type CardRowThreeItems struct {
	StartItem  *TemplateItem `json:"startItem,omitempty"`
	MiddleItem *TemplateItem `json:"middleItem,omitempty"`
	EndItem    *TemplateItem `json:"endItem,omitempty"`
}

type TemplateItem struct {
	FirstValue     *FieldSelector `json:"firstValue,omitempty"`
	PredefinedItem string         `json:"predefinedItem,omitempty"`
}

type FieldSelector struct {
	Fields []FieldReference `json:"fields,omitempty"`
}

// FieldReference points at an object field, e.g.
// "object.textModulesData['seat']".
type FieldReference struct {
	FieldPath  string `json:"fieldPath,omitempty"`
	DateFormat string `json:"dateFormat,omitempty"`
}

// TextModuleFieldPath returns the field path selecting the text module with the given ID.
func TextModuleFieldPath(id string) string {
	return "object.textModulesData['" + id + "']"
}

type DetailsTemplateOverride struct {
	DetailsItemInfos []DetailsItemInfo `json:"detailsItemInfos,omitempty"`
}

type DetailsItemInfo struct {
	Item *TemplateItem `json:"item,omitempty"`
}

type ListTemplateOverride struct {
	FirstRowOption  *FirstRowOption `json:"firstRowOption,omitempty"`
	SecondRowOption *FieldSelector  `json:"secondRowOption,omitempty"`
	ThirdRowOption  *FieldSelector  `json:"thirdRowOption,omitempty"`
}

type FirstRowOption struct {
	FieldOption   *FieldSelector `json:"fieldOption,omitempty"`
	TransitOption string         `json:"transitOption,omitempty"`
}

type CardBarcodeSectionDetails struct {
	FirstTopDetail    *BarcodeSectionDetail `json:"firstTopDetail,omitempty"`
	SecondTopDetail   *BarcodeSectionDetail `json:"secondTopDetail,omitempty"`
	FirstBottomDetail *BarcodeSectionDetail `json:"firstBottomDetail,omitempty"`
}

type BarcodeSectionDetail struct {
	FieldSelector *FieldSelector `json:"fieldSelector,omitempty"`
}
