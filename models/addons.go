package models

// AddOnID names an optional extra service.
type AddOnID string

const (
	AddOnPhotographer AddOnID = "photographer"
	AddOnDecoration   AddOnID = "decoration"
	AddOnCatering     AddOnID = "catering"
	AddOnMakeup       AddOnID = "makeup"
	AddOnDJ           AddOnID = "dj"

	AddOnTables      AddOnID = "tables"
	AddOnWaiterHours AddOnID = "waiterHours"
	AddOnIceKg       AddOnID = "iceKg"
)

// AddOnKind separates flat-quoted extras from unit-priced ones.
type AddOnKind string

const (
	AddOnBinary  AddOnKind = "binary"
	AddOnMetered AddOnKind = "metered"
)

// AddOnSelection is the snapshot of extras chosen for a booking.
type AddOnSelection struct {
	Photographer bool `bson:"photographer" json:"photographer"`
	Decoration   bool `bson:"decoration" json:"decoration"`
	Catering     bool `bson:"catering" json:"catering"`
	Makeup       bool `bson:"makeup" json:"makeup"`
	DJ           bool `bson:"dj" json:"dj"`

	Tables      int `bson:"tables" json:"tables"`
	WaiterHours int `bson:"waiterHours" json:"waiterHours"`
	IceKg       int `bson:"iceKg" json:"iceKg"`
}

// AddOnInfo describes one add-on for the catalog endpoint.
type AddOnInfo struct {
	ID        AddOnID   `json:"id"`
	Label     string    `json:"label"`
	Kind      AddOnKind `json:"kind"`
	UnitPrice Money     `json:"unitPrice,omitempty"`
	Unit      string    `json:"unit,omitempty"`
	Step      int       `json:"step,omitempty"`
	// Note is shown instead of a price for binary extras.
	Note string `json:"note,omitempty"`
}
