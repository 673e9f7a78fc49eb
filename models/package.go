package models

// PackageID identifies a bookable package variant.
type PackageID string

const (
	PackageKids     PackageID = "kids"
	PackageTeen     PackageID = "teen"
	PackageAdult    PackageID = "adult"
	PackageBaby     PackageID = "baby"
	PackageGender   PackageID = "gender"
	PackageEighteen PackageID = "eighteen"
	PackageSlavlja  PackageID = "slavlja"
)

// SpaceType is the venue area: open-air garden or the enclosed hall.
type SpaceType string

const (
	SpaceOpen   SpaceType = "open"
	SpaceClosed SpaceType = "closed"
)

func (s SpaceType) Valid() bool { return s == SpaceOpen || s == SpaceClosed }

// GuestComposition is either a single head count or, for composite
// packages, a children/adults pair.
type GuestComposition struct {
	Composite bool `bson:"composite" json:"composite"`
	Guests    int  `bson:"guests" json:"guests"`
	Children  int  `bson:"children" json:"children"`
	Adults    int  `bson:"adults" json:"adults"`
}

// Total resolves the composition to a single integer.
func (g GuestComposition) Total() int {
	if g.Composite {
		return g.Children + g.Adults
	}
	return g.Guests
}

// PackageInfo is the public description of a package variant.
type PackageInfo struct {
	ID             PackageID `json:"id"`
	Name           string    `json:"name"`
	Emoji          string    `json:"emoji"`
	Inclusions     string    `json:"inclusions"`
	Slots          []string  `json:"slots"`
	Composite      bool      `json:"composite"`
	ByAgreement    bool      `json:"byAgreement"`
	OpenAirCeiling int       `json:"openAirCeiling"`
	ClosedCeiling  int       `json:"closedCeiling"`
}
