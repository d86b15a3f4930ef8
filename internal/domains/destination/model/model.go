package model

const (
	EntityName       = "destination"
	DetailEntityName = "destination_detail"

	FieldID        = "id"
	FieldName      = "name"
	FieldTagline   = "tagline"
	FieldRegion    = "region"
	FieldInterests = "interests"
	FieldListingID = "listing_id"
	FieldAliases   = "aliases"

	// FeaturedDetailID is shown when no destination is requested.
	FeaturedDetailID = "jaipur"
)

var Regions = []string{"North India", "South India", "West India", "East India", "Central India", "North-East India"}

var Interests = []string{"Historical", "Spiritual", "Adventure", "Wildlife", "Beaches", "Mountains", "Cultural", "Urban"}

type Destination struct {
	ID        string   `json:"id"        field:"id"`
	ImageURL  string   `json:"imageUrl"`
	Name      string   `json:"name"      field:"name"`
	Tagline   string   `json:"tagline"   field:"tagline"`
	Region    string   `json:"region"    field:"region"`
	Interests []string `json:"interests" field:"interests"`
	DetailID  string   `json:"detailId"`
}

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type Attraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Detail struct {
	ID                   string       `json:"id"                   field:"id"`
	ListingID            string       `json:"listingId"            field:"listing_id"`
	Aliases              []string     `json:"aliases"              field:"aliases"`
	Name                 string       `json:"name"`
	Tagline              string       `json:"tagline"`
	Images               []Image      `json:"images"`
	CulturalSignificance string       `json:"culturalSignificance"`
	KeyAttractions       []Attraction `json:"keyAttractions"`
	BestTimeToVisit      string       `json:"bestTimeToVisit"`
	LocalTips            []string     `json:"localTips"`
	UserReviews          []Review     `json:"userReviews"`
	FAQs                 []FAQ        `json:"faqs"`
}
