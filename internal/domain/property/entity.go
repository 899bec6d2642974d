package property

import "time"

// Property types.
const (
	TypeHouse     = "house"
	TypeApartment = "apartment"
	TypeVilla     = "villa"
)

// Listing statuses. Any status may follow any other; this is a plain
// data attribute, not a guarded workflow.
const (
	StatusForSale = "for_sale"
	StatusForRent = "for_rent"
	StatusSold    = "sold"
	StatusRented  = "rented"
)

// ImageNamespace is the blob store folder for listing photos.
const ImageNamespace = "property-images"

// Property is the aggregate root: a listing together with its images.
// Deleting a property cascades to its image rows; blob cleanup is the
// service's job.
type Property struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID      int64     `gorm:"column:user_id;index" json:"user_id"`
	Title       string    `gorm:"column:title;size:255" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       float64   `gorm:"column:price" json:"price"`
	Bedrooms    int       `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms   int       `gorm:"column:bathrooms" json:"bathrooms"`
	SquareMeter int       `gorm:"column:square_meter" json:"square_meter"`
	Address     string    `gorm:"column:address" json:"address"`
	City        string    `gorm:"column:city" json:"city"`
	State       string    `gorm:"column:state;size:2" json:"state"`
	Zip         string    `gorm:"column:zip;size:5" json:"zip"`
	Type        string    `gorm:"column:type" json:"type"`
	Status      string    `gorm:"column:status;default:for_sale" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Images []Image `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images"`
}

func (Property) TableName() string { return "properties" }

// Image is owned by exactly one property. ImageURL is an opaque blob
// store path, not a row-managed payload.
type Image struct {
	ID         int64  `gorm:"column:id;primaryKey" json:"id"`
	PropertyID int64  `gorm:"column:property_id;index" json:"property_id"`
	ImageURL   string `gorm:"column:image_url" json:"image_url"`
}

func (Image) TableName() string { return "images" }

func Types() []string {
	return []string{TypeHouse, TypeApartment, TypeVilla}
}

func Statuses() []string {
	return []string{StatusForSale, StatusForRent, StatusSold, StatusRented}
}
